// Package export renders palettes into formats other tools can consume.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"text/template"

	"golang.org/x/text/language"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/naming"
)

//go:embed templates/*.tmpl
var templates embed.FS

// ErrUnknownFormat is returned for an export format that does not exist.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an export format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSS      Format = "css"
	FormatSCSS     Format = "scss"
	FormatTailwind Format = "tailwind"
	FormatGPL      Format = "gpl"
	FormatText     Format = "text"
)

// DefaultName is used when the palette has no name.
const DefaultName = "palette"

// Formats returns all export formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSS, FormatSCSS, FormatTailwind, FormatGPL, FormatText}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if slices.Contains(Formats(), f) {
		return f, nil
	}
	return "", fmt.Errorf("%w: %s (valid: %v)", ErrUnknownFormat, s, Formats())
}

// Extension returns the conventional file extension for f.
func (f Format) Extension() string {
	switch f {
	case FormatTailwind:
		return ".js"
	case FormatText:
		return ".txt"
	default:
		return "." + string(f)
	}
}

// Entry is one colour as seen by the templates. Index is 1-based.
type Entry struct {
	Index int    `json:"index"`
	Hex   string `json:"hex"`
	R     uint8  `json:"r"`
	G     uint8  `json:"g"`
	B     uint8  `json:"b"`
	Label string `json:"name"`
}

// Data is the template context.
type Data struct {
	Name    string  `json:"name"`
	Slug    string  `json:"-"`
	Colours []Entry `json:"colours"`
}

// NewData builds the template context, labelling each colour with its
// nearest reference name in lang.
func NewData(p *colour.Palette, name string, lang language.Tag) Data {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	d := Data{Name: name, Slug: Slug(name), Colours: make([]Entry, 0, p.Len())}
	for i, c := range p.Colours {
		d.Colours = append(d.Colours, Entry{
			Index: i + 1,
			Hex:   c.Hex(),
			R:     c.R,
			G:     c.G,
			B:     c.B,
			Label: naming.Nearest(c, lang).Name,
		})
	}
	return d
}

// Render writes p in format f.
func Render(p *colour.Palette, f Format, name string, lang language.Tag) ([]byte, error) {
	if p == nil || p.Len() == 0 {
		return nil, colour.ErrInvalidPaletteArity
	}
	if _, err := ParseFormat(string(f)); err != nil {
		return nil, err
	}

	data := NewData(p, name, lang)
	if f == FormatJSON {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal palette: %w", err)
		}
		return append(out, '\n'), nil
	}

	file := "templates/" + string(f) + ".tmpl"
	tmplContent, err := templates.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s template: %w", f, err)
	}
	tmpl, err := template.New(string(f)).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", f, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", f, err)
	}
	return buf.Bytes(), nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a palette name into an identifier usable as a CSS variable prefix.
func Slug(name string) string {
	s := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if s == "" {
		return DefaultName
	}
	return s
}
