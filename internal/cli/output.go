package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/analysis"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
)

const previewWidth = 4

// gradeColours maps grades to badge colours.
var gradeColours = map[analysis.Grade]lipgloss.Color{
	analysis.GradeS: lipgloss.Color("#22c55e"),
	analysis.GradeA: lipgloss.Color("#84cc16"),
	analysis.GradeB: lipgloss.Color("#eab308"),
	analysis.GradeC: lipgloss.Color("#f97316"),
	analysis.GradeD: lipgloss.Color("#ef4444"),
}

// printer writes command output in the configured format.
type printer struct {
	w       io.Writer
	format  config.OutputFormat
	preview bool

	heading lipgloss.Style
	muted   lipgloss.Style
	r       *lipgloss.Renderer
}

func (a *app) printer(cmd *cobra.Command) *printer {
	w := cmd.OutOrStdout()
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		format:  a.cfg.Format,
		preview: a.cfg.Preview.Enabled(isTerminal(w)),
		heading: r.NewStyle().Bold(true).Underline(true),
		muted:   r.NewStyle().Faint(true),
		r:       r,
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

func (p *printer) json() bool {
	return p.format == config.FormatJSON
}

// JSON writes v as indented JSON.
func (p *printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// Printf writes formatted text.
func (p *printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Heading writes a styled section title.
func (p *printer) Heading(title string) {
	fmt.Fprintln(p.w, p.heading.Render(title))
}

// Table writes a rendered table.
func (p *printer) Table(t *Table) {
	t.SetHeaderStyle(p.muted)
	fmt.Fprint(p.w, t.Render())
}

// List writes one bullet per item.
func (p *printer) List(items []string) {
	for _, item := range items {
		fmt.Fprintf(p.w, "  - %s\n", item)
	}
}

// Swatch returns the hex code, prefixed with a colour block when previews
// are enabled.
func (p *printer) Swatch(c colour.RGB) string {
	if !p.preview {
		return c.Hex()
	}
	return colour.FormatColourWithPreview(c, previewWidth)
}

// Chip returns text drawn on the colour when previews are enabled,
// otherwise the hex code.
func (p *printer) Chip(c colour.RGB, text string) string {
	if !p.preview {
		return c.Hex()
	}
	return colour.ColourPreviewWithText(c, text, max(len(text)+2, previewWidth))
}

// Grade returns a styled grade badge.
func (p *printer) Grade(g analysis.Grade) string {
	return p.r.NewStyle().Bold(true).Foreground(gradeColours[g]).Render(string(g))
}

// Palette writes a palette on one line.
func (p *printer) Palette(label string, pal *colour.Palette) {
	parts := make([]string, 0, pal.Len())
	for _, c := range pal.Colours {
		parts = append(parts, p.Swatch(c))
	}
	fmt.Fprintf(p.w, "%s %s\n", label, strings.Join(parts, "  "))
}

// parsePalette accepts colours as separate arguments or comma/space
// separated within one argument.
func parsePalette(args []string) (*colour.Palette, error) {
	var hexes []string
	for _, arg := range args {
		hexes = append(hexes, strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}
	return colour.ParsePalette(hexes)
}

// bar draws a delta as a run of blocks, one per five points.
func bar(delta int) string {
	if delta < 0 {
		delta = -delta
	}
	return strings.Repeat("█", max(1, delta/5))
}
