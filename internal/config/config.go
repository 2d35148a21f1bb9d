// Package config resolves process settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/jmylchreest/swatch/internal/i18n"
)

// Environment variable names.
const (
	EnvLang             = "SWATCH_LANG"
	EnvPreview          = "SWATCH_PREVIEW"
	EnvFormat           = "SWATCH_FORMAT"
	EnvNormaliseWeights = "SWATCH_NORMALISE_WEIGHTS"
	EnvColourBlindDelta = "SWATCH_CB_DELTA_E"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Preview controls ANSI colour swatches in text output.
type Preview string

const (
	PreviewAuto   Preview = "auto"
	PreviewAlways Preview = "always"
	PreviewNever  Preview = "never"
)

// ParsePreview converts a string to a Preview.
func ParsePreview(s string) (Preview, error) {
	p := Preview(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains([]Preview{PreviewAuto, PreviewAlways, PreviewNever}, p) {
		return p, nil
	}
	return "", fmt.Errorf("invalid preview mode %q (valid: auto, always, never)", s)
}

// Enabled reports whether previews should be drawn given whether the
// output is a terminal.
func (p Preview) Enabled(tty bool) bool {
	switch p {
	case PreviewAlways:
		return true
	case PreviewNever:
		return false
	default:
		return tty
	}
}

// OutputFormat is the CLI report format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a string to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if f == FormatText || f == FormatJSON {
		return f, nil
	}
	return "", fmt.Errorf("invalid output format %q (valid: text, json)", s)
}

// Config holds settings shared by every command.
type Config struct {
	Lang             language.Tag
	Preview          Preview
	Format           OutputFormat
	NormaliseWeights bool

	// ColourBlindDeltaE overrides the scorer threshold when non-zero.
	ColourBlindDeltaE float64
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Lang:    language.English,
		Preview: PreviewAuto,
		Format:  FormatText,
	}
}

// Load reads the given .env files (DefaultEnvFile when none are named) and
// then the process environment. Missing files are not an error; variables
// already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := nonEmpty(lookup, EnvLang); ok {
		tag, err := i18n.Parse(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLang, err)
		}
		cfg.Lang = tag
	}
	if v, ok := nonEmpty(lookup, EnvPreview); ok {
		p, err := ParsePreview(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPreview, err)
		}
		cfg.Preview = p
	}
	if v, ok := nonEmpty(lookup, EnvFormat); ok {
		f, err := ParseOutputFormat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvFormat, err)
		}
		cfg.Format = f
	}
	if v, ok := nonEmpty(lookup, EnvNormaliseWeights); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvNormaliseWeights, err)
		}
		cfg.NormaliseWeights = b
	}
	if v, ok := nonEmpty(lookup, EnvColourBlindDelta); ok {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvColourBlindDelta, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%s must be positive, got %v", EnvColourBlindDelta, d)
		}
		cfg.ColourBlindDeltaE = d
	}
	return cfg, nil
}

func nonEmpty(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
