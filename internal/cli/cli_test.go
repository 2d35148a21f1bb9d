package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/swatch/internal/cli"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
)

// run executes the root command with an isolated environment and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{config.EnvLang, config.EnvPreview, config.EnvFormat, config.EnvNormaliseWeights, config.EnvColourBlindDelta} {
		t.Setenv(k, "")
	}

	var out, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))

	err := rootCmd.Execute()
	return out.String(), err
}

func decode[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, s)
	}
	return v
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := run(t, "analyze", "#000000", "#ffffff", "--format", "json")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	got := decode[struct {
		Analysis struct {
			Scores struct {
				Contrast          int    `json:"contrast"`
				ColourBlindSafety int    `json:"colour_blind_safety"`
				Total             int    `json:"total"`
				Grade             string `json:"grade"`
			} `json:"scores"`
		} `json:"analysis"`
		Suggestions []struct {
			ID string `json:"id"`
		} `json:"suggestions"`
	}](t, out)

	s := got.Analysis.Scores
	if s.Contrast != 20 || s.ColourBlindSafety != 100 || s.Total != 69 || s.Grade != "C" {
		t.Errorf("scores = %+v, want contrast 20, colour-blind 100, total 69, grade C", s)
	}
	if len(got.Suggestions) == 0 {
		t.Error("expected at least one suggestion")
	}
}

func TestAnalyzeText(t *testing.T) {
	out, err := run(t, "analyze", "000000,ffffff", "--preview", "never")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, want := range []string{"#000000", "#ffffff", "Contrast", "Total: 69", "deuteranopia", "Suggestions"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[48;2;") {
		t.Error("previews drawn with --preview never")
	}
}

func TestAnalyzeInvalidColour(t *testing.T) {
	_, err := run(t, "analyze", "#ff0000", "#ZZZZZZ")
	if !errors.Is(err, colour.ErrInvalidColorFormat) {
		t.Errorf("error = %v, want ErrInvalidColorFormat", err)
	}
}

func TestAnalyzeNormalisedWeights(t *testing.T) {
	out, err := run(t, "analyze", "#7c7c7c", "#7e7e7e", "#808080", "#828282", "#848484", "--normalise-weights", "-f", "json")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	got := decode[struct {
		Analysis struct {
			Scores struct {
				Total int `json:"total"`
			} `json:"scores"`
		} `json:"analysis"`
	}](t, out)
	if got.Analysis.Scores.Total != 48 {
		t.Errorf("normalised total = %d, want 48", got.Analysis.Scores.Total)
	}
}

func TestCompareJSON(t *testing.T) {
	out, err := run(t, "compare",
		"--a", "#7c7c7c,#7e7e7e,#808080,#828282,#848484",
		"--b", "#000000,#ffffff",
		"--format", "json")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}

	got := decode[struct {
		TotalDelta int    `json:"total_delta"`
		Winner     string `json:"winner"`
	}](t, out)
	want := struct {
		TotalDelta int    `json:"total_delta"`
		Winner     string `json:"winner"`
	}{TotalDelta: 14, Winner: "B"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("compare mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareRequiresBothPalettes(t *testing.T) {
	if _, err := run(t, "compare", "--a", "#000000"); err == nil {
		t.Error("compare without --b succeeded")
	}
}

func TestSimulate(t *testing.T) {
	out, err := run(t, "simulate", "--vision", "achromatopsia", "#ff0000", "-f", "json")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	got := decode[[]struct {
		Deficiency string   `json:"deficiency"`
		Palette    []string `json:"palette"`
	}](t, out)
	if len(got) != 1 || got[0].Deficiency != "achromatopsia" {
		t.Fatalf("simulate = %+v", got)
	}
	if diff := cmp.Diff([]string{"#4c4c4c"}, got[0].Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}

	if _, err := run(t, "simulate", "--vision", "tetrachromacy", "#ff0000"); err == nil {
		t.Error("unknown deficiency accepted")
	}
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", "--vision", "normal", "#ff0000", "#00ff00", "-f", "json")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	got := decode[[]struct {
		Deficiency  string  `json:"deficiency"`
		Percentage  float64 `json:"percentage"`
		Suggestions []struct {
			ID string `json:"id"`
		} `json:"suggestions"`
	}](t, out)
	if len(got) != 1 || got[0].Percentage != 100 || len(got[0].Suggestions) == 0 {
		t.Errorf("inspect = %+v", got)
	}

	text, err := run(t, "inspect", "#ff0000", "#00ff00", "#0000ff")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, d := range []string{"protanopia", "deuteranopia", "tritanopia", "achromatopsia"} {
		if !strings.Contains(text, d) {
			t.Errorf("output missing %s section", d)
		}
	}
}

func TestSuggestJapanese(t *testing.T) {
	out, err := run(t, "suggest", "--lang", "ja", "#7c7c7c", "#808080", "-f", "json")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	got := decode[[]struct {
		Lang string `json:"lang"`
	}](t, out)
	if len(got) == 0 {
		t.Fatal("no suggestions")
	}
	for _, s := range got {
		if s.Lang != "ja" {
			t.Errorf("lang = %q, want ja", s.Lang)
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	args := []string{"generate", "--mode", "triadic", "--count", "6", "--seed", "42", "-f", "json"}
	first, err := run(t, args...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := run(t, args...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first != second {
		t.Errorf("same seed produced different output:\n%s\n%s", first, second)
	}

	got := decode[struct {
		Mode    string   `json:"mode"`
		Seed    int64    `json:"seed"`
		Palette []string `json:"palette"`
	}](t, first)
	if got.Mode != "triadic" || got.Seed != 42 || len(got.Palette) != 6 {
		t.Errorf("generate = %+v", got)
	}
}

func TestGenerateFlagErrors(t *testing.T) {
	tests := [][]string{
		{"generate", "--mode", "neon"},
		{"generate", "--seed", "1", "--seed-text", "autumn"},
		{"generate", "--count", "-1"},
	}
	for _, args := range tests {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v succeeded, want error", args)
		}
	}
}

func TestExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stripes.png")
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := range 10 {
		for x := range 10 {
			c := color.RGBA{R: 200, G: 30, B: 30, A: 255}
			if x >= 7 {
				c = color.RGBA{R: 30, G: 30, B: 200, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out, err := run(t, "extract", path, "-c", "3", "-f", "json")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	got := decode[struct {
		Palette []string `json:"palette"`
	}](t, out)
	if diff := cmp.Diff([]string{"#c81e1e", "#1e1ec8"}, got.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}

	if _, err := run(t, "extract", filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("extract of a missing file succeeded")
	}
}

func TestExport(t *testing.T) {
	out, err := run(t, "export", "--to", "css", "--name", "Brand", "#ff0000", "#0000ff")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "--brand-1: #ff0000;") || !strings.Contains(out, "--brand-2: #0000ff;") {
		t.Errorf("unexpected css:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "brand.gpl")
	if _, err := run(t, "export", "-t", "gpl", "-o", path, "#ff0000"); err != nil {
		t.Fatalf("export to file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "GIMP Palette\n") {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

func TestName(t *testing.T) {
	out, err := run(t, "name", "--lang", "ja", "#ff0000", "-f", "json")
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	got := decode[[]struct {
		Name string `json:"name"`
	}](t, out)
	if len(got) != 1 || got[0].Name != "赤" {
		t.Errorf("name = %+v, want 赤", got)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "swatch version ") {
		t.Errorf("version output = %q", out)
	}
}

func TestGlobalFlagErrors(t *testing.T) {
	for _, args := range [][]string{
		{"analyze", "#000000", "--format", "yaml"},
		{"analyze", "#000000", "--preview", "sometimes"},
		{"analyze", "#000000", "--lang", "!!"},
		{"analyze", "#000000", "--cb-delta-e", "-3"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v succeeded, want error", args)
		}
	}
}

func TestEnvironmentFormat(t *testing.T) {
	for _, k := range []string{config.EnvLang, config.EnvPreview, config.EnvNormaliseWeights, config.EnvColourBlindDelta} {
		t.Setenv(k, "")
	}
	t.Setenv(config.EnvFormat, "json")

	var out bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"name", "#000000", "--env-file", filepath.Join(t.TempDir(), "none.env")})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("name: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out.String()), "[") {
		t.Errorf("SWATCH_FORMAT=json ignored:\n%s", out.String())
	}
}

func TestVerboseLogging(t *testing.T) {
	for _, k := range []string{config.EnvLang, config.EnvPreview, config.EnvFormat, config.EnvNormaliseWeights, config.EnvColourBlindDelta} {
		t.Setenv(k, "")
	}
	envFile := filepath.Join(t.TempDir(), "none.env")

	for _, tc := range []struct {
		flag string
		want bool
	}{
		{"--verbose", true},
		{"--quiet", false},
	} {
		t.Run(tc.flag, func(t *testing.T) {
			var out, errBuf bytes.Buffer
			rootCmd := cli.NewRootCmd()
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&errBuf)
			rootCmd.SetArgs([]string{"analyze", "#000000", "#ffffff", tc.flag, "--env-file", envFile})
			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("analyze: %v", err)
			}
			if got := strings.Contains(errBuf.String(), "configuration resolved"); got != tc.want {
				t.Errorf("debug log present = %v, want %v\nstderr:\n%s", got, tc.want, errBuf.String())
			}
		})
	}
}
