package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{name: "empty", env: nil, want: Default()},
		{
			name: "all set",
			env: map[string]string{
				EnvLang:             "ja-JP",
				EnvPreview:          "Never",
				EnvFormat:           "JSON",
				EnvNormaliseWeights: "true",
				EnvColourBlindDelta: "12.5",
			},
			want: Config{
				Lang:              language.Japanese,
				Preview:           PreviewNever,
				Format:            FormatJSON,
				NormaliseWeights:  true,
				ColourBlindDeltaE: 12.5,
			},
		},
		{name: "blank values ignored", env: map[string]string{EnvLang: "  ", EnvFormat: ""}, want: Default()},
		{name: "unsupported language falls back", env: map[string]string{EnvLang: "de"}, want: Default()},
		{name: "bad language", env: map[string]string{EnvLang: "!!"}, wantErr: true},
		{name: "bad preview", env: map[string]string{EnvPreview: "sometimes"}, wantErr: true},
		{name: "bad format", env: map[string]string{EnvFormat: "yaml"}, wantErr: true},
		{name: "bad bool", env: map[string]string{EnvNormaliseWeights: "maybe"}, wantErr: true},
		{name: "bad delta", env: map[string]string{EnvColourBlindDelta: "-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromEnv(mapLookup(tt.env))
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got, cmp.Comparer(func(a, b language.Tag) bool { return a == b })); diff != "" {
				t.Errorf("FromEnv() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.env")
	if err := os.WriteFile(path, []byte("SWATCH_FORMAT=json\nSWATCH_PREVIEW=always\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvPreview, "")
	os.Unsetenv(EnvFormat)
	os.Unsetenv(EnvPreview)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format != FormatJSON || cfg.Preview != PreviewAlways {
		t.Errorf("Load() = %+v, want json/always from file", cfg)
	}
}

func TestLoadEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.env")
	if err := os.WriteFile(path, []byte("SWATCH_FORMAT=json\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvFormat, "text")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %s, want text from environment", cfg.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Load() of a missing file returned %v", err)
	}
}

func TestPreviewEnabled(t *testing.T) {
	tests := []struct {
		p    Preview
		tty  bool
		want bool
	}{
		{PreviewAuto, true, true},
		{PreviewAuto, false, false},
		{PreviewAlways, false, true},
		{PreviewNever, true, false},
	}
	for _, tt := range tests {
		if got := tt.p.Enabled(tt.tty); got != tt.want {
			t.Errorf("%s.Enabled(%v) = %v, want %v", tt.p, tt.tty, got, tt.want)
		}
	}
}
