package generate

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/seed"
)

func ptr[T any](v T) *T { return &v }

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("pastel"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(pastel) error = %v, want ErrUnknownMode", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "default", opts: DefaultOptions()},
		{name: "zero count", opts: Options{Mode: ModeTriadic, Count: 0}, wantErr: true},
		{name: "too many", opts: Options{Mode: ModeTriadic, Count: MaxCount + 1}, wantErr: true},
		{name: "bad mode", opts: Options{Mode: "neon", Count: 3}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPaletteDeterministic(t *testing.T) {
	for _, m := range Modes() {
		t.Run(string(m), func(t *testing.T) {
			opts := Options{Mode: m, Count: 6, Seed: ptr(int64(99))}
			a, err := Palette(opts)
			if err != nil {
				t.Fatalf("Palette() error = %v", err)
			}
			b, err := Palette(opts)
			if err != nil {
				t.Fatalf("Palette() error = %v", err)
			}
			if a.Len() != 6 {
				t.Errorf("Len() = %d, want 6", a.Len())
			}
			if diff := cmp.Diff(a.ToHex(), b.ToHex()); diff != "" {
				t.Errorf("same seed produced different palettes (-first +second):\n%s", diff)
			}
		})
	}
}

func TestPaletteDefaults(t *testing.T) {
	p, err := Palette(Options{Seed: ptr(int64(1))})
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	if p.Len() != DefaultCount {
		t.Errorf("Len() = %d, want %d", p.Len(), DefaultCount)
	}
}

func TestMonochromaticSharesHue(t *testing.T) {
	p, err := Palette(Options{Mode: ModeMonochromatic, Count: 5, Seed: ptr(int64(3)), BaseHue: ptr(200.0)})
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	prev := -1.0
	for i, h := range precise(p) {
		if d := colour.HueDistance(h.H, 200); d > 3 {
			t.Errorf("colour %d hue = %.1f, want within 3 of 200", i, h.H)
		}
		if h.L <= prev {
			t.Errorf("colour %d lightness %.1f not above previous %.1f", i, h.L, prev)
		}
		prev = h.L
	}
}

func TestComplementaryAlternatesHue(t *testing.T) {
	p, err := Palette(Options{Mode: ModeComplementary, Count: 4, Seed: ptr(int64(5)), BaseHue: ptr(30.0)})
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	want := []float64{30, 210, 30, 210}
	for i, h := range precise(p) {
		if d := colour.HueDistance(h.H, want[i]); d > 3 {
			t.Errorf("colour %d hue = %.1f, want near %.0f", i, h.H, want[i])
		}
	}
}

func TestLayoutHues(t *testing.T) {
	rng := newTestRand()
	tests := []struct {
		mode Mode
		n    int
		want []float64
	}{
		{ModeTriadic, 3, []float64{10, 130, 250}},
		{ModeTetradic, 4, []float64{10, 100, 190, 280}},
		{ModeSplitComplementary, 3, []float64{10, 160, 220}},
		{ModeAnalogous, 3, []float64{340, 10, 40}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := layout(tt.mode, tt.n, 10, rng)
			hues := make([]float64, len(got))
			for i, h := range got {
				hues[i] = h.H
			}
			if diff := cmp.Diff(tt.want, hues); diff != "" {
				t.Errorf("hues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func precise(p *colour.Palette) []colour.HSL {
	out := make([]colour.HSL, 0, p.Len())
	for _, c := range p.Colours {
		out = append(out, colour.RGBToHSLPrecise(c))
	}
	return out
}

func newTestRand() *rand.Rand {
	return seed.NewRand(11)
}
