// Package generate builds palettes from colour-harmony rules.
package generate

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/seed"
)

// ErrUnknownMode is returned for a generation mode that does not exist.
var ErrUnknownMode = errors.New("unknown generation mode")

// Mode selects the harmony rule used to place hues.
type Mode string

const (
	ModeRandom             Mode = "random"
	ModeMonochromatic      Mode = "monochromatic"
	ModeAnalogous          Mode = "analogous"
	ModeComplementary      Mode = "complementary"
	ModeSplitComplementary Mode = "split-complementary"
	ModeTriadic            Mode = "triadic"
	ModeTetradic           Mode = "tetradic"
)

// Limits on the number of generated colours.
const (
	DefaultCount = 5
	MaxCount     = 32
)

// analogousStep is the hue gap between neighbouring analogous colours.
const analogousStep = 30.0

// hueOffsets lists the anchor hues of each cyclic rule, relative to the base.
var hueOffsets = map[Mode][]float64{
	ModeComplementary:      {0, 180},
	ModeSplitComplementary: {0, 150, 210},
	ModeTriadic:            {0, 120, 240},
	ModeTetradic:           {0, 90, 180, 270},
}

// Modes returns all generation modes.
func Modes() []Mode {
	return []Mode{
		ModeRandom, ModeMonochromatic, ModeAnalogous, ModeComplementary,
		ModeSplitComplementary, ModeTriadic, ModeTetradic,
	}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if slices.Contains(Modes(), m) {
		return m, nil
	}
	return "", fmt.Errorf("%w: %s (valid: %v)", ErrUnknownMode, s, Modes())
}

// Options configures palette generation.
type Options struct {
	Mode  Mode
	Count int

	// Seed makes the output reproducible. Nil draws a random seed.
	Seed *int64

	// BaseHue anchors the harmony in degrees. Nil picks one from the seed.
	BaseHue *float64
}

// DefaultOptions returns a five-colour random palette.
func DefaultOptions() Options {
	return Options{Mode: ModeRandom, Count: DefaultCount}
}

// Validate checks the options.
func (o Options) Validate() error {
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	if o.Count < 1 || o.Count > MaxCount {
		return fmt.Errorf("count must be between 1 and %d, got %d", MaxCount, o.Count)
	}
	if o.BaseHue != nil && (math.IsNaN(*o.BaseHue) || math.IsInf(*o.BaseHue, 0)) {
		return fmt.Errorf("base hue must be finite")
	}
	return nil
}

// Palette generates a palette according to opts.
func Palette(opts Options) (*colour.Palette, error) {
	if opts.Count == 0 {
		opts.Count = DefaultCount
	}
	if opts.Mode == "" {
		opts.Mode = ModeRandom
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := seed.Random()
	if opts.Seed != nil {
		s = *opts.Seed
	}
	rng := seed.NewRand(s)

	base := rng.Float64() * 360
	if opts.BaseHue != nil {
		base = *opts.BaseHue
	}

	hsls := layout(opts.Mode, opts.Count, base, rng)
	colours := make([]colour.RGB, len(hsls))
	for i, h := range hsls {
		colours[i] = fromHSL(h)
	}
	return colour.NewPalette(colours)
}

func layout(mode Mode, n int, base float64, rng *rand.Rand) []colour.HSL {
	out := make([]colour.HSL, n)
	switch mode {
	case ModeRandom:
		for i := range out {
			out[i] = colour.HSL{H: rng.Float64() * 360, S: between(rng, 40, 90), L: between(rng, 30, 75)}
		}
	case ModeMonochromatic:
		sat := between(rng, 40, 80)
		for i := range out {
			out[i] = colour.HSL{H: base, S: sat, L: spread(i, n, 20, 85)}
		}
	case ModeAnalogous:
		mid := float64(n-1) / 2
		for i := range out {
			out[i] = colour.HSL{
				H: base + (float64(i)-mid)*analogousStep,
				S: between(rng, 50, 85),
				L: between(rng, 35, 70),
			}
		}
	default:
		offsets := hueOffsets[mode]
		for i := range out {
			// Each pass around the wheel shifts lightness so repeated hues differ.
			pass := i / len(offsets)
			out[i] = colour.HSL{
				H: base + offsets[i%len(offsets)],
				S: between(rng, 50, 90),
				L: math.Max(15, math.Min(85, between(rng, 40, 60)+float64(pass)*15*sign(pass))),
			}
		}
	}
	for i := range out {
		out[i].H = normaliseHue(out[i].H)
	}
	return out
}

// fromHSL converts percentage-based HSL through go-colorful.
func fromHSL(h colour.HSL) colour.RGB {
	r, g, b := colorful.Hsl(h.H, h.S/100, h.L/100).Clamped().RGB255()
	return colour.RGB{R: r, G: g, B: b}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func spread(i, n int, lo, hi float64) float64 {
	if n == 1 {
		return (lo + hi) / 2
	}
	return lo + float64(i)*(hi-lo)/float64(n-1)
}

// sign alternates lighter and darker passes.
func sign(pass int) float64 {
	if pass%2 == 1 {
		return 1
	}
	return -1
}

func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
