package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Palette is an ordered collection of colours. Order matters for display,
// but most metrics are computed over unordered pairs.
type Palette struct {
	Colours []RGB
}

// NewPalette creates a palette from the given colours.
// An empty slice is rejected with ErrInvalidPaletteArity.
func NewPalette(colours []RGB) (*Palette, error) {
	if len(colours) == 0 {
		return nil, fmt.Errorf("%w: palette must contain at least one colour", ErrInvalidPaletteArity)
	}
	c := make([]RGB, len(colours))
	copy(c, colours)
	return &Palette{Colours: c}, nil
}

// ParsePalette parses a list of hex strings into a palette.
// The first malformed entry aborts parsing.
func ParsePalette(hexes []string) (*Palette, error) {
	colours := make([]RGB, len(hexes))
	for i, h := range hexes {
		rgb, err := ParseHex(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i+1, err)
		}
		colours[i] = rgb
	}
	return NewPalette(colours)
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// PairCount returns the number of unordered pairs in the palette.
func (p *Palette) PairCount() int {
	n := len(p.Colours)
	return n * (n - 1) / 2
}

// Pairs returns an iterator over all unordered index pairs (i, j) with i < j.
func (p *Palette) Pairs() func(func(int, int) bool) {
	return func(yield func(int, int) bool) {
		for i := 0; i < len(p.Colours); i++ {
			for j := i + 1; j < len(p.Colours); j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}

// ToHex converts the palette colors to hex strings.
// Returns a slice of hex color codes (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// HSL returns the rounded HSL view of every colour.
func (p *Palette) HSL() []HSL {
	out := make([]HSL, len(p.Colours))
	for i, c := range p.Colours {
		out[i] = RGBToHSL(c)
	}
	return out
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// JSON returns the serialisable form of the palette.
func (p *Palette) JSON() PaletteJSON {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ColourJSON{
			Hex: c.Hex(),
			RGB: c,
			HSL: RGBToHSL(c),
		}
	}
	return PaletteJSON{
		Count:   len(p.Colours),
		Colours: colours,
	}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p.JSON(), "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		fmt.Fprintf(&b, "  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return b.String()
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, RGB) bool) {
	return func(yield func(int, RGB) bool) {
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}
