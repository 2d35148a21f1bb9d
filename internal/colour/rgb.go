// Package colour provides colour space conversions and colour metrics.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB represents an opaque sRGB colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Common reference colours.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color so RGB values can be used with image/color.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// ToRGB converts a color.Color to RGB, discarding alpha.
func ToRGB(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses a colour in the form "#RRGGBB" or "RRGGBB" (case-insensitive).
// Shorthand forms such as "#fff" are rejected.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidColorFormat, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidColorFormat, s)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for package-level tables of known colours.
func MustParseHex(s string) RGB {
	rgb, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return rgb
}
