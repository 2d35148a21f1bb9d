package colour

import (
	"fmt"
	"math"
)

// HSL is the hue/saturation/lightness view of an RGB colour.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour in CSS notation.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}

// RGBToHSL converts RGB to HSL rounded to whole degrees and percentages.
// This is the view used by every palette metric.
func RGBToHSL(rgb RGB) HSL {
	p := RGBToHSLPrecise(rgb)
	h := Round(p.H)
	if h >= 360 {
		h -= 360
	}
	return HSL{
		H: float64(h),
		S: float64(Round(p.S)),
		L: float64(Round(p.L)),
	}
}

// RGBToHSLPrecise converts RGB to HSL without rounding.
func RGBToHSLPrecise(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	if h >= 360 {
		h -= 360
	}
	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL (degrees, percent, percent) to RGB.
// Out of range saturation and lightness are clamped.
func HSLToRGB(c HSL) RGB {
	h := c.H
	s := clampUnit(c.S / 100)
	l := clampUnit(c.L / 100)

	if s == 0 {
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: toChannel(hueToRGB(p, q, h+120)),
		G: toChannel(hueToRGB(p, q, h)),
		B: toChannel(hueToRGB(p, q, h-120)),
	}
}

// HSLToHex converts HSL (degrees, percent, percent) to a "#rrggbb" string.
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(HSL{H: h, S: s, L: l}).Hex()
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = math.Mod(t, 360)
	if t < 0 {
		t += 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// toChannel maps a [0,1] component to a rounded 8-bit channel.
func toChannel(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}
