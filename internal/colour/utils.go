package colour

import (
	"image/color"
	"math"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	rgb := ToRGB(c)

	rf := gammaCorrect(float64(rgb.R) / 255.0)
	rg := gammaCorrect(float64(rgb.G) / 255.0)
	rb := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*rg + 0.0722*rb
}

// gammaCorrect applies WCAG gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// Meets WCAG AA standard for normal text at 4.5:1, large text at 3:1.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// HueDistance calculates the angular distance between two hues on the color wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Round rounds halves up (towards +∞), so 2.5 becomes 3 and -2.5
// becomes -2. All scores in this module round this way.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}
