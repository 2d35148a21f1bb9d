// Package vision simulates colour vision deficiencies and measures how
// distinguishable colours remain under them.
package vision

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
)

// ErrUnknownDeficiency is returned when parsing an unrecognised deficiency name.
var ErrUnknownDeficiency = errors.New("unknown vision deficiency")

// Deficiency identifies a type of colour vision.
type Deficiency string

const (
	// Normal is typical trichromatic vision.
	Normal Deficiency = "normal"
	// Protanopia is the absence of L (red) cones.
	Protanopia Deficiency = "protanopia"
	// Deuteranopia is the absence of M (green) cones.
	Deuteranopia Deficiency = "deuteranopia"
	// Tritanopia is the absence of S (blue) cones.
	Tritanopia Deficiency = "tritanopia"
	// Achromatopsia is the absence of colour vision.
	Achromatopsia Deficiency = "achromatopsia"
)

// All returns every deficiency type in a stable order.
func All() []Deficiency {
	return []Deficiency{Normal, Protanopia, Deuteranopia, Tritanopia, Achromatopsia}
}

// Dichromacies returns the three single-cone-loss deficiencies.
func Dichromacies() []Deficiency {
	return []Deficiency{Protanopia, Deuteranopia, Tritanopia}
}

// String implements fmt.Stringer.
func (d Deficiency) String() string {
	return string(d)
}

// Valid reports whether d is one of the known deficiency types.
func (d Deficiency) Valid() bool {
	switch d {
	case Normal, Protanopia, Deuteranopia, Tritanopia, Achromatopsia:
		return true
	}
	return false
}

// ParseDeficiency parses a deficiency name case-insensitively.
func ParseDeficiency(s string) (Deficiency, error) {
	d := Deficiency(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q (valid: %v)", ErrUnknownDeficiency, s, All())
	}
	return d, nil
}

var (
	// rgbToLMS maps RGB into cone response space.
	rgbToLMS = colour.Matrix3{
		{17.8824, 43.5161, 4.11935},
		{3.45565, 27.1554, 3.86714},
		{0.0299566, 0.184309, 1.46709},
	}

	// lmsToRGB is the inverse of rgbToLMS.
	lmsToRGB = colour.Matrix3{
		{0.0809444479, -0.130504409, 0.116721066},
		{-0.0102485335, 0.0540193266, -0.113614708},
		{-0.000365296938, -0.00412161469, 0.693511405},
	}

	// confusion holds the LMS projection for each dichromacy. Each matrix
	// rebuilds the missing cone response from the remaining two.
	confusion = map[Deficiency]colour.Matrix3{
		Protanopia: {
			{0, 2.02344, -2.52581},
			{0, 1, 0},
			{0, 0, 1},
		},
		Deuteranopia: {
			{1, 0, 0},
			{0.494207, 0, 1.24827},
			{0, 0, 1},
		},
		Tritanopia: {
			{1, 0, 0},
			{0, 1, 0},
			{-0.395913, 0.801109, 0},
		},
	}
)

// Luma weights for achromatopsia.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)
