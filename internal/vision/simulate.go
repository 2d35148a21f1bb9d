package vision

import (
	"math"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Simulate returns how c appears under deficiency d.
// Normal and unknown deficiencies return c unchanged.
func Simulate(c colour.RGB, d Deficiency) colour.RGB {
	switch d {
	case Achromatopsia:
		return grayscale(c)
	case Protanopia, Deuteranopia, Tritanopia:
		return project(c, confusion[d])
	default:
		return c
	}
}

// SimulatePalette applies Simulate to every colour in p.
func SimulatePalette(p *colour.Palette, d Deficiency) *colour.Palette {
	out := make([]colour.RGB, p.Len())
	for i, c := range p.Colours {
		out[i] = Simulate(c, d)
	}
	return &colour.Palette{Colours: out}
}

// PerceptualDistance returns the CIE76 ΔE between a and b as seen under d.
// The result is symmetric in a and b.
func PerceptualDistance(a, b colour.RGB, d Deficiency) float64 {
	la := colour.RGBToLab(Simulate(a, d))
	lb := colour.RGBToLab(Simulate(b, d))
	return colour.LabDistance(la, lb)
}

func grayscale(c colour.RGB) colour.RGB {
	v := clampChannel(lumaR*float64(c.R) + lumaG*float64(c.G) + lumaB*float64(c.B))
	return colour.RGB{R: v, G: v, B: v}
}

// project runs c through RGB -> LMS -> confusion -> RGB.
func project(c colour.RGB, m colour.Matrix3) colour.RGB {
	v := colour.Vec3{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
	}
	out := lmsToRGB.Apply(m.Apply(rgbToLMS.Apply(v)))
	return colour.RGB{
		R: clampChannel(out[0] * 255),
		G: clampChannel(out[1] * 255),
		B: clampChannel(out[2] * 255),
	}
}

func clampChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, float64(colour.Round(v)))))
}
