package colour

import (
	"fmt"
	"math"
)

// LAB is a colour in the CIE L*a*b* space under the D65 white point.
type LAB struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// String returns the LAB value in CSS notation.
func (c LAB) String() string {
	return fmt.Sprintf("lab(%.2f %.2f %.2f)", c.L, c.A, c.B)
}

// srgbToXYZ is the sRGB (D65) linear RGB to XYZ matrix.
var srgbToXYZ = Matrix3{
	{0.4124, 0.3576, 0.1805},
	{0.2126, 0.7152, 0.0722},
	{0.0193, 0.1192, 0.9505},
}

// D65 reference white.
var whiteD65 = Vec3{0.95047, 1.00000, 1.08883}

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

// RGBToXYZ converts RGB to CIE XYZ with Y normalised to [0, 1].
func RGBToXYZ(rgb RGB) Vec3 {
	linear := Vec3{
		linearise(float64(rgb.R) / 255),
		linearise(float64(rgb.G) / 255),
		linearise(float64(rgb.B) / 255),
	}
	return srgbToXYZ.Apply(linear)
}

// RGBToLab converts RGB to LAB via linear RGB and XYZ.
func RGBToLab(rgb RGB) LAB {
	xyz := RGBToXYZ(rgb)

	fx := labF(xyz[0] / whiteD65[0])
	fy := labF(xyz[1] / whiteD65[1])
	fz := labF(xyz[2] / whiteD65[2])

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabDistance returns the CIE76 ΔE between two LAB colours.
func LabDistance(a, b LAB) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// linearise removes the sRGB transfer curve (IEC 61966-2-1 threshold).
func linearise(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}
