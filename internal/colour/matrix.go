package colour

// Vec3 is a three component vector, used for RGB, XYZ and LMS triples.
type Vec3 [3]float64

// Matrix3 is a row-major 3×3 matrix.
type Matrix3 [3][3]float64

// Apply multiplies m by the column vector v.
func (m Matrix3) Apply(v Vec3) Vec3 {
	var out Vec3
	for i := range 3 {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}
