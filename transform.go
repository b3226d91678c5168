package gamut

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateReference is returned when a reference's primaries are
// (nearly) collinear, or its white point cannot be expressed as a
// positive mix of them, so no XYZ→RGB matrix exists.
var ErrDegenerateReference = errors.New("gamut: degenerate color reference")

// Twice the area of the gamut triangle in xy is the determinant of the
// primaries' chromaticity matrix. Real displays sit near 0.1; below
// minTriangleDet the inverse has entries above 1e6 and is rejected.
const minTriangleDet = 1e-6

// minWhiteWeight is the smallest share of a primary in the white point.
const minWhiteWeight = 1e-9

// Matrix3 is a row-major 3×3 matrix.
type Matrix3 [3][3]float64

// Mul returns m·v.
func (m Matrix3) Mul(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// triple returns (x, y, 1-x-y) of an xy chromaticity.
func triple(c Chromaticity) [3]float64 {
	return [3]float64{c.X, c.Y, 1 - c.X - c.Y}
}

// RGBTransform maps CIE XYZ to linear device RGB for one Reference.
type RGBTransform struct {
	// M maps a chromaticity triple (x, y, z) with x+y+z = 1 to RGB.
	// The white point's triple maps to (1, 1, 1).
	M Matrix3

	// WhiteY is the white point's y: the factor from XYZ with the white
	// at Y = 1 to the chromaticity-triple scale of M.
	WhiteY float64
}

// NewRGBTransform builds the XYZ→RGB transform of ref.
//
// The rows of the inverse primaries matrix are the cross products of the
// primaries' chromaticity triples; each row is then divided by the
// white's unscaled response so that the white maps to (1, 1, 1).
func NewRGBTransform(ref Reference) (RGBTransform, error) {
	p := ref.primaries()
	r, g, b := triple(p[0]), triple(p[1]), triple(p[2])
	w := triple(ref.White.To(CIExy))

	det := dot(r, cross(g, b))
	if math.Abs(det) < minTriangleDet {
		return RGBTransform{}, fmt.Errorf("%w: primaries are collinear (det %.3g)", ErrDegenerateReference, det)
	}

	m := Matrix3{cross(g, b), cross(b, r), cross(r, g)}
	for i := range m {
		for j := range m[i] {
			m[i][j] /= det
		}
	}

	scale := m.Mul(w)
	for i := range m {
		if scale[i] < minWhiteWeight {
			return RGBTransform{}, fmt.Errorf("%w: white point outside the primaries", ErrDegenerateReference)
		}
		for j := range m[i] {
			m[i][j] /= scale[i]
		}
	}

	return RGBTransform{M: m, WhiteY: w[1]}, nil
}

// Apply maps a chromaticity triple (x, y, z) to linear RGB.
func (t RGBTransform) Apply(x, y, z float64) (r, g, b float64) {
	v := t.M.Mul([3]float64{x, y, z})
	return v[0], v[1], v[2]
}

// ApplyXYZ maps tristimulus values, normalized so the white point has
// Y = 1, to linear RGB. The white point maps to (1, 1, 1).
func (t RGBTransform) ApplyXYZ(X, Y, Z float64) (r, g, b float64) {
	return t.Apply(X*t.WhiteY, Y*t.WhiteY, Z*t.WhiteY)
}
