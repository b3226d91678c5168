// Package color provides the chromaticity planes used by the gamut
// rasterizer and the closed-form conversions between them.
//
// All conversions operate on chromaticity only. Luminance is implied:
// xy and u′v′ carry none, and the L*a*b* plane is evaluated at full
// lightness (Y = Yn) relative to a fixed plane white.
package color

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// singular is the magnitude below which a conversion denominator is
// treated as zero.
const singular = 1e-12

// D65 is the CIE standard illuminant D65 white point in xy.
var D65 = vec.Vec2{X: 0.3127, Y: 0.3290}

// LabWhite is the white point the L*a*b* plane is anchored to.
// The locus tables and every conversion into or out of the plane use it,
// so the plane is identical for all rendering references.
var LabWhite = D65

// XYToUV converts CIE 1931 xy to CIE 1976 u′v′.
func XYToUV(p vec.Vec2) vec.Vec2 {
	d := -2*p.X + 12*p.Y + 3
	if math.Abs(d) < singular {
		return XYToUV(D65)
	}
	return vec.Vec2{X: 4 * p.X / d, Y: 9 * p.Y / d}
}

// UVToXY converts CIE 1976 u′v′ to CIE 1931 xy.
func UVToXY(p vec.Vec2) vec.Vec2 {
	d := 6*p.X - 16*p.Y + 12
	if math.Abs(d) < singular {
		return D65
	}
	return vec.Vec2{X: 9 * p.X / d, Y: 4 * p.Y / d}
}

// Convert maps p from one chromaticity plane to another.
func Convert(p vec.Vec2, from, to System) vec.Vec2 {
	if from == to {
		return p
	}
	xy := ToXY(p, from)
	switch to {
	case SystemUV:
		return XYToUV(xy)
	case SystemLab:
		return XYToLab(xy)
	default:
		return xy
	}
}

// ToXY maps p from the given plane to CIE 1931 xy.
func ToXY(p vec.Vec2, from System) vec.Vec2 {
	switch from {
	case SystemUV:
		return UVToXY(p)
	case SystemLab:
		return LabToXY(p)
	default:
		return p
	}
}
