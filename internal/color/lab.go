package color

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
	labDelta   = 6.0 / 29.0
)

// LabCompress is the L*a*b* companding function f(t).
func LabCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LabUncompress is the inverse of LabCompress.
func LabUncompress(f float64) float64 {
	if f > labDelta {
		return f * f * f
	}
	return 3 * labDelta * labDelta * (f - 4.0/29.0)
}

// whiteXZ returns the white point tristimulus X and Z for Y = 1.
func whiteXZ(w vec.Vec2) (float64, float64) {
	return w.X / w.Y, (1 - w.X - w.Y) / w.Y
}

// XYToLab returns the (a*, b*) coordinates of the chromaticity p,
// evaluated at Y = Yn relative to LabWhite.
func XYToLab(p vec.Vec2) vec.Vec2 {
	if math.Abs(p.Y) < singular {
		return vec.Vec2{}
	}
	xn, zn := whiteXZ(LabWhite)
	x := p.X / p.Y
	z := (1 - p.X - p.Y) / p.Y
	fy := LabCompress(1)
	return vec.Vec2{
		X: 500 * (LabCompress(x/xn) - fy),
		Y: 200 * (fy - LabCompress(z/zn)),
	}
}

// LabToXY inverts XYToLab. Points whose tristimulus sum collapses to zero
// map to the plane white.
func LabToXY(p vec.Vec2) vec.Vec2 {
	xn, zn := whiteXZ(LabWhite)
	fy := LabCompress(1)
	x := xn * LabUncompress(fy+p.X/500)
	z := zn * LabUncompress(fy-p.Y/200)
	sum := x + 1 + z
	if math.Abs(sum) < singular {
		return LabWhite
	}
	return vec.Vec2{X: x / sum, Y: 1 / sum}
}

// DistanceSq returns the squared Euclidean distance between a and b.
func DistanceSq(a, b vec.Vec2) float64 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}
