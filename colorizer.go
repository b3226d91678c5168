package gamut

import (
	"math"

	"github.com/gogpu/gamut/internal/cache"
	intColor "github.com/gogpu/gamut/internal/color"
	"seehuhn.de/go/geom/vec"
)

// colorizer computes the color of one diagram pixel. It is read-only
// after construction and shared by all fill workers.
type colorizer struct {
	sys           CoordSystem
	width, height int
	t             RGBTransform
	whiteUV       vec.Vec2
	lut           *intColor.GammaLUT
	whiteRadiusSq float64
}

func newColorizer(sys CoordSystem, width, height int, t RGBTransform, ref Reference, o *options) *colorizer {
	return &colorizer{
		sys:           sys,
		width:         width,
		height:        height,
		t:             t,
		whiteUV:       ref.White.To(CIEuv).vec(),
		lut:           gammaLUT(o.gamma),
		whiteRadiusSq: o.whiteRadiusSq,
	}
}

// at returns the color of pixel (px, py).
func (c *colorizer) at(px, py int) RGB {
	p := unprojectVec(float64(px), float64(py), c.sys, c.width, c.height)
	xy := c.pullTowardWhite(intColor.ToXY(p, c.sys))
	r, g, b := c.t.Apply(xy.X, xy.Y, 1-xy.X-xy.Y)
	return c.encode(r, g, b)
}

// pullTowardWhite moves samples closer than the white radius toward the
// reference white, scaling their u′v′ offset by sqrt(d/radius²). The
// white region grows and its edge stays smooth.
func (c *colorizer) pullTowardWhite(xy vec.Vec2) vec.Vec2 {
	if c.whiteRadiusSq <= 0 {
		return xy
	}
	off := intColor.XYToUV(xy).Sub(c.whiteUV)
	d := off.X*off.X + off.Y*off.Y
	if d >= c.whiteRadiusSq {
		return xy
	}
	return intColor.UVToXY(c.whiteUV.Add(off.Mul(math.Sqrt(d / c.whiteRadiusSq))))
}

// encode compresses linear RGB into the unit cube and applies the gamma
// exponent. Negative components are lifted by shifting all three
// channels, then the result is rescaled so the largest is at most 1.
func (c *colorizer) encode(r, g, b float64) RGB {
	if lo := min(r, g, b); lo < 0 {
		r, g, b = r-lo, g-lo, b-lo
	}
	if hi := max(r, g, b); hi > 1 {
		r, g, b = r/hi, g/hi, b/hi
	}
	return RGB{R: c.channel(r), G: c.channel(g), B: c.channel(b)}
}

func (c *colorizer) channel(v float64) uint8 {
	return c.lut.Encode(v)
}

var gammaTables = cache.New[float64, *intColor.GammaLUT](8)

// gammaLUT returns the shared encoding table for exponent.
func gammaLUT(exponent float64) *intColor.GammaLUT {
	return gammaTables.GetOrCreate(exponent, func() *intColor.GammaLUT {
		return intColor.NewGammaLUT(exponent)
	})
}

// ColorAt returns the color the fill assigns to pixel (px, py) of a
// width×height diagram of sys, for the given transform and reference.
// Pixels outside the gamut are colored too; the fill simply never asks
// for them.
func ColorAt(px, py int, sys CoordSystem, width, height int, t RGBTransform, ref Reference, opts ...Option) RGB {
	o := newOptions(opts)
	return newColorizer(sys, width, height, t, ref, &o).at(px, py)
}
