package gamut

import (
	"fmt"
	"image"
	"math"

	intColor "github.com/gogpu/gamut/internal/color"
	"github.com/gogpu/gamut/internal/locus"
	"github.com/gogpu/gamut/internal/raster"
	"seehuhn.de/go/geom/vec"
)

// drawPolyline projects pts onto dst and joins them with hairlines.
func drawPolyline(dst *Raster, sys CoordSystem, pts []Chromaticity, closed bool, c RGB) {
	px := make([]image.Point, len(pts))
	for i, p := range pts {
		px[i] = Project(p, sys, dst.width, dst.height)
	}
	raster.Hairline(px, closed, func(x, y int) { dst.SetRGB(x, y, c) })
}

// BlackBodyLocus returns the Planckian locus from 2600 K to 40000 K in
// the given plane, ordered by increasing temperature.
func BlackBodyLocus(sys CoordSystem) []Chromaticity {
	pts := make([]Chromaticity, len(locus.BlackBody))
	for i, p := range locus.BlackBody {
		pts[i] = fromVec(intColor.Convert(p.XY, intColor.SystemXY, sys), sys)
	}
	return pts
}

// RenderBlackBodyLocus draws the Planckian locus on dst as a polyline in
// the line color. In CIELab the locus is placed in the D65-anchored plane
// the fill uses, whatever reference the diagram was rendered with.
func RenderBlackBodyLocus(dst *Raster, sys CoordSystem, opts ...Option) error {
	if err := checkTarget(dst, sys); err != nil {
		return err
	}
	o := newOptions(opts)
	drawPolyline(dst, sys, BlackBodyLocus(sys), false, o.lineColor)
	return nil
}

// DeltaEContour returns the vertices of the delta-E tolerance circle
// around white, in the given plane.
//
// The circle is built in u′v′, where a distance of deltaE/scale (scale
// defaults to DefaultDeltaEScale) corresponds to deltaE, and is then
// converted to sys.
func DeltaEContour(sys CoordSystem, white Chromaticity, deltaE float64, opts ...Option) []Chromaticity {
	o := newOptions(opts)
	center := white.To(CIEuv).vec()
	radius := deltaE / o.deltaEScale

	pts := make([]Chromaticity, o.contourPoints)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(o.contourPoints)
		p := center.Add(vec.Vec2{X: math.Cos(a), Y: math.Sin(a)}.Mul(radius))
		pts[i] = fromVec(intColor.Convert(p, intColor.SystemUV, sys), sys)
	}
	return pts
}

// RenderDeltaEContour draws the delta-E tolerance circle around white on
// dst as a closed polyline in the line color.
func RenderDeltaEContour(dst *Raster, sys CoordSystem, white Chromaticity, deltaE float64, opts ...Option) error {
	if err := checkTarget(dst, sys); err != nil {
		return err
	}
	if deltaE < 0 || math.IsNaN(deltaE) || math.IsInf(deltaE, 0) {
		return fmt.Errorf("gamut: invalid delta-E %v", deltaE)
	}
	o := newOptions(opts)
	drawPolyline(dst, sys, DeltaEContour(sys, white, deltaE, opts...), true, o.lineColor)
	return nil
}

// DrawPrimaries draws the triangle spanned by the reference primaries
// on dst as a closed polyline in the line color.
func DrawPrimaries(dst *Raster, sys CoordSystem, ref Reference, opts ...Option) error {
	if err := checkTarget(dst, sys); err != nil {
		return err
	}
	o := newOptions(opts)
	p := ref.primaries()
	drawPolyline(dst, sys, p[:], true, o.lineColor)
	return nil
}
