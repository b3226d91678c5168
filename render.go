package gamut

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gamut/internal/cache"
	"github.com/gogpu/gamut/internal/locus"
	"github.com/gogpu/gamut/internal/parallel"
	"github.com/gogpu/gamut/internal/raster"
)

// ErrInvalidSize is returned for a raster with a non-positive dimension.
var ErrInvalidSize = errors.New("gamut: invalid raster size")

// ErrUnknownSystem is returned for a CoordSystem outside the known set.
var ErrUnknownSystem = errors.New("gamut: unknown coordinate system")

// projectCurve maps a locus curve to pixel space.
func projectCurve(c locus.Curve, sys CoordSystem, width, height int) []image.Point {
	pts := make([]image.Point, len(c))
	for i, p := range c {
		pts[i] = roundPoint(projectVec(p.P, sys, width, height))
	}
	return pts
}

// boundary is the gamut outline of one plane in pixel space.
type boundary struct {
	left, right []image.Point
}

type boundaryKey struct {
	sys           CoordSystem
	width, height int
}

// boundaries holds recently projected outlines. They are read-only once
// built and shared between concurrent renders.
var boundaries = cache.New[boundaryKey, boundary](32)

func boundaryFor(sys CoordSystem, width, height int) boundary {
	return boundaries.GetOrCreate(boundaryKey{sys, width, height}, func() boundary {
		return newBoundary(sys, width, height)
	})
}

func newBoundary(sys CoordSystem, width, height int) boundary {
	cs := locus.For(sys)
	return boundary{
		left:  projectCurve(cs.Left, sys, width, height),
		right: projectCurve(cs.Right, sys, width, height),
	}
}

// rows returns the rows of the shape that fall inside a raster of the
// given height. ok is false when none do.
func (b boundary) rows(height int) (top, bottom int, ok bool) {
	top = max(b.left[0].Y, 0)
	bottom = min(b.left[len(b.left)-1].Y, height-1)
	return top, bottom, top <= bottom
}

func checkTarget(dst *Raster, sys CoordSystem) error {
	if dst == nil || dst.width <= 0 || dst.height <= 0 {
		return ErrInvalidSize
	}
	if !sys.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownSystem, sys)
	}
	return nil
}

// Fill colors the inside of the visible-gamut tongue of sys on dst.
// Pixels outside the tongue are left untouched.
//
// The reference is validated before any pixel is written; a degenerate
// reference returns ErrDegenerateReference and leaves dst unchanged.
func Fill(dst *Raster, sys CoordSystem, ref Reference, opts ...Option) error {
	if err := checkTarget(dst, sys); err != nil {
		return err
	}
	t, err := NewRGBTransform(ref)
	if err != nil {
		Logger().Warn("gamut: rejected reference", "reference", ref.Name, "err", err)
		return err
	}

	start := time.Now()
	o := newOptions(opts)
	b := boundaryFor(sys, dst.width, dst.height)
	top, bottom, ok := b.rows(dst.height)
	if !ok {
		return nil
	}
	col := newColorizer(sys, dst.width, dst.height, t, ref, &o)

	bands := parallel.SplitRows(top, bottom, o.workers)
	if len(bands) == 1 {
		fillBand(dst, b, bands[0], col, &o)
	} else {
		pool := parallel.NewWorkerPool(o.workers)
		defer pool.Close()
		work := make([]func(), len(bands))
		for i, band := range bands {
			work[i] = func() { fillBand(dst, b, band, col, &o) }
		}
		pool.ExecuteAll(work)
	}

	Logger().Debug("gamut: fill",
		"system", sys.String(),
		"width", dst.width,
		"height", dst.height,
		"rows", bottom-top+1,
		"workers", len(bands),
		"elapsed", time.Since(start))
	return nil
}

// fillBand colors the rows of one band. Bands touch disjoint rows, so
// concurrent calls never write the same pixel.
func fillBand(dst *Raster, b boundary, band parallel.Band, col *colorizer, o *options) {
	s := raster.NewScanner(b.left, b.right)
	s.Seek(band.Top)
	for y := band.Top; y <= band.Bottom; y++ {
		spans, limits := s.Row(y)
		for _, span := range spans {
			c, ok := span.Clip(dst.width)
			if !ok {
				continue
			}
			for x := c.X0; x < c.X1; x++ {
				dst.SetRGB(x, y, col.at(x, y))
			}
		}
		if !o.fullChart {
			continue
		}
		for _, lim := range limits {
			edge, ok := raster.Span{X0: lim.Lo - 1, X1: lim.Hi + 2}.Clip(dst.width)
			if ok {
				dst.fillRow(y, edge.X0, edge.X1, o.edgeColor)
			}
		}
	}
}

// PaintExterior sets every pixel of dst outside the gamut tongue of sys
// to bg. The tongue itself is left untouched.
func PaintExterior(dst *Raster, sys CoordSystem, bg RGB) error {
	if err := checkTarget(dst, sys); err != nil {
		return err
	}
	b := boundaryFor(sys, dst.width, dst.height)
	s := raster.NewScanner(b.left, b.right)
	top, _, ok := b.rows(dst.height)
	if ok {
		s.Seek(top)
	}

	for y := 0; y < dst.height; y++ {
		spans, _ := s.Row(y)
		x := 0
		for _, span := range spans {
			c, ok := span.Clip(dst.width)
			if !ok {
				continue
			}
			if c.X0 > x {
				dst.fillRow(y, x, c.X0, bg)
			}
			x = max(x, c.X1)
		}
		if x < dst.width {
			dst.fillRow(y, x, dst.width, bg)
		}
	}
	return nil
}

// RenderGamutDiagram creates a width×height raster cleared to the
// background color and fills the gamut tongue of sys into it.
func RenderGamutDiagram(width, height int, sys CoordSystem, ref Reference, opts ...Option) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	o := newOptions(opts)
	dst := NewRaster(width, height)
	dst.Clear(o.background)
	if err := Fill(dst, sys, ref, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// RenderExteriorMask creates a width×height raster whose pixels outside
// the gamut tongue of sys are bg and whose inside is black.
func RenderExteriorMask(width, height int, sys CoordSystem, bg RGB) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	dst := NewRaster(width, height)
	if err := PaintExterior(dst, sys, bg); err != nil {
		return nil, err
	}
	return dst, nil
}
