package locus

import (
	"fmt"

	"github.com/gogpu/gamut/internal/color"
	"seehuhn.de/go/geom/vec"
)

// Point is a locus sample expressed in one chromaticity plane.
type Point struct {
	Wavelength int
	P          vec.Vec2
}

// Curve is one side of the gamut boundary, ordered from the top of the
// diagram (largest second coordinate) to the bottom.
//
// The second coordinate never increases along a Curve. Every projection
// used by the rasterizer maps it to a decreasing row, so projected rows
// are non-decreasing from the first point to the last.
type Curve []Point

// Curves is the pair of boundary curves of one plane. Both curves share
// their first point (the apex) and their last point (the closing point).
type Curves struct {
	System color.System
	Left   Curve
	Right  Curve
}

// tolerance absorbs floating-point noise in the converted samples.
const tolerance = 1e-9

var tables [3]Curves

func init() {
	for _, sys := range []color.System{color.SystemXY, color.SystemUV, color.SystemLab} {
		tables[sys] = build(sys)
	}
}

// For returns the boundary curves of the given plane. The result is
// shared and must not be modified.
func For(sys color.System) Curves {
	if !sys.Valid() {
		sys = color.SystemXY
	}
	return tables[sys]
}

// build derives the left and right curves of sys from the spectral table.
func build(sys color.System) Curves {
	pts := make([]Point, len(Spectral))
	top, bottom := 0, 0
	for i, s := range Spectral {
		pts[i] = Point{Wavelength: s.Wavelength, P: color.Convert(s.XY, color.SystemXY, sys)}
		if pts[i].P.Y > pts[top].P.Y {
			top = i
		}
		if pts[i].P.Y < pts[bottom].P.Y {
			bottom = i
		}
	}

	// Ties (the flat red end of the Lab plane) resolve to the shortest
	// wavelength so rounding noise cannot move the apex.
	apex, nadir := top, bottom
	for i := range pts {
		if pts[i].P.Y >= pts[top].P.Y-tolerance {
			apex = i
			break
		}
	}
	for i := range pts {
		if pts[i].P.Y <= pts[bottom].P.Y+tolerance {
			nadir = i
			break
		}
	}

	left := make(Curve, 0, apex-nadir+1)
	for i := apex; i >= nadir; i-- {
		left = appendMonotone(left, pts[i])
	}

	right := make(Curve, 0, len(pts)-apex+nadir+1)
	for i := apex; i < len(pts); i++ {
		right = appendMonotone(right, pts[i])
	}
	for i := 0; i <= nadir; i++ {
		right = appendMonotone(right, pts[i])
	}

	return Curves{System: sys, Left: left, Right: right}
}

// appendMonotone appends p unless it would move back up the diagram.
// Points within tolerance of the previous one are flattened onto it.
func appendMonotone(c Curve, p Point) Curve {
	if n := len(c); n > 0 && p.P.Y > c[n-1].P.Y {
		if p.P.Y-c[n-1].P.Y > tolerance {
			return c
		}
		p.P.Y = c[n-1].P.Y
	}
	return append(c, p)
}

// Validate checks the ordering precondition of the scanline fill: the
// second coordinate must be non-increasing from the first point to the
// last.
func (c Curve) Validate() error {
	if len(c) < 2 {
		return fmt.Errorf("locus: curve has %d points, need at least 2", len(c))
	}
	for i := 1; i < len(c); i++ {
		if c[i].P.Y > c[i-1].P.Y {
			return fmt.Errorf("locus: curve reverses at %d nm (%g > %g)",
				c[i].Wavelength, c[i].P.Y, c[i-1].P.Y)
		}
	}
	return nil
}

// Validate checks both curves and that they share their end points.
func (cs Curves) Validate() error {
	if err := cs.Left.Validate(); err != nil {
		return fmt.Errorf("%v left: %w", cs.System, err)
	}
	if err := cs.Right.Validate(); err != nil {
		return fmt.Errorf("%v right: %w", cs.System, err)
	}
	if cs.Left[0] != cs.Right[0] {
		return fmt.Errorf("locus: %v curves do not share their apex", cs.System)
	}
	if cs.Left[len(cs.Left)-1] != cs.Right[len(cs.Right)-1] {
		return fmt.Errorf("locus: %v curves do not share their closing point", cs.System)
	}
	return nil
}
