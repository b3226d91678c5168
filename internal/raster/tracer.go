// Package raster scan-converts the chromaticity tongue. Two Tracers
// follow the left and right boundary curves row by row; Spans merges the
// column limits they report into filled intervals. Hairline draws the
// one-pixel polylines of the overlays.
package raster

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// SegmentKind classifies a boundary segment by the way it crosses
// scanlines.
type SegmentKind uint8

const (
	// Vertical segments keep one column over several rows.
	Vertical SegmentKind = iota
	// Horizontal segments stay on one row. A zero-length segment is
	// Horizontal.
	Horizontal
	// Shallow segments advance more columns than rows and emit a run of
	// columns on each row they cross.
	Shallow
	// Steep segments advance at most one column per row.
	Steep
)

// String returns the name of the kind.
func (k SegmentKind) String() string {
	switch k {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	case Shallow:
		return "Shallow"
	case Steep:
		return "Steep"
	default:
		return fmt.Sprintf("SegmentKind(%d)", uint8(k))
	}
}

func classify(dx, dy int) SegmentKind {
	switch {
	case dy == 0:
		return Horizontal
	case dx == 0:
		return Vertical
	case dx > dy:
		return Shallow
	default:
		return Steep
	}
}

// Tracer follows a polyline whose rows never decrease and reports, one
// scanline at a time, which columns the polyline occupies. Segments are
// stepped with an integer error accumulator, so the pixels visited are
// those of a Bresenham line between consecutive points.
//
// A Tracer is not safe for concurrent use.
type Tracer struct {
	pts []image.Point
	seg int // start index of the current segment

	kind   SegmentKind
	x, y   int // current pixel
	sx     int // column direction, ±1
	dx, dy int
	err    int
	n      int // steps left in the segment
}

// NewTracer returns a tracer positioned on the first segment of pts.
// The rows of pts must be non-decreasing.
func NewTracer(pts []image.Point) *Tracer {
	t := &Tracer{pts: pts, seg: -1}
	t.advanceToNextSegment()
	return t
}

// Done reports whether every segment has been consumed.
func (t *Tracer) Done() bool {
	return t.seg >= len(t.pts)-1
}

// Kind returns the classification of the current segment.
func (t *Tracer) Kind() SegmentKind {
	return t.kind
}

// Seek positions the tracer on the first segment that reaches row y.
// A following Row(y) returns the same limit as a tracer that was stepped
// through every earlier row.
func (t *Tracer) Seek(y int) {
	n := len(t.pts) - 1
	if n < 0 {
		n = 0
	}
	i := sort.Search(n, func(i int) bool { return t.pts[i+1].Y >= y })
	t.seg = i - 1
	t.advanceToNextSegment()
}

// advanceToNextSegment loads the segment following the current one.
func (t *Tracer) advanceToNextSegment() {
	t.seg++
	if t.Done() {
		return
	}
	p0, p1 := t.pts[t.seg], t.pts[t.seg+1]
	t.x, t.y = p0.X, p0.Y
	t.dx, t.dy = p1.X-p0.X, p1.Y-p0.Y
	t.sx = 1
	if t.dx < 0 {
		t.dx, t.sx = -t.dx, -1
	}
	t.kind = classify(t.dx, t.dy)
	switch t.kind {
	case Horizontal, Shallow:
		t.n, t.err = t.dx, t.dx/2
	default:
		t.n, t.err = t.dy, t.dy/2
	}
}

// step moves to the next pixel of the current segment.
func (t *Tracer) step() {
	t.n--
	switch t.kind {
	case Vertical:
		t.y++
	case Horizontal:
		t.x += t.sx
	case Shallow:
		t.x += t.sx
		t.err -= t.dy
		if t.err < 0 {
			t.y++
			t.err += t.dx
		}
	case Steep:
		t.y++
		t.err -= t.dx
		if t.err < 0 {
			t.x += t.sx
			t.err += t.dy
		}
	}
}

// Row returns the columns the polyline occupies on scanline y. Rows must
// be requested in non-decreasing order. ok is false when the polyline
// does not touch y.
func (t *Tracer) Row(y int) (lim Limit, ok bool) {
	lim = Limit{Lo: math.MaxInt, Hi: math.MinInt}
	for !t.Done() {
		for t.y < y && t.n > 0 {
			t.step()
		}
		if t.y < y {
			t.advanceToNextSegment()
			continue
		}
		if t.y > y {
			break
		}

		lim.include(t.x)
		ok = true
		for t.n > 0 {
			t.step()
			if t.y != y {
				break
			}
			lim.include(t.x)
		}
		if t.y != y {
			break
		}
		// The segment ended on this row; its successor starts here too.
		t.advanceToNextSegment()
	}
	return lim, ok
}
