package raster

import (
	"cmp"
	"image"
	"slices"
)

// Limit is an inclusive run of boundary columns on one scanline.
type Limit struct {
	Lo, Hi int
}

func (l *Limit) include(x int) {
	l.Lo = min(l.Lo, x)
	l.Hi = max(l.Hi, x)
}

// Span is a half-open run [X0, X1) of interior columns on one scanline.
type Span struct {
	X0, X1 int
}

// Len returns the number of columns in the span.
func (s Span) Len() int {
	return s.X1 - s.X0
}

// Clip restricts s to [0, width). ok is false when nothing remains.
func (s Span) Clip(width int) (Span, bool) {
	s.X0 = max(s.X0, 0)
	s.X1 = min(s.X1, width)
	return s, s.X0 < s.X1
}

// Spans appends to dst the interior spans described by the boundary
// limits of one scanline and returns the extended slice. limits is
// sorted in place.
//
// Each limit toggles inside/outside parity. Limits that overlap or touch
// merge into one run whose toggles add up: a run with an odd count opens
// or closes the interior, a run with an even count met from outside is a
// filled interval of its own. Boundary columns belong to the spans.
func Spans(dst []Span, limits []Limit) []Span {
	if len(limits) == 0 {
		return dst
	}
	slices.SortFunc(limits, func(a, b Limit) int { return cmp.Compare(a.Lo, b.Lo) })

	inside := false
	start, end := 0, 0
	for i := 0; i < len(limits); {
		run, toggles := limits[i], 1
		for i++; i < len(limits) && limits[i].Lo <= run.Hi+1; i++ {
			run.Hi = max(run.Hi, limits[i].Hi)
			toggles++
		}
		end = max(end, run.Hi+1)
		odd := toggles%2 == 1
		switch {
		case !inside && odd:
			start, inside = run.Lo, true
		case !inside:
			dst = append(dst, Span{X0: run.Lo, X1: run.Hi + 1})
		case odd:
			dst = append(dst, Span{X0: start, X1: run.Hi + 1})
			inside = false
		}
	}
	if inside {
		dst = append(dst, Span{X0: start, X1: end})
	}
	return dst
}

// Scanner walks the scanlines of a shape bounded by a left and a right
// polyline that start at the same apex and end at the same closing point.
type Scanner struct {
	left, right *Tracer
	top, bottom int
	limits      []Limit
	spans       []Span
}

// NewScanner returns a scanner over the shape bounded by left and right.
// Both polylines must have non-decreasing rows.
func NewScanner(left, right []image.Point) *Scanner {
	s := &Scanner{
		left:   NewTracer(left),
		right:  NewTracer(right),
		limits: make([]Limit, 0, 4),
		spans:  make([]Span, 0, 2),
	}
	if len(left) > 0 {
		s.top, s.bottom = left[0].Y, left[len(left)-1].Y
	}
	return s
}

// Extent returns the first and last row of the shape, both inclusive.
func (s *Scanner) Extent() (top, bottom int) {
	return s.top, s.bottom
}

// Seek positions both tracers for a scan starting at row y.
func (s *Scanner) Seek(y int) {
	s.left.Seek(y)
	s.right.Seek(y)
}

// Row returns the interior spans and the boundary limits of scanline y.
// Rows must be requested in non-decreasing order. The returned slices are
// reused by the next call.
func (s *Scanner) Row(y int) (spans []Span, limits []Limit) {
	s.limits = s.limits[:0]
	s.spans = s.spans[:0]
	if y < s.top || y > s.bottom {
		return s.spans, s.limits
	}
	if lim, ok := s.left.Row(y); ok {
		s.limits = append(s.limits, lim)
	}
	if lim, ok := s.right.Row(y); ok {
		s.limits = append(s.limits, lim)
	}
	s.spans = Spans(s.spans, s.limits)
	return s.spans, s.limits
}
