package raster

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(fn func(plot func(x, y int))) []image.Point {
	var pts []image.Point
	fn(func(x, y int) { pts = append(pts, image.Pt(x, y)) })
	return pts
}

func TestLine(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 image.Point
		want   []image.Point
	}{
		{"point", image.Pt(2, 2), image.Pt(2, 2), []image.Point{{2, 2}}},
		{"horizontal", image.Pt(0, 0), image.Pt(3, 0), []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", image.Pt(1, 2), image.Pt(1, 0), []image.Point{{1, 2}, {1, 1}, {1, 0}}},
		{"diagonal", image.Pt(0, 0), image.Pt(2, 2), []image.Point{{0, 0}, {1, 1}, {2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(func(plot func(x, y int)) { Line(tt.p0, tt.p1, plot) })
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Line mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHairlineClosed(t *testing.T) {
	square := []image.Point{{0, 0}, {3, 0}, {3, 3}, {0, 3}}
	open := collect(func(plot func(x, y int)) { Hairline(square, false, plot) })
	closed := collect(func(plot func(x, y int)) { Hairline(square, true, plot) })
	if len(closed) != len(open)+4 {
		t.Errorf("closing segment plotted %d pixels, want 4", len(closed)-len(open))
	}
	if last := closed[len(closed)-1]; last != image.Pt(0, 0) {
		t.Errorf("closed polyline ends at %v, want (0,0)", last)
	}
	if got := collect(func(plot func(x, y int)) { Hairline(nil, true, plot) }); len(got) != 0 {
		t.Errorf("empty polyline plotted %v", got)
	}
}
