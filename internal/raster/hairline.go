package raster

import "image"

// Hairline plots the one-pixel-wide polyline through pts. When closed is
// set the last point is joined back to the first. Shared vertices are
// plotted once per segment that touches them.
func Hairline(pts []image.Point, closed bool, plot func(x, y int)) {
	switch len(pts) {
	case 0:
		return
	case 1:
		plot(pts[0].X, pts[0].Y)
		return
	}
	for i := 1; i < len(pts); i++ {
		Line(pts[i-1], pts[i], plot)
	}
	if closed {
		Line(pts[len(pts)-1], pts[0], plot)
	}
}

// Line plots the Bresenham line from p0 to p1, both end points included.
func Line(p0, p1 image.Point, plot func(x, y int)) {
	dx, sx := p1.X-p0.X, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy, sy := p1.Y-p0.Y, 1
	if dy > 0 {
		dy = -dy
	} else {
		sy = -1
	}

	x, y := p0.X, p0.Y
	err := dx + dy
	for {
		plot(x, y)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}
