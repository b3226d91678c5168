package gamut

import (
	"image"
	"math"

	intColor "github.com/gogpu/gamut/internal/color"
	"seehuhn.de/go/geom/vec"
)

// CoordSystem selects the chromaticity plane of a diagram.
type CoordSystem = intColor.System

// Coordinate systems.
const (
	// CIExy is the CIE 1931 (x, y) chromaticity diagram.
	CIExy = intColor.SystemXY

	// CIEuv is the CIE 1976 (u′, v′) uniform chromaticity diagram.
	CIEuv = intColor.SystemUV

	// CIELab is the CIE L*a*b* (a*, b*) plane at full lightness,
	// anchored to D65.
	CIELab = intColor.SystemLab
)

// ParseCoordSystem returns the system named "xy", "uv" or "lab".
func ParseCoordSystem(name string) (CoordSystem, error) {
	return intColor.ParseSystem(name)
}

// Chromaticity is a coordinate pair in one chromaticity plane: (x, y)
// for CIExy, (u′, v′) for CIEuv and (a*, b*) for CIELab.
type Chromaticity struct {
	X, Y   float64
	System CoordSystem
}

// XY returns a CIE 1931 chromaticity.
func XY(x, y float64) Chromaticity {
	return Chromaticity{X: x, Y: y, System: CIExy}
}

// To converts c to another chromaticity plane.
func (c Chromaticity) To(sys CoordSystem) Chromaticity {
	return fromVec(intColor.Convert(c.vec(), c.System, sys), sys)
}

func (c Chromaticity) vec() vec.Vec2 {
	return vec.Vec2{X: c.X, Y: c.Y}
}

func fromVec(v vec.Vec2, sys CoordSystem) Chromaticity {
	return Chromaticity{X: v.X, Y: v.Y, System: sys}
}

// window is the part of a plane shown on the raster: the first
// coordinate spans [-offX, spanX-offX] left to right and the second
// [-offY, spanY-offY] bottom to top.
type window struct {
	offX, offY   float64
	spanX, spanY float64
}

var windows = [...]window{
	CIExy:  {offX: 0.075, offY: 0.05, spanX: 0.9, spanY: 1.0},
	CIEuv:  {offX: 0.075, offY: 0.05, spanX: 0.8, spanY: 0.8},
	CIELab: {offX: 220, offY: 200, spanX: 400, spanY: 400},
}

func windowOf(sys CoordSystem) window {
	if !sys.Valid() {
		return windows[CIExy]
	}
	return windows[sys]
}

// projectVec maps a coordinate of sys to fractional pixel space.
func projectVec(p vec.Vec2, sys CoordSystem, width, height int) vec.Vec2 {
	w := windowOf(sys)
	return vec.Vec2{
		X: ((p.X + w.offX) / w.spanX) * float64(width),
		Y: (1 - (p.Y+w.offY)/w.spanY) * float64(height),
	}
}

// unprojectVec is the exact inverse of projectVec.
func unprojectVec(px, py float64, sys CoordSystem, width, height int) vec.Vec2 {
	w := windowOf(sys)
	return vec.Vec2{
		X: px/float64(width)*w.spanX - w.offX,
		Y: (1-py/float64(height))*w.spanY - w.offY,
	}
}

func roundPoint(v vec.Vec2) image.Point {
	return image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
}

// Project maps c to the nearest pixel of a width×height diagram of sys.
// c is converted to sys first when it belongs to another plane.
// Coordinates outside the shown window map outside the raster.
func Project(c Chromaticity, sys CoordSystem, width, height int) image.Point {
	return roundPoint(projectVec(c.To(sys).vec(), sys, width, height))
}

// Unproject maps a pixel of a width×height diagram of sys back to its
// chromaticity. It inverts Project up to pixel rounding.
func Unproject(px, py int, sys CoordSystem, width, height int) Chromaticity {
	return fromVec(unprojectVec(float64(px), float64(py), sys, width, height), sys)
}
