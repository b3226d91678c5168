package gamut

import (
	"image"

	intColor "github.com/gogpu/gamut/internal/color"
	"github.com/gogpu/gamut/internal/locus"
)

// LocusPoint is a projected sample of the spectral locus.
type LocusPoint struct {
	Wavelength int // nm
	Chromaticity
	Pixel image.Point
}

// LocusPoints returns every spectral locus sample from 380 to 700 nm,
// converted to sys and projected onto a width×height diagram. Label
// placement uses it to annotate wavelengths on a finished raster.
func LocusPoints(sys CoordSystem, width, height int) []LocusPoint {
	pts := make([]LocusPoint, len(locus.Spectral))
	for i, s := range locus.Spectral {
		v := intColor.Convert(s.XY, intColor.SystemXY, sys)
		pts[i] = LocusPoint{
			Wavelength:   s.Wavelength,
			Chromaticity: fromVec(v, sys),
			Pixel:        roundPoint(projectVec(v, sys, width, height)),
		}
	}
	return pts
}

// TemperaturePoint is a projected sample of the Planckian locus.
type TemperaturePoint struct {
	Kelvin int
	Chromaticity
	Pixel image.Point
}

// TemperaturePoints returns the Planckian locus samples projected onto
// a width×height diagram of sys.
func TemperaturePoints(sys CoordSystem, width, height int) []TemperaturePoint {
	bb := BlackBodyLocus(sys)
	pts := make([]TemperaturePoint, len(bb))
	for i, c := range bb {
		pts[i] = TemperaturePoint{
			Kelvin:       locus.BlackBody[i].Kelvin,
			Chromaticity: c,
			Pixel:        roundPoint(projectVec(c.vec(), sys, width, height)),
		}
	}
	return pts
}
