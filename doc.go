// Package gamut renders chromaticity diagrams.
//
// # Overview
//
// gamut fills the visible-gamut "tongue" of the CIE 1931 (x,y), CIE 1976
// (u′,v′) and CIE L*a*b* planes into an RGB raster, coloring every pixel
// by the chromaticity it represents on a given display reference. On top
// of a filled diagram it draws the black-body locus, delta-E tolerance
// circles and the primaries triangle, and it can paint everything
// outside the tongue a flat background color.
//
// # Quick Start
//
//	import "github.com/gogpu/gamut"
//
//	r, err := gamut.RenderGamutDiagram(512, 512, gamut.CIEuv, gamut.SRGB)
//	if err != nil {
//		return err
//	}
//	_ = gamut.RenderBlackBodyLocus(r, gamut.CIEuv)
//	_ = gamut.RenderDeltaEContour(r, gamut.CIEuv, gamut.SRGB.White, 4)
//	png.Encode(w, r.ToImage())
//
// # Coordinate Systems
//
// Each plane maps onto the raster through a fixed window:
//   - CIExy: x in [-0.075, 0.825], y in [-0.05, 0.95]
//   - CIEuv: u′ and v′ in [-0.075, 0.725] and [-0.05, 0.75]
//   - CIELab: a* in [-220, 180], b* in [-200, 200] at full lightness
//
// Pixel (0,0) is the top-left corner; the second coordinate grows upward.
// Project and Unproject convert between chromaticities and pixels.
//
// # Fill
//
// The tongue is scan-converted row by row from two boundary curves, the
// left and right halves of the spectral locus, each traced with an
// incremental line generator. Rows are independent, so WithWorkers
// spreads them over a worker pool; the result is byte-identical to the
// serial fill.
//
// # Colors
//
// A pixel is inverse-projected to (x,y), pulled toward the reference
// white when close to it, converted through the reference's XYZ→RGB
// matrix, compressed into the unit cube and gamma encoded. Colors out of
// the display gamut are shifted and rescaled, never clipped per channel.
//
// # Logging
//
// The package is silent by default. SetLogger installs a *slog.Logger
// that receives render diagnostics at debug level and rejected
// references at warn level.
package gamut

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
