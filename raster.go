package gamut

import (
	"image"
	"image/color"
)

// Raster is a rectangular buffer of opaque RGB pixels owned by the
// caller. Renderers write into it during a call and keep no reference to
// it afterwards.
//
// Raster implements draw.Image, so it can be handed to image/draw and
// golang.org/x/image/font directly.
type Raster struct {
	width  int
	height int
	pix    []uint8 // RGB, 3 bytes per pixel, row-major
}

// NewRaster creates a black raster with the given dimensions.
// Negative dimensions are treated as zero.
func NewRaster(width, height int) *Raster {
	width, height = max(width, 0), max(height, 0)
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Pix returns the raw pixel data (RGB, row-major).
func (r *Raster) Pix() []uint8 {
	return r.pix
}

// SetRGB sets the color of a single pixel. Pixels outside the raster are
// ignored.
func (r *Raster) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * 3
	r.pix[i+0] = c.R
	r.pix[i+1] = c.G
	r.pix[i+2] = c.B
}

// RGBAt returns the color of a single pixel, or black outside the raster.
func (r *Raster) RGBAt(x, y int) RGB {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return RGB{}
	}
	i := (y*r.width + x) * 3
	return RGB{R: r.pix[i+0], G: r.pix[i+1], B: r.pix[i+2]}
}

// Clear fills the entire raster with a color.
func (r *Raster) Clear(c RGB) {
	for y := 0; y < r.height; y++ {
		r.fillRow(y, 0, r.width, c)
	}
}

// fillRow sets the pixels [x0, x1) of row y. The range must lie inside
// the raster.
func (r *Raster) fillRow(y, x0, x1 int, c RGB) {
	row := r.pix[(y*r.width+x0)*3 : (y*r.width+x1)*3]
	for i := 0; i < len(row); i += 3 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
	}
}

// ToImage converts the raster to an opaque image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for i, j := 0, 0; i < len(r.pix); i, j = i+3, j+4 {
		img.Pix[j+0] = r.pix[i+0]
		img.Pix[j+1] = r.pix[i+1]
		img.Pix[j+2] = r.pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	return r.RGBAt(x, y)
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return rgbModel
}

// Set implements the draw.Image interface.
func (r *Raster) Set(x, y int, c color.Color) {
	r.SetRGB(x, y, FromColor(c))
}

var rgbModel = color.ModelFunc(func(c color.Color) color.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	return FromColor(c)
})
