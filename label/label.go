// Package label annotates a finished chromaticity diagram with
// wavelength and color temperature text.
//
// Labels are a second pass over a raster produced by the gamut package:
// they read projected locus positions from gamut.LocusPoints and
// gamut.TemperaturePoints and draw text with golang.org/x/image/font.
package label

import (
	"image"
	"slices"

	"github.com/gogpu/gamut"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"seehuhn.de/go/geom/vec"
)

// DefaultWavelengths are the spectral samples labeled by Wavelengths.
var DefaultWavelengths = []int{460, 470, 480, 490, 500, 510, 520, 540, 560, 580, 600, 620}

// DefaultTemperatures are the Planckian samples labeled by Temperatures.
var DefaultTemperatures = []int{3000, 4000, 5000, 6500, 10000, 20000}

// gap is the distance in pixels between a locus point and its label.
const gap = 6

type config struct {
	face   font.Face
	color  gamut.RGB
	lang   language.Tag
	marks  []int
	center gamut.Chromaticity
}

// Option configures a labeling pass.
type Option func(*config)

// WithFace sets the font face. The default is basicfont.Face7x13.
func WithFace(f font.Face) Option {
	return func(c *config) {
		if f != nil {
			c.face = f
		}
	}
}

// WithColor sets the text color. The default is white.
func WithColor(col gamut.RGB) Option {
	return func(c *config) {
		c.color = col
	}
}

// WithLanguage sets the language used to format numbers, e.g. the digit
// grouping of "6,500K". The default is English.
func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.lang = tag
	}
}

// WithMarks replaces the wavelengths (nm) or temperatures (K) to label.
func WithMarks(marks ...int) Option {
	return func(c *config) {
		c.marks = marks
	}
}

// WithCenter sets the point wavelength labels are pushed away from.
// The default is D65.
func WithCenter(white gamut.Chromaticity) Option {
	return func(c *config) {
		c.center = white
	}
}

func newConfig(marks []int, opts []Option) config {
	c := config{
		face:   basicfont.Face7x13,
		color:  gamut.White,
		lang:   language.English,
		marks:  marks,
		center: gamut.D65,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c *config) drawer(dst *gamut.Raster) *font.Drawer {
	return &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.color),
		Face: c.face,
	}
}

// Wavelengths writes the wavelength of selected spectral locus samples
// next to the tongue outline and returns the number of labels drawn.
// Each label sits outside the tongue, on the ray from the center point
// through its sample.
func Wavelengths(dst *gamut.Raster, sys gamut.CoordSystem, opts ...Option) int {
	c := newConfig(DefaultWavelengths, opts)
	w, h := dst.Width(), dst.Height()
	center := pointVec(gamut.Project(c.center, sys, w, h))
	p := message.NewPrinter(c.lang)
	d := c.drawer(dst)
	bounds := dst.Bounds()

	n := 0
	for _, lp := range gamut.LocusPoints(sys, w, h) {
		if !slices.Contains(c.marks, lp.Wavelength) || !lp.Pixel.In(bounds) {
			continue
		}
		text := p.Sprintf("%d", lp.Wavelength)
		dir := pointVec(lp.Pixel).Sub(center)
		if l := dir.Length(); l > 0 {
			dir = dir.Mul(1 / l)
		}
		at := pointVec(lp.Pixel).Add(dir.Mul(gap))
		d.Dot = origin(d, text, at, dir)
		d.DrawString(text)
		n++
	}
	return n
}

// Temperatures writes correlated color temperatures, such as "6,500K",
// below selected Planckian locus samples and returns the number of
// labels drawn.
func Temperatures(dst *gamut.Raster, sys gamut.CoordSystem, opts ...Option) int {
	c := newConfig(DefaultTemperatures, opts)
	p := message.NewPrinter(c.lang)
	d := c.drawer(dst)
	bounds := dst.Bounds()

	n := 0
	for _, tp := range gamut.TemperaturePoints(sys, dst.Width(), dst.Height()) {
		if !slices.Contains(c.marks, tp.Kelvin) || !tp.Pixel.In(bounds) {
			continue
		}
		text := FormatKelvin(p, tp.Kelvin)
		ascent := d.Face.Metrics().Ascent
		d.Dot = fixed.P(tp.Pixel.X+gap/2, tp.Pixel.Y+gap).Add(fixed.Point26_6{Y: ascent})
		d.DrawString(text)
		n++
	}
	return n
}

// FormatKelvin formats a temperature with the printer's digit grouping.
func FormatKelvin(p *message.Printer, kelvin int) string {
	return p.Sprintf("%dK", kelvin)
}

func pointVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// origin returns the baseline origin that places text beside at, on the
// side dir points to.
func origin(d *font.Drawer, text string, at, dir vec.Vec2) fixed.Point26_6 {
	width := d.MeasureString(text)
	m := d.Face.Metrics()
	x := fixed.Int26_6(at.X * 64)
	y := fixed.Int26_6(at.Y * 64)
	switch {
	case dir.X < -0.3:
		x -= width
	case dir.X <= 0.3:
		x -= width / 2
	}
	switch {
	case dir.Y > 0.3:
		y += m.Ascent
	case dir.Y >= -0.3:
		y += (m.Ascent - m.Descent) / 2
	}
	return fixed.Point26_6{X: x, Y: y}
}
