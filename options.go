package gamut

// Defaults of the rendering options. They encode calibration and
// aesthetic choices rather than physical law, so each can be overridden.
const (
	// DefaultGamma is the exponent applied to each linear RGB channel.
	DefaultGamma = 1 / 2.2

	// DefaultWhiteRadiusSq is the squared u′v′ radius around the
	// reference white inside which samples are pulled toward white.
	DefaultWhiteRadiusSq = 0.02

	// DefaultDeltaEScale converts a delta-E value to a u′v′ distance:
	// radius = deltaE / DefaultDeltaEScale.
	DefaultDeltaEScale = 1300.0

	// DefaultContourPoints is the number of vertices of a delta-E contour.
	DefaultContourPoints = 24
)

// Option configures a render or overlay call.
//
// Example:
//
//	// Default thumbnail rendering
//	img, err := gamut.RenderGamutDiagram(256, 256, gamut.CIEuv, gamut.SRGB)
//
//	// Full chart with a dark edge, rendered on four goroutines
//	img, err := gamut.RenderGamutDiagram(1024, 1024, gamut.CIExy, gamut.SRGB,
//		gamut.WithFullChart(true), gamut.WithWorkers(4))
type Option func(*options)

// options holds the settings shared by all render and overlay calls.
type options struct {
	gamma         float64
	fullChart     bool
	whiteRadiusSq float64
	edgeColor     RGB
	lineColor     RGB
	background    RGB
	workers       int
	deltaEScale   float64
	contourPoints int
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		gamma:         DefaultGamma,
		whiteRadiusSq: DefaultWhiteRadiusSq,
		edgeColor:     RGB{R: 32, G: 32, B: 32},
		lineColor:     White,
		background:    Black,
		workers:       1,
		deltaEScale:   DefaultDeltaEScale,
		contourPoints: DefaultContourPoints,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithGamma sets the exponent applied to each RGB channel after
// out-of-gamut compression. Non-positive values are ignored.
func WithGamma(exponent float64) Option {
	return func(o *options) {
		if exponent > 0 {
			o.gamma = exponent
		}
	}
}

// WithFullChart selects full-chart rendering: the gamut boundary is
// painted with the edge color and widened by one pixel on each side.
// Without it the boundary pixels are colorized like the interior.
func WithFullChart(full bool) Option {
	return func(o *options) {
		o.fullChart = full
	}
}

// WithWhiteEnhancement sets the squared u′v′ radius of the pull toward
// the reference white. Zero disables the effect.
func WithWhiteEnhancement(radiusSq float64) Option {
	return func(o *options) {
		o.whiteRadiusSq = max(radiusSq, 0)
	}
}

// WithEdgeColor sets the boundary color used in full-chart mode.
func WithEdgeColor(c RGB) Option {
	return func(o *options) {
		o.edgeColor = c
	}
}

// WithLineColor sets the color of overlay polylines.
func WithLineColor(c RGB) Option {
	return func(o *options) {
		o.lineColor = c
	}
}

// WithBackground sets the color a newly created raster is cleared to.
func WithBackground(c RGB) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithWorkers renders the fill in row bands on n goroutines. The output
// is identical to a single-threaded fill. Values below 1 select one
// worker.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithDeltaEScale sets the number of delta-E units per unit of u′v′
// distance. Non-positive values are ignored.
func WithDeltaEScale(scale float64) Option {
	return func(o *options) {
		if scale > 0 {
			o.deltaEScale = scale
		}
	}
}

// WithContourPoints sets the number of vertices of a delta-E contour.
// Values below 3 are ignored.
func WithContourPoints(n int) Option {
	return func(o *options) {
		if n >= 3 {
			o.contourPoints = n
		}
	}
}
