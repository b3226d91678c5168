package color

import "math"

// lutSize is the number of table entries; 12 bits of input precision
// are enough for 8-bit output.
const lutSize = 4096

// GammaLUT encodes linear channel values in [0, 1] to 8-bit values
// round(255 * v^exponent). It replaces a math.Pow call per channel with a
// table lookup and is safe for concurrent use once built.
type GammaLUT struct {
	exponent float64
	table    [lutSize]uint8
}

// NewGammaLUT builds the table for the given exponent.
func NewGammaLUT(exponent float64) *GammaLUT {
	l := &GammaLUT{exponent: exponent}
	for i := range l.table {
		v := math.Pow(float64(i)/(lutSize-1), exponent)
		//nolint:gosec // G115: v is in [0,1]
		l.table[i] = uint8(math.Round(min(max(v, 0), 1) * 255))
	}
	return l
}

// Exponent returns the exponent the table was built for.
func (l *GammaLUT) Exponent() float64 {
	return l.exponent
}

// Encode returns the 8-bit encoding of v. Input is clamped to [0, 1].
func (l *GammaLUT) Encode(v float64) uint8 {
	if !(v > 0) {
		return l.table[0]
	}
	if v >= 1 {
		return l.table[lutSize-1]
	}
	return l.table[int(v*(lutSize-1)+0.5)]
}

// EncodeSlow computes the encoding of v with math.Pow. It is the
// reference the table is checked against.
func EncodeSlow(v, exponent float64) uint8 {
	v = math.Pow(min(max(v, 0), 1), exponent)
	return uint8(math.Round(v * 255))
}
