package color

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func vecNear(a, b vec.Vec2, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestXYToUVKnownValues(t *testing.T) {
	tests := []struct {
		name string
		xy   vec.Vec2
		want vec.Vec2
	}{
		{"D65", D65, vec.Vec2{X: 0.19783, Y: 0.46832}},
		{"equal energy", vec.Vec2{X: 1.0 / 3, Y: 1.0 / 3}, vec.Vec2{X: 4.0 / 19, Y: 9.0 / 19}},
		{"sRGB red", vec.Vec2{X: 0.64, Y: 0.33}, vec.Vec2{X: 0.45070, Y: 0.52289}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := XYToUV(tt.xy)
			if !vecNear(got, tt.want, 1e-4) {
				t.Errorf("XYToUV(%v) = %v, want %v", tt.xy, got, tt.want)
			}
		})
	}
}

func TestRoundTripConversions(t *testing.T) {
	samples := []vec.Vec2{
		{X: 0.64, Y: 0.33},
		{X: 0.30, Y: 0.60},
		{X: 0.15, Y: 0.06},
		{X: 0.3127, Y: 0.3290},
		{X: 0.0743, Y: 0.8338},
		{X: 0.1733, Y: 0.0048},
	}
	for _, sys := range []System{SystemXY, SystemUV, SystemLab} {
		for _, p := range samples {
			q := Convert(Convert(p, SystemXY, sys), sys, SystemXY)
			if !vecNear(p, q, 1e-9) {
				t.Errorf("%v round trip of %v = %v", sys, p, q)
			}
		}
	}
}

func TestLabWhiteIsOrigin(t *testing.T) {
	got := XYToLab(LabWhite)
	if !vecNear(got, vec.Vec2{}, 1e-9) {
		t.Errorf("XYToLab(white) = %v, want origin", got)
	}
	back := LabToXY(vec.Vec2{})
	if !vecNear(back, LabWhite, 1e-12) {
		t.Errorf("LabToXY(origin) = %v, want %v", back, LabWhite)
	}
}

func TestLabCompressContinuity(t *testing.T) {
	below := LabCompress(labEpsilon - 1e-12)
	above := LabCompress(labEpsilon + 1e-12)
	if math.Abs(below-above) > 1e-6 {
		t.Errorf("LabCompress discontinuous at epsilon: %v vs %v", below, above)
	}
	for _, v := range []float64{0, 0.001, 0.2, 0.7, 1, 3.5} {
		if got := LabUncompress(LabCompress(v)); math.Abs(got-v) > 1e-12 {
			t.Errorf("LabUncompress(LabCompress(%v)) = %v", v, got)
		}
	}
}

func TestSingularDenominators(t *testing.T) {
	// 6u - 16v + 12 == 0
	got := UVToXY(vec.Vec2{X: 0, Y: 0.75})
	if got != D65 {
		t.Errorf("UVToXY on singular input = %v, want D65", got)
	}
	if got := XYToLab(vec.Vec2{X: 0.3, Y: 0}); got != (vec.Vec2{}) {
		t.Errorf("XYToLab(y=0) = %v, want origin", got)
	}
}

func TestParseSystem(t *testing.T) {
	for _, s := range []System{SystemXY, SystemUV, SystemLab} {
		got, err := ParseSystem(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSystem(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseSystem("hsv"); err == nil {
		t.Error("ParseSystem(hsv) should fail")
	}
	if System(7).Valid() {
		t.Error("System(7) should be invalid")
	}
}
