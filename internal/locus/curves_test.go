package locus

import (
	"testing"

	"github.com/gogpu/gamut/internal/color"
)

var systems = []color.System{color.SystemXY, color.SystemUV, color.SystemLab}

func TestCurvesAreMonotonic(t *testing.T) {
	for _, sys := range systems {
		t.Run(sys.String(), func(t *testing.T) {
			if err := For(sys).Validate(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCurvesEndPoints(t *testing.T) {
	tests := []struct {
		sys        color.System
		apex       int
		closing    int
		leftBefore int // a wavelength that must be on the left curve
	}{
		{color.SystemXY, 520, 400, 500},
		{color.SystemUV, 530, 415, 500},
		{color.SystemLab, 645, 415, 500},
	}

	for _, tt := range tests {
		t.Run(tt.sys.String(), func(t *testing.T) {
			cs := For(tt.sys)
			if got := cs.Left[0].Wavelength; got != tt.apex {
				t.Errorf("apex = %d nm, want %d nm", got, tt.apex)
			}
			if got := cs.Left[len(cs.Left)-1].Wavelength; got != tt.closing {
				t.Errorf("closing point = %d nm, want %d nm", got, tt.closing)
			}
			found := false
			for _, p := range cs.Left {
				if p.Wavelength == tt.leftBefore {
					found = true
				}
			}
			if !found {
				t.Errorf("%d nm missing from left curve", tt.leftBefore)
			}
			for _, p := range cs.Right {
				if p.Wavelength == 700 {
					return
				}
			}
			t.Error("700 nm missing from right curve")
		})
	}
}

func TestLeftCurveLiesLeftOfRight(t *testing.T) {
	// Compare at the 550 nm / 500 nm pair, well inside both curves.
	for _, sys := range []color.System{color.SystemXY, color.SystemUV} {
		cs := For(sys)
		var l, r float64
		for _, p := range cs.Left {
			if p.Wavelength == 500 {
				l = p.P.X
			}
		}
		for _, p := range cs.Right {
			if p.Wavelength == 550 {
				r = p.P.X
			}
		}
		if l >= r {
			t.Errorf("%v: left x %v not left of right x %v", sys, l, r)
		}
	}
}

func TestValidateRejectsReversal(t *testing.T) {
	c := Curve{
		{Wavelength: 1, P: Spectral[28].XY},
		{Wavelength: 2, P: Spectral[0].XY},
		{Wavelength: 3, P: Spectral[30].XY},
	}
	if err := c.Validate(); err == nil {
		t.Error("Validate accepted a curve that moves back up")
	}
	if err := (Curve{{}}).Validate(); err == nil {
		t.Error("Validate accepted a single-point curve")
	}
}

func TestForInvalidSystemFallsBack(t *testing.T) {
	got := For(color.System(9))
	if got.System != color.SystemXY {
		t.Errorf("For(invalid).System = %v, want xy", got.System)
	}
}

func TestBlackBodyOrdered(t *testing.T) {
	for i := 1; i < len(BlackBody); i++ {
		if BlackBody[i].Kelvin <= BlackBody[i-1].Kelvin {
			t.Fatalf("temperatures not increasing at index %d", i)
		}
		if BlackBody[i].XY.X >= BlackBody[i-1].XY.X {
			t.Errorf("x not decreasing at %d K", BlackBody[i].Kelvin)
		}
	}
	if BlackBody[0].Kelvin != 2600 || BlackBody[len(BlackBody)-1].Kelvin != 40000 {
		t.Error("black-body range should span 2600 K to 40000 K")
	}
}
