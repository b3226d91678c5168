package gamut

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/gogpu/gamut/internal/locus"
	"github.com/google/go-cmp/cmp"
)

func TestRenderGamutDiagramSRGB(t *testing.T) {
	bg := RGB{R: 7, G: 11, B: 13}
	r, err := RenderGamutDiagram(400, 400, CIExy, SRGB, WithBackground(bg))
	if err != nil {
		t.Fatalf("RenderGamutDiagram: %v", err)
	}

	p := Project(SRGB.White, CIExy, 400, 400)
	c := r.RGBAt(p.X, p.Y)
	if c.R < 200 || c.G < 200 || c.B < 200 {
		t.Errorf("white pixel %v = %+v, want all channels >= 200", p, c)
	}
	if got := r.RGBAt(0, 0); got != bg {
		t.Errorf("corner = %+v, want background %+v", got, bg)
	}
}

func TestRenderGamutDiagramAllSystems(t *testing.T) {
	for _, sys := range allSystems {
		t.Run(sys.String(), func(t *testing.T) {
			r, err := RenderGamutDiagram(300, 300, sys, SRGB)
			if err != nil {
				t.Fatalf("RenderGamutDiagram: %v", err)
			}
			p := Project(D65, sys, 300, 300)
			if c := r.RGBAt(p.X, p.Y); c.R < 200 || c.G < 200 || c.B < 200 {
				t.Errorf("white pixel = %+v", c)
			}
			if got := r.RGBAt(299, 0); got != Black {
				t.Errorf("top right = %+v, want black", got)
			}
		})
	}
}

func TestProjectedCurvesMonotonic(t *testing.T) {
	sizes := []int{1, 7, 64, 400, 1000, 4096}
	for _, sys := range allSystems {
		if err := locus.For(sys).Validate(); err != nil {
			t.Errorf("%v: %v", sys, err)
		}
		for _, n := range sizes {
			b := newBoundary(sys, n, n)
			for name, pts := range map[string][]int{"left": rowsOf(b.left), "right": rowsOf(b.right)} {
				for i := 1; i < len(pts); i++ {
					if pts[i] < pts[i-1] {
						t.Errorf("%v %dx%d %s: row %d at %d after %d", sys, n, n, name, pts[i], i, pts[i-1])
					}
				}
			}
		}
	}
}

func TestBoundaryCache(t *testing.T) {
	for _, sys := range allSystems {
		got := boundaryFor(sys, 123, 77)
		if diff := cmp.Diff(newBoundary(sys, 123, 77), got, cmp.AllowUnexported(boundary{})); diff != "" {
			t.Errorf("%v: cached boundary differs (-fresh +cached):\n%s", sys, diff)
		}
		if again := boundaryFor(sys, 123, 77); &again.left[0] != &got.left[0] {
			t.Errorf("%v: boundary rebuilt on second lookup", sys)
		}
	}
}

func rowsOf(pts []image.Point) []int {
	rows := make([]int, len(pts))
	for i, p := range pts {
		rows[i] = p.Y
	}
	return rows
}

func TestFillDegenerateReference(t *testing.T) {
	fill := RGB{R: 1, G: 2, B: 3}
	r := NewRaster(64, 64)
	r.Clear(fill)
	before := bytes.Clone(r.Pix())

	for _, ref := range []Reference{collinearReference(), nearlyFlatReference()} {
		err := Fill(r, CIExy, ref)
		if !errors.Is(err, ErrDegenerateReference) {
			t.Fatalf("Fill(%s) error = %v, want ErrDegenerateReference", ref.Name, err)
		}
		if !bytes.Equal(before, r.Pix()) {
			t.Errorf("Fill(%s) wrote pixels for a degenerate reference", ref.Name)
		}
	}

	out, err := RenderGamutDiagram(64, 64, CIExy, collinearReference())
	if !errors.Is(err, ErrDegenerateReference) {
		t.Errorf("RenderGamutDiagram error = %v, want ErrDegenerateReference", err)
	}
	if out != nil {
		t.Error("RenderGamutDiagram returned a raster with an error")
	}
}

func TestRenderGamutDiagramIdempotent(t *testing.T) {
	for _, sys := range allSystems {
		a, err := RenderGamutDiagram(257, 193, sys, DisplayP3)
		if err != nil {
			t.Fatal(err)
		}
		b, err := RenderGamutDiagram(257, 193, sys, DisplayP3)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a.Pix(), b.Pix()) {
			t.Errorf("%v: renders differ", sys)
		}
	}
}

func TestFillParallelMatchesSerial(t *testing.T) {
	for _, sys := range allSystems {
		for _, full := range []bool{false, true} {
			name := fmt.Sprintf("%v/full=%v", sys, full)
			t.Run(name, func(t *testing.T) {
				serial, err := RenderGamutDiagram(320, 301, sys, SRGB, WithFullChart(full))
				if err != nil {
					t.Fatal(err)
				}
				for _, workers := range []int{2, 4, 7} {
					par, err := RenderGamutDiagram(320, 301, sys, SRGB,
						WithFullChart(full), WithWorkers(workers))
					if err != nil {
						t.Fatal(err)
					}
					if !bytes.Equal(serial.Pix(), par.Pix()) {
						t.Errorf("workers=%d differs from serial", workers)
					}
				}
			})
		}
	}
}

func TestFillFullChartEdge(t *testing.T) {
	edge := RGB{R: 1, G: 200, B: 3}
	thumb, err := RenderGamutDiagram(200, 200, CIEuv, SRGB, WithEdgeColor(edge))
	if err != nil {
		t.Fatal(err)
	}
	full, err := RenderGamutDiagram(200, 200, CIEuv, SRGB, WithFullChart(true), WithEdgeColor(edge))
	if err != nil {
		t.Fatal(err)
	}
	if n := countColor(thumb, edge); n != 0 {
		t.Errorf("thumbnail has %d edge pixels", n)
	}
	if n := countColor(full, edge); n < 100 {
		t.Errorf("full chart has %d edge pixels, want an outline", n)
	}
	p := Project(D65, CIEuv, 200, 200)
	if full.RGBAt(p.X, p.Y) == edge {
		t.Error("white pixel painted as edge")
	}
}

func countColor(r *Raster, c RGB) int {
	n := 0
	for y := range r.Height() {
		for x := range r.Width() {
			if r.RGBAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestPaintExterior(t *testing.T) {
	bg := RGB{R: 9, G: 9, B: 9}
	for _, sys := range allSystems {
		r, err := RenderGamutDiagram(240, 240, sys, SRGB, WithBackground(RGB{R: 200}))
		if err != nil {
			t.Fatal(err)
		}
		p := Project(D65, sys, 240, 240)
		white := r.RGBAt(p.X, p.Y)

		if err := PaintExterior(r, sys, bg); err != nil {
			t.Fatal(err)
		}
		// The full-lightness Lab tongue reaches the bottom right corner.
		for _, c := range [][2]int{{0, 0}, {239, 0}, {0, 239}} {
			if got := r.RGBAt(c[0], c[1]); got != bg {
				t.Errorf("%v corner %v = %+v, want %+v", sys, c, got, bg)
			}
		}
		if got := r.RGBAt(p.X, p.Y); got != white {
			t.Errorf("%v interior changed: %+v -> %+v", sys, white, got)
		}
		if n := countColor(r, RGB{R: 200}); n != 0 {
			t.Errorf("%v: %d exterior pixels survived", sys, n)
		}
	}
}

func TestRenderExteriorMask(t *testing.T) {
	bg := RGB{R: 255, G: 0, B: 255}
	r, err := RenderExteriorMask(128, 128, CIExy, bg)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.RGBAt(0, 0); got != bg {
		t.Errorf("corner = %+v, want %+v", got, bg)
	}
	p := Project(D65, CIExy, 128, 128)
	if got := r.RGBAt(p.X, p.Y); got != Black {
		t.Errorf("interior = %+v, want untouched", got)
	}
}

func TestRenderInvalidArguments(t *testing.T) {
	if _, err := RenderGamutDiagram(0, 10, CIExy, SRGB); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width: %v", err)
	}
	if _, err := RenderExteriorMask(10, -1, CIExy, Black); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("negative height: %v", err)
	}
	if _, err := RenderGamutDiagram(10, 10, CoordSystem(9), SRGB); !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("unknown system: %v", err)
	}
	if err := Fill(nil, CIExy, SRGB); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("nil raster: %v", err)
	}
}

func BenchmarkRenderGamutDiagram(b *testing.B) {
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			r := NewRaster(512, 512)
			b.ReportAllocs()
			for b.Loop() {
				if err := Fill(r, CIExy, SRGB, WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
