// Command gamutdemo renders a chromaticity diagram to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gamut"
	"github.com/gogpu/gamut/label"
)

func main() {
	var (
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 800, "image height")
		system     = flag.String("system", "xy", "coordinate system: xy, uv or lab")
		reference  = flag.String("reference", "srgb", "color reference: "+strings.Join(gamut.ReferenceNames(), ", "))
		deltaE     = flag.Float64("deltae", 0, "draw a delta-E tolerance circle around white (0 disables)")
		blackBody  = flag.Bool("blackbody", false, "draw the black-body locus")
		exterior   = flag.Bool("exterior", false, "repaint everything outside the gamut with the background")
		background = flag.String("background", "#000000", "background color")
		gamma      = flag.Float64("gamma", gamut.DefaultGamma, "gamma-shaping exponent")
		workers    = flag.Int("workers", 1, "number of goroutines filling row bands")
		labels     = flag.Bool("labels", false, "draw wavelength and temperature labels")
		output     = flag.String("output", "gamut.png", "output file")
		verbose    = flag.Bool("v", false, "log render diagnostics")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	gamut.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(config{
		width:      *width,
		height:     *height,
		system:     *system,
		reference:  *reference,
		deltaE:     *deltaE,
		blackBody:  *blackBody,
		exterior:   *exterior,
		background: *background,
		gamma:      *gamma,
		workers:    *workers,
		labels:     *labels,
		output:     *output,
	}); err != nil {
		log.Fatalf("gamutdemo: %v", err)
	}
	log.Printf("Diagram saved to %s (%dx%d)\n", *output, *width, *height)
}

type config struct {
	width, height int
	system        string
	reference     string
	deltaE        float64
	blackBody     bool
	exterior      bool
	background    string
	gamma         float64
	workers       int
	labels        bool
	output        string
}

func run(cfg config) error {
	sys, err := gamut.ParseCoordSystem(cfg.system)
	if err != nil {
		return err
	}
	ref, err := gamut.ReferenceByName(cfg.reference)
	if err != nil {
		return err
	}
	bg, ok := gamut.Hex(cfg.background)
	if !ok {
		return fmt.Errorf("invalid background color %q", cfg.background)
	}

	r, err := gamut.RenderGamutDiagram(cfg.width, cfg.height, sys, ref,
		gamut.WithBackground(bg),
		gamut.WithGamma(cfg.gamma),
		gamut.WithWorkers(cfg.workers),
		gamut.WithFullChart(true),
	)
	if err != nil {
		return err
	}
	if cfg.exterior {
		if err := gamut.PaintExterior(r, sys, bg); err != nil {
			return err
		}
	}
	if err := gamut.DrawPrimaries(r, sys, ref); err != nil {
		return err
	}
	if cfg.blackBody {
		if err := gamut.RenderBlackBodyLocus(r, sys); err != nil {
			return err
		}
	}
	if cfg.deltaE > 0 {
		if err := gamut.RenderDeltaEContour(r, sys, ref.White, cfg.deltaE); err != nil {
			return err
		}
	}
	if cfg.labels {
		label.Wavelengths(r, sys, label.WithCenter(ref.White))
		if cfg.blackBody {
			label.Temperatures(r, sys)
		}
	}

	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
