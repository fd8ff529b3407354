// seehuhn.de/go/schottky - limit sets of Schottky groups
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Granny draws the limit set of the Schottky group given by two traces.
//
// Usage:
//
//	granny [options]
//
// The traces are given as complex numbers, for example
//
//	granny -ta 2 -tb 2-0.1i -o out.png
//
// The image is written in PNG format.  With "-o -" the image is written to
// standard output, which must not be a terminal.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/schottky/granny"
	"seehuhn.de/go/schottky/ifs"
	"seehuhn.de/go/schottky/render"
	"seehuhn.de/go/schottky/session"
)

type config struct {
	ta, tb      string
	n           int
	seed        uint64
	workers     int
	zoom        float64
	width       int
	height      int
	dot         float64
	supersample int
	fit         bool
	label       bool
	out         string
	points      string
}

func main() {
	def := session.Default()
	cfg := &config{}
	flag.StringVar(&cfg.ta, "ta", session.Format(def.TA), "trace of the generator a")
	flag.StringVar(&cfg.tb, "tb", session.Format(def.TB), "trace of the generator b")
	flag.IntVar(&cfg.n, "n", ifs.DefaultIterations, "number of iterations")
	flag.Uint64Var(&cfg.seed, "seed", 0, "random seed (0 for a random seed)")
	flag.IntVar(&cfg.workers, "workers", 1, "number of independent orbits")
	flag.Float64Var(&cfg.zoom, "zoom", render.DefaultView.Zoom, "pixels per unit length")
	flag.IntVar(&cfg.width, "width", render.DefaultView.Width, "image width in pixels")
	flag.IntVar(&cfg.height, "height", render.DefaultView.Height, "image height in pixels")
	flag.Float64Var(&cfg.dot, "dot", 1, "dot size in pixels")
	flag.IntVar(&cfg.supersample, "ss", 1, "supersampling factor")
	flag.BoolVar(&cfg.fit, "fit", false, "choose zoom and centre to fit the points")
	flag.BoolVar(&cfg.label, "label", true, "print the parameters into the image")
	flag.StringVar(&cfg.out, "o", render.SnapshotName(1), "output PNG file, or - for standard output")
	flag.StringVar(&cfg.points, "points", "", "also write the points as text to this file (- for standard output)")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config) error {
	ta, err := session.ParseComplex(cfg.ta)
	if err != nil {
		return err
	}
	tb, err := session.ParseComplex(cfg.tb)
	if err != nil {
		return err
	}
	state := session.State{TA: ta, TB: tb}

	gens, err := state.Generators()
	if err != nil {
		return err
	}

	seed := cfg.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	points, stats, err := sample(ctx, gens, cfg.n, cfg.workers, seed)
	if err != nil {
		return err
	}

	if cfg.points != "" {
		err = writeOutput(cfg.points, func(w io.Writer) error {
			return writePoints(w, points)
		})
		if err != nil {
			return err
		}
	}

	view := render.View{Width: cfg.width, Height: cfg.height, Zoom: cfg.zoom}
	if cfg.fit {
		view = render.Fit(render.Extent(points, 0.99), cfg.width, cfg.height, 0.05)
	}
	img := render.Plot(points, &render.Options{
		View:        view,
		Palette:     render.DefaultPalette,
		DotSize:     cfg.dot,
		Supersample: cfg.supersample,
	})
	if cfg.label {
		render.Label(img, "tb = "+session.Format(tb), 0, color.White)
		render.Label(img, "ta = "+session.Format(ta), 1, color.White)
	}

	if cfg.out == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PNG data to a terminal")
	}
	err = writeOutput(cfg.out, func(w io.Writer) error {
		return render.WritePNG(w, img)
	})
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, "%s: %d points (%d iterations, %d rejected, seed %d)\n",
		state, stats.Emitted, stats.Iterations, stats.Rejected, seed)
	return nil
}

func sample(ctx context.Context, gens *granny.Generators, n, workers int, seed uint64) ([]ifs.Point, ifs.Stats, error) {
	if workers > 1 {
		return ifs.Parallel(ctx, gens, n, workers, seed)
	}
	s := ifs.New(gens, rand.New(rand.NewPCG(seed, 0)))
	return s.Sample(ctx, n)
}

// writeOutput calls write with the named file, or with standard output if
// the name is "-".
func writeOutput(name string, write func(io.Writer) error) error {
	if name == "-" {
		return write(os.Stdout)
	}

	out, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(out)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// writePoints writes one line "x y generator" per point.
func writePoints(w io.Writer, points []ifs.Point) error {
	buf := bufio.NewWriter(w)
	for _, p := range points {
		_, err := fmt.Fprintf(buf, "%.17g %.17g %d\n", real(p.Z), imag(p.Z), p.Gen)
		if err != nil {
			return err
		}
	}
	return buf.Flush()
}
