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

package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/schottky/ifs"
	"seehuhn.de/go/schottky/mobius"
)

// Options control how points are drawn.
type Options struct {
	View View

	// Palette gives the colour for each generator index.
	// If this is the zero value, DefaultPalette is used.
	Palette Palette

	// Background fills the image before drawing.  If this is nil, the
	// background is black.
	Background color.Color

	// DotSize is the side length of the square drawn for each point,
	// in output pixels.  The default is 1.
	DotSize float64

	// Supersample is the factor by which the image is enlarged while
	// drawing.  Values below 2 disable supersampling.
	Supersample int
}

// Plot draws the points into a new image.
func Plot(points []ifs.Point, opt *Options) *image.RGBA {
	if opt == nil {
		opt = &Options{View: DefaultView, Palette: DefaultPalette}
	}
	bg := opt.Background
	if bg == nil {
		bg = color.Black
	}
	dot := opt.DotSize
	if dot <= 0 {
		dot = 1
	}
	pal := opt.Palette
	if pal == (Palette{}) {
		pal = DefaultPalette
	}
	k := max(opt.Supersample, 1)

	view := opt.View.Scaled(k)
	canvas := image.NewRGBA(view.Rect())
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	drawPoints(canvas, view, points, pal, dot*float64(k))

	if k == 1 {
		return canvas
	}
	out := image.NewRGBA(opt.View.Rect())
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return out
}

// drawPoints renders each colour class with a single rasterizer pass.
func drawPoints(dst draw.Image, view View, points []ifs.Point, pal Palette, size float64) {
	M := view.Matrix()
	w, h := view.Width, view.Height
	r := vector.NewRasterizer(w, h)

	half := size / 2
	for gen := range pal {
		r.Reset(w, h)
		n := 0
		for _, p := range points {
			if p.Gen != gen || mobius.IsInf(p.Z) {
				continue
			}
			qx, qy := M.Apply(real(p.Z), imag(p.Z))
			// align the square to the pixel grid
			x0 := math.Round(qx - half)
			y0 := math.Round(qy - half)
			x1 := min(x0+size, float64(w))
			y1 := min(y0+size, float64(h))
			x0, y0 = max(x0, 0), max(y0, 0)
			if x0 >= x1 || y0 >= y1 {
				continue
			}
			r.MoveTo(float32(x0), float32(y0))
			r.LineTo(float32(x1), float32(y0))
			r.LineTo(float32(x1), float32(y1))
			r.LineTo(float32(x0), float32(y1))
			r.ClosePath()
			n++
		}
		if n == 0 {
			continue
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(pal[gen]), image.Point{})
	}
}

// WritePNG encodes the image in PNG format.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SnapshotName returns the file name used for the k-th saved image.
func SnapshotName(k int) string {
	return "grandmas_recipe_" + strconv.Itoa(k) + ".png"
}
