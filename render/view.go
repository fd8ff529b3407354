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

// Package render draws sampled limit set points into raster images.
//
// Points are mapped from the complex plane to device pixels by a [View]
// and drawn as small squares, one rasterizer pass per generator colour.
// Images can be rendered at a higher resolution and scaled down for
// anti-aliasing.
package render

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// View describes the mapping from the complex plane to an image.
type View struct {
	Width, Height int

	// Zoom is the number of pixels per unit length.
	Zoom float64

	// Center is the point of the complex plane shown at the centre of
	// the image.
	Center complex128
}

// DefaultView is the canvas used by the interactive sketch.
var DefaultView = View{
	Width:  1000,
	Height: 1150,
	Zoom:   300,
}

// Matrix returns the transformation from the complex plane to device
// coordinates.  The imaginary axis points upwards in the image.
func (v View) Matrix() matrix.Matrix {
	M := matrix.Translate(-real(v.Center), -imag(v.Center))
	M = M.Mul(matrix.Scale(v.Zoom, -v.Zoom))
	M = M.Mul(matrix.Translate(float64(v.Width)/2, float64(v.Height)/2))
	return M
}

// Bounds returns the region of the complex plane covered by the image.
func (v View) Bounds() rect.Rect {
	dx := float64(v.Width) / 2 / v.Zoom
	dy := float64(v.Height) / 2 / v.Zoom
	x, y := real(v.Center), imag(v.Center)
	return rect.Rect{LLx: x - dx, LLy: y - dy, URx: x + dx, URy: y + dy}
}

// Device maps a point of the complex plane to device coordinates.
func (v View) Device(z complex128) vec.Vec2 {
	x, y := v.Matrix().Apply(real(z), imag(z))
	return vec.Vec2{X: x, Y: y}
}

// Scaled returns the view with all pixel dimensions multiplied by k.
func (v View) Scaled(k int) View {
	return View{
		Width:  v.Width * k,
		Height: v.Height * k,
		Zoom:   v.Zoom * float64(k),
		Center: v.Center,
	}
}

// Rect returns the image rectangle of the view.
func (v View) Rect() image.Rectangle {
	return image.Rect(0, 0, v.Width, v.Height)
}

// Palette assigns a colour to each generator index.
type Palette [4]color.RGBA

// DefaultPalette colours the points by generator a, A, b, B.
var DefaultPalette = Palette{
	{R: 0, G: 255, B: 127, A: 255},
	{R: 32, G: 178, B: 170, A: 255},
	{R: 127, G: 255, B: 212, A: 255},
	{R: 255, G: 248, B: 220, A: 255},
}
