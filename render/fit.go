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
	"math"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/schottky/ifs"
	"seehuhn.de/go/schottky/mobius"
)

// Extent returns the region containing the central fraction keep of the
// points in each coordinate direction.  Points far out, for example near
// a parabolic fixed point, are ignored this way.  Non-finite points are
// skipped.  The result is the zero rectangle if there are no finite
// points.
func Extent(points []ifs.Point, keep float64) rect.Rect {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		if mobius.IsInf(p.Z) {
			continue
		}
		xs = append(xs, real(p.Z))
		ys = append(ys, imag(p.Z))
	}
	if len(xs) == 0 {
		return rect.Rect{}
	}
	slices.Sort(xs)
	slices.Sort(ys)

	keep = min(max(keep, 0), 1)
	lo := int(math.Floor(float64(len(xs)-1) * (1 - keep) / 2))
	hi := len(xs) - 1 - lo
	return rect.Rect{LLx: xs[lo], LLy: ys[lo], URx: xs[hi], URy: ys[hi]}
}

// Fit returns a view of the given size which shows the rectangle r,
// leaving the given relative margin on each side.
func Fit(r rect.Rect, width, height int, margin float64) View {
	v := View{
		Width:  width,
		Height: height,
		Center: complex((r.LLx+r.URx)/2, (r.LLy+r.URy)/2),
	}

	dx := r.URx - r.LLx
	dy := r.URy - r.LLy
	usable := 1 - 2*margin
	zoom := math.Inf(1)
	if dx > 0 {
		zoom = float64(width) * usable / dx
	}
	if dy > 0 {
		zoom = min(zoom, float64(height)*usable/dy)
	}
	if math.IsInf(zoom, 1) || zoom <= 0 {
		zoom = DefaultView.Zoom
	}
	v.Zoom = zoom
	return v
}
