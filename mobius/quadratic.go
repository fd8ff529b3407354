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

package mobius

// SolveQuadratic returns both solutions of a*x² + b*x + c = 0.
//
// The roots are (-b + s) / 2a and (-b - s) / 2a, in this order, where s is
// the square root of the discriminant as computed by [Sqrt].
func SolveQuadratic(a, b, c complex128) ([2]complex128, error) {
	s := Sqrt(b*b - 4*a*c)
	x1, err := Div(-b+s, 2*a)
	if err != nil {
		return [2]complex128{}, err
	}
	x2, err := Div(-b-s, 2*a)
	if err != nil {
		return [2]complex128{}, err
	}
	return [2]complex128{x1, x2}, nil
}
