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

// Package mobius implements complex arithmetic helpers and Möbius
// transformations of the extended complex plane.
//
// Complex numbers are represented by Go's builtin complex128 type.  The
// helpers in this package differ from math/cmplx in two respects: division
// reports a zero denominator as [ErrDivisionByZero] instead of producing
// infinities or NaNs, and square roots and powers use the half-angle
// convention via [Polar].
//
// A [Transform] stores the four coefficients of z ↦ (az+b)/(cz+d).
// Transforms compose like 2x2 matrices:
//
//	T := mobius.Compose(A, B)       // first B, then A
//	w, err := T.Apply(z)           // == A.Apply(B.Apply(z))
//	fix, err := T.FixedPoints()    // attracting, repelling
package mobius
