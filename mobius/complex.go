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

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDivisionByZero is returned when a complex division has a
// denominator of modulus zero.
var ErrDivisionByZero = errors.New("division by zero")

// Div returns a/b, computed as a·conj(b)/|b|².
func Div(a, b complex128) (complex128, error) {
	n := real(b)*real(b) + imag(b)*imag(b)
	if n == 0 {
		return 0, ErrDivisionByZero
	}
	num := a * cmplx.Conj(b)
	return complex(real(num)/n, imag(num)/n), nil
}

// Abs returns the modulus of z.
func Abs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// Phase returns the argument of z, in the range (-π, π].
func Phase(z complex128) float64 {
	return math.Atan2(imag(z), real(z))
}

// Polar returns the modulus and the argument of z.
func Polar(z complex128) (r, theta float64) {
	return Abs(z), Phase(z)
}

// FromPolar returns the complex number with modulus r and argument theta.
func FromPolar(r, theta float64) complex128 {
	s, c := math.Sincos(theta)
	return complex(r*c, r*s)
}

// Conj returns the complex conjugate of z.
func Conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}

// Sqrt returns the square root of z obtained by halving the argument.
//
// The result has argument in (-π/2, π/2].  The sign of the result jumps
// when z crosses the negative real axis.
func Sqrt(z complex128) complex128 {
	r, theta := Polar(z)
	return FromPolar(math.Sqrt(r), theta/2)
}

// Pow returns z raised to the real power p, using the same branch
// convention as [Sqrt].
func Pow(z complex128, p float64) complex128 {
	r, theta := Polar(z)
	return FromPolar(math.Pow(r, p), theta*p)
}

// IsInf reports whether z represents the point at infinity.
// Any value with a non-finite component is treated this way.
func IsInf(z complex128) bool {
	re, im := real(z), imag(z)
	return math.IsInf(re, 0) || math.IsInf(im, 0) || math.IsNaN(re) || math.IsNaN(im)
}

// Infinity is the canonical encoding of the point at infinity.
var Infinity = cmplx.Inf()
