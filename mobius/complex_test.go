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
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// approx compares complex numbers up to a relative error of 1e-9.
var approx = cmp.Comparer(func(a, b complex128) bool {
	return cmplx.Abs(a-b) <= 1e-9*(1+cmplx.Abs(a)+cmplx.Abs(b))
})

var testNumbers = []complex128{
	1,
	-1,
	1i,
	2 - 0.1i,
	-3.5 + 2i,
	0.001 + 1000i,
	-7e-5 - 3e-4i,
}

func TestDiv(t *testing.T) {
	for i, a := range testNumbers {
		for j, b := range testNumbers {
			t.Run(fmt.Sprintf("%d/%d", i, j), func(t *testing.T) {
				q, err := Div(a, b)
				if err != nil {
					t.Fatal(err)
				}
				if d := cmp.Diff(a, q*b, approx); d != "" {
					t.Error(d)
				}
				if d := cmp.Diff(a/b, q, approx); d != "" {
					t.Error(d)
				}
			})
		}
	}
}

func TestDivByZero(t *testing.T) {
	for _, a := range append(testNumbers, 0) {
		_, err := Div(a, 0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Div(%g, 0): got %v, want ErrDivisionByZero", a, err)
		}
	}
}

func TestPolar(t *testing.T) {
	for _, z := range testNumbers {
		r, theta := Polar(z)
		if theta <= -math.Pi || theta > math.Pi {
			t.Errorf("Phase(%g) = %g out of range", z, theta)
		}
		if d := cmp.Diff(z, FromPolar(r, theta), approx); d != "" {
			t.Error(d)
		}
	}
	if Phase(-1) != math.Pi {
		t.Errorf("Phase(-1) = %g", Phase(-1))
	}
}

func TestSqrt(t *testing.T) {
	for _, z := range append(testNumbers, 0, -4) {
		s := Sqrt(z)
		if d := cmp.Diff(z, s*s, approx); d != "" {
			t.Errorf("Sqrt(%g)²: %s", z, d)
		}
		if real(s) < 0 {
			t.Errorf("Sqrt(%g) = %g not in the right half plane", z, s)
		}
	}

	// the branch cut is the negative real axis
	above := Sqrt(complex(-4, 1e-12))
	below := Sqrt(complex(-4, -1e-12))
	if d := cmp.Diff(complex128(2i), above, approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(complex128(-2i), below, approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(complex128(2i), Sqrt(-4), approx); d != "" {
		t.Error(d)
	}
}

func TestPow(t *testing.T) {
	for _, z := range testNumbers {
		if d := cmp.Diff(z*z, Pow(z, 2), approx); d != "" {
			t.Error(d)
		}
		if d := cmp.Diff(Sqrt(z), Pow(z, 0.5), approx); d != "" {
			t.Error(d)
		}
		if d := cmp.Diff(complex128(1), Pow(z, 0), approx); d != "" {
			t.Error(d)
		}
	}
}

func TestIsInf(t *testing.T) {
	cases := []struct {
		z    complex128
		want bool
	}{
		{0, false},
		{1 + 1i, false},
		{Infinity, true},
		{complex(math.NaN(), 0), true},
		{complex(0, math.Inf(-1)), true},
		{cmplx.NaN(), true},
	}
	for _, c := range cases {
		if got := IsInf(c.z); got != c.want {
			t.Errorf("IsInf(%g) = %t, want %t", c.z, got, c.want)
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	cases := [][3]complex128{
		{1, 0, -1},
		{1, 2, 1},
		{2 + 1i, -3, 5i},
		{1, -(2 * (2 - 0.1i)), 4 + (2-0.1i)*(2-0.1i)},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			roots, err := SolveQuadratic(c[0], c[1], c[2])
			if err != nil {
				t.Fatal(err)
			}
			for _, x := range roots {
				val := c[0]*x*x + c[1]*x + c[2]
				if cmplx.Abs(val) > 1e-9 {
					t.Errorf("root %g gives residual %g", x, val)
				}
			}
			if d := cmp.Diff(-c[1]/c[0], roots[0]+roots[1], approx); d != "" {
				t.Error(d)
			}
		})
	}

	_, err := SolveQuadratic(0, 1, 1)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("degenerate quadratic: got %v", err)
	}
}
