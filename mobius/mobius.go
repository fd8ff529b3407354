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

import "fmt"

// Transform represents the Möbius transformation
//
//	z ↦ (a*z + b) / (c*z + d)
//
// with coefficients stored in the order [a b c d].  The coefficients
// can be read as the 2x2 complex matrix
//
//	/ a b \
//	\ c d /
//
// and composition of transformations corresponds to matrix multiplication.
// Transforms are values; none of the methods modify the receiver.
type Transform [4]complex128

// Identity is the identity transformation.
var Identity = Transform{1, 0, 0, 1}

// Mul returns the composition T∘S, i.e. the transformation which first
// applies S and then T.
func (T Transform) Mul(S Transform) Transform {
	// / T0 T1 \  / S0 S1 \   / T0*S0+T1*S2  T0*S1+T1*S3 \
	// \ T2 T3 /  \ S2 S3 / = \ T2*S0+T3*S2  T2*S1+T3*S3 /
	return Transform{
		T[0]*S[0] + T[1]*S[2],
		T[0]*S[1] + T[1]*S[3],
		T[2]*S[0] + T[3]*S[2],
		T[2]*S[1] + T[3]*S[3],
	}
}

// Compose multiplies the given transformations from left to right.
//
// The result applies the right-most transformation first, so that
// Compose(A, B).Apply(z) equals A.Apply(B.Apply(z)).
// Compose() returns the identity.
func Compose(ts ...Transform) Transform {
	res := Identity
	for _, T := range ts {
		res = res.Mul(T)
	}
	return res
}

// Inv returns the inverse transformation (d, -b, -c, a).
//
// The result is the inverse matrix scaled by the determinant, which
// represents the same Möbius transformation.  Inversion is exact:
// T.Inv().Inv() == T.
func (T Transform) Inv() Transform {
	return Transform{T[3], -T[1], -T[2], T[0]}
}

// Det returns the determinant ad - bc.
func (T Transform) Det() complex128 {
	return T[0]*T[3] - T[1]*T[2]
}

// Trace returns a + d.
func (T Transform) Trace() complex128 {
	return T[0] + T[3]
}

// Normalize scales the coefficients by 1/√(ad-bc), so that the result
// has determinant 1.  The square root is taken as in [Sqrt].
func (T Transform) Normalize() (Transform, error) {
	s := Sqrt(T.Det())
	var res Transform
	for i, x := range T {
		y, err := Div(x, s)
		if err != nil {
			return Identity, fmt.Errorf("normalize %s: %w", T, err)
		}
		res[i] = y
	}
	return res, nil
}

// Scaled divides all coefficients by the largest coefficient modulus.
// This does not change the action of the transformation on points,
// but keeps long products of transformations from overflowing.
func (T Transform) Scaled() Transform {
	m := 0.0
	for _, x := range T {
		m = max(m, Abs(x))
	}
	if m == 0 || m == 1 || IsInf(complex(m, 0)) {
		return T
	}
	f := complex(1/m, 0)
	return Transform{T[0] * f, T[1] * f, T[2] * f, T[3] * f}
}

// Apply maps the point z.
//
// If z is the point at infinity (see [IsInf]), the result is a/c.
// ErrDivisionByZero is returned if z is a pole of T.
func (T Transform) Apply(z complex128) (complex128, error) {
	if IsInf(z) {
		return Div(T[0], T[2])
	}
	return Div(T[0]*z+T[1], T[2]*z+T[3])
}

// FixedPoints returns the two solutions of T(z) = z.
//
// The points are ordered (attracting, repelling), decided by the
// multiplier k = n² where n = (tr T + √(tr T² - 4)) / 2 is computed for
// the normalized transformation.  For parabolic transformations both
// values coincide.
func (T Transform) FixedPoints() ([2]complex128, error) {
	m, err := T.Normalize()
	if err != nil {
		return [2]complex128{}, err
	}
	tr := m.Trace()
	tr2 := m.Mul(m).Trace()
	n := (tr + Sqrt(tr2-4)) / 2
	k := n * n

	s := Sqrt(tr*tr - 4)
	zPlus, err := Div(m[0]-m[3]+s, 2*m[2])
	if err != nil {
		return [2]complex128{}, fmt.Errorf("fixed points of %s: %w", T, err)
	}
	zMinus, err := Div(m[0]-m[3]-s, 2*m[2])
	if err != nil {
		return [2]complex128{}, fmt.Errorf("fixed points of %s: %w", T, err)
	}

	if Abs(k) > 1 {
		return [2]complex128{zPlus, zMinus}, nil
	}
	return [2]complex128{zMinus, zPlus}, nil
}

// NearlyEqual reports whether all coefficients of T and S differ by at
// most eps.
func (T Transform) NearlyEqual(S Transform, eps float64) bool {
	for i := range T {
		if Abs(T[i]-S[i]) > eps {
			return false
		}
	}
	return true
}

func (T Transform) String() string {
	return fmt.Sprintf("[%g %g %g %g]", T[0], T[1], T[2], T[3])
}
