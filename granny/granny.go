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

// Package granny constructs the generators of a two-generator Schottky
// group from a pair of complex traces, following "grandma's recipe".
//
// Given traces ta and tb, the recipe first chooses the trace tab of the
// product ab as a root of
//
//	x² - ta*tb*x + ta² + tb² = 0,
//
// which is the condition for the commutator abAB to be parabolic with
// trace -2.  It then writes down explicit matrices for b and ab and
// obtains a = ab*B.  The four generators a, A, b, B are returned together
// with the table of inverse indices.
package granny

import (
	"errors"
	"fmt"

	"seehuhn.de/go/schottky/mobius"
)

// Inverse maps each generator index to the index of its inverse.
var Inverse = [4]int{1, 0, 3, 2}

// Names are the conventional names of the four generators.
var Names = [4]string{"a", "A", "b", "B"}

// Generators is the output of the recipe.
// The value is read-only after construction and can be shared between
// goroutines.
type Generators struct {
	// Maps holds the generators in the order a, A, b, B.
	Maps [4]mobius.Transform

	// Inverse[i] is the index of the inverse of Maps[i].
	Inverse [4]int

	TA, TB, TAB complex128
}

// New computes the generators for the traces ta and tb.
//
// Any complex values are accepted, but not all of them lead to a discrete
// group.  An error wrapping [mobius.ErrDivisionByZero] is returned for
// degenerate parameters, for example ta = tb = 0.
func New(ta, tb complex128) (*Generators, error) {
	// The second root is used for tab.  The choice determines which
	// of two mirror-image groups is drawn.
	roots, err := mobius.SolveQuadratic(1, -ta*tb, mobius.Pow(ta, 2)+mobius.Pow(tb, 2))
	if err != nil {
		return nil, wrap("tab", ta, tb, err)
	}
	tab := roots[1]

	z0, err := mobius.Div((tab-2)*tb, tb*tab-2*ta+2i*tab)
	if err != nil {
		return nil, wrap("z0", ta, tb, err)
	}

	b := mobius.Transform{
		(tb - 2i) / 2,
		tb / 2,
		tb / 2,
		(tb + 2i) / 2,
	}
	ab12, err := mobius.Div(tab-2, 2*z0)
	if err != nil {
		return nil, wrap("ab", ta, tb, err)
	}
	ab := mobius.Transform{
		tab / 2,
		ab12,
		(tab + 2) * z0 / 2,
		tab / 2,
	}

	B := b.Inv()
	a := ab.Mul(B)
	A := a.Inv()

	gens := &Generators{
		Maps:    [4]mobius.Transform{a, A, b, B},
		Inverse: Inverse,
		TA:      ta,
		TB:      tb,
		TAB:     tab,
	}
	for i, T := range gens.Maps {
		for _, x := range T {
			if mobius.IsInf(x) {
				return nil, fmt.Errorf("granny: generator %s for ta=%g, tb=%g: %w",
					Names[i], ta, tb, ErrNonFinite)
			}
		}
	}
	return gens, nil
}

func wrap(step string, ta, tb complex128, err error) error {
	return fmt.Errorf("granny: %s for ta=%g, tb=%g: %w", step, ta, tb, err)
}

// ErrNonFinite is returned when the recipe produces a coefficient which
// is not a finite complex number.
var ErrNonFinite = errors.New("non-finite coefficient")

// Check verifies that each generator composed with its inverse is the
// identity, up to the tolerance eps.
func (g *Generators) Check(eps float64) error {
	for i, T := range g.Maps {
		j := g.Inverse[i]
		if g.Inverse[j] != i {
			return fmt.Errorf("granny: inverse table is not an involution at %d", i)
		}
		P := mobius.Compose(T, g.Maps[j])
		if !P.NearlyEqual(mobius.Identity, eps) {
			return fmt.Errorf("granny: %s%s = %s is not the identity", Names[i], Names[j], P)
		}
	}
	return nil
}

// FixedPoints returns the fixed points of all four generators, in the
// order returned by [mobius.Transform.FixedPoints].
func (g *Generators) FixedPoints() ([4][2]complex128, error) {
	var res [4][2]complex128
	for i, T := range g.Maps {
		fix, err := T.FixedPoints()
		if err != nil {
			return res, fmt.Errorf("granny: generator %s: %w", Names[i], err)
		}
		res[i] = fix
	}
	return res, nil
}
