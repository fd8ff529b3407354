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

package granny

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/schottky/mobius"
)

var testParams = []struct {
	ta, tb complex128
}{
	{2, 2 - 0.1i},
	{2, 2 + 0.5i},
	{1.91 + 0.05i, 1.91 + 0.05i},
	{3, 3},
	{2.2, 1.8 + 0.3i},
}

func approx(eps float64) cmp.Option {
	return cmp.Comparer(func(a, b complex128) bool {
		return mobius.Abs(a-b) <= eps
	})
}

func TestTraces(t *testing.T) {
	for i, p := range testParams {
		t.Run(fmt.Sprintf("params%d", i), func(t *testing.T) {
			g, err := New(p.ta, p.tb)
			if err != nil {
				t.Fatal(err)
			}
			a, b := g.Maps[0], g.Maps[2]

			got := []complex128{a.Trace(), b.Trace(), a.Mul(b).Trace()}
			want := []complex128{p.ta, p.tb, g.TAB}
			if d := cmp.Diff(want, got, approx(1e-9)); d != "" {
				t.Error(d)
			}

			// the commutator abAB is parabolic with trace -2
			comm := mobius.Compose(a, b, g.Maps[1], g.Maps[3])
			if d := cmp.Diff(complex128(-2), comm.Trace(), approx(1e-8)); d != "" {
				t.Error(d)
			}

			// tab solves the trace equation
			residual := g.TAB*g.TAB - p.ta*p.tb*g.TAB + p.ta*p.ta + p.tb*p.tb
			if mobius.Abs(residual) > 1e-9 {
				t.Errorf("trace equation residual %g", residual)
			}
		})
	}
}

func TestInversePairs(t *testing.T) {
	for i, p := range testParams {
		t.Run(fmt.Sprintf("params%d", i), func(t *testing.T) {
			g, err := New(p.ta, p.tb)
			if err != nil {
				t.Fatal(err)
			}
			if g.Inverse != [4]int{1, 0, 3, 2} {
				t.Errorf("inverse table %v", g.Inverse)
			}
			for k, T := range g.Maps {
				P := mobius.Compose(T, g.Maps[g.Inverse[k]])
				if d := cmp.Diff(mobius.Identity, P, approx(1e-9)); d != "" {
					t.Errorf("%s: %s", Names[k], d)
				}
				Q := mobius.Compose(T, T.Inv())
				if d := cmp.Diff(mobius.Identity, Q, approx(1e-9)); d != "" {
					t.Errorf("%s: %s", Names[k], d)
				}
				if d := cmp.Diff(complex128(1), T.Det(), approx(1e-9)); d != "" {
					t.Errorf("det %s: %s", Names[k], d)
				}
			}
			if err := g.Check(1e-9); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestCheckDetectsBrokenTable(t *testing.T) {
	g, err := New(2, 2-0.1i)
	if err != nil {
		t.Fatal(err)
	}
	g.Inverse = [4]int{2, 3, 0, 1}
	if err := g.Check(1e-9); err == nil {
		t.Error("broken inverse table not detected")
	}
}

func TestFixedPoints(t *testing.T) {
	for i, p := range testParams {
		t.Run(fmt.Sprintf("params%d", i), func(t *testing.T) {
			g, err := New(p.ta, p.tb)
			if err != nil {
				t.Fatal(err)
			}
			fix, err := g.FixedPoints()
			if err != nil {
				t.Fatal(err)
			}
			for k, T := range g.Maps {
				for _, z := range fix[k] {
					w, err := T.Apply(z)
					if err != nil {
						t.Fatal(err)
					}
					if d := cmp.Diff(z, w, approx(1e-9)); d != "" {
						t.Errorf("%s: %s", Names[k], d)
					}
				}
			}
		})
	}
}

// TestZeroTraces checks that degenerate parameters are reported instead
// of producing NaN coefficients.
func TestZeroTraces(t *testing.T) {
	g, err := New(0, 0)
	if !errors.Is(err, mobius.ErrDivisionByZero) {
		t.Errorf("got %v, want ErrDivisionByZero", err)
	}
	if g != nil {
		t.Errorf("got generators %v", g.Maps)
	}
}

func TestDeterministic(t *testing.T) {
	g1, err := New(2, 2-0.1i)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := New(2, 2-0.1i)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(g1, g2, cmpopts.EquateNaNs()); d != "" {
		t.Error(d)
	}
}
