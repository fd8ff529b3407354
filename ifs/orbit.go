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

// Package ifs samples limit sets by the random-orbit method.
//
// A [Sampler] walks the semigroup generated by the four maps of a
// [granny.Generators] value.  In every step a generator index is drawn
// uniformly at random.  If the drawn map is the inverse of the previous
// one, the step is rejected and the orbit is left unchanged.  Otherwise the
// map is composed onto the accumulated transformation and the current
// point is moved.  The first [Warmup] iterations are discarded, after which
// every accepted step emits a [Point].
package ifs

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/schottky/granny"
	"seehuhn.de/go/schottky/mobius"
)

// Warmup is the number of initial iterations which never produce output.
const Warmup = 200

// DefaultIterations is the iteration budget used by interactive hosts.
const DefaultIterations = 10000

// ErrInvalidArgument is returned for iteration counts which would not
// produce any output.
var ErrInvalidArgument = errors.New("invalid argument")

// Point is a point of the orbit, together with the index of the generator
// which produced it.
type Point struct {
	Z   complex128
	Gen int
}

// Vec returns the point as a vector in the real plane.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: real(p.Z), Y: imag(p.Z)}
}

// Orbit is the state of a random walk over the generators.
//
// Each call to [Orbit.Step] either accepts the proposed generator, updating
// all fields, or rejects it and leaves the orbit unchanged.
type Orbit struct {
	gens *granny.Generators

	// T is the accumulated transformation.  It is rescaled after every
	// step, so only its action on points is meaningful.
	T mobius.Transform

	// Z is the current point.
	Z complex128

	// Prev is the index of the most recently accepted generator.
	Prev int
}

// NewOrbit starts a walk at generator r with current point z.
// The sampler seeds z with the first fixed point of generator r.
func NewOrbit(gens *granny.Generators, r int, z complex128) *Orbit {
	return &Orbit{
		gens: gens,
		T:    gens.Maps[r],
		Z:    z,
		Prev: r,
	}
}

// Step proposes generator r.
// Steps which would undo the previous step are rejected.
func (o *Orbit) Step(r int) (accepted bool, err error) {
	if r == o.gens.Inverse[o.Prev] {
		return false, nil
	}
	T := o.gens.Maps[r].Mul(o.T).Scaled()
	z, err := T.Apply(o.Z)
	if err != nil {
		return false, err
	}
	o.T = T
	o.Z = z
	o.Prev = r
	return true, nil
}

// Stats summarises one run of the sampler.
type Stats struct {
	Iterations int // iterations performed
	Accepted   int // steps which changed the orbit
	Rejected   int // steps which were rejected as backtracking
	Emitted    int // points passed to the caller
}

func (s Stats) String() string {
	return fmt.Sprintf("%d iterations, %d accepted, %d rejected, %d emitted",
		s.Iterations, s.Accepted, s.Rejected, s.Emitted)
}
