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

package ifs

import (
	"context"
	"fmt"
	"iter"
	"math/rand/v2"

	"seehuhn.de/go/schottky/granny"
)

// Source is a source of random generator indices.
// A *rand.Rand from math/rand/v2 implements this interface.
type Source interface {
	IntN(n int) int
}

// checkInterval is the number of iterations between two checks for
// cancellation of the context.
const checkInterval = 1024

// Sampler generates points of the limit set of a group.
//
// A Sampler must not be used concurrently; see [Parallel] for running
// several independent orbits.
type Sampler struct {
	gens *granny.Generators
	src  Source
}

// New returns a sampler for the given generators.
// If src is nil, a generator seeded from system entropy is used.
func New(gens *granny.Generators, src Source) *Sampler {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sampler{gens: gens, src: src}
}

// Run performs n iterations of the random walk and calls emit for every
// accepted step from iteration [Warmup] onwards.  Each call to Run starts
// a new orbit.
//
// The number of points emitted equals n - Warmup, minus the number of
// rejected steps after the warm-up.  If an error occurs part way through,
// emit may already have been called; use [Sampler.Sample] to avoid partial
// output.
func (s *Sampler) Run(ctx context.Context, n int, emit func(Point)) (Stats, error) {
	var stats Stats
	if n <= Warmup {
		return stats, fmt.Errorf("ifs: %d iterations, need more than %d: %w",
			n, Warmup, ErrInvalidArgument)
	}

	fix, err := s.gens.FixedPoints()
	if err != nil {
		return stats, fmt.Errorf("ifs: seed points: %w", err)
	}

	r := s.src.IntN(len(s.gens.Maps))
	orbit := NewOrbit(s.gens, r, fix[r][0])

	for i := range n {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}

		r = s.src.IntN(len(s.gens.Maps))
		accepted, err := orbit.Step(r)
		if err != nil {
			return stats, fmt.Errorf("ifs: iteration %d: %w", i, err)
		}
		stats.Iterations++
		if !accepted {
			stats.Rejected++
			continue
		}
		stats.Accepted++

		if i >= Warmup {
			stats.Emitted++
			emit(Point{Z: orbit.Z, Gen: r})
		}
	}
	return stats, nil
}

// Sample runs n iterations and returns the emitted points.
// If an error occurs, no points are returned.
func (s *Sampler) Sample(ctx context.Context, n int) ([]Point, Stats, error) {
	var points []Point
	if n > Warmup {
		points = make([]Point, 0, n-Warmup)
	}
	stats, err := s.Run(ctx, n, func(p Point) {
		points = append(points, p)
	})
	if err != nil {
		return nil, stats, err
	}
	return points, stats, nil
}

// Points returns the orbit of n iterations as a lazy sequence.
//
// Points are yielded as they are produced.  If an error occurs part way
// through, the points yielded so far have already been delivered and the
// sequence ends with a zero Point and the error; use [Sampler.Sample] to
// avoid partial output.  Breaking out of the loop stops the walk.
func (s *Sampler) Points(ctx context.Context, n int) iter.Seq2[Point, error] {
	return func(yield func(Point, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		stopped := false
		_, err := s.Run(ctx, n, func(p Point) {
			if stopped {
				return
			}
			if !yield(p, nil) {
				stopped = true
				cancel()
			}
		})
		if err != nil && !stopped {
			yield(Point{}, err)
		}
	}
}
