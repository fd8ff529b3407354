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
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"seehuhn.de/go/schottky/granny"
)

// Parallel runs independent orbits on several goroutines and returns the
// concatenated output, in worker order.
//
// The iteration budget n is split between the workers as evenly as
// possible; the first n mod workers workers run one extra iteration, so
// that exactly n iterations are performed in total.  Each worker
// owns a PCG generator with the given seed and its worker index as the
// stream, so that the result is reproducible for a fixed seed and number
// of workers.  The generators are shared read-only.
//
// If any worker fails, the first error is returned and no points are
// returned.
func Parallel(ctx context.Context, gens *granny.Generators, n, workers int, seed uint64) ([]Point, Stats, error) {
	if workers < 1 {
		return nil, Stats{}, fmt.Errorf("ifs: %d workers: %w", workers, ErrInvalidArgument)
	}
	per, extra := n/workers, n%workers
	if per <= Warmup {
		return nil, Stats{}, fmt.Errorf("ifs: %d iterations per worker, need more than %d: %w",
			per, Warmup, ErrInvalidArgument)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		points []Point
		stats  Stats
		err    error
	}
	results := make([]result, workers)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count := per
			if w < extra {
				count++
			}
			src := rand.New(rand.NewPCG(seed, uint64(w)))
			points, stats, err := New(gens, src).Sample(ctx, count)
			if err != nil {
				cancel()
			}
			results[w] = result{points, stats, err}
		}()
	}
	wg.Wait()

	// Prefer the error which caused the other workers to be cancelled.
	var firstErr error
	for _, res := range results {
		if res.err != nil && (firstErr == nil || errors.Is(firstErr, context.Canceled)) {
			firstErr = res.err
		}
	}
	if firstErr != nil {
		return nil, Stats{}, firstErr
	}

	var total Stats
	count := 0
	for _, res := range results {
		total.Iterations += res.stats.Iterations
		total.Accepted += res.stats.Accepted
		total.Rejected += res.stats.Rejected
		total.Emitted += res.stats.Emitted
		count += len(res.points)
	}

	all := make([]Point, 0, count)
	for _, res := range results {
		all = append(all, res.points...)
	}
	return all, total, nil
}
