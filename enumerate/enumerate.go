// Package enumerate drives the grow → canonicalize → deduplicate cycle
// that produces every distinct polyomino/polycube of a target size.
package enumerate

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/polycube/cell"
	"github.com/katalvlaran/polycube/shape"
	"github.com/katalvlaran/polycube/symmetry"
)

// Grow produces every candidate of size n+1 obtainable by adding one
// frontier cell to s, normalized but NOT canonicalized: many different
// (shape, neighbor) pairs across a generation yield geometrically identical
// or symmetric candidates, and eliminating those duplicates is deliberately
// the driver's job. Exactly len(s.Neighbors()) candidates are returned.
// Complexity: O(f · n log n) with f = frontier size.
func Grow(s shape.Shape) ([]shape.Shape, error) {
	frontier := s.Neighbors()
	out := make([]shape.Shape, 0, len(frontier))
	for _, c := range frontier {
		grown, err := s.Extend(c)
		if err != nil {
			return nil, fmt.Errorf("%w: extending by frontier cell %v: %v", ErrInvariant, c, err)
		}
		out = append(out, grown)
	}

	return out, nil
}

// Generate enumerates all canonical shapes of sizes 1..maxN under the
// given options and returns the per-size counts (and, with WithShapes,
// the shapes themselves, sorted under shape.Compare).
//
// The driver is a strict state machine: Generation(1) is the single
// origin cell; each transition grows every shape of Generation(n),
// canonicalizes every candidate, and inserts it into Generation(n+1)
// exactly when its canonical key is new.
//
// Returns ErrInvalidSize for maxN < 1, ErrOptionViolation for bad options,
// the context's error when cancelled, and ErrInvariant for internal bugs.
func Generate(maxN int, opts ...Option) (*Result, error) {
	if maxN < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, maxN)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Generation(1): the single-cell shape at the origin. It is invariant
	// under the whole symmetry group, so it is canonical as constructed.
	start := time.Now()
	origin, err := shape.New(o.Dim, []cell.Cell{{}})
	if err != nil {
		return nil, fmt.Errorf("%w: building origin: %v", ErrInvariant, err)
	}
	current := []shape.Shape{origin}
	res := &Result{Dim: o.Dim, Counts: []int{1}}
	if o.KeepShapes {
		res.Generations = [][]shape.Shape{current}
	}
	o.OnGeneration(GenerationStats{Size: 1, Candidates: 1, Found: 1, Elapsed: time.Since(start)})

	for n := 2; n <= maxN; n++ {
		start = time.Now()
		next, tried, err := nextGeneration(o, current, n)
		if err != nil {
			return nil, err
		}
		res.Counts = append(res.Counts, len(next))
		if o.KeepShapes {
			res.Generations = append(res.Generations, next)
		}
		o.OnGeneration(GenerationStats{
			Size:       n,
			Candidates: tried,
			Found:      len(next),
			Elapsed:    time.Since(start),
		})
		current = next
	}

	return res, nil
}

// Count returns |Generation(maxN)|: the number of distinct polyominoes or
// polycubes of the target size, up to rotation and reflection.
func Count(maxN int, opts ...Option) (int, error) {
	res, err := Generate(maxN, opts...)
	if err != nil {
		return 0, err
	}
	return res.Counts[maxN-1], nil
}

// nextGeneration performs one transition Generation(n-1) → Generation(n),
// sequentially or across workers, and sorts the merged result so callers
// see a deterministic order regardless of map iteration or scheduling.
func nextGeneration(o Options, prev []shape.Shape, n int) ([]shape.Shape, int, error) {
	var (
		merged map[string]shape.Shape
		tried  int
		err    error
	)
	if o.Workers <= 1 || len(prev) < o.Workers {
		merged, tried, err = growChunk(o.Ctx, prev, n)
	} else {
		merged, tried, err = growParallel(o, prev, n)
	}
	if err != nil {
		return nil, 0, err
	}

	next := make([]shape.Shape, 0, len(merged))
	for _, s := range merged {
		next = append(next, s)
	}
	sort.Slice(next, func(i, j int) bool {
		return shape.Compare(next[i], next[j]) < 0
	})

	return next, tried, nil
}

// growChunk grows and canonicalizes one slice of the previous generation
// into a private canonical-key → shape map: the "map" half of the
// map-then-merge pattern. It is the only hot loop of the engine.
func growChunk(ctx context.Context, prev []shape.Shape, n int) (map[string]shape.Shape, int, error) {
	out := make(map[string]shape.Shape, len(prev)*3)
	tried := 0
	for _, s := range prev {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}
		for _, c := range s.Neighbors() {
			tried++
			grown, err := s.Extend(c)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: growing a size-%d candidate: %v", ErrInvariant, n, err)
			}
			canon, err := symmetry.Canonicalize(grown)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: canonicalizing a size-%d candidate: %v", ErrInvariant, n, err)
			}
			if canon.Size() != n {
				return nil, 0, fmt.Errorf("%w: canonical shape has %d cells, want %d", ErrInvariant, canon.Size(), n)
			}
			out[canon.Key()] = canon
		}
	}

	return out, tried, nil
}
