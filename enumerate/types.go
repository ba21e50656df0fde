// Package enumerate defines tunable options, result types, and sentinel
// errors for the generation driver.
package enumerate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/polycube/cell"
	"github.com/katalvlaran/polycube/shape"
)

// Sentinel errors for enumeration.
var (
	// ErrInvalidSize is returned when the requested target size is < 1.
	ErrInvalidSize = errors.New("enumerate: target size must be at least 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enumerate: invalid option supplied")

	// ErrInvariant indicates a growth or canonicalization step produced an
	// impossible shape — a programming bug, not a runtime input condition.
	// The run aborts; nothing is skipped silently.
	ErrInvariant = errors.New("enumerate: internal invariant violation")

	// ErrSnakeStuck is returned by RandomSnake when the walk has no free
	// adjacent cell left before reaching its target length.
	ErrSnakeStuck = errors.New("enumerate: snake walled itself in")
)

// GenerationStats describes one completed generation, for progress hooks.
type GenerationStats struct {
	// Size is the cell count of this generation's shapes.
	Size int
	// Candidates is the number of raw growth candidates tried (pre-dedup).
	Candidates int
	// Found is the number of distinct canonical shapes in the generation.
	Found int
	// Elapsed is the wall time spent deriving this generation.
	Elapsed time.Duration
}

// Option configures enumeration behavior via functional arguments.
// An invalid Option (unknown dimensionality, nonpositive worker count) is
// recorded internally and surfaced as ErrOptionViolation when the driver
// is invoked — before any generation work begins.
type Option func(*Options)

// Options holds parameters and callbacks for Generate, Count, and the
// random generators.
type Options struct {
	// Ctx allows cancellation of long enumerations; defaults to
	// context.Background(). The engine has no timeout concept of its own:
	// it either runs to completion for the requested size or is not started.
	Ctx context.Context

	// Dim selects polyominoes (Dim2, default) or polycubes (Dim3).
	Dim cell.Dim

	// Workers is the number of goroutines growing one generation.
	// 1 (default) is the sequential baseline.
	Workers int

	// KeepShapes retains every generation's canonical shapes in the
	// Result; off by default, since counting alone needs no storage
	// beyond the previous generation.
	KeepShapes bool

	// OnGeneration is called once per completed generation, in order.
	OnGeneration func(GenerationStats)

	// Seed drives the random generators (RandomSnake, RandomShape).
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Dim2, single worker, shapes discarded after counting
//   - no-op generation hook
//   - a time-derived random seed.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Dim:          cell.Dim2,
		Workers:      1,
		KeepShapes:   false,
		OnGeneration: func(GenerationStats) {},
		Seed:         time.Now().UnixNano(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDim selects the dimensionality: cell.Dim2 or cell.Dim3.
func WithDim(d cell.Dim) Option {
	return func(o *Options) {
		if !d.Valid() {
			o.err = fmt.Errorf("%w: dimensionality %d", ErrOptionViolation, int(d))
			return
		}
		o.Dim = d
	}
}

// WithWorkers sets the number of goroutines used per generation transition.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithShapes retains the canonical shapes of every generation in the Result.
func WithShapes() Option {
	return func(o *Options) {
		o.KeepShapes = true
	}
}

// WithOnGeneration registers a progress hook, called once per generation.
func WithOnGeneration(fn func(GenerationStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGeneration = fn
		}
	}
}

// WithSeed fixes the seed of the random generators for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// Result holds the outcome of a Generate run.
type Result struct {
	// Dim is the dimensionality the run was performed under.
	Dim cell.Dim
	// Counts[n-1] is |Generation(n)| for n = 1..N.
	Counts []int
	// Generations[n-1] is the sorted canonical shape list of Generation(n);
	// nil unless WithShapes was supplied.
	Generations [][]shape.Shape
}

// Count returns |Generation(n)|, or 0 for an out-of-range n.
func (r *Result) Count(n int) int {
	if n < 1 || n > len(r.Counts) {
		return 0
	}
	return r.Counts[n-1]
}

// Generation returns the sorted canonical shapes of size n, or nil when
// the run did not retain shapes or n is out of range.
func (r *Result) Generation(n int) []shape.Shape {
	if r.Generations == nil || n < 1 || n > len(r.Generations) {
		return nil
	}
	return r.Generations[n-1]
}
