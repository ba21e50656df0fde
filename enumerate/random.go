package enumerate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/polycube/cell"
	"github.com/katalvlaran/polycube/shape"
)

// RandomSnake grows a random self-avoiding snake of n cells: starting at
// the origin, each step moves the head to a uniformly chosen free adjacent
// cell. The walk has no backtracking, so a tight spiral can wall the head
// in, in which case ErrSnakeStuck is returned. Deterministic under WithSeed.
// Complexity: O(n·d) expected.
func RandomSnake(n int, opts ...Option) (shape.Shape, error) {
	if n < 1 {
		return shape.Shape{}, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return shape.Shape{}, o.err
	}
	moves, err := cell.Moves(o.Dim)
	if err != nil {
		return shape.Shape{}, err
	}
	rng := rand.New(rand.NewSource(o.Seed))

	head := cell.Cell{}
	cells := []cell.Cell{head}
	occupied := map[cell.Cell]struct{}{head: {}}
	for len(cells) < n {
		grown := false
		for _, i := range rng.Perm(len(moves)) {
			next := head.Add(moves[i])
			if _, in := occupied[next]; in {
				continue
			}
			head = next
			cells = append(cells, head)
			occupied[head] = struct{}{}
			grown = true
			break
		}
		if !grown {
			return shape.Shape{}, fmt.Errorf("%w: after %d of %d cells", ErrSnakeStuck, len(cells), n)
		}
	}

	return shape.New(o.Dim, cells)
}

// RandomShape grows a random shape of n cells by repeatedly attaching a
// uniformly chosen frontier cell to the whole shape. Unlike RandomSnake it
// can always grow, so it never fails for valid sizes. Deterministic under
// WithSeed.
// Complexity: O(n² · d).
func RandomShape(n int, opts ...Option) (shape.Shape, error) {
	if n < 1 {
		return shape.Shape{}, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return shape.Shape{}, o.err
	}
	rng := rand.New(rand.NewSource(o.Seed))

	s, err := shape.New(o.Dim, []cell.Cell{{}})
	if err != nil {
		return shape.Shape{}, err
	}
	for s.Size() < n {
		frontier := s.Neighbors()
		s, err = s.Extend(frontier[rng.Intn(len(frontier))])
		if err != nil {
			return shape.Shape{}, fmt.Errorf("%w: attaching frontier cell: %v", ErrInvariant, err)
		}
	}

	return s, nil
}
