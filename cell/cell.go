// Package cell provides the integer-grid coordinate primitives for the
// polycube enumeration engine.
package cell

import (
	"errors"
	"fmt"
)

// ErrInvalidDim is returned when a dimensionality other than Dim2 or Dim3
// is supplied.
var ErrInvalidDim = errors.New("cell: invalid dimensionality")

// Dim selects the active dimensionality of the engine.
type Dim int

const (
	// Dim2 enumerates polyominoes on the XY plane; every cell keeps Z = 0.
	Dim2 Dim = 2
	// Dim3 enumerates polycubes in XYZ space.
	Dim3 Dim = 3
)

// Valid reports whether d is a supported dimensionality.
func (d Dim) Valid() bool {
	return d == Dim2 || d == Dim3
}

// String returns "2D" or "3D", or a diagnostic form for unknown values.
func (d Dim) String() string {
	switch d {
	case Dim2:
		return "2D"
	case Dim3:
		return "3D"
	default:
		return fmt.Sprintf("Dim(%d)", int(d))
	}
}

// Cell is a single unit cell on the integer grid, identified by its
// coordinates. Immutable value type; equality is component-wise.
// 2D shapes keep Z = 0 for every cell.
type Cell struct {
	X, Y, Z int
}

// Add returns the component-wise sum c + o.
// Complexity: O(1).
func (c Cell) Add(o Cell) Cell {
	return Cell{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Sub returns the component-wise difference c - o.
// Complexity: O(1).
func (c Cell) Sub(o Cell) Cell {
	return Cell{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

// String renders the cell as "(x,y)" in 2D form when Z is zero,
// or "(x,y,z)" otherwise.
func (c Cell) String() string {
	if c.Z == 0 {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Compare orders cells component-wise: X first, then Y, then Z.
// Returns -1 if a < b, 0 if a == b, +1 if a > b.
// This is the one fixed total order used for shape normalization and
// canonical selection throughout the engine.
// Complexity: O(1).
func Compare(a, b Cell) int {
	if a.X != b.X {
		return sign(a.X - b.X)
	}
	if a.Y != b.Y {
		return sign(a.Y - b.Y)
	}
	return sign(a.Z - b.Z)
}

// Less reports whether a precedes b under Compare.
func Less(a, b Cell) bool {
	return Compare(a, b) < 0
}

// Adjacent reports whether a and b share a face: their Manhattan distance
// is exactly 1. A cell is never adjacent to itself.
// Complexity: O(1).
func Adjacent(a, b Cell) bool {
	return abs(a.X-b.X)+abs(a.Y-b.Y)+abs(a.Z-b.Z) == 1
}

// moves2 and moves3 are the unit offsets reachable from a cell under face
// adjacency, in Compare order.
var (
	moves2 = []Cell{{-1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {1, 0, 0}}
	moves3 = []Cell{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {0, 0, 1}, {0, 1, 0}, {1, 0, 0}}
)

// Moves returns the fixed unit-offset slice for d: 4 offsets under Dim2,
// 6 under Dim3. The returned slice is shared and must not be modified.
// Returns ErrInvalidDim for an unknown dimensionality.
// Complexity: O(1).
func Moves(d Dim) ([]Cell, error) {
	switch d {
	case Dim2:
		return moves2, nil
	case Dim3:
		return moves3, nil
	default:
		return nil, ErrInvalidDim
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
