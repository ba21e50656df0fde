// Package shape defines sentinel errors and the Shape type for the
// shape subpackage of github.com/katalvlaran/polycube.
package shape

import (
	"errors"

	"github.com/katalvlaran/polycube/cell"
)

// Sentinel errors for shape construction and growth.
var (
	// ErrEmptyShape indicates a shape was built from zero cells.
	ErrEmptyShape = errors.New("shape: a shape must have at least one cell")
	// ErrDuplicateCell indicates the input cells are not all distinct.
	ErrDuplicateCell = errors.New("shape: duplicate cell in input")
	// ErrDisconnected indicates the cell graph is not a single connected
	// component. Shapes are grown one adjacent cell at a time, so this is
	// an internal invariant violation, never a user-input condition.
	ErrDisconnected = errors.New("shape: cells do not form a connected shape")
	// ErrDimMismatch indicates a 2D shape contains a cell outside the XY plane.
	ErrDimMismatch = errors.New("shape: cell outside the active dimensionality")
	// ErrNotAdjacent indicates Extend was called with a cell that does not
	// share a face with any member cell.
	ErrNotAdjacent = errors.New("shape: cell is not adjacent to the shape")
)

// Shape is one polyomino/polycube instance: an immutable, normalized,
// connected, duplicate-free set of cells. The zero value is not a valid
// Shape; construct via New, Extend, or Map.
//
// Normalized form: the minimum coordinate along every axis is zero and
// cells are sorted under cell.Compare. Normalization removes translation
// as a source of duplicate representations; the sort makes comparison and
// hashing deterministic.
type Shape struct {
	dim   cell.Dim
	cells []cell.Cell // normalized, sorted, never shared with callers
	max   cell.Cell   // bounding-box maximum (minimum is the origin)
}
