// Package shape provides the normalized polyomino/polycube representation
// used by the symmetry canonicalizer and the generation driver.
package shape

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/polycube/cell"
)

// New constructs a Shape from cells under dimensionality d.
// The input is copied, translated so the per-axis minimum is zero, and
// sorted into canonical internal order.
// Returns cell.ErrInvalidDim for an unknown d, ErrEmptyShape for zero
// cells, ErrDimMismatch if d is Dim2 and any cell has nonzero Z,
// ErrDuplicateCell for repeated cells, and ErrDisconnected if the cells
// do not form a single face-connected component.
// Complexity: O(n log n) time, O(n) memory.
func New(d cell.Dim, cells []cell.Cell) (Shape, error) {
	if !d.Valid() {
		return Shape{}, cell.ErrInvalidDim
	}
	if len(cells) == 0 {
		return Shape{}, ErrEmptyShape
	}
	if d == cell.Dim2 {
		for _, c := range cells {
			if c.Z != 0 {
				return Shape{}, ErrDimMismatch
			}
		}
	}

	s := renormalize(d, cells)
	for i := 1; i < len(s.cells); i++ {
		if s.cells[i] == s.cells[i-1] {
			return Shape{}, ErrDuplicateCell
		}
	}
	if !s.connected() {
		return Shape{}, ErrDisconnected
	}

	return s, nil
}

// renormalize copies, translates to the origin, sorts, and recomputes the
// bounding box. It performs no validation; callers that bypass New must
// guarantee distinctness and connectivity themselves.
func renormalize(d cell.Dim, cells []cell.Cell) Shape {
	lo, hi := cells[0], cells[0]
	for _, c := range cells[1:] {
		lo = cell.Cell{X: min(lo.X, c.X), Y: min(lo.Y, c.Y), Z: min(lo.Z, c.Z)}
		hi = cell.Cell{X: max(hi.X, c.X), Y: max(hi.Y, c.Y), Z: max(hi.Z, c.Z)}
	}
	normalized := make([]cell.Cell, len(cells))
	for i, c := range cells {
		normalized[i] = c.Sub(lo)
	}
	sort.Slice(normalized, func(i, j int) bool {
		return cell.Less(normalized[i], normalized[j])
	})

	return Shape{dim: d, cells: normalized, max: hi.Sub(lo)}
}

// connected walks the cell graph breadth-first from the first cell and
// reports whether every cell was reached.
func (s Shape) connected() bool {
	if len(s.cells) <= 1 {
		return len(s.cells) == 1
	}
	members := make(map[cell.Cell]bool, len(s.cells))
	for _, c := range s.cells {
		members[c] = false
	}
	moves, _ := cell.Moves(s.dim)

	queue := []cell.Cell{s.cells[0]}
	members[s.cells[0]] = true
	reached := 1
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, m := range moves {
			v := u.Add(m)
			seen, ok := members[v]
			if !ok || seen {
				continue
			}
			members[v] = true
			reached++
			queue = append(queue, v)
		}
	}

	return reached == len(s.cells)
}

// Dim returns the shape's dimensionality.
func (s Shape) Dim() cell.Dim { return s.dim }

// Size returns the number of cells.
func (s Shape) Size() int { return len(s.cells) }

// Max returns the bounding-box maximum corner; the minimum corner is
// always the origin in normalized form.
func (s Shape) Max() cell.Cell { return s.max }

// Cells returns a copy of the normalized, sorted cell list.
// Complexity: O(n).
func (s Shape) Cells() []cell.Cell {
	out := make([]cell.Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Contains reports whether c is a member cell, by binary search over the
// sorted cell list.
// Complexity: O(log n).
func (s Shape) Contains(c cell.Cell) bool {
	i := sort.Search(len(s.cells), func(i int) bool {
		return cell.Compare(s.cells[i], c) >= 0
	})
	return i < len(s.cells) && s.cells[i] == c
}

// Compare imposes a deterministic total order on shapes: lexicographic
// comparison of the sorted cell sequences, shorter sequence first on a
// common prefix. This is the order the canonicalizer minimizes under.
// Complexity: O(n).
func Compare(a, b Shape) int {
	n := min(len(a.cells), len(b.cells))
	for i := 0; i < n; i++ {
		if c := cell.Compare(a.cells[i], b.cells[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.cells) < len(b.cells):
		return -1
	case len(a.cells) > len(b.cells):
		return 1
	default:
		return 0
	}
}

// Equal reports structural equality: same dimensionality and the same
// normalized cell set. Symmetric shapes are NOT equal under Equal; collapse
// them via symmetry.Canonicalize first.
func Equal(a, b Shape) bool {
	return a.dim == b.dim && Compare(a, b) == 0
}

// Extend returns a new Shape of size n+1: the receiver's cells plus c,
// renormalized. c must not be a member (ErrDuplicateCell) and must share a
// face with some member (ErrNotAdjacent) — the two conditions under which
// connectivity is preserved without a fresh walk.
// Complexity: O(n log n).
func (s Shape) Extend(c cell.Cell) (Shape, error) {
	if s.dim == cell.Dim2 && c.Z != 0 {
		return Shape{}, ErrDimMismatch
	}
	if s.Contains(c) {
		return Shape{}, ErrDuplicateCell
	}
	touches := false
	moves, _ := cell.Moves(s.dim)
	for _, m := range moves {
		if s.Contains(c.Add(m)) {
			touches = true
			break
		}
	}
	if !touches {
		return Shape{}, ErrNotAdjacent
	}

	grown := make([]cell.Cell, 0, len(s.cells)+1)
	grown = append(grown, s.cells...)
	grown = append(grown, c)

	return renormalize(s.dim, grown), nil
}

// Map applies an adjacency-preserving bijection f to every cell and
// renormalizes the result. Intended for the symmetry group's linear maps:
// rigid transforms preserve distinctness and face adjacency, so no
// revalidation is performed.
// Complexity: O(n log n).
func (s Shape) Map(f func(cell.Cell) cell.Cell) Shape {
	mapped := make([]cell.Cell, len(s.cells))
	for i, c := range s.cells {
		mapped[i] = f(c)
	}
	return renormalize(s.dim, mapped)
}

// Key returns the CanonicalKey: the structural identity of a shape used
// for dedup hashing. Two shapes are structurally equal iff their Keys are
// equal. The key packs each bounding-box row (fixed y within fixed z) into
// a bit mask of occupied x positions, prefixed by the bounding-box extents
// so differently-shaped boxes can never alias.
// Complexity: O(n) time, O(rows) memory.
func (s Shape) Key() string {
	if s.max.X < 64 {
		rows := make([]uint64, (s.max.Y+1)*(s.max.Z+1))
		for _, c := range s.cells {
			rows[c.Z*(s.max.Y+1)+c.Y] |= 1 << uint(c.X)
		}
		return packKey('g', s.max, rows)
	}
	// Shapes wider than 64 cells cannot pack a row into one word; fall
	// back to the raw coordinate sequence, which is canonical already.
	var b strings.Builder
	b.WriteByte('c')
	for _, c := range s.cells {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Z))
		b.WriteByte(';')
	}
	return b.String()
}

// packKey serializes the bounding-box extents and row masks into a compact
// string usable as a map key.
func packKey(tag byte, max cell.Cell, rows []uint64) string {
	var b strings.Builder
	b.Grow(1 + 3*2 + len(rows)*8)
	b.WriteByte(tag)
	for _, v := range [3]int{max.X, max.Y, max.Z} {
		b.WriteByte(byte(v))
		b.WriteByte(byte(v >> 8))
	}
	for _, r := range rows {
		for shift := 0; shift < 64; shift += 8 {
			b.WriteByte(byte(r >> uint(shift)))
		}
	}
	return b.String()
}
