// Package shape defines the immutable, normalized representation of one
// polyomino/polycube instance and the operations the enumeration engine
// needs from it: normalization, the growth frontier, structural keys, and
// grid rasterization.
//
// What:
//
//   - Shape is an ordered, deduplicated, connected set of cells, stored in
//     normalized form: translated so the minimum coordinate along every
//     axis is zero, cells sorted under cell.Compare.
//   - Neighbors returns the exact frontier: every cell adjacent to the
//     shape but not a member — the growth candidates for size n+1.
//   - Key produces the structural identity used for hashing/equality: the
//     bounding box packed into per-row bit masks. Equality is structural,
//     not symmetry-aware; collapsing symmetric shapes is the job of the
//     symmetry package.
//   - Grid and String rasterize a shape for rendering.
//
// Invariants (enforced at construction, violations are bugs, not inputs):
//
//   - At least one cell; all cells distinct.
//   - The cell graph under face adjacency is connected — a shape is a
//     single island, never a union of disjoint ones.
//   - Per-axis minimum coordinate is zero; cells sorted.
//
// Complexity:
//
//   - New:       O(n log n) time (sort + connectivity walk), O(n) memory.
//   - Neighbors: O(n·d) time, d = 4 or 6 moves.
//   - Key:       O(n) time.
//
// Errors:
//
//   - ErrEmptyShape: a shape must have at least one cell.
//   - ErrDuplicateCell: input cells are not distinct.
//   - ErrDisconnected: the cell graph is not a single connected component.
//   - ErrDimMismatch: a 2D shape contains a cell with nonzero Z.
//   - ErrNotAdjacent: Extend called with a cell that does not touch the shape.
package shape
