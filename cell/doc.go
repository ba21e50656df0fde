// Package cell defines the coordinate model shared by every layer of the
// polycube engine: an integer grid cell, its total ordering, the face
// adjacency relation, and the Dim selector that fixes the active
// dimensionality (2D polyominoes or 3D polycubes).
//
// What:
//
//   - Cell is an immutable integer coordinate triple; 2D shapes keep Z = 0.
//   - Compare orders cells component-wise (X, then Y, then Z).
//   - Adjacent reports face adjacency: Manhattan distance exactly 1.
//   - Dim selects the unit move set (4 offsets in 2D, 6 in 3D) and, in the
//     symmetry package, the transformation group (8 or 48 elements).
//
// Why:
//
//   - Shape normalization and canonical selection both need one fixed,
//     deterministic total order over cells.
//   - The growth frontier and the connectivity invariant are defined purely
//     in terms of face adjacency.
//
// Everything here is a pure value computation: no state, no failure modes
// beyond ErrInvalidDim for an unknown dimensionality.
package cell
