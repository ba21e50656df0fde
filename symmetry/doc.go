// Package symmetry defines the fixed, finite transformation groups under
// which two shapes are considered equivalent, and the canonicalizer that
// collapses every equivalence class to one deterministic representative.
//
// What:
//
//   - Transform is one rigid linear map on cell coordinates (rotation or
//     reflection, no translation component), represented as a 3×3 integer
//     matrix so the group is a plain fixed array — no class hierarchy, no
//     dynamic dispatch.
//   - Group(Dim2) is the dihedral group of order 8: the identity, three
//     rotations, and the four reflections composed with them.
//   - Group(Dim3) is the full symmetry group of the cube, order 48: all
//     signed permutation matrices, orientation-preserving and -reversing.
//   - Apply maps every cell through a transform and renormalizes.
//   - Canonicalize applies every group element, renormalizes each result,
//     and returns the minimum under shape.Compare.
//
// Why:
//
//   - Exhaustive transformation plus minimum-selection guarantees that any
//     two shapes related by rotation/reflection canonicalize to the SAME
//     value — the property the entire dedup strategy depends on. Distinct
//     transforms may map a self-symmetric shape to the same normalized
//     result; that simply collapses candidates and is expected.
//
// Complexity:
//
//   - Apply:        O(n log n) (map + renormalize).
//   - Canonicalize: O(|group| · n log n) — the dominant cost per candidate
//     in enumeration and the first target for optimization.
//
// Errors:
//
//   - cell.ErrInvalidDim: requested group for an unknown dimensionality.
package symmetry
