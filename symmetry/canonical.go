package symmetry

import (
	"github.com/katalvlaran/polycube/shape"
)

// Apply maps every cell of s through t and renormalizes the result.
// The transform alone is not translation-aware, so renormalization is part
// of the contract here rather than left to the caller.
// Complexity: O(n log n).
func Apply(t Transform, s shape.Shape) shape.Shape {
	return s.Map(t.Apply)
}

// Canonicalize returns the canonical representative of the equivalence
// class of s: every transform of the shape's symmetry group is applied and
// renormalized, and the minimum under shape.Compare wins. The result is the
// same value for any two shapes related by rotation/reflection, and
// canonicalizing an already-canonical shape is a no-op (idempotence).
// Returns cell.ErrInvalidDim only for a shape that was never constructed
// through the shape package (zero value).
// Complexity: O(|group| · n log n) time, O(n) memory.
func Canonicalize(s shape.Shape) (shape.Shape, error) {
	group, err := Group(s.Dim())
	if err != nil {
		return shape.Shape{}, err
	}

	best := Apply(group[0], s) // identity, normalized
	for _, t := range group[1:] {
		candidate := Apply(t, s)
		if shape.Compare(candidate, best) < 0 {
			best = candidate
		}
	}

	return best, nil
}
