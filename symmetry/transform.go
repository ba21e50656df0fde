// Package symmetry provides the rotation/reflection groups for 2D and 3D
// grid shapes.
package symmetry

import (
	"github.com/katalvlaran/polycube/cell"
)

// Transform is one element of a symmetry group: a linear map on cell
// coordinates with no translation component. Row-major 3×3 integer
// matrix; applying it to a shape and renormalizing yields another valid
// shape of the same size.
type Transform [3][3]int

// Apply maps a single cell through the transform.
// Complexity: O(1).
func (t Transform) Apply(c cell.Cell) cell.Cell {
	return cell.Cell{
		X: t[0][0]*c.X + t[0][1]*c.Y + t[0][2]*c.Z,
		Y: t[1][0]*c.X + t[1][1]*c.Y + t[1][2]*c.Z,
		Z: t[2][0]*c.X + t[2][1]*c.Y + t[2][2]*c.Z,
	}
}

// group2 is the dihedral group of order 8 acting on the XY plane, Z fixed:
// the four rotations followed by the four rotations composed with the
// X-axis reflection.
var group2 = []Transform{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},   // identity
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},  // 90° ccw
	{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, // 180°
	{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},  // 270° ccw
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}},  // mirror X
	{{0, -1, 0}, {-1, 0, 0}, {0, 0, 1}}, // mirror X ∘ 90°
	{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}},  // mirror X ∘ 180°
	{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},   // mirror X ∘ 270° (transpose)
}

// group3 is the full symmetry group of the cube, order 48: every signed
// permutation matrix. Built once at package init.
var group3 = buildGroup3()

// buildGroup3 enumerates the 6 axis permutations × 2³ sign choices.
func buildGroup3() []Transform {
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 2}, {1, 2, 0},
		{2, 0, 1}, {2, 1, 0},
	}
	group := make([]Transform, 0, 48)
	for _, p := range perms {
		for signs := 0; signs < 8; signs++ {
			var t Transform
			for row := 0; row < 3; row++ {
				v := 1
				if signs&(1<<uint(row)) != 0 {
					v = -1
				}
				t[row][p[row]] = v
			}
			group = append(group, t)
		}
	}
	return group
}

// Group returns the fixed transformation slice for d: 8 elements under
// Dim2, 48 under Dim3. The returned slice is shared and must not be
// modified. Returns cell.ErrInvalidDim for an unknown dimensionality.
// Complexity: O(1).
func Group(d cell.Dim) ([]Transform, error) {
	switch d {
	case cell.Dim2:
		return group2, nil
	case cell.Dim3:
		return group3, nil
	default:
		return nil, cell.ErrInvalidDim
	}
}
