package shape_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/polycube/cell"
	"github.com/katalvlaran/polycube/shape"
)

func mustNew(t *testing.T, d cell.Dim, cells []cell.Cell) shape.Shape {
	t.Helper()
	s, err := shape.New(d, cells)
	if err != nil {
		t.Fatalf("New(%v, %v) error: %v", d, cells, err)
	}
	return s
}

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies every rejection path of the constructor.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		dim   cell.Dim
		cells []cell.Cell
		err   error
	}{
		{"InvalidDim", cell.Dim(5), []cell.Cell{{}}, cell.ErrInvalidDim},
		{"Empty", cell.Dim2, nil, shape.ErrEmptyShape},
		{"NonPlanar2D", cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 1}}, shape.ErrDimMismatch},
		{"Duplicate", cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}}, shape.ErrDuplicateCell},
		{"TwoIslands", cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}, shape.ErrDisconnected},
		{"DiagonalOnly", cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}}, shape.ErrDisconnected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shape.New(tc.dim, tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("New error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNew_Normalizes verifies translation to the origin and canonical
// internal ordering, independent of input order and offset.
func TestNew_Normalizes(t *testing.T) {
	// L-tromino far from the origin, cells deliberately shuffled.
	s := mustNew(t, cell.Dim2, []cell.Cell{{X: 8, Y: 4, Z: 0}, {X: 7, Y: 3, Z: 0}, {X: 7, Y: 4, Z: 0}})

	want := []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}}
	got := s.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
	if s.Max() != (cell.Cell{X: 1, Y: 1, Z: 0}) {
		t.Errorf("Max() = %v; want (1,1,0)", s.Max())
	}
	if s.Size() != 3 {
		t.Errorf("Size() = %d; want 3", s.Size())
	}
}

// TestNew_Dim3Connectivity verifies that connectivity uses all six moves
// under Dim3: two cells stacked along Z are one shape.
func TestNew_Dim3Connectivity(t *testing.T) {
	s := mustNew(t, cell.Dim3, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}})
	if s.Size() != 2 {
		t.Fatalf("Size() = %d; want 2", s.Size())
	}
}

//----------------------------------------------------------------------------//
// Contains, Compare, Equal Tests
//----------------------------------------------------------------------------//

// TestContains checks membership lookup over the sorted cell list.
func TestContains(t *testing.T) {
	s := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}})

	for _, c := range s.Cells() {
		if !s.Contains(c) {
			t.Errorf("Contains(%v) = false; want true", c)
		}
	}
	for _, c := range []cell.Cell{{X: 0, Y: 1, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}} {
		if s.Contains(c) {
			t.Errorf("Contains(%v) = true; want false", c)
		}
	}
}

// TestCompare verifies the lexicographic total order over cell sequences.
func TestCompare(t *testing.T) {
	straight := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}})
	bent := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}})
	domino := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})

	if shape.Compare(straight, straight) != 0 {
		t.Error("Compare(s,s) != 0")
	}
	// (1,1,0) sorts after (2,0,0)? No: X wins, so (1,1) < (2,0): bent < straight.
	if shape.Compare(bent, straight) >= 0 {
		t.Error("Compare(bent, straight) >= 0; want < 0")
	}
	// Common prefix: shorter shape orders first.
	if shape.Compare(domino, straight) >= 0 {
		t.Error("Compare(domino, straight) >= 0; want < 0")
	}
	if !shape.Equal(straight, straight) {
		t.Error("Equal(s,s) = false")
	}
	if shape.Equal(bent, straight) {
		t.Error("Equal(bent, straight) = true; want false")
	}
}

// TestEqual_DimAware verifies that structurally identical cell sets under
// different dimensionalities are not Equal.
func TestEqual_DimAware(t *testing.T) {
	flat2 := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})
	flat3 := mustNew(t, cell.Dim3, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})
	if shape.Equal(flat2, flat3) {
		t.Error("Equal across dimensionalities = true; want false")
	}
}

//----------------------------------------------------------------------------//
// Extend and Map Tests
//----------------------------------------------------------------------------//

// TestExtend verifies growth by one adjacent cell, including the
// renormalization when the new cell sits at a negative coordinate.
func TestExtend(t *testing.T) {
	domino := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})

	grown, err := domino.Extend(cell.Cell{X: -1, Y: 0, Z: 0})
	if err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	straight := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}})
	if !shape.Equal(grown, straight) {
		t.Errorf("Extend(-1,0) = %v; want straight tromino", grown.Cells())
	}
	if grown.Size() != domino.Size()+1 {
		t.Errorf("Size() = %d; want %d", grown.Size(), domino.Size()+1)
	}
}

// TestExtend_Errors verifies the rejection paths of Extend.
func TestExtend_Errors(t *testing.T) {
	domino := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})

	if _, err := domino.Extend(cell.Cell{X: 0, Y: 0, Z: 0}); !errors.Is(err, shape.ErrDuplicateCell) {
		t.Errorf("Extend(member) error = %v; want ErrDuplicateCell", err)
	}
	if _, err := domino.Extend(cell.Cell{X: 3, Y: 3, Z: 0}); !errors.Is(err, shape.ErrNotAdjacent) {
		t.Errorf("Extend(far) error = %v; want ErrNotAdjacent", err)
	}
	if _, err := domino.Extend(cell.Cell{X: 0, Y: 0, Z: 1}); !errors.Is(err, shape.ErrDimMismatch) {
		t.Errorf("Extend(z=1 in 2D) error = %v; want ErrDimMismatch", err)
	}
}

// TestMap verifies that an adjacency-preserving linear map yields a valid
// renormalized shape: a 90° rotation of the straight tromino is vertical.
func TestMap(t *testing.T) {
	straight := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}})

	rotated := straight.Map(func(c cell.Cell) cell.Cell {
		return cell.Cell{X: -c.Y, Y: c.X, Z: c.Z}
	})
	vertical := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 2, Z: 0}})
	if !shape.Equal(rotated, vertical) {
		t.Errorf("Map(rot90) = %v; want vertical tromino", rotated.Cells())
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Single verifies the frontier of a single cell: exactly the
// move set, sorted.
func TestNeighbors_Single(t *testing.T) {
	single := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}})
	got := single.Neighbors()

	want := []cell.Cell{{X: -1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}}
	if len(got) != len(want) {
		t.Fatalf("Neighbors() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestNeighbors_Domino verifies exactness: shared frontier cells appear
// once, member cells never.
func TestNeighbors_Domino(t *testing.T) {
	domino := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})
	got := domino.Neighbors()

	// 2·4 raw moves, minus 2 landing inside the shape: 6 distinct frontier cells.
	if len(got) != 6 {
		t.Fatalf("len(Neighbors()) = %d; want 6: %v", len(got), got)
	}
	for _, c := range got {
		if domino.Contains(c) {
			t.Errorf("frontier cell %v is a member", c)
		}
		adj := false
		for _, m := range domino.Cells() {
			if cell.Adjacent(c, m) {
				adj = true
				break
			}
		}
		if !adj {
			t.Errorf("frontier cell %v is not adjacent to the shape", c)
		}
	}
	for i := 1; i < len(got); i++ {
		if !cell.Less(got[i-1], got[i]) {
			t.Errorf("frontier not sorted: %v before %v", got[i-1], got[i])
		}
	}
}

//----------------------------------------------------------------------------//
// Key Tests
//----------------------------------------------------------------------------//

// TestKey_Structural verifies that Key is exactly structural identity.
func TestKey_Structural(t *testing.T) {
	a := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}})
	b := mustNew(t, cell.Dim2, []cell.Cell{{X: 5, Y: 5, Z: 0}, {X: 6, Y: 5, Z: 0}, {X: 6, Y: 6, Z: 0}}) // same shape, translated
	c := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}}) // mirrored: different structure

	if a.Key() != b.Key() {
		t.Error("translated copies have different Keys")
	}
	if a.Key() == c.Key() {
		t.Error("structurally distinct shapes share a Key")
	}
}

// TestKey_AxisDisambiguation covers the bounding-box prefix: a vertical
// domino (along Y) and a stacked domino (along Z) rasterize to identical
// row masks and must still key differently.
func TestKey_AxisDisambiguation(t *testing.T) {
	alongY := mustNew(t, cell.Dim3, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}})
	alongZ := mustNew(t, cell.Dim3, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}})

	if alongY.Key() == alongZ.Key() {
		t.Error("Y-domino and Z-domino share a Key")
	}
}

//----------------------------------------------------------------------------//
// Grid and String Tests
//----------------------------------------------------------------------------//

// TestGrid rasterizes the L-tromino and checks every cell of the box.
func TestGrid(t *testing.T) {
	l := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}})
	grid := l.Grid()

	if len(grid) != 1 || len(grid[0]) != 2 || len(grid[0][0]) != 2 {
		t.Fatalf("Grid dimensions = %d×%d×%d; want 1×2×2", len(grid), len(grid[0]), len(grid[0][0]))
	}
	want := [][]int{{1, 0}, {1, 1}}
	for y := range want {
		for x := range want[y] {
			if grid[0][y][x] != want[y][x] {
				t.Errorf("Grid[0][%d][%d] = %d; want %d", y, x, grid[0][y][x], want[y][x])
			}
		}
	}
}

// TestString renders the T-tetromino.
func TestString(t *testing.T) {
	tee := mustNew(t, cell.Dim2, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}})
	want := "OOO\n.O.\n"
	if got := tee.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

// TestString_Layers renders a 3D shape layer by layer.
func TestString_Layers(t *testing.T) {
	tower := mustNew(t, cell.Dim3, []cell.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}})
	want := "OO\n\nO.\n"
	if got := tower.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
