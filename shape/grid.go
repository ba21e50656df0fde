package shape

import "strings"

// Grid rasterizes the shape onto its bounding box as nested slices indexed
// [z][y][x], with 1 for a member cell and 0 for empty space. A 2D shape
// always yields exactly one z-layer.
// Complexity: O(W×H×D) time and memory.
func (s Shape) Grid() [][][]int {
	w, h, d := s.max.X+1, s.max.Y+1, s.max.Z+1
	grid := make([][][]int, d)
	for z := 0; z < d; z++ {
		layer := make([][]int, h)
		for y := 0; y < h; y++ {
			layer[y] = make([]int, w)
		}
		grid[z] = layer
	}
	for _, c := range s.cells {
		grid[c.Z][c.Y][c.X] = 1
	}

	return grid
}

// String renders the shape as ASCII art: one line per bounding-box row,
// 'O' for a member cell and '.' for empty space, y increasing downward.
// 3D shapes render one z-layer after another, separated by a blank line.
func (s Shape) String() string {
	grid := s.Grid()
	var b strings.Builder
	for z, layer := range grid {
		if z > 0 {
			b.WriteByte('\n')
		}
		for _, row := range layer {
			for _, v := range row {
				if v != 0 {
					b.WriteByte('O')
				} else {
					b.WriteByte('.')
				}
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}
