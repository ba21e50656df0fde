package shape

import (
	"sort"

	"github.com/katalvlaran/polycube/cell"
)

// Neighbors returns the frontier of s: every cell that shares a face with
// at least one member cell but is not itself a member, sorted under
// cell.Compare and deduplicated. The frontier is exact — it is precisely
// the set of single-cell growth candidates, so any false positive or
// missing cell would break search completeness.
// Complexity: O(n·d) time with d = 4 or 6, O(n·d) memory.
func (s Shape) Neighbors() []cell.Cell {
	moves, _ := cell.Moves(s.dim)

	members := make(map[cell.Cell]struct{}, len(s.cells))
	for _, c := range s.cells {
		members[c] = struct{}{}
	}

	frontier := make(map[cell.Cell]struct{}, len(s.cells)*len(moves))
	for _, c := range s.cells {
		for _, m := range moves {
			v := c.Add(m)
			if _, in := members[v]; in {
				continue
			}
			frontier[v] = struct{}{}
		}
	}

	out := make([]cell.Cell, 0, len(frontier))
	for c := range frontier {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return cell.Less(out[i], out[j]) })

	return out
}
