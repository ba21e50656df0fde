package enumerate

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polycube/shape"
)

// growParallel runs one generation transition across o.Workers goroutines.
//
// The dedup key set is the single shared resource of the whole engine, so
// it is never mutated concurrently: every worker grows its slice of the
// previous generation into a private map (growChunk), and a final
// single-threaded reduction merges the maps. A shape never observes
// another shape's in-progress growth — only the merged membership matters.
// Workers inherit cancellation from the errgroup: the first failure stops
// the whole transition.
func growParallel(o Options, prev []shape.Shape, n int) (map[string]shape.Shape, int, error) {
	workers := o.Workers
	if workers > len(prev) {
		workers = len(prev)
	}
	chunk := (len(prev) + workers - 1) / workers

	locals := make([]map[string]shape.Shape, workers)
	counts := make([]int, workers)

	g, ctx := errgroup.WithContext(o.Ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		if lo >= len(prev) {
			break // ceil division can leave the last chunk empty
		}
		hi := lo + chunk
		if hi > len(prev) {
			hi = len(prev)
		}
		g.Go(func() error {
			local, tried, err := growChunk(ctx, prev[lo:hi], n)
			if err != nil {
				return err
			}
			locals[w], counts[w] = local, tried
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	merged := locals[0]
	tried := counts[0]
	for w := 1; w < workers; w++ {
		for k, v := range locals[w] {
			merged[k] = v
		}
		tried += counts[w]
	}

	return merged, tried, nil
}
