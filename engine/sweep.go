package engine

import (
	"github.com/sourcegraph/conc/pool"

	"raycaster/model"
)

// Sweep projects all n columns of a frame. Columns are split into contiguous
// chunks, one pool task each, and at most workers tasks run at once. Every
// column is filled in before Sweep returns.
//
// The map and the viewpoint are only read, so the caller must not mutate the
// map while a sweep is running. The viewpoint is passed by value.
func Sweep(vp model.Viewpoint, m *model.Map, n, screenHeight, workers int) []Column {
	cols := make([]Column, max(n, 0))
	if n <= 0 {
		return cols
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (n + workers - 1) / workers
	p := pool.New().WithMaxGoroutines(workers)
	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		p.Go(func() {
			for x := start; x < end; x++ {
				cols[x] = Project(vp, m, x, n, screenHeight)
			}
		})
	}
	p.Wait()

	return cols
}
