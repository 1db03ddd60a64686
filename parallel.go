package voxtopo

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the minimum fan-out width before Subtract/Initialize
// bother spinning up goroutines, per the "parallelise when children count
// >= 64" guidance: below it the dispatch overhead outweighs the work.
const parallelThreshold = 64

// parallelEach applies fn to every item in items. Below parallelThreshold
// items it runs sequentially; at or above it, it fans out across a bounded
// errgroup (capped at GOMAXPROCS workers). fn must only touch state it
// owns exclusively per item — true for child Nodes, which subtract and
// initialize never share across siblings.
func parallelEach[T any](items []T, fn func(T)) {
	if len(items) < parallelThreshold {
		for _, it := range items {
			fn(it)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, it := range items {
		it := it
		g.Go(func() error {
			fn(it)
			return nil
		})
	}
	_ = g.Wait()
}
