package cc

import (
	"sync"
	"sync/atomic"
)

// labels is the per-invocation label store: one uint32 per vertex.
//
// Union-find reads it as a parent-pointer forest (labels[v] == v marks a
// root); label propagation reads it as the smallest index known to be
// connected to v. Concurrent phases go through the atomic element
// accessors below; sequential code indexes the slice directly.
type labels []uint32

// newLabels allocates a store with every vertex its own representative.
// The identity fill is parallelized across workers.
func newLabels(n, workers int) labels {
	ls := make(labels, n)
	forEachSpan(workers, n, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			ls[i] = uint32(i)
		}
	})
	return ls
}

func (ls labels) load(i uint32) uint32 {
	return atomic.LoadUint32(&ls[i])
}

func (ls labels) store(i, v uint32) {
	atomic.StoreUint32(&ls[i], v)
}

func (ls labels) cas(i, old, new uint32) bool {
	return atomic.CompareAndSwapUint32(&ls[i], old, new)
}

// forEachChunk runs fn over [0,n) with dynamic chunked scheduling: workers
// claim the next chunk-sized span from a shared cursor until the range is
// exhausted, then all join. fn receives the worker index and a half-open
// span. Chunking granularity balances uneven column degrees; it has no
// effect on results.
func forEachChunk(workers, n, chunk int, fn func(w, lo, hi int)) {
	if workers <= 1 {
		fn(0, 0, n)
		return
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for {
				lo := int(cursor.Add(int64(chunk))) - chunk
				if lo >= n {
					return
				}
				hi := lo + chunk
				if hi > n {
					hi = n
				}
				fn(w, lo, hi)
			}
		}(w)
	}
	wg.Wait()
}

// forEachSpan runs fn over [0,n) with one contiguous span per worker —
// the static-schedule counterpart of forEachChunk, used by the uniform
// init/flatten/count phases.
func forEachSpan(workers, n int, fn func(w, lo, hi int)) {
	if workers <= 1 || n <= 1 {
		fn(0, 0, n)
		return
	}

	per := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * per
		if lo >= n {
			break
		}
		hi := lo + per
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			fn(w, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()
}
