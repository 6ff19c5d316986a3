package cc

import (
	"sync/atomic"

	"github.com/katalvlaran/parcc/cscmat"
)

// countUnionFindPar is Rem's algorithm: lock-free parallel union-find.
//
// Four fork-join phases over the label store:
//  1. parallel identity init;
//  2. union phase over dynamically chunked edge columns, merging via
//     bounded-retry CAS (see unionRem);
//  3. parallel flatten — a full find-with-compression per vertex, so every
//     node points directly at its true root no matter how chains (or
//     forced fallback writes) accumulated during racy unioning;
//  4. parallel root count with one atomic add per worker.
//
// The flatten phase must always run after the union phase; it is the
// repair step the forced fallback relies on.
func countUnionFindPar(m *cscmat.CSCBinaryMatrix, o Options) int {
	n := m.NRows
	ls := newLabels(n, o.Workers)

	forEachChunk(o.Workers, edgeCols(m), o.ChunkSize, func(_, lo, hi int) {
		for c := lo; c < hi; c++ {
			for j := m.ColPtr[c]; j < m.ColPtr[c+1]; j++ {
				r := m.RowIdx[j]
				if int(r) >= n {
					continue
				}
				unionRem(ls, r, uint32(c))
			}
		}
	})

	forEachSpan(o.Workers, n, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			findCompress(ls, uint32(i))
		}
	})

	var total atomic.Int64
	forEachSpan(o.Workers, n, func(_, lo, hi int) {
		local := 0
		for i := lo; i < hi; i++ {
			if ls.load(uint32(i)) == uint32(i) {
				local++
			}
		}
		total.Add(int64(local))
	})
	return int(total.Load())
}

// findCompress walks to the root of x, then points every node on the
// walked chain directly at it. A worker may compress its own query path
// without coordination: compression only shortens a chain toward the true
// root and never changes which component a vertex belongs to.
func findCompress(ls labels, x uint32) uint32 {
	root := x
	for {
		p := ls.load(root)
		if p == root {
			break
		}
		root = p
	}

	for x != root {
		next := ls.load(x)
		if next == root {
			break
		}
		ls.store(x, root)
		x = next
	}
	return root
}

// unionRem merges the sets of a and b.
//
// Up to maxUnionRetries times: find both roots with compression, order
// them canonically (smaller index wins), and CAS the larger root's slot
// from itself to the smaller root — the CAS precondition "still a root"
// is what makes the merge safe against concurrent relinking. A failed CAS
// means another worker got there first; re-find and retry.
//
// When the budget is exhausted the merge is forced with an unconditional
// store of the winning link. That skips the may-be-stale root check, but
// cannot corrupt the forest: the link still follows smaller-wins
// ordering, and the flatten phase straightens out whatever the bypassed
// check would have caught. Dropping the fallback would reintroduce a
// livelock risk under heavy contention, so it stays.
func unionRem(ls labels, a, b uint32) {
	for retry := 0; retry < maxUnionRetries; retry++ {
		ra := findCompress(ls, a)
		rb := findCompress(ls, b)
		if ra == rb {
			return
		}
		if ra > rb {
			ra, rb = rb, ra
		}
		if ls.cas(rb, rb, ra) {
			return
		}
		// Lost the race: rb is no longer a root. Restart from the
		// (now shallower) pair.
		a, b = ra, rb
	}

	ra := findCompress(ls, a)
	rb := findCompress(ls, b)
	if ra == rb {
		return
	}
	if ra > rb {
		ra, rb = rb, ra
	}
	ls.store(rb, ra)
}
