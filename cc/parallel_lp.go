package cc

import (
	"math/bits"
	"sync/atomic"

	"github.com/katalvlaran/parcc/cscmat"
)

// bitmap word geometry: word = label >> 6, bit = label & 63.
const (
	labelWordShift = 6
	labelBitMask   = 63
)

// countLabelPropPar is data-parallel label propagation.
//
// Each convergence round is a bulk-synchronous superstep: workers claim
// column chunks dynamically and, for each edge, write the minimum of the
// two endpoint labels into both slots with independent atomic stores.
// Racing minimum-writes are sound because labels only ever decrease — a
// lost store can leave a value no larger than either contender intended,
// and any write invisible this round is observed (still correct) in a
// later one. Per-worker changed flags are OR-reduced after the barrier;
// the loop ends on a round with no change anywhere.
//
// Counting uses a shared bitmap: one atomic OR per vertex label, then a
// parallel popcount — commutative OR plus an associative sum, so it
// parallelizes trivially where a sort-based distinct count would not.
func countLabelPropPar(m *cscmat.CSCBinaryMatrix, o Options) int {
	n := m.NRows
	ls := newLabels(n, o.Workers)
	cols := edgeCols(m)

	for {
		changed := make([]bool, o.Workers)
		forEachChunk(o.Workers, cols, o.ChunkSize, func(w, lo, hi int) {
			local := false
			for c := lo; c < hi; c++ {
				for j := m.ColPtr[c]; j < m.ColPtr[c+1]; j++ {
					r := m.RowIdx[j]
					if int(r) >= n {
						continue
					}
					lc := ls.load(uint32(c))
					lr := ls.load(r)
					if lc == lr {
						continue
					}
					local = true
					mn := lc
					if lr < mn {
						mn = lr
					}
					ls.store(uint32(c), mn)
					ls.store(r, mn)
				}
			}
			if local {
				changed[w] = true
			}
		})

		round := false
		for _, c := range changed {
			round = round || c
		}
		if !round {
			break
		}
	}

	// Survivor bitmap: one bit per distinct final label.
	words := (n + labelBitMask) >> labelWordShift
	bitmap := make([]uint64, words)
	forEachSpan(o.Workers, n, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			v := ls.load(uint32(i))
			atomic.OrUint64(&bitmap[v>>labelWordShift], 1<<(v&labelBitMask))
		}
	})

	var total atomic.Int64
	forEachSpan(o.Workers, words, func(_, lo, hi int) {
		local := 0
		for i := lo; i < hi; i++ {
			local += bits.OnesCount64(bitmap[i])
		}
		total.Add(int64(local))
	})
	return int(total.Load())
}
