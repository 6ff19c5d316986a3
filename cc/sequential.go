package cc

import (
	"slices"

	"github.com/katalvlaran/parcc/cscmat"
)

// countUnionFindSeq is the single-thread union-find baseline.
//
// Two-phase discipline: a union pass over every edge with path halving,
// then one full find-with-compression pass to flatten all trees. The
// flatten pass makes the root count exact no matter how deep trees grew
// during unioning.
func countUnionFindSeq(m *cscmat.CSCBinaryMatrix) int {
	n := m.NRows
	label := make([]uint32, n)
	for i := range label {
		label[i] = uint32(i)
	}

	for c := 0; c < edgeCols(m); c++ {
		for j := m.ColPtr[c]; j < m.ColPtr[c+1]; j++ {
			r := m.RowIdx[j]
			if int(r) >= n {
				continue
			}
			ra := findHalving(label, uint32(c))
			rb := findHalving(label, r)
			if ra == rb {
				continue
			}
			// Canonical form: the smaller index stays a root.
			if ra > rb {
				ra, rb = rb, ra
			}
			label[rb] = ra
		}
	}

	for v := 0; v < n; v++ {
		flattenSeq(label, uint32(v))
	}

	count := 0
	for v := 0; v < n; v++ {
		if label[v] == uint32(v) {
			count++
		}
	}
	return count
}

// findHalving walks to the root of x, replacing each visited parent with
// its grandparent. Each traversal halves the path it walks.
func findHalving(label []uint32, x uint32) uint32 {
	for label[x] != x {
		label[x] = label[label[x]]
		x = label[x]
	}
	return x
}

// flattenSeq points every node on x's chain directly at its root.
func flattenSeq(label []uint32, x uint32) {
	root := x
	for label[root] != root {
		root = label[root]
	}
	for label[x] != root {
		label[x], x = root, label[x]
	}
}

// countLabelPropSeq is the single-thread label-propagation baseline:
// full edge passes setting both endpoints to their minimum label, until a
// pass changes nothing, then a sort-and-scan distinct count.
//
// Pass count is bounded by the graph diameter, so long chains make this
// asymptotically worse than union-find; it stays here as the simplest
// reference implementation.
func countLabelPropSeq(m *cscmat.CSCBinaryMatrix) int {
	n := m.NRows
	label := make([]uint32, n)
	for i := range label {
		label[i] = uint32(i)
	}

	for {
		changed := false
		for c := 0; c < edgeCols(m); c++ {
			for j := m.ColPtr[c]; j < m.ColPtr[c+1]; j++ {
				r := m.RowIdx[j]
				if int(r) >= n {
					continue
				}
				lc, lr := label[c], label[r]
				switch {
				case lc < lr:
					label[r] = lc
					changed = true
				case lr < lc:
					label[c] = lr
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	sorted := slices.Clone(label)
	slices.Sort(sorted)
	count := 0
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			count++
		}
	}
	return count
}

// edgeCols bounds the column sweep to indices that are valid vertices.
// Square adjacency input leaves this at NCols.
func edgeCols(m *cscmat.CSCBinaryMatrix) int {
	if m.NCols > m.NRows {
		return m.NRows
	}
	return m.NCols
}
