package cscmat

import "fmt"

// FromCOO converts parallel coordinate slices (rows[k], cols[k]) into CSC
// form. Entries may arrive in any order; within a column the original
// relative order of rows is preserved. Duplicate coordinates are kept as
// distinct nonzeros (callers that care deduplicate beforehand).
//
// Returns ErrBadEntry if the slices disagree in length or any coordinate
// is out of range.
//
// Complexity: O(NCols + NNZ) time and space.
func FromCOO(nrows, ncols int, rows, cols []uint32) (*CSCBinaryMatrix, error) {
	if len(rows) != len(cols) {
		return nil, fmt.Errorf("%w: %d rows vs %d cols", ErrBadEntry, len(rows), len(cols))
	}
	nnz := len(rows)
	for k := 0; k < nnz; k++ {
		if int(rows[k]) >= nrows || int(cols[k]) >= ncols {
			return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrBadEntry, rows[k], cols[k], nrows, ncols)
		}
	}

	m := &CSCBinaryMatrix{
		NRows:  nrows,
		NCols:  ncols,
		NNZ:    nnz,
		RowIdx: make([]uint32, nnz),
		ColPtr: make([]uint32, ncols+1),
	}

	// Count entries per column, then prefix-sum into offsets.
	for k := 0; k < nnz; k++ {
		m.ColPtr[cols[k]+1]++
	}
	for c := 0; c < ncols; c++ {
		m.ColPtr[c+1] += m.ColPtr[c]
	}

	// Scatter rows into their column slots.
	fill := make([]uint32, ncols)
	for k := 0; k < nnz; k++ {
		c := cols[k]
		m.RowIdx[m.ColPtr[c]+fill[c]] = rows[k]
		fill[c]++
	}

	return m, nil
}
