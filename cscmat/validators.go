package cscmat

import "fmt"

// Validate checks structural well-formedness: array lengths, offset
// monotonicity, the terminal offset, and row index bounds. Loaders call
// this before returning a matrix; consumers may then assume it holds.
//
// Complexity: O(NCols + NNZ) time, O(1) space.
func (m *CSCBinaryMatrix) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil matrix", ErrInvalidMatrix)
	}
	if m.NRows < 0 || m.NCols < 0 || m.NNZ < 0 {
		return fmt.Errorf("%w: negative dimension", ErrInvalidMatrix)
	}
	if len(m.ColPtr) != m.NCols+1 {
		return fmt.Errorf("%w: len(ColPtr)=%d, want %d", ErrInvalidMatrix, len(m.ColPtr), m.NCols+1)
	}
	if len(m.RowIdx) != m.NNZ {
		return fmt.Errorf("%w: len(RowIdx)=%d, want %d", ErrInvalidMatrix, len(m.RowIdx), m.NNZ)
	}
	if m.ColPtr[0] != 0 {
		return fmt.Errorf("%w: ColPtr[0]=%d, want 0", ErrInvalidMatrix, m.ColPtr[0])
	}
	for c := 0; c < m.NCols; c++ {
		if m.ColPtr[c] > m.ColPtr[c+1] {
			return fmt.Errorf("%w: ColPtr decreases at column %d", ErrInvalidMatrix, c)
		}
	}
	if int(m.ColPtr[m.NCols]) != m.NNZ {
		return fmt.Errorf("%w: ColPtr[%d]=%d, want nnz=%d", ErrInvalidMatrix, m.NCols, m.ColPtr[m.NCols], m.NNZ)
	}
	for j, r := range m.RowIdx {
		if int(r) >= m.NRows {
			return fmt.Errorf("%w: RowIdx[%d]=%d out of range [0,%d)", ErrInvalidMatrix, j, r, m.NRows)
		}
	}
	return nil
}
