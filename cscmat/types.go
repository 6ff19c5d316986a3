package cscmat

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for matrix loading and validation.
var (
	// ErrBadHeader is returned when the MatrixMarket banner line is malformed.
	ErrBadHeader = errors.New("cscmat: invalid MatrixMarket header")

	// ErrUnsupportedSymmetry is returned for symmetry classes other than
	// general, symmetric, skew-symmetric, or hermitian.
	ErrUnsupportedSymmetry = errors.New("cscmat: unsupported symmetry")

	// ErrBadSize is returned when the size line cannot be parsed.
	ErrBadSize = errors.New("cscmat: invalid size line")

	// ErrBadEntry is returned when a data entry is malformed or out of range.
	ErrBadEntry = errors.New("cscmat: invalid matrix entry")

	// ErrNotCSB is returned when binary input does not carry the CSCB magic.
	ErrNotCSB = errors.New("cscmat: not a CSCB binary matrix")

	// ErrBadFormat is returned by Load for unrecognized file extensions.
	ErrBadFormat = errors.New("cscmat: unrecognized matrix file format")

	// ErrInvalidMatrix is returned by Validate for structurally broken input.
	ErrInvalidMatrix = errors.New("cscmat: structurally invalid matrix")
)

// CSCBinaryMatrix is a sparse binary matrix in compressed sparse column
// form. Only nonzero positions are stored; every stored entry has the
// implicit value 1.
//
// Invariants (established by loaders, checked by Validate):
//   - len(ColPtr) == NCols+1, ColPtr[0] == 0, ColPtr monotone non-decreasing
//   - ColPtr[NCols] == NNZ == len(RowIdx)
//   - every RowIdx value is < NRows
//
// The struct is treated as immutable after construction. Algorithms in
// package cc only ever read it.
type CSCBinaryMatrix struct {
	NRows  int      // number of rows (vertex count when square)
	NCols  int      // number of columns
	NNZ    int      // number of stored nonzeros
	RowIdx []uint32 // row index of each nonzero, column by column
	ColPtr []uint32 // per-column offsets into RowIdx, length NCols+1
}

// Load reads a matrix file, dispatching on the extension:
// ".mtx" → Matrix Market, ".csb" → columnar binary.
// Returns ErrBadFormat for anything else.
func Load(path string) (*CSCBinaryMatrix, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mtx":
		return LoadMatrixMarket(path)
	case ".csb":
		return LoadBinary(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, path)
	}
}

// String renders the matrix as a 1-based coordinate listing, one nonzero
// per line, preceded by a dimension header. Intended for debugging and
// golden tests, not for bulk output.
func (m *CSCBinaryMatrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d x %d, %d nonzeros\n", m.NRows, m.NCols, m.NNZ)
	for c := 0; c < m.NCols; c++ {
		for j := m.ColPtr[c]; j < m.ColPtr[c+1]; j++ {
			fmt.Fprintf(&sb, "(%d, %d)\n", m.RowIdx[j]+1, c+1)
		}
	}
	return sb.String()
}
