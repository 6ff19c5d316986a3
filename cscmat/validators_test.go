package cscmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parcc/cscmat"
)

func TestValidate(t *testing.T) {
	good := func() *cscmat.CSCBinaryMatrix {
		return &cscmat.CSCBinaryMatrix{
			NRows:  3,
			NCols:  3,
			NNZ:    2,
			RowIdx: []uint32{0, 2},
			ColPtr: []uint32{0, 1, 2, 2},
		}
	}
	require.NoError(t, good().Validate())

	cases := map[string]func(*cscmat.CSCBinaryMatrix){
		"colptr too short":  func(m *cscmat.CSCBinaryMatrix) { m.ColPtr = m.ColPtr[:3] },
		"rowidx wrong len":  func(m *cscmat.CSCBinaryMatrix) { m.RowIdx = m.RowIdx[:1] },
		"nonzero first off": func(m *cscmat.CSCBinaryMatrix) { m.ColPtr[0] = 1 },
		"decreasing offs":   func(m *cscmat.CSCBinaryMatrix) { m.ColPtr[1] = 2; m.ColPtr[2] = 1 },
		"terminal mismatch": func(m *cscmat.CSCBinaryMatrix) { m.ColPtr[3] = 5 },
		"row out of range":  func(m *cscmat.CSCBinaryMatrix) { m.RowIdx[1] = 7 },
		"negative dims":     func(m *cscmat.CSCBinaryMatrix) { m.NRows = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := good()
			mutate(m)
			require.ErrorIs(t, m.Validate(), cscmat.ErrInvalidMatrix)
		})
	}

	var nilM *cscmat.CSCBinaryMatrix
	require.ErrorIs(t, nilM.Validate(), cscmat.ErrInvalidMatrix)
}
