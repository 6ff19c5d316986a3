package cscmat_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parcc/cscmat"
)

func read(t *testing.T, src string) *cscmat.CSCBinaryMatrix {
	t.Helper()
	m, err := cscmat.ReadMatrixMarket(strings.NewReader(src))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

func TestReadMatrixMarket_CoordinatePattern(t *testing.T) {
	m := read(t, `%%MatrixMarket matrix coordinate pattern general
% a 3-vertex chain
3 3 2
1 2
2 3
`)
	require.Equal(t, 3, m.NRows)
	require.Equal(t, 3, m.NCols)
	require.Equal(t, 2, m.NNZ)
	// 0-based entries (0,1) and (1,2), grouped by column.
	require.Equal(t, []uint32{0, 0, 1, 2}, m.ColPtr)
	require.Equal(t, []uint32{0, 1}, m.RowIdx)
}

func TestReadMatrixMarket_CoordinateReal(t *testing.T) {
	// Explicit zero values are dropped; any other value is a binary 1.
	m := read(t, `%%MatrixMarket matrix coordinate real general
3 3 3
1 2 5.5
2 3 0.0
3 1 -1
`)
	require.Equal(t, 2, m.NNZ)
	require.Equal(t, []uint32{2, 0}, m.RowIdx)
	require.Equal(t, []uint32{0, 1, 2, 2}, m.ColPtr)
}

func TestReadMatrixMarket_SymmetricMirrors(t *testing.T) {
	// Symmetric storage lists the lower triangle once; off-diagonal
	// entries expand to both orientations, diagonal entries do not.
	m := read(t, `%%MatrixMarket matrix coordinate pattern symmetric
3 3 3
2 1
3 2
1 1
`)
	require.Equal(t, 5, m.NNZ)

	type coord struct{ r, c uint32 }
	var got []coord
	for c := 0; c < m.NCols; c++ {
		for j := m.ColPtr[c]; j < m.ColPtr[c+1]; j++ {
			got = append(got, coord{m.RowIdx[j], uint32(c)})
		}
	}
	require.ElementsMatch(t, []coord{
		{1, 0}, {0, 1}, // mirrored (2,1)
		{2, 1}, {1, 2}, // mirrored (3,2)
		{0, 0}, // diagonal, kept single
	}, got)
}

func TestReadMatrixMarket_Array(t *testing.T) {
	// Dense column-major values; only nonzeros are kept.
	m := read(t, `%%MatrixMarket matrix array real general
2 2
0
1
1
0
`)
	require.Equal(t, 2, m.NNZ)
	require.Equal(t, []uint32{1, 0}, m.RowIdx)
	require.Equal(t, []uint32{0, 1, 2}, m.ColPtr)
}

func TestReadMatrixMarket_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"missing banner": {"3 3 1\n1 2\n", cscmat.ErrBadHeader},
		"bad banner":     {"%%MatrixMarket tensor coordinate pattern general\n", cscmat.ErrBadHeader},
		"complex field":  {"%%MatrixMarket matrix coordinate complex general\n1 1 0\n", cscmat.ErrBadHeader},
		"array pattern":  {"%%MatrixMarket matrix array pattern general\n1 1\n", cscmat.ErrBadHeader},
		"bad symmetry":   {"%%MatrixMarket matrix coordinate pattern diagonal\n1 1 0\n", cscmat.ErrUnsupportedSymmetry},
		"truncated size": {"%%MatrixMarket matrix coordinate pattern general\n3 3\n", cscmat.ErrBadSize},
		"bad entry":      {"%%MatrixMarket matrix coordinate pattern general\n3 3 1\n1 x\n", cscmat.ErrBadEntry},
		"out of range":   {"%%MatrixMarket matrix coordinate pattern general\n3 3 1\n4 1\n", cscmat.ErrBadEntry},
		"truncated data": {"%%MatrixMarket matrix coordinate pattern general\n3 3 2\n1 2\n", cscmat.ErrBadEntry},
		// Size-line lies are rejected before anything is allocated from
		// them; a merely inflated nnz fails at the first missing entry.
		"absurd nnz":         {"%%MatrixMarket matrix coordinate pattern general\n3 3 4000000000000000000\n1 2\n", cscmat.ErrBadSize},
		"absurd ncols":       {"%%MatrixMarket matrix coordinate pattern general\n3 4000000000000000000 1\n1 2\n", cscmat.ErrBadSize},
		"absurd array nrows": {"%%MatrixMarket matrix array real general\n4000000000000000000 1\n1\n", cscmat.ErrBadSize},
		"inflated nnz":       {"%%MatrixMarket matrix coordinate pattern general\n3 3 2000000\n1 2\n", cscmat.ErrBadEntry},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := cscmat.ReadMatrixMarket(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromCOO_Errors(t *testing.T) {
	_, err := cscmat.FromCOO(2, 2, []uint32{0}, []uint32{})
	require.ErrorIs(t, err, cscmat.ErrBadEntry)

	_, err = cscmat.FromCOO(2, 2, []uint32{5}, []uint32{0})
	require.ErrorIs(t, err, cscmat.ErrBadEntry)
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := cscmat.Load("graph.csv")
	require.ErrorIs(t, err, cscmat.ErrBadFormat)
}

func TestReadMatrixMarket_TruncatedSizeMessage(t *testing.T) {
	_, err := cscmat.ReadMatrixMarket(strings.NewReader("%%MatrixMarket matrix coordinate pattern general\n"))
	if !errors.Is(err, cscmat.ErrBadSize) {
		t.Errorf("empty body: want ErrBadSize, got %v", err)
	}
}
