package cscmat_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parcc/cscmat"
)

// TestString_Golden pins the 1-based coordinate rendering used for
// debugging output.
func TestString_Golden(t *testing.T) {
	m, err := cscmat.ReadMatrixMarket(strings.NewReader(`%%MatrixMarket matrix coordinate pattern general
5 5 4
1 2
2 3
5 4
4 5
`))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "print_coordinate", []byte(m.String()))
}
