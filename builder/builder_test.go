package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parcc/builder"
)

func TestBuild_Path(t *testing.T) {
	m, err := builder.Build(nil, builder.Path(5))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.Equal(t, 5, m.NRows)
	require.Equal(t, 4, m.NNZ)
}

func TestBuild_Star(t *testing.T) {
	m, err := builder.Build(nil, builder.Star(100))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.Equal(t, 100, m.NRows)
	require.Equal(t, 99, m.NNZ)

	// Every spoke touches the hub (vertex 0): all edges sit in columns
	// 1..n-1 with row 0, given the hub-first emission order.
	for j := 0; j < m.NNZ; j++ {
		require.Equal(t, uint32(0), m.RowIdx[j])
	}
}

func TestBuild_Cycle(t *testing.T) {
	m, err := builder.Build(nil, builder.Cycle(6))
	require.NoError(t, err)
	require.Equal(t, 6, m.NRows)
	require.Equal(t, 6, m.NNZ)
}

func TestBuild_Grid(t *testing.T) {
	m, err := builder.Build(nil, builder.Grid(3, 4))
	require.NoError(t, err)
	require.Equal(t, 12, m.NRows)
	// 3 rows of 3 horizontal edges + 2 rows of 4 vertical edges.
	require.Equal(t, 3*3+2*4, m.NNZ)
}

func TestBuild_Complete(t *testing.T) {
	m, err := builder.Build(nil, builder.Complete(5))
	require.NoError(t, err)
	require.Equal(t, 5, m.NRows)
	require.Equal(t, 10, m.NNZ) // C(5,2)
}

func TestBuild_DisjointComposition(t *testing.T) {
	// Constructors allocate disjoint vertex blocks in call order.
	m, err := builder.Build(nil, builder.Path(3), builder.Isolated(2), builder.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, 9, m.NRows)
	require.Equal(t, 2+0+4, m.NNZ)
}

func TestBuild_SymmetricDoublesOffDiagonal(t *testing.T) {
	plain, err := builder.Build(nil, builder.Path(4))
	require.NoError(t, err)
	mirrored, err := builder.Build([]builder.BuilderOption{builder.WithSymmetric()}, builder.Path(4))
	require.NoError(t, err)
	require.Equal(t, 2*plain.NNZ, mirrored.NNZ)
	require.NoError(t, mirrored.Validate())
}

func TestBuild_RandomSparseDeterministic(t *testing.T) {
	a, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1234)}, builder.RandomSparse(150, 0.05))
	require.NoError(t, err)
	b, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1234)}, builder.RandomSparse(150, 0.05))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := builder.Build([]builder.BuilderOption{builder.WithSeed(4321)}, builder.RandomSparse(150, 0.05))
	require.NoError(t, err)
	require.Equal(t, c.NRows, a.NRows)
}

func TestBuild_Errors(t *testing.T) {
	cases := map[string]struct {
		cons builder.Constructor
		want error
	}{
		"path too small":     {builder.Path(1), builder.ErrTooFewVertices},
		"cycle too small":    {builder.Cycle(2), builder.ErrTooFewVertices},
		"star too small":     {builder.Star(1), builder.ErrTooFewVertices},
		"grid zero side":     {builder.Grid(0, 5), builder.ErrTooFewVertices},
		"isolated zero":      {builder.Isolated(0), builder.ErrTooFewVertices},
		"bad probability":    {builder.RandomSparse(10, 1.5), builder.ErrInvalidProbability},
		"missing rng":        {builder.RandomSparse(10, 0.5), builder.ErrNeedRandSource},
		"nil constructor":    {nil, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.Build(nil, tc.cons)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("WithSeed must not panic: %v", r)
		}
	}()
	_ = builder.WithSeed(0)
}

func TestBuild_EmptyConstructorList(t *testing.T) {
	m, err := builder.Build(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.NRows)
	require.Equal(t, 0, m.NNZ)
	if !errors.Is(m.Validate(), nil) {
		t.Errorf("empty build must validate, got %v", m.Validate())
	}
}
