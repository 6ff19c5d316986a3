package cc_test

import (
	"testing"

	"github.com/katalvlaran/parcc/builder"
	"github.com/katalvlaran/parcc/cc"
	"github.com/katalvlaran/parcc/cscmat"
)

// benchMatrix builds a 300×300 grid lattice (90k vertices, ~179k edges).
func benchMatrix(b *testing.B) *cscmat.CSCBinaryMatrix {
	b.Helper()
	m, err := builder.Build(nil, builder.Grid(300, 300))
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func benchCount(b *testing.B, algo cc.Algorithm, workers int) {
	m := benchMatrix(b)

	b.ReportAllocs()
	b.SetBytes(int64(m.NRows + m.NNZ))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := cc.Count(m, cc.WithAlgorithm(algo), cc.WithWorkers(workers)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCount_UnionFind_Seq(b *testing.B)  { benchCount(b, cc.UnionFind, 1) }
func BenchmarkCount_UnionFind_Par8(b *testing.B) { benchCount(b, cc.UnionFind, 8) }
func BenchmarkCount_LabelProp_Seq(b *testing.B)  { benchCount(b, cc.LabelPropagation, 1) }
func BenchmarkCount_LabelProp_Par8(b *testing.B) { benchCount(b, cc.LabelPropagation, 8) }
