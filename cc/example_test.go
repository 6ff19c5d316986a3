package cc_test

import (
	"fmt"

	"github.com/katalvlaran/parcc/builder"
	"github.com/katalvlaran/parcc/cc"
)

// ExampleCount counts the components of a 5-vertex graph made of a
// 3-vertex chain and a 2-vertex chain.
func ExampleCount() {
	m, err := builder.Build(nil, builder.Path(3), builder.Path(2))
	if err != nil {
		panic(err)
	}

	n, err := cc.Count(m, cc.WithAlgorithm(cc.UnionFind), cc.WithWorkers(4))
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output: 2
}
