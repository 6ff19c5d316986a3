package builder_test

import (
	"fmt"

	"github.com/katalvlaran/parcc/builder"
	"github.com/katalvlaran/parcc/cc"
)

// ExampleBuild composes two disjoint topologies and counts their
// components.
func ExampleBuild() {
	m, err := builder.Build(nil,
		builder.Cycle(4),
		builder.Star(3),
	)
	if err != nil {
		panic(err)
	}

	n, err := cc.Count(m)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d vertices, %d components\n", m.NRows, n)
	// Output: 7 vertices, 2 components
}
