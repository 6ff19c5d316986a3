// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ MinCycleNodes (else ErrTooFewVertices).
//   - Allocates n fresh vertices; emits ring edges (i, i+1 mod n) in stable
//     increasing order, closing edge last.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges. Space: O(1) extra.

package builder

import "fmt"

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *edgeSet, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		base := s.addVertices(n)
		for i := 1; i < n; i++ {
			s.addEdge(base+i-1, base+i)
		}
		s.addEdge(base+n-1, base)
		return nil
	}
}
