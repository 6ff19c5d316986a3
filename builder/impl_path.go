// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ MinPathNodes (else ErrTooFewVertices).
//   - Allocates n fresh vertices; emits edges (i-1, i) for i = 1..n-1 in
//     stable increasing order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.

package builder

import "fmt"

// Path returns a Constructor that builds a simple path P_n: one component
// of n vertices chained first-to-last.
func Path(n int) Constructor {
	return func(s *edgeSet, _ builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		base := s.addVertices(n)
		for i := 1; i < n; i++ {
			s.addEdge(base+i-1, base+i)
		}
		return nil
	}
}
