// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   - Emits each unordered pair (i, j), i < j, exactly once in row-major
//     order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges. Space: O(1) extra.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(s *edgeSet, _ builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		base := s.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.addEdge(base+i, base+j)
			}
		}
		return nil
	}
}
