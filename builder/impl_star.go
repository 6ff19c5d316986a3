// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices).
//   - The hub is the block's first vertex; leaves follow in ascending index
//     order, each connected to the hub by one spoke.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.
//
// Determinism:
//   - Deterministic spoke emission order by increasing leaf index.

package builder

import "fmt"

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves. Every spoke shares the hub, which makes this the
// highest-contention fixture for the parallel union-find.
func Star(n int) Constructor {
	return func(s *edgeSet, _ builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		hub := s.addVertices(n)
		for i := 1; i < n; i++ {
			s.addEdge(hub, hub+i)
		}
		return nil
	}
}
