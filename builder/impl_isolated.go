// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// impl_isolated.go - implementation of Isolated(n) constructor.
//
// Contract:
//   - n ≥ MinIsolatedNodes (else ErrTooFewVertices).
//   - Allocates n fresh vertices and emits no edges: n singleton components.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(1). Space: O(1) extra.

package builder

import "fmt"

// Isolated returns a Constructor that adds n edgeless vertices.
func Isolated(n int) Constructor {
	return func(s *edgeSet, _ builderConfig) error {
		if n < MinIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodIsolated, n, MinIsolatedNodes, ErrTooFewVertices)
		}

		s.addVertices(n)
		return nil
	}
}
