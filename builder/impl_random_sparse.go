// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ MinIsolatedNodes (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Requires cfg.rng (else ErrNeedRandSource); deterministic per seed.
//   - Each unordered pair (i, j), i < j, is included independently with
//     probability p, drawn in row-major order.
//
// Complexity:
//   - Time: O(n²) pair draws. Space: O(1) extra beyond emitted edges.

package builder

import "fmt"

// RandomSparse returns a Constructor that builds an Erdős–Rényi-style
// G(n, p) graph. Deterministic for a fixed seed and call order.
func RandomSparse(n int, p float64) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < MinIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinIsolatedNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		base := s.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					s.addEdge(base+i, base+j)
				}
			}
		}
		return nil
	}
}
