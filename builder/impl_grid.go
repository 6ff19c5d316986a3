// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ MinGridSide (else ErrTooFewVertices).
//   - Vertices laid out row-major; emits right- and down-neighbor edges in
//     row-major scan order (the 4-neighborhood lattice).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(rows·cols) vertices + O(rows·cols) edges. Space: O(1) extra.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid —
// one connected component when both sides are positive.
func Grid(rows, cols int) Constructor {
	return func(s *edgeSet, _ builderConfig) error {
		if rows < MinGridSide || cols < MinGridSide {
			return fmt.Errorf("%s: %dx%d < min side=%d: %w", MethodGrid, rows, cols, MinGridSide, ErrTooFewVertices)
		}

		base := s.addVertices(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := base + r*cols + c
				if c+1 < cols {
					s.addEdge(v, v+1)
				}
				if r+1 < rows {
					s.addEdge(v, v+cols)
				}
			}
		}
		return nil
	}
}
