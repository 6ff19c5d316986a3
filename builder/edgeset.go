// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// edgeset.go — COO edge accumulator shared by all constructors.
//
// Contract:
//   - Vertices are allocated in contiguous blocks; composing constructors
//     yields the disjoint union of their topologies.
//   - addEdge records one (row, col) coordinate; mirroring (if requested)
//     happens once, at finalization, so constructors stay direction-agnostic.
//   - finalize converts to CSC via cscmat.FromCOO and never mutates state,
//     so a Build result is independent of the accumulator's lifetime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/parcc/cscmat"
)

// edgeSet accumulates vertices and COO edges during construction.
type edgeSet struct {
	n    int // vertices allocated so far
	rows []uint32
	cols []uint32
}

// addVertices reserves k fresh vertex ids and returns the id of the first.
func (s *edgeSet) addVertices(k int) int {
	base := s.n
	s.n += k
	return base
}

// addEdge records the undirected edge (u, v) as a single (row=u, col=v)
// coordinate. Callers pass ids obtained from addVertices.
func (s *edgeSet) addEdge(u, v int) {
	s.rows = append(s.rows, uint32(u))
	s.cols = append(s.cols, uint32(v))
}

// finalize converts the accumulated edges to CSC form, mirroring
// off-diagonal entries when cfg.symmetric is set.
func (s *edgeSet) finalize(cfg builderConfig) (*cscmat.CSCBinaryMatrix, error) {
	rows, cols := s.rows, s.cols
	if cfg.symmetric {
		rows = make([]uint32, 0, 2*len(s.rows))
		cols = make([]uint32, 0, 2*len(s.cols))
		for k := range s.rows {
			rows = append(rows, s.rows[k])
			cols = append(cols, s.cols[k])
			if s.rows[k] != s.cols[k] {
				rows = append(rows, s.cols[k])
				cols = append(cols, s.rows[k])
			}
		}
	}

	m, err := cscmat.FromCOO(s.n, s.n, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("finalize: %v: %w", err, ErrConstructFailed)
	}
	return m, nil
}
