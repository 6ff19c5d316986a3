// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in
//     order against a shared edge accumulator, finalizes to CSC.
//   - All public factories are declared in impl_*.go files.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical
//     matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/parcc/cscmat"
)

// Constructor applies a deterministic topology mutation to the edge
// accumulator using the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate their vertices through s.addVertices so compositions form
//     disjoint unions.
//   - Preserve determinism for the same config and call order.
type Constructor func(s *edgeSet, cfg builderConfig) error

// Build resolves the builder configuration from bopts and applies all
// constructors in order, returning the finalized CSC matrix. Any
// constructor error is wrapped with the context "Build: %w" and returned
// immediately; no partial cleanup is attempted by design.
//
// Complexity: option resolution O(len(bopts)); construction is the sum of
// constructor costs; finalization O(V + E).
func Build(bopts []BuilderOption, cons ...Constructor) (*cscmat.CSCBinaryMatrix, error) {
	cfg := newBuilderConfig(bopts...)

	s := &edgeSet{}
	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return s.finalize(cfg)
}
