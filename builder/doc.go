// SPDX-License-Identifier: MIT

// Package builder constructs deterministic synthetic sparse graphs as
// cscmat.CSCBinaryMatrix values — the fixtures behind the cc tests,
// benchmarks, and examples.
//
// What
//
//   - One orchestrator: Build(bopts, cons...). Resolves options, applies
//     constructors in order against a COO edge accumulator, finalizes to CSC.
//   - Topology factories: Isolated, Path, Cycle, Star, Complete, Grid,
//     RandomSparse. Each appends a fresh block of vertices, so composing
//     several constructors yields their disjoint union.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig; no global state.
//
// Determinism
//
//	Same constructor order, options, and seed ⇒ identical matrices.
//	Stochastic builders (RandomSparse) require WithSeed or WithRand and
//	are reproducible for a fixed seed.
//
// Edge emission
//
//	Constructors emit each edge once as (row, col). WithSymmetric mirrors
//	every off-diagonal entry at finalization, producing the symmetric
//	adjacency layout that Matrix Market "symmetric" input expands to.
//	The cc engine accepts either layout.
//
// Errors
//
//   - ErrTooFewVertices     size parameter below the constructor's minimum.
//   - ErrInvalidProbability probability outside [0,1].
//   - ErrNeedRandSource     stochastic constructor without an RNG.
//   - ErrConstructFailed    nil constructor or finalization failure.
package builder
