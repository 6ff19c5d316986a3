// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1]. This covers RandomSparse(n, p).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved builderConfig (set WithSeed/WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a finalization failure
// (the accumulated edge set could not be converted to CSC form).
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect wrapped cause */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
