// SPDX-License-Identifier: MIT
// Package: parcc/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng       = nil    (pure/deterministic unless seeded)
//   • symmetric = false  (each edge stored once as (row, col))

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// symmetric mirrors every off-diagonal entry at finalization.
	symmetric bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		symmetric: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
