package cc

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dispatcher.
var (
	// ErrNilMatrix is returned if a nil matrix pointer is passed.
	ErrNilMatrix = errors.New("cc: matrix is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm selector.
	ErrUnknownAlgorithm = errors.New("cc: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cc: invalid option supplied")
)

// Algorithm selects the component-counting family.
type Algorithm int

const (
	// LabelPropagation relaxes labels to the component minimum until a
	// full edge pass produces no change.
	LabelPropagation Algorithm = iota

	// UnionFind builds a disjoint-set forest and counts its roots.
	UnionFind
)

// String implements fmt.Stringer for log and report output.
func (a Algorithm) String() string {
	switch a {
	case LabelPropagation:
		return "label-propagation"
	case UnionFind:
		return "union-find"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps the CLI spellings onto an Algorithm.
// Accepted: "lp", "label-propagation", "uf", "union-find".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "lp", "label-propagation":
		return LabelPropagation, nil
	case "uf", "union-find":
		return UnionFind, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Scheduling constants. Edge phases use dynamic chunking because column
// degrees vary; flatten and count phases are uniform and split statically.
const (
	// DefaultChunkSize is the dynamic-scheduling granularity, in columns,
	// for the edge-processing phases. A load-balancing tunable only.
	DefaultChunkSize = 128

	// maxUnionRetries bounds the CAS retry loop of a parallel union before
	// the forced-store fallback takes over.
	maxUnionRetries = 10
)

// Option configures Count via functional arguments. An invalid value is
// recorded internally and surfaced as ErrOptionViolation when Count runs.
type Option func(*Options)

// Options holds the resolved dispatcher parameters.
type Options struct {
	// Algorithm picks the counting family. Default: UnionFind.
	Algorithm Algorithm

	// Workers is the parallel worker count. 1 selects the sequential
	// baseline of the chosen family. Default: 1.
	Workers int

	// ChunkSize is the dynamic scheduling granularity for edge phases.
	// Default: DefaultChunkSize.
	ChunkSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the sequential union-find configuration.
func DefaultOptions() Options {
	return Options{
		Algorithm: UnionFind,
		Workers:   1,
		ChunkSize: DefaultChunkSize,
	}
}

// WithAlgorithm selects the counting family.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a != LabelPropagation && a != UnionFind {
			o.err = fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
			return
		}
		o.Algorithm = a
	}
}

// WithWorkers sets the worker count. n must be ≥ 1; n == 1 runs the
// sequential baseline.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithChunkSize overrides the dynamic scheduling granularity.
// Affects load balance only, never the result.
func WithChunkSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: ChunkSize must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.ChunkSize = n
	}
}
