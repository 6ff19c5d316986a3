package cc

import (
	"fmt"

	"github.com/katalvlaran/parcc/cscmat"
)

// Count returns the number of connected components of m, applying any
// number of functional Options. The matrix is never mutated, and no state
// survives the call: repeated invocations on the same input return the
// same count.
//
// Workers == 1 (the default) runs the sequential baseline of the chosen
// family; Workers > 1 runs its parallel form. Returns ErrNilMatrix,
// ErrUnknownAlgorithm, or ErrOptionViolation for invalid input.
func Count(m *cscmat.CSCBinaryMatrix, opts ...Option) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	if m.NRows == 0 {
		return 0, nil
	}

	switch o.Algorithm {
	case LabelPropagation:
		if o.Workers > 1 {
			return countLabelPropPar(m, o), nil
		}
		return countLabelPropSeq(m), nil
	case UnionFind:
		if o.Workers > 1 {
			return countUnionFindPar(m, o), nil
		}
		return countUnionFindSeq(m), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(o.Algorithm))
	}
}
