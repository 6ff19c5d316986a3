// Package cc counts connected components of a sparse undirected graph
// held as a cscmat.CSCBinaryMatrix.
//
// What
//
//   - One entry point, Count, dispatching over two algorithm families and
//     a sequential/parallel axis chosen by the worker count:
//   - UnionFind: disjoint-set forest. Sequential form uses path halving
//     during unions; the parallel form is Rem's algorithm — lock-free
//     CAS merges with canonical smaller-root-wins ordering, a bounded
//     retry budget, and a forced-store fallback that guarantees progress.
//   - LabelPropagation: iterative minimum-label relaxation. The parallel
//     form runs bulk-synchronous rounds with atomic min-writes and
//     counts survivors through a shared atomic bitmap + popcount.
//   - Both families converge to the same canonical labeling: every vertex
//     ends up represented by the minimum vertex index of its component.
//
// Graph interpretation
//
//	Column c and RowIdx[j] for j in [ColPtr[c], ColPtr[c+1]) form an
//	undirected edge. Vertices are the rows, 0-indexed and dense. The
//	matrix is read-only for the whole computation and its well-formedness
//	is the loader's contract (see cscmat.Validate), not re-checked here.
//
// Concurrency
//
//	Fork-join, one parallel region per phase, no persistent pool. The only
//	shared mutable state is the per-invocation label array, touched purely
//	through atomic load/store/CAS. Edge processing order between workers
//	is unconstrained; correctness rests on monotone label decrease
//	(propagation) and canonical merge ordering plus a final flatten pass
//	(union-find), never on which worker got there first. There is no
//	cancellation: an invocation always runs to completion.
//
// Complexity (V = NRows, E = NNZ)
//
//   - Union-find:        near O(E α(V)) work, O(V) space.
//   - Label propagation: O(E · D) worst case for graph diameter D, O(V) space.
//
// Errors
//
//   - ErrNilMatrix        nil matrix argument.
//   - ErrUnknownAlgorithm selector outside {LabelPropagation, UnionFind}.
//   - ErrOptionViolation  invalid option value (workers < 1, chunk < 1).
package cc
