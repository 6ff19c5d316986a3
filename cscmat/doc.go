// Package cscmat provides the CSC (compressed sparse column) binary matrix
// type consumed by the connected-components engine, together with its
// file loaders.
//
// What
//
//   - CSCBinaryMatrix: an adjacency structure holding only the positions of
//     nonzero entries — row indices per column plus a column offset array.
//     Values are implicitly 1; the matrix is binary by construction.
//   - ReadMatrixMarket / LoadMatrixMarket: Matrix Market (.mtx) input in
//     coordinate or array format, pattern or numeric fields, with the
//     general / symmetric / skew-symmetric / hermitian symmetry classes.
//   - ReadBinary / WriteBinary / LoadBinary: a compact columnar binary
//     format (.csb) that round-trips a matrix without text parsing.
//   - Load: extension-based dispatch over the two formats.
//   - Validate: structural well-formedness check, run by loaders so that
//     downstream consumers may assume valid offsets and indices.
//
// Why
//
//   - Sparse graphs with millions of edges need a flat, cache-friendly
//     representation; CSC gives O(1) access to each column's neighbor list.
//   - The engine in package cc treats the matrix as read-only and performs
//     no validation of its own; loaders own that contract.
//
// Interpretation
//
//	Column index c and RowIdx[j] for j in [ColPtr[c], ColPtr[c+1]) form an
//	undirected edge (c, RowIdx[j]). Vertices are 0-indexed and dense in
//	[0, NRows). Matrix Market files use 1-based indices on disk.
//
// Errors
//
//   - ErrBadHeader            malformed or missing MatrixMarket banner.
//   - ErrUnsupportedSymmetry  symmetry class outside the supported four.
//   - ErrBadSize              malformed size line.
//   - ErrBadEntry             malformed or out-of-range data entry.
//   - ErrNotCSB               binary input without the CSCB magic.
//   - ErrBadFormat            unrecognized file extension in Load.
//   - ErrInvalidMatrix        structural validation failure.
package cscmat
