// Package parcc computes connected components of large sparse undirected
// graphs stored as CSC (compressed sparse column) binary matrices.
//
// 🚀 What is parcc?
//
//	A small, focused toolkit around one question — "how many connected
//	components does this graph have?" — answered four ways:
//		• Sequential union-find (path halving + flatten pass)
//		• Sequential label propagation (fixed-point relaxation)
//		• Parallel label propagation (atomic min-writes, bitmap counting)
//		• Parallel lock-free union-find (Rem's algorithm, CAS merges)
//
// ✨ Why choose parcc?
//
//   - Deterministic answers – every variant converges to the same count
//   - Lock-free parallelism – no mutexes on the hot path, only atomics
//   - Pure Go core – no cgo; the engine is a single allocation per call
//   - Real input formats – Matrix Market (.mtx) and a columnar binary format
//
// Everything is organized under five subpackages:
//
//	cscmat/  — the CSC binary matrix type and its file loaders
//	cc/      — the connected-components engine and dispatcher
//	builder/ — deterministic synthetic graph constructors for tests & benches
//	bench/   — trial runner with timing/memory stats and JSON reports
//	cmd/     — the parcc command-line tool
//
// Quick start:
//
//	m, err := cscmat.Load("graph.mtx")
//	if err != nil { ... }
//	n, err := cc.Count(m, cc.WithAlgorithm(cc.UnionFind), cc.WithWorkers(8))
//
// Dive into README.md for format details and the benchmarking workflow.
package parcc
