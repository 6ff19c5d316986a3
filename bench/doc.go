// Package bench wraps the cc engine in a repeatable measurement harness:
// it runs a configured number of trials over one matrix and produces a
// JSON-serializable report with the component count, per-trial wall
// times, mean/standard deviation, and allocation figures.
//
// The engine itself exposes no instrumentation hooks — it is simply
// callable repeatably and deterministically for the same input — so all
// measurement lives out here. A Runner is a plain value; zero fields fall
// back to documented defaults. The count must agree across trials: a
// disagreement is reported as ErrUnstableCount rather than averaged away.
package bench
