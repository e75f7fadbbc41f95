// Package evaluate scores a candidate Assignment against the hard and
// soft criteria from spec.md §4.4: the hard-violations list, the soft
// metrics (friend satisfaction, per-attribute imbalance, size
// imbalance), and the composite 0-100 quality score.
//
// Evaluate is deterministic and stateless (spec.md §4.4): it never reads
// a clock, a config, or any package-level state, and the same
// (Roster, Assignment, K) triple always yields a bit-identical
// EvaluationRecord. ExecutionTime, StrategyUsed, FallbackUsed, and
// FallbackReason are the orchestrator's concern, not the evaluator's —
// Evaluate leaves them at their zero value; the orchestrator fills them
// in after timing the call.
//
// Per-attribute imbalance (gender, academic, behavior) is computed as
// the sum of squared deviations of each class's per-attribute count from
// the mean, via gonum.org/v1/gonum/stat's population-variance helper.
// This package is the only place demographic balance is measured: the
// CSO objective has no gender, academic, or behavior balance terms, so
// neither solver optimizes for these metrics directly.
package evaluate
