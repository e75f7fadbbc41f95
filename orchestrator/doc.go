// Package orchestrator wires config.Config, structured logging,
// Prometheus metrics, and the solver registry into the single call
// spec.md §4.5 describes: validate the roster, run the configured
// primary strategy, fall back to Greedy once on a narrow set of solver
// failures, score the result with evaluate.Evaluate, and turn any panic
// into an INTERNAL_SERVER_ERROR rather than letting it escape.
package orchestrator
