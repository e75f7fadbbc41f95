// Package logging provides the engine's single zap.Logger factory.
//
// The engine never reaches for the global zap.L()/zap.S() loggers or
// package-level mutable state: every component that logs receives a
// *zap.Logger explicitly at construction, the same way the orchestrator
// receives its config.Config. This keeps "no global mutable state"
// (spec.md §9) true for the logging path as well as the solver path.
//
// Student data discipline: nothing above debug level ever logs a full
// Student record. Info and above log names and aggregate counts only.
package logging

import "go.uber.org/zap"

// New builds a production zap.Logger (JSON encoding, info level) for use
// outside tests.
func New() (*zap.Logger, error) {
	return zap.NewProduction()
}

// NewDevelopment builds a console-encoded, debug-level zap.Logger
// suitable for the cmd/classplan demonstration binary and local runs.
func NewDevelopment() (*zap.Logger, error) {
	return zap.NewDevelopment()
}

// Noop returns a logger that discards everything, for components under
// test that do not want to assert on log output.
func Noop() *zap.Logger {
	return zap.NewNop()
}
