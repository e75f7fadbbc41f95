// Package engineerr defines the engine's structured error envelope and
// the closed set of error codes every component reports through.
//
// Every failure path in this module — validator rejection, solver
// failure, orchestrator fault — returns an *Error rather than a bare Go
// error, so a caller (or the surrounding HTTP layer this repo excludes)
// can switch on Code and interpolate Params without string matching or
// errors.As boilerplate per call site.
package engineerr
