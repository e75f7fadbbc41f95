// Package config is the engine's configuration surface (spec.md §6.4):
// algorithm selection, the CSO deadline, fallback policy, the validator's
// minimum class size, objective weights, and the two mechanism-only
// additions (max_nodes, max_swap_rounds) documented in SPEC_FULL.md §6.4.
//
// Config is read once, at orchestrator construction, via spf13/viper:
// defaults, then an optional classplan.yaml config file, then
// CLASSPLAN_-prefixed environment variables, in that precedence order.
// Nothing in this package re-reads viper after Load returns — the
// returned Config is a plain struct, safe to pass by value and to read
// concurrently for the lifetime of the orchestrator that built it.
package config
