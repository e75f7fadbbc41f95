// Package validate runs the seven ordered, cheap, deterministic
// preconditions every assignment call must pass before any solver runs
// (spec.md §4.1). The first failing check short-circuits the pipeline:
// no partial assignment is ever returned, and no later check runs.
package validate
