// Package main is the classplan demo CLI: a thin command that reads a
// JSON roster from disk, runs it through the orchestrator, and prints
// the resulting assignment and evaluation record. It exists to exercise
// the engine end-to-end, the way the teacher's examples/ directory
// exercises its graph algorithms — not as a production HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classplan",
	Short: "Classroom placement engine demo CLI",
	Long: `classplan assigns students into balanced classes from a JSON
roster file, honoring friendship, separation, and cluster constraints,
using either the Greedy heuristic or the CSO branch-and-bound solver.`,
}

func main() {
	rootCmd.AddCommand(planCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
