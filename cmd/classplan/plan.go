package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/classplan/engine/config"
	"github.com/classplan/engine/logging"
	"github.com/classplan/engine/metrics"
	"github.com/classplan/engine/orchestrator"
	"github.com/classplan/engine/roster"
	"github.com/classplan/engine/solver"
	"github.com/classplan/engine/solver/cso"
	"github.com/classplan/engine/solver/greedy"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// inputStudent mirrors roster.Student for JSON decoding, with a pointer
// ClusterID so "the key is absent" and "cluster_id is 0" stay
// distinguishable on the wire, matching roster.Student.HasCluster's
// reason for existing.
type inputStudent struct {
	Name      string   `json:"name"`
	School    string   `json:"school"`
	Gender    string   `json:"gender"`
	Academic  string   `json:"academic"`
	Behavior  string   `json:"behavior"`
	Friends   []string `json:"friends"`
	NotWith   string   `json:"not_with"`
	ClusterID *int     `json:"cluster_id"`
	Comments  string   `json:"comments"`
}

func toStudents(inputs []inputStudent) []roster.Student {
	out := make([]roster.Student, len(inputs))
	for i, in := range inputs {
		out[i] = roster.Student{
			Name:       in.Name,
			School:     in.School,
			Gender:     roster.Gender(in.Gender),
			Academic:   roster.Level(in.Academic),
			Behavior:   roster.Level(in.Behavior),
			Friends:    in.Friends,
			NotWith:    in.NotWith,
			HasCluster: in.ClusterID != nil,
			Comments:   in.Comments,
		}
		if in.ClusterID != nil {
			out[i].ClusterID = *in.ClusterID
		}
	}

	return out
}

func planCmd() *cobra.Command {
	var (
		rosterPath string
		configPath string
		classes    int
		algorithm  string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Assign students from a JSON roster file into balanced classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(rosterPath, configPath, classes, algorithm)
		},
	}

	cmd.Flags().StringVar(&rosterPath, "roster", "", "path to a JSON roster file (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "optional path to a YAML config file")
	cmd.Flags().IntVar(&classes, "classes", 0, "number of classes to assign into (required)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "override the configured algorithm: greedy or cso")
	_ = cmd.MarkFlagRequired("roster")
	_ = cmd.MarkFlagRequired("classes")

	return cmd
}

func runPlan(rosterPath, configPath string, classes int, algorithmOverride string) error {
	raw, err := os.ReadFile(rosterPath)
	if err != nil {
		return fmt.Errorf("reading roster file: %w", err)
	}

	var inputs []inputStudent
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return fmt.Errorf("parsing roster JSON: %w", err)
	}
	students := toStudents(inputs)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if algorithmOverride != "" {
		cfg.Algorithm = config.Algorithm(algorithmOverride)
	}

	logger, err := logging.New()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reg, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("building metrics registry: %w", err)
	}

	solvers := solver.NewRegistry(
		greedy.New(logger, cfg.Weights, cfg.MaxSwapRounds),
		cso.New(logger, cfg.Weights, cfg.MaxNodes, cfg.TimeoutSeconds),
	)

	orch := orchestrator.New(cfg, logger, reg, solvers)
	rec, assignment, solveErr := orch.Plan(context.Background(), students, classes)
	if solveErr != nil {
		return fmt.Errorf("%s: %s", solveErr.Code, solveErr.Message)
	}

	out, err := json.MarshalIndent(map[string]any{
		"assignment": assignment,
		"evaluation": rec,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
