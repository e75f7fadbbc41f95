package orchestrator_test

import (
	"context"
	"testing"

	"github.com/classplan/engine/config"
	"github.com/classplan/engine/engineerr"
	"github.com/classplan/engine/evaluate"
	"github.com/classplan/engine/logging"
	"github.com/classplan/engine/metrics"
	"github.com/classplan/engine/orchestrator"
	"github.com/classplan/engine/roster"
	"github.com/classplan/engine/solver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSolver lets tests control exactly what a solver returns without
// pulling in greedy/cso's real search behavior.
type stubSolver struct {
	name       string
	assignment evaluate.Assignment
	err        *engineerr.Error
}

func (s *stubSolver) Name() string { return s.name }
func (s *stubSolver) Solve(ctx context.Context, r *roster.Roster, k int) (evaluate.Assignment, *engineerr.Error) {
	return s.assignment, s.err
}

func fourStudents() []roster.Student {
	return []roster.Student{
		{Name: "A", Gender: roster.Male, Academic: roster.High, Behavior: roster.High, Friends: []string{"B"}},
		{Name: "B", Gender: roster.Female, Academic: roster.Medium, Behavior: roster.Medium, Friends: []string{"A"}},
		{Name: "C", Gender: roster.Male, Academic: roster.Low, Behavior: roster.Low, Friends: []string{"D"}},
		{Name: "D", Gender: roster.Female, Academic: roster.High, Behavior: roster.Medium, Friends: []string{"C"}},
	}
}

func newMetrics(t *testing.T) *metrics.Registry {
	t.Helper()
	reg, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	return reg
}

func TestPlan_Success(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = config.AlgorithmGreedy
	primary := &stubSolver{name: "greedy", assignment: evaluate.Assignment{"A": 0, "B": 0, "C": 1, "D": 1}}
	orch := orchestrator.New(cfg, logging.Noop(), newMetrics(t), solver.NewRegistry(primary))

	rec, assignment, err := orch.Plan(context.Background(), fourStudents(), 2)
	require.Nil(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "greedy", rec.StrategyUsed)
	assert.False(t, rec.FallbackUsed)
	assert.Len(t, assignment, 4)
}

func TestPlan_ValidationErrorPropagates(t *testing.T) {
	cfg := config.Default()
	orch := orchestrator.New(cfg, logging.Noop(), newMetrics(t), solver.NewRegistry(&stubSolver{name: "cso"}))

	_, _, err := orch.Plan(context.Background(), nil, 2)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeEmptyStudentData, err.Code)
}

func TestPlan_FallsBackToGreedyOnTimeout(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = config.AlgorithmCSO
	cfg.FallbackEnabled = true
	primary := &stubSolver{name: "cso", err: engineerr.OptimizationTimeout(30.0)}
	fallback := &stubSolver{name: "greedy", assignment: evaluate.Assignment{"A": 0, "B": 0, "C": 1, "D": 1}}
	orch := orchestrator.New(cfg, logging.Noop(), newMetrics(t), solver.NewRegistry(primary, fallback))

	rec, _, err := orch.Plan(context.Background(), fourStudents(), 2)
	require.Nil(t, err)
	assert.True(t, rec.FallbackUsed)
	assert.Equal(t, engineerr.CodeOptimizationTimeout, rec.FallbackReason)
	assert.Equal(t, "greedy", rec.StrategyUsed)
}

func TestPlan_NoFallbackWhenDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = config.AlgorithmCSO
	cfg.FallbackEnabled = false
	primary := &stubSolver{name: "cso", err: engineerr.OptimizationTimeout(30.0)}
	fallback := &stubSolver{name: "greedy"}
	orch := orchestrator.New(cfg, logging.Noop(), newMetrics(t), solver.NewRegistry(primary, fallback))

	_, _, err := orch.Plan(context.Background(), fourStudents(), 2)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeOptimizationTimeout, err.Code)
}

func TestPlan_NonEligibleFailureNeverFallsBack(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = config.AlgorithmCSO
	cfg.FallbackEnabled = true
	primary := &stubSolver{name: "cso", err: engineerr.AssignmentFailed("programmer error")}
	fallback := &stubSolver{name: "greedy", assignment: evaluate.Assignment{"A": 0, "B": 0, "C": 1, "D": 1}}
	orch := orchestrator.New(cfg, logging.Noop(), newMetrics(t), solver.NewRegistry(primary, fallback))

	_, _, err := orch.Plan(context.Background(), fourStudents(), 2)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeAssignmentFailed, err.Code)
}
