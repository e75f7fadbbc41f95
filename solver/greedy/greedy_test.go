package greedy_test

import (
	"context"
	"testing"

	"github.com/classplan/engine/config"
	"github.com/classplan/engine/evaluate"
	"github.com/classplan/engine/logging"
	"github.com/classplan/engine/roster"
	"github.com/classplan/engine/solver/greedy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSolver() *greedy.Greedy {
	return greedy.New(logging.Noop(), config.Default().Weights, config.Default().MaxSwapRounds)
}

func friendRingRoster(n int) *roster.Roster {
	students := make([]roster.Student, n)
	genders := []roster.Gender{roster.Male, roster.Female}
	levels := []roster.Level{roster.High, roster.Medium, roster.Low}
	for i := 0; i < n; i++ {
		name := string(rune('A' + i))
		next := string(rune('A' + (i+1)%n))
		students[i] = roster.Student{
			Name:     name,
			Gender:   genders[i%2],
			Academic: levels[i%3],
			Behavior: levels[(i+1)%3],
			Friends:  []string{next},
		}
	}

	return roster.New(students)
}

func TestGreedy_Name(t *testing.T) {
	assert.Equal(t, "greedy", newSolver().Name())
}

func TestGreedy_ProducesCompleteAssignment(t *testing.T) {
	r := friendRingRoster(12)
	g := newSolver()

	assignment, err := g.Solve(context.Background(), r, 3)
	require.Nil(t, err)
	require.Len(t, assignment, 12)

	for _, name := range r.Names() {
		c, ok := assignment[name]
		require.True(t, ok, "student %s not assigned", name)
		assert.GreaterOrEqual(t, c, 0)
		assert.Less(t, c, 3)
	}
}

func TestGreedy_RespectsSeparationPair(t *testing.T) {
	r := roster.New([]roster.Student{
		{Name: "A", Gender: roster.Male, Academic: roster.High, Behavior: roster.High, Friends: []string{"B"}, NotWith: "B"},
		{Name: "B", Gender: roster.Female, Academic: roster.Medium, Behavior: roster.Medium, Friends: []string{"A", "C"}, NotWith: "A"},
		{Name: "C", Gender: roster.Male, Academic: roster.Low, Behavior: roster.Low, Friends: []string{"B", "D"}},
		{Name: "D", Gender: roster.Female, Academic: roster.High, Behavior: roster.Medium, Friends: []string{"C"}},
	})
	g := newSolver()

	assignment, err := g.Solve(context.Background(), r, 2)
	require.Nil(t, err)
	assert.NotEqual(t, assignment["A"], assignment["B"])
}

func TestGreedy_KeepsClusterTogether(t *testing.T) {
	r := roster.New([]roster.Student{
		{Name: "A", Gender: roster.Male, Academic: roster.High, Behavior: roster.High, Friends: []string{"B"}, HasCluster: true, ClusterID: 1},
		{Name: "B", Gender: roster.Female, Academic: roster.Medium, Behavior: roster.Medium, Friends: []string{"A"}, HasCluster: true, ClusterID: 1},
		{Name: "C", Gender: roster.Male, Academic: roster.Low, Behavior: roster.Low, Friends: []string{"D"}},
		{Name: "D", Gender: roster.Female, Academic: roster.High, Behavior: roster.Medium, Friends: []string{"C"}},
	})
	g := newSolver()

	assignment, err := g.Solve(context.Background(), r, 2)
	require.Nil(t, err)
	assert.Equal(t, assignment["A"], assignment["B"])
}

func TestGreedy_DeterministicAcrossRuns(t *testing.T) {
	r := friendRingRoster(16)

	first, err := newSolver().Solve(context.Background(), r, 4)
	require.Nil(t, err)
	second, err := newSolver().Solve(context.Background(), r, 4)
	require.Nil(t, err)

	assert.Equal(t, first, second)
}

func TestGreedy_ScoresReasonablyWithEvaluate(t *testing.T) {
	r := friendRingRoster(12)
	assignment, err := newSolver().Solve(context.Background(), r, 3)
	require.Nil(t, err)

	rec := evaluate.Evaluate(r, assignment, 3)
	assert.Greater(t, rec.Quality, 0)
}
