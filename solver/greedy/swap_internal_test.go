package greedy

import (
	"testing"

	"github.com/classplan/engine/config"
	"github.com/classplan/engine/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrySwap_NeverReducesFriendSatisfaction covers spec.md §4.2 step
// 7's hard gate: a swap that would lower total friend-satisfaction must
// be rejected even when it would lower weighted class cost, so it must
// not be foldable into the weighted comparison alone. Weights are set
// to heavily reward the demographic gain this swap would otherwise buy.
func TestTrySwap_NeverReducesFriendSatisfaction(t *testing.T) {
	r := roster.New([]roster.Student{
		{Name: "A", Gender: roster.Male, Academic: roster.High, Behavior: roster.High, Friends: []string{"C"}},
		{Name: "C", Gender: roster.Male, Academic: roster.High, Behavior: roster.High, Friends: []string{"A"}},
		{Name: "B", Gender: roster.Female, Academic: roster.Low, Behavior: roster.Low, Friends: []string{}},
		{Name: "D", Gender: roster.Female, Academic: roster.Low, Behavior: roster.Low, Friends: []string{}},
	})
	p := newPlanner(r, 2)
	p.place("A", 0)
	p.place("C", 0)
	p.place("B", 1)
	p.place("D", 1)

	w := config.Weights{Friendship: 1, Gender: 1000, Academic: 1000, Behavior: 1000, Cluster: 1}
	tg := computeTargets(r, 2)

	require.Equal(t, 1, p.placedFriendsIn("A", 0))

	ok := trySwap(p, tg, w, "A", "B")

	assert.False(t, ok)
	assert.Equal(t, 0, p.assignment["A"])
	assert.Equal(t, 1, p.assignment["B"])
	assert.Equal(t, 1, p.placedFriendsIn("A", p.assignment["A"]))
}
