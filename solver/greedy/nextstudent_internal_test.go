package greedy

import (
	"testing"

	"github.com/classplan/engine/roster"
	"github.com/stretchr/testify/assert"
)

// TestNextStudent_DegreeBreaksFriendCountTie covers spec.md §4.2 step
// 4's three-level tiebreak: fewest unassigned friends, then descending
// degree in G, then lexicographic name. A and B both have one
// unassigned friend; B has a higher degree in G, so B must go first.
func TestNextStudent_DegreeBreaksFriendCountTie(t *testing.T) {
	r := roster.New([]roster.Student{
		{Name: "A", Gender: roster.Male, Academic: roster.High, Behavior: roster.High, Friends: []string{"Z"}},
		{Name: "B", Gender: roster.Female, Academic: roster.Medium, Behavior: roster.Medium, Friends: []string{"Z", "Y", "X"}},
		{Name: "X", Gender: roster.Male, Academic: roster.Low, Behavior: roster.Low, Friends: []string{"B"}},
		{Name: "Y", Gender: roster.Female, Academic: roster.High, Behavior: roster.Medium, Friends: []string{"B"}},
		{Name: "Z", Gender: roster.Male, Academic: roster.Low, Behavior: roster.High, Friends: []string{"A", "B"}},
	})
	p := newPlanner(r, 2)

	// Place X and Y so A and B both have exactly one unassigned friend (Z).
	p.place("X", 0)
	p.place("Y", 0)

	assert.Equal(t, 1, p.unassignedFriendCount("A"))
	assert.Equal(t, 1, p.unassignedFriendCount("B"))
	assert.Greater(t, p.degree("B"), p.degree("A"))

	assert.Equal(t, "B", nextStudent(p))
}
