package greedy

import (
	"math"

	"github.com/classplan/engine/config"
	"github.com/classplan/engine/roster"
)

// targets are the per-class demographic counts a perfectly balanced
// partition would hit — computed once from the whole roster, then used
// by placementCost to score how far a candidate placement drifts from
// them.
type targets struct {
	gender   [2]float64
	academic [3]float64
	behavior [3]float64
}

func computeTargets(r *roster.Roster, k int) targets {
	var t targets
	kf := float64(k)
	for _, name := range r.Names() {
		st, _ := r.Get(name)
		t.gender[genderIndex(st.Gender)]++
		t.academic[levelIndex(st.Academic)]++
		t.behavior[levelIndex(st.Behavior)]++
	}
	for i := range t.gender {
		t.gender[i] /= kf
	}
	for i := range t.academic {
		t.academic[i] /= kf
	}
	for i := range t.behavior {
		t.behavior[i] /= kf
	}

	return t
}

// violatesSeparation reports whether placing group into class c would put
// any group member alongside its not_with partner.
func violatesSeparation(p *planner, group []string, c int) bool {
	for _, name := range group {
		if p.hasSeparatedPartnerIn(name, c) {
			return true
		}
	}
	// Also check pairwise within the group itself — two members of the
	// same move group can themselves be a separation pair.
	for i, a := range group {
		for _, b := range group[i+1:] {
			if p.r.IsSeparated(a, b) {
				return true
			}
		}
	}

	return false
}

// placementCost scores placing group into class c: smaller is better.
// It rewards classes where group already has placed friends, and
// penalizes classes whose size or demographic mix would drift furthest
// from the ideal targets — the weighted-sum heuristic spec.md §4.2 step
// 6 calls for, reusing config.Weights rather than inventing a parallel
// weight set.
func placementCost(p *planner, c int, group []string, t targets, w config.Weights) float64 {
	cs := p.classes[c]
	size := cs.size
	gender := cs.gender
	academic := cs.academic
	behavior := cs.behavior

	friendTerm := 0
	for _, name := range group {
		st, _ := p.r.Get(name)
		size++
		gender[genderIndex(st.Gender)]++
		academic[levelIndex(st.Academic)]++
		behavior[levelIndex(st.Behavior)]++
		friendTerm += p.placedFriendsIn(name, c)
	}

	var genderDelta, academicDelta, behaviorDelta float64
	for i := range gender {
		genderDelta += math.Abs(float64(gender[i]) - t.gender[i])
	}
	for i := range academic {
		academicDelta += math.Abs(float64(academic[i]) - t.academic[i])
	}
	for i := range behavior {
		behaviorDelta += math.Abs(float64(behavior[i]) - t.behavior[i])
	}

	return float64(size) +
		w.Gender*genderDelta +
		w.Academic*academicDelta +
		w.Behavior*behaviorDelta -
		w.Friendship*float64(friendTerm)
}

// bestClass returns the index of the lowest-cost class for group among
// the classes in candidates, and whether any candidate exists at all.
// Ties are broken by smallest class index, keeping placement order
// deterministic.
func bestClass(p *planner, group []string, candidates []int, t targets, w config.Weights) (int, bool) {
	best := -1
	bestCost := math.Inf(1)
	for _, c := range candidates {
		cost := placementCost(p, c, group, t, w)
		if cost < bestCost {
			bestCost = cost
			best = c
		}
	}

	return best, best >= 0
}
