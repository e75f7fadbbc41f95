package greedy

import "github.com/classplan/engine/config"

// swapPass runs spec.md §4.2 step 7: up to maxSwap rounds of local
// improvement targeted at each student with zero same-class friends,
// trying to swap them into a class that gives them at least one,
// without ever reducing total friend-satisfaction or moving a student
// out of a non-singleton cluster (that would undo step 3's hard
// placement). It returns the number of rounds that made at least one
// swap; the first round that makes none ends the pass.
func (g *Greedy) swapPass(p *planner, t targets) int {
	movable := movableStudents(p)

	round := 0
	for ; round < g.maxSwap; round++ {
		improved := false
		for _, a := range zeroFriendMovable(p, movable) {
			for _, b := range movable {
				if a == b {
					continue
				}
				if trySwap(p, t, g.weights, a, b) {
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return round
}

// movableStudents returns every student not belonging to a non-singleton
// cluster, in deterministic (sorted) order.
func movableStudents(p *planner) []string {
	inCluster := make(map[string]bool)
	for _, id := range p.r.NonSingletonClusters() {
		for _, m := range p.r.Clusters()[id] {
			inCluster[m] = true
		}
	}

	names := p.r.Names()
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !inCluster[n] {
			out = append(out, n)
		}
	}

	return out
}

// zeroFriendMovable filters movable down to students who have friends
// but none placed in their current class — the population spec.md §4.2
// step 7 targets.
func zeroFriendMovable(p *planner, movable []string) []string {
	var out []string
	for _, name := range movable {
		st, _ := p.r.Get(name)
		if len(st.Friends) == 0 {
			continue
		}
		if p.placedFriendsIn(name, p.assignment[name]) == 0 {
			out = append(out, name)
		}
	}

	return out
}

// trySwap exchanges a and b between their current classes if doing so
// gives a at least one same-class friend and lowers combined class cost
// (demographic drift net of friend placement) without creating a
// separation violation and without reducing total friend-satisfaction
// across the pair — that last
// condition is a hard gate, checked independently of the weighted cost
// comparison, so a large demographic-balance gain can never be bought
// at the price of a friend-satisfaction loss. Keeps the swap on
// success, reverts it otherwise.
func trySwap(p *planner, t targets, w config.Weights, a, b string) bool {
	ca, cb := p.assignment[a], p.assignment[b]
	if ca == cb {
		return false
	}
	if p.hasSeparatedPartnerIn(a, cb) || p.hasSeparatedPartnerIn(b, ca) {
		return false
	}

	friendBefore := p.placedFriendsIn(a, ca) + p.placedFriendsIn(b, cb)
	sizeBefore := classCost(p, ca, t, w) + classCost(p, cb, t, w)
	before := sizeBefore - w.Friendship*float64(friendBefore)

	p.move(a, cb)
	p.move(b, ca)

	friendAfter := p.placedFriendsIn(a, cb) + p.placedFriendsIn(b, ca)
	if friendAfter < friendBefore || p.placedFriendsIn(a, cb) == 0 {
		p.move(a, ca)
		p.move(b, cb)

		return false
	}

	sizeAfter := classCost(p, ca, t, w) + classCost(p, cb, t, w)
	after := sizeAfter - w.Friendship*float64(friendAfter)

	if after < before {
		return true
	}

	p.move(a, ca)
	p.move(b, cb)

	return false
}

// classCost scores class c's current composition alone — placementCost
// with an empty group, so only the size and imbalance terms apply.
func classCost(p *planner, c int, t targets, w config.Weights) float64 {
	return placementCost(p, c, nil, t, w)
}
