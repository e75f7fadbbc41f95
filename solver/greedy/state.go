package greedy

import "github.com/classplan/engine/roster"

// classState tracks the running demographic histograms and size of one
// class as Greedy fills it, so placementCost never has to recompute a
// class's composition from scratch.
type classState struct {
	size     int
	gender   [2]int // [Male, Female]
	academic [3]int // [High, Medium, Low]
	behavior [3]int // [High, Medium, Low]
}

func levelIndex(lvl roster.Level) int {
	switch lvl {
	case roster.High:
		return 0
	case roster.Medium:
		return 1
	default:
		return 2
	}
}

func genderIndex(g roster.Gender) int {
	if g == roster.Female {
		return 1
	}

	return 0
}

// planner tracks assignment progress across all K classes.
type planner struct {
	r          *roster.Roster
	k          int
	assignment map[string]int
	classes    []classState
	unassigned map[string]bool
}

func newPlanner(r *roster.Roster, k int) *planner {
	p := &planner{
		r:          r,
		k:          k,
		assignment: make(map[string]int, r.Size()),
		classes:    make([]classState, k),
		unassigned: make(map[string]bool, r.Size()),
	}
	for _, name := range r.Names() {
		p.unassigned[name] = true
	}

	return p
}

// place assigns name to class c, updating histograms and the
// unassigned set. name must not already be placed.
func (p *planner) place(name string, c int) {
	st, _ := p.r.Get(name)
	p.assignment[name] = c
	delete(p.unassigned, name)

	cs := &p.classes[c]
	cs.size++
	cs.gender[genderIndex(st.Gender)]++
	cs.academic[levelIndex(st.Academic)]++
	cs.behavior[levelIndex(st.Behavior)]++
}

// move reassigns an already-placed student from its current class to a
// new one, updating histograms on both sides.
func (p *planner) move(name string, to int) {
	st, _ := p.r.Get(name)
	from := p.assignment[name]
	if from == to {
		return
	}

	fc := &p.classes[from]
	fc.size--
	fc.gender[genderIndex(st.Gender)]--
	fc.academic[levelIndex(st.Academic)]--
	fc.behavior[levelIndex(st.Behavior)]--

	tc := &p.classes[to]
	tc.size++
	tc.gender[genderIndex(st.Gender)]++
	tc.academic[levelIndex(st.Academic)]++
	tc.behavior[levelIndex(st.Behavior)]++

	p.assignment[name] = to
}

// unassignedFriendCount returns how many of name's friends are not yet
// placed — the "neighborhood availability" spec.md §4.2 step 4 sorts by.
func (p *planner) unassignedFriendCount(name string) int {
	st, _ := p.r.Get(name)
	n := 0
	for _, f := range st.Friends {
		if p.unassigned[f] {
			n++
		}
	}

	return n
}

// placedFriendsIn counts how many of name's friends are already placed
// in class c.
func (p *planner) placedFriendsIn(name string, c int) int {
	st, _ := p.r.Get(name)
	n := 0
	for _, f := range st.Friends {
		if fc, ok := p.assignment[f]; ok && fc == c {
			n++
		}
	}

	return n
}

// hasSeparatedPartnerIn reports whether name has a not_with partner
// already placed in class c.
func (p *planner) hasSeparatedPartnerIn(name string, c int) bool {
	st, _ := p.r.Get(name)
	if st.NotWith == "" {
		return false
	}
	nc, ok := p.assignment[st.NotWith]

	return ok && nc == c
}

// degree returns name's degree in G, falling back to 0 if the graph
// lookup fails (it never should, post-validation).
func (p *planner) degree(name string) int {
	d, err := p.r.Graph().Degree(name)
	if err != nil {
		return 0
	}

	return d
}
