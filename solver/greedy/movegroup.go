package greedy

import (
	"sort"

	"github.com/classplan/engine/dsu"
)

// gatherMoveGroup builds student's move group: itself plus up to two
// still-unassigned friends, preferring those whose own neighborhoods are
// smallest (spec.md §4.2 step 5). Ties are broken lexicographically on
// name, matching step 4's tie-break rule.
//
// The group is built by union-ing student with its chosen friends in d
// and reading back the resulting component — this is the "move-group
// unioning" SPEC_FULL.md §4.2 describes: the move group IS the
// disjoint-set component student belongs to once its friends are linked
// in, not a separately tracked slice.
func gatherMoveGroup(p *planner, d *dsu.DSU, student string) []string {
	st, _ := p.r.Get(student)

	type candidate struct {
		name              string
		unassignedFriends int
	}
	var candidates []candidate
	for _, f := range st.Friends {
		if !p.unassigned[f] || f == student {
			continue
		}
		candidates = append(candidates, candidate{name: f, unassignedFriends: p.unassignedFriendCount(f)})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].unassignedFriends != candidates[j].unassignedFriends {
			return candidates[i].unassignedFriends < candidates[j].unassignedFriends
		}

		return candidates[i].name < candidates[j].name
	})

	limit := 2
	if len(candidates) < limit {
		limit = len(candidates)
	}
	for _, c := range candidates[:limit] {
		d.Union(student, c.name)
	}

	groups := d.Groups()
	group := groups[d.Find(student)]

	// Keep only members still unassigned — a prior move group may have
	// left stale links in d from earlier rounds.
	out := make([]string, 0, len(group))
	for _, name := range group {
		if p.unassigned[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}
