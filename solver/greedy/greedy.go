package greedy

import (
	"context"
	"math"
	"sort"

	"github.com/classplan/engine/config"
	"github.com/classplan/engine/dsu"
	"github.com/classplan/engine/engineerr"
	"github.com/classplan/engine/evaluate"
	"github.com/classplan/engine/roster"
	"go.uber.org/zap"
)

// Greedy is the fast heuristic Solver from spec.md §4.2: connected
// components, cluster-first placement, move-group placement by cost,
// then a bounded local-improvement swap pass.
type Greedy struct {
	logger  *zap.Logger
	weights config.Weights
	maxSwap int
}

// New builds a Greedy solver. weights come from config.Config.Weights;
// maxSwapRounds from config.Config.MaxSwapRounds.
func New(logger *zap.Logger, weights config.Weights, maxSwapRounds int) *Greedy {
	return &Greedy{logger: logger, weights: weights, maxSwap: maxSwapRounds}
}

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) Solve(ctx context.Context, r *roster.Roster, k int) (evaluate.Assignment, *engineerr.Error) {
	p := newPlanner(r, k)
	t := computeTargets(r, k)
	softCap := int(math.Ceil(float64(r.Size()) / float64(k)))

	if err := ctx.Err(); err != nil {
		return nil, engineerr.AssignmentFailed("context cancelled before placement began")
	}

	g.placeClusters(p, t, softCap)
	if err := g.placeRemaining(p, t, softCap); err != nil {
		return nil, err
	}

	components := connectedComponents(r.Graph())
	rounds := g.swapPass(p, t)
	g.logger.Debug("greedy solve complete",
		zap.Int("components", len(components)),
		zap.Int("swapRounds", rounds),
		zap.Int("unassigned", len(p.unassigned)))

	return evaluate.Assignment(p.assignment), nil
}

// placeClusters places every non-singleton cluster as a unit (spec.md
// §4.2 step 3), choosing whichever class minimizes placementCost among
// those that would not violate a separation pair. Clusters are
// processed largest-first so the biggest, least-flexible groups claim
// capacity before smaller ones.
func (g *Greedy) placeClusters(p *planner, t targets, softCap int) {
	clusters := p.r.Clusters()
	ids := p.r.NonSingletonClusters()
	sort.SliceStable(ids, func(i, j int) bool {
		return len(clusters[ids[i]]) > len(clusters[ids[j]])
	})

	for _, id := range ids {
		members := clusters[id]
		unassignedMembers := make([]string, 0, len(members))
		for _, m := range members {
			if p.unassigned[m] {
				unassignedMembers = append(unassignedMembers, m)
			}
		}
		if len(unassignedMembers) == 0 {
			continue
		}
		sort.Strings(unassignedMembers)

		candidates := classesWithin(p, len(unassignedMembers), softCap)
		feasible := filterSeparationSafe(p, unassignedMembers, candidates)
		if len(feasible) == 0 {
			feasible = filterSeparationSafe(p, unassignedMembers, allClasses(p.k))
		}
		if len(feasible) == 0 {
			// Every class has a separation conflict with this cluster;
			// place into the lowest-cost class anyway and let Evaluate
			// surface the violation — Greedy never blocks on this.
			feasible = allClasses(p.k)
		}

		best, ok := bestClass(p, unassignedMembers, feasible, t, g.weights)
		if !ok {
			continue
		}
		for _, m := range unassignedMembers {
			p.place(m, best)
		}
	}
}

// placeRemaining runs spec.md §4.2 steps 4-6: repeatedly pick the
// unassigned student with the fewest unassigned friends (ties broken by
// descending degree, then name), gather its move group, and place the group into its
// lowest-cost feasible class.
func (g *Greedy) placeRemaining(p *planner, t targets, softCap int) *engineerr.Error {
	d := dsu.New(p.r.Names())

	for len(p.unassigned) > 0 {
		student := nextStudent(p)
		group := gatherMoveGroup(p, d, student)

		candidates := classesWithin(p, len(group), softCap)
		feasible := filterSeparationSafe(p, group, candidates)
		if len(feasible) == 0 {
			feasible = filterSeparationSafe(p, group, allClasses(p.k))
		}
		if len(feasible) == 0 {
			return engineerr.AssignmentFailed(
				"no class can host move group without violating a separation pair, even after cap relaxation")
		}

		best, ok := bestClass(p, group, feasible, t, g.weights)
		if !ok {
			return engineerr.AssignmentFailed("no feasible class found for move group")
		}
		for _, name := range group {
			p.place(name, best)
		}
	}

	return nil
}

// nextStudent returns the unassigned student with fewest unassigned
// friends, ties broken by descending degree in G (the student harder to
// place well later goes first), then lexicographically (spec.md §4.2
// step 4).
func nextStudent(p *planner) string {
	names := make([]string, 0, len(p.unassigned))
	for name := range p.unassigned {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := p.unassignedFriendCount(names[i]), p.unassignedFriendCount(names[j])
		if ci != cj {
			return ci < cj
		}

		di, dj := p.degree(names[i]), p.degree(names[j])
		if di != dj {
			return di > dj
		}

		return names[i] < names[j]
	})

	return names[0]
}

// classesWithin returns class indices whose size would stay at or below
// softCap after adding addSize more students, sorted ascending.
func classesWithin(p *planner, addSize, softCap int) []int {
	var out []int
	for c := 0; c < p.k; c++ {
		if p.classes[c].size+addSize <= softCap {
			out = append(out, c)
		}
	}

	return out
}

func allClasses(k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = i
	}

	return out
}

func filterSeparationSafe(p *planner, group []string, candidates []int) []int {
	var out []int
	for _, c := range candidates {
		if !violatesSeparation(p, group, c) {
			out = append(out, c)
		}
	}

	return out
}

