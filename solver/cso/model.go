package cso

import (
	"sort"

	"github.com/classplan/engine/roster"
	"gonum.org/v1/gonum/mat"
)

// linkKind distinguishes what a co-placement link variable rewards in the
// objective: same-class friendship, or same-class cohesion for a cluster
// whose members can't be chained by a hard constraint (see linkKind's use
// in buildModel).
type linkKind int

const (
	linkFriendship linkKind = iota
	linkCluster
)

// link is one (a,b) pair the objective rewards for landing in the same
// class, via a y variable the build() equality rows linearize.
type link struct {
	a, b int
	kind linkKind
}

// model is the variable-index bookkeeping for one roster's ILP. All
// variables are nonnegative; integrality applies only to the x block,
// per GoMILP's integralityConstraints []bool.
//
// Variable layout, in column order:
//
//	x        [n*k]   assignment indicator, x[s,c] == 1 iff student s in class c
//	y        [L*k]   co-placement indicator per link per class (friendship edges plus soft cluster links)
//	slackCap [k]     sum_s x[s,c] + slackCap[c] == capMax        (hard upper bound)
//	slackLow [k]     sum_s x[s,c] - slackLow[c] == classMin      (hard lower bound)
//	slackSep [p*k]   x[a,c] + x[b,c] + slackSep == 1, per separation pair
//	slackY1  [L*k]   x[a,c] - y[e,c] - slackY1 == 0      (y <= x_a)
//	slackY2  [L*k]   x[b,c] - y[e,c] - slackY2 == 0      (y <= x_b)
//	slackY3  [L*k]   x[a,c] + x[b,c] - y[e,c] + slackY3 == 1  (y >= x_a+x_b-1)
type model struct {
	n, k  int
	names []string // sorted, index matches the x block's student axis
	links []link   // friendship edges and soft cluster-cohesion pairs, in that order
	sepPairs [][2]int
	// clusterLinks holds (memberIdx, anchorIdx) pairs requiring the HARD
	// equality x[member,c] == x[anchor,c] for every class c. Only
	// populated for clusters whose members contain no separation pair
	// among them — a cluster that does is handled as a soft link instead
	// (see buildModel).
	clusterLinks [][2]int

	capMax   int
	classMin int
}

// buildModel indexes r into column bookkeeping for one ILP. capMax and
// classMin are the hard per-class size band spec.md §4.3 requires:
// classMin = floor(n/k), capMax = ceil(n/k).
func buildModel(r *roster.Roster, k, capMax, classMin int) *model {
	names := r.Names()
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}

	m := &model{n: len(names), k: k, names: names, capMax: capMax, classMin: classMin}

	seen := make(map[[2]int]bool)
	var friendLinks []link
	for _, name := range names {
		st, _ := r.Get(name)
		a := idx[name]
		for _, f := range st.Friends {
			b, ok := idx[f]
			if !ok {
				continue
			}
			edge := [2]int{a, b}
			if edge[0] > edge[1] {
				edge[0], edge[1] = edge[1], edge[0]
			}
			if !seen[edge] {
				seen[edge] = true
				friendLinks = append(friendLinks, link{a: edge[0], b: edge[1], kind: linkFriendship})
			}
		}
	}
	sort.Slice(friendLinks, func(i, j int) bool {
		if friendLinks[i].a != friendLinks[j].a {
			return friendLinks[i].a < friendLinks[j].a
		}

		return friendLinks[i].b < friendLinks[j].b
	})
	m.links = append(m.links, friendLinks...)

	for _, pair := range r.Separations() {
		a, okA := idx[pair.A]
		b, okB := idx[pair.B]
		if okA && okB {
			m.sepPairs = append(m.sepPairs, [2]int{a, b})
		}
	}

	// Cluster cohesion: every pair within a cluster forced equal via a
	// chain to its lexicographically-first member (the anchor). A
	// cluster whose own members contain a separation pair can't honor
	// both as hard constraints at once (chaining every member to the
	// anchor transitively forces the separated pair into the same
	// class too) — spec.md §4.3 and §9 call for demoting cohesion to a
	// soft, weighted preference in exactly that case, rather than
	// making the whole model infeasible.
	for _, clusterID := range r.NonSingletonClusters() {
		members := r.Clusters()[clusterID]
		sorted := append([]string(nil), members...)
		sort.Strings(sorted)
		anchor := idx[sorted[0]]

		conflicted := false
		for i := 0; i < len(sorted) && !conflicted; i++ {
			for j := i + 1; j < len(sorted); j++ {
				if r.IsSeparated(sorted[i], sorted[j]) {
					conflicted = true

					break
				}
			}
		}

		for _, name := range sorted[1:] {
			memberIdx := idx[name]
			if conflicted {
				m.links = append(m.links, link{a: memberIdx, b: anchor, kind: linkCluster})
			} else {
				m.clusterLinks = append(m.clusterLinks, [2]int{memberIdx, anchor})
			}
		}
	}

	return m
}

func (m *model) numX() int         { return m.n * m.k }
func (m *model) numY() int         { return len(m.links) * m.k }
func (m *model) xIdx(s, c int) int { return s*m.k + c }
func (m *model) yIdx(e, c int) int { return m.numX() + e*m.k + c }

func (m *model) slackCapBase() int     { return m.numX() + m.numY() }
func (m *model) slackCapIdx(c int) int { return m.slackCapBase() + c }

func (m *model) slackLowBase() int     { return m.slackCapBase() + m.k }
func (m *model) slackLowIdx(c int) int { return m.slackLowBase() + c }

func (m *model) slackSepBase() int        { return m.slackLowBase() + m.k }
func (m *model) slackSepIdx(p, c int) int { return m.slackSepBase() + p*m.k + c }

func (m *model) slackY1Base() int        { return m.slackSepBase() + len(m.sepPairs)*m.k }
func (m *model) slackY1Idx(e, c int) int { return m.slackY1Base() + e*m.k + c }

func (m *model) slackY2Base() int        { return m.slackY1Base() + m.numY() }
func (m *model) slackY2Idx(e, c int) int { return m.slackY2Base() + e*m.k + c }

func (m *model) slackY3Base() int        { return m.slackY2Base() + m.numY() }
func (m *model) slackY3Idx(e, c int) int { return m.slackY3Base() + e*m.k + c }

func (m *model) numCols() int { return m.slackY3Base() + m.numY() }

// build assembles the dense equality system A x = b and the linear cost
// c, plus the integrality mask aligned to the same column order.
// weightFriendship and weightCluster are the per-link objective
// coefficients for linkFriendship and linkCluster links respectively.
func (m *model) build(weightFriendship, weightCluster float64) (a *mat.Dense, b []float64, c []float64, integrality []bool) {
	var rows [][]float64
	var rhs []float64

	row := func() []float64 { return make([]float64, m.numCols()) }

	// One class per student.
	for s := 0; s < m.n; s++ {
		r := row()
		for cls := 0; cls < m.k; cls++ {
			r[m.xIdx(s, cls)] = 1
		}
		rows = append(rows, r)
		rhs = append(rhs, 1)
	}

	// Hard per-class size band: floor(n/k) <= size <= ceil(n/k).
	for cls := 0; cls < m.k; cls++ {
		r := row()
		for s := 0; s < m.n; s++ {
			r[m.xIdx(s, cls)] = 1
		}
		r[m.slackCapIdx(cls)] = 1
		rows = append(rows, r)
		rhs = append(rhs, float64(m.capMax))
	}
	for cls := 0; cls < m.k; cls++ {
		r := row()
		for s := 0; s < m.n; s++ {
			r[m.xIdx(s, cls)] = 1
		}
		r[m.slackLowIdx(cls)] = -1
		rows = append(rows, r)
		rhs = append(rhs, float64(m.classMin))
	}

	// Separation pairs: at most one of {a,b} per class.
	for p, pair := range m.sepPairs {
		for cls := 0; cls < m.k; cls++ {
			r := row()
			r[m.xIdx(pair[0], cls)] = 1
			r[m.xIdx(pair[1], cls)] = 1
			r[m.slackSepIdx(p, cls)] = 1
			rows = append(rows, r)
			rhs = append(rhs, 1)
		}
	}

	// Cluster cohesion: member tracks anchor in every class (separation-free clusters only).
	for _, clink := range m.clusterLinks {
		member, anchor := clink[0], clink[1]
		for cls := 0; cls < m.k; cls++ {
			r := row()
			r[m.xIdx(member, cls)] = 1
			r[m.xIdx(anchor, cls)] = -1
			rows = append(rows, r)
			rhs = append(rhs, 0)
		}
	}

	// Co-placement linking variables: y[e,c] == 1 iff both endpoints in c.
	for e, lk := range m.links {
		for cls := 0; cls < m.k; cls++ {
			r1 := row()
			r1[m.xIdx(lk.a, cls)] = 1
			r1[m.yIdx(e, cls)] = -1
			r1[m.slackY1Idx(e, cls)] = -1
			rows = append(rows, r1)
			rhs = append(rhs, 0)

			r2 := row()
			r2[m.xIdx(lk.b, cls)] = 1
			r2[m.yIdx(e, cls)] = -1
			r2[m.slackY2Idx(e, cls)] = -1
			rows = append(rows, r2)
			rhs = append(rhs, 0)

			r3 := row()
			r3[m.xIdx(lk.a, cls)] = 1
			r3[m.xIdx(lk.b, cls)] = 1
			r3[m.yIdx(e, cls)] = -1
			r3[m.slackY3Idx(e, cls)] = 1
			rows = append(rows, r3)
			rhs = append(rhs, 1)
		}
	}

	a = mat.NewDense(len(rows), m.numCols(), nil)
	for i, r := range rows {
		a.SetRow(i, r)
	}

	c = make([]float64, m.numCols())
	for e, lk := range m.links {
		weight := weightFriendship
		if lk.kind == linkCluster {
			weight = weightCluster
		}
		for cls := 0; cls < m.k; cls++ {
			c[m.yIdx(e, cls)] = -weight
		}
	}

	integrality = make([]bool, m.numCols())
	for s := 0; s < m.n; s++ {
		for cls := 0; cls < m.k; cls++ {
			integrality[m.xIdx(s, cls)] = true
		}
	}

	return a, rhs, c, integrality
}
