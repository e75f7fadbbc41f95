package roster

import (
	"sort"

	"github.com/classplan/engine/graph"
)

// SeparationPair is an unordered pair {a,b} from S, canonicalized so A<B
// lexicographically — this makes the pair a usable, comparable map key
// without a side "reverse" lookup.
type SeparationPair struct {
	A, B string
}

func newSeparationPair(x, y string) SeparationPair {
	if x > y {
		x, y = y, x
	}

	return SeparationPair{A: x, B: y}
}

// Warning records a non-fatal normalization event: a dangling friend or
// not_with reference dropped while building the indexes. Roster
// construction never fails on these — spec.md §3 calls for a warning,
// not a rejection; validate.Validate applies the hard UNKNOWN_FRIEND
// check before a Roster is ever built from request data.
type Warning struct {
	StudentName string
	Reference   string
	Reason      string
}

// Roster is the validated, immutable set of input students for one call,
// plus its three derived indexes: the friendship graph G, the separation
// set S, and the cluster partition C.
type Roster struct {
	byName map[string]*Student
	names  []string // sorted, for deterministic iteration

	g *graph.Graph
	s map[SeparationPair]struct{}
	c map[int][]string // clusterID -> member names, sorted by name

	Warnings []Warning
}

// New builds a Roster from raw student records. Each record is
// normalized (self-references and duplicate friends removed) before the
// indexes are built. Dangling friend/not_with references — names not
// present in this roster — are dropped and recorded as Warnings rather
// than rejected; see Warning's doc comment for why.
func New(raw []Student) *Roster {
	r := &Roster{
		byName: make(map[string]*Student, len(raw)),
		g:      graph.NewGraph(),
		s:      make(map[SeparationPair]struct{}),
		c:      make(map[int][]string),
	}

	for i := range raw {
		cleaned := normalize(raw[i])
		r.byName[cleaned.Name] = &cleaned
	}

	r.names = make([]string, 0, len(r.byName))
	for name := range r.byName {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	for _, name := range r.names {
		_ = r.g.AddVertex(name)
	}

	for _, name := range r.names {
		st := r.byName[name]
		for _, friend := range st.Friends {
			if _, ok := r.byName[friend]; !ok {
				r.Warnings = append(r.Warnings, Warning{
					StudentName: name, Reference: friend, Reason: "dangling friend reference",
				})
				continue
			}
			_, _ = r.g.AddEdge(name, friend)
		}

		if st.NotWith != "" {
			if _, ok := r.byName[st.NotWith]; !ok {
				r.Warnings = append(r.Warnings, Warning{
					StudentName: name, Reference: st.NotWith, Reason: "dangling not_with reference",
				})
			} else {
				r.s[newSeparationPair(name, st.NotWith)] = struct{}{}
			}
		}

		if st.HasCluster {
			r.c[st.ClusterID] = append(r.c[st.ClusterID], name)
		}
	}

	return r
}

// Size returns the number of students in the roster.
func (r *Roster) Size() int { return len(r.byName) }

// Names returns all student names, sorted lexicographically.
func (r *Roster) Names() []string { return append([]string(nil), r.names...) }

// Get returns the student record for name, and whether it exists.
func (r *Roster) Get(name string) (*Student, bool) {
	st, ok := r.byName[name]

	return st, ok
}

// Graph returns the friendship graph G.
func (r *Roster) Graph() *graph.Graph { return r.g }

// Separations returns the separation set S as a sorted, deterministic
// slice of pairs.
func (r *Roster) Separations() []SeparationPair {
	out := make([]SeparationPair, 0, len(r.s))
	for p := range r.s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// IsSeparated reports whether a and b form a separation pair in S.
func (r *Roster) IsSeparated(a, b string) bool {
	_, ok := r.s[newSeparationPair(a, b)]

	return ok
}

// Clusters returns the cluster partition C: a map from cluster ID to its
// member names, each sorted lexicographically. Only
// clusters with HasCluster == true contribute; singleton clusters (one
// member) are included and left to callers to treat as a no-op.
func (r *Roster) Clusters() map[int][]string {
	out := make(map[int][]string, len(r.c))
	for id, members := range r.c {
		out[id] = append([]string(nil), members...)
	}

	return out
}

// NonSingletonClusters returns cluster IDs, sorted ascending, whose
// member count is >= 2 — the clusters Greedy step 3 places as a unit.
func (r *Roster) NonSingletonClusters() []int {
	var ids []int
	for id, members := range r.c {
		if len(members) >= 2 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	return ids
}
