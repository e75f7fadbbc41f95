package dsu

// DSU is a disjoint-set forest over a fixed universe of string keys.
// The zero value is not usable; construct with New.
type DSU struct {
	parent map[string]string
	rank   map[string]int
	order  []string // insertion order, for deterministic Groups() output
}

// New builds a DSU where every element in items starts as its own
// singleton set. Calling Find or Union with a key not present in items
// is a programming error and panics, mirroring map access semantics the
// rest of this module relies on.
func New(items []string) *DSU {
	d := &DSU{
		parent: make(map[string]string, len(items)),
		rank:   make(map[string]int, len(items)),
		order:  make([]string, 0, len(items)),
	}
	for _, id := range items {
		d.Add(id)
	}

	return d
}

// Add inserts id as a new singleton set if it is not already tracked.
// It is a no-op if id is already present.
func (d *DSU) Add(id string) {
	if _, ok := d.parent[id]; ok {
		return
	}
	d.parent[id] = id
	d.rank[id] = 0
	d.order = append(d.order, id)
}

// Find returns the representative (root) of the set containing u,
// compressing the path from u to the root as it walks up.
func (d *DSU) Find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// Union merges the sets containing u and v, attaching the lower-rank
// root under the higher-rank root and bumping rank on a tie. Returns
// true if u and v were in different sets (a merge happened), false if
// they were already in the same set.
func (d *DSU) Union(u, v string) bool {
	rootU := d.Find(u)
	rootV := d.Find(v)
	if rootU == rootV {
		return false
	}

	if d.rank[rootU] < d.rank[rootV] {
		d.parent[rootU] = rootV
	} else {
		d.parent[rootV] = rootU
		if d.rank[rootU] == d.rank[rootV] {
			d.rank[rootU]++
		}
	}

	return true
}

// Connected reports whether u and v currently belong to the same set.
func (d *DSU) Connected(u, v string) bool {
	return d.Find(u) == d.Find(v)
}

// Groups returns the current partition as a map from each set's
// representative to the members of that set, in the order Add/New first
// saw them — deterministic for a fixed sequence of Add/Union calls.
func (d *DSU) Groups() map[string][]string {
	out := make(map[string][]string)
	for _, id := range d.order {
		root := d.Find(id)
		out[root] = append(out[root], id)
	}

	return out
}
