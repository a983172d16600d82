package dsu

// Labeled is a DSU over arbitrary comparable keys. Keys are registered on first
// use and map to dense ids in insertion order.
type Labeled[K comparable] struct {
	d    *DSU
	ids  map[K]int
	keys []K
}

// NewLabeled creates a Labeled DSU pre-populated with keys.
func NewLabeled[K comparable](keys ...K) *Labeled[K] {
	l := &Labeled[K]{d: New(0), ids: make(map[K]int, len(keys))}
	for _, k := range keys {
		l.Add(k)
	}

	return l
}

// Add registers k as a singleton set if unseen and returns its id.
func (l *Labeled[K]) Add(k K) int {
	if id, ok := l.ids[k]; ok {
		return id
	}
	id := l.d.MakeSet()
	l.ids[k] = id
	l.keys = append(l.keys, k)

	return id
}

// Find returns the representative key of k's set, registering k if needed.
func (l *Labeled[K]) Find(k K) K { return l.keys[l.d.Find(l.Add(k))] }

// Union merges the sets of a and b, registering them if needed.
func (l *Labeled[K]) Union(a, b K) bool { return l.d.Union(l.Add(a), l.Add(b)) }

// Connected reports whether a and b share a set. Unknown keys are never connected
// to anything but themselves.
func (l *Labeled[K]) Connected(a, b K) bool {
	ia, okA := l.ids[a]
	ib, okB := l.ids[b]
	if !okA || !okB {
		return a == b
	}

	return l.d.Connected(ia, ib)
}

// Count returns the number of disjoint sets.
func (l *Labeled[K]) Count() int { return l.d.Count() }

// Sets returns the sets as key slices, grouped as DSU.Sets groups ids
// (members and sets in registration order).
func (l *Labeled[K]) Sets() [][]K {
	raw := l.d.Sets()
	out := make([][]K, len(raw))
	for i, set := range raw {
		out[i] = make([]K, len(set))
		for j, id := range set {
			out[i][j] = l.keys[id]
		}
	}

	return out
}
