package dsu

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algokit/algoerr"
)

// ErrOutOfRange is returned by the checked accessors for ids outside [0, Len()).
var ErrOutOfRange = algoerr.New(algoerr.InvalidInput, "dsu: element out of range")

// DSU is a disjoint-set forest over ids 0..n-1.
type DSU struct {
	parent []int
	rank   []uint8
	size   []int
	count  int
}

// New creates a DSU holding n singleton sets.
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range n {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// MakeSet appends a new singleton set and returns its id.
func (d *DSU) MakeSet() int {
	id := len(d.parent)
	d.parent = append(d.parent, id)
	d.rank = append(d.rank, 0)
	d.size = append(d.size, 1)
	d.count++

	return id
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DSU) Count() int { return d.count }

// Find returns the representative of x's set. x must be in range.
//
// Two passes: locate the root, then point every node on the walk straight at it.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets holding x and y. It returns false if they were already
// the same set. On equal ranks the root of x becomes the parent.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--

	return true
}

// Connected reports whether x and y share a set.
func (d *DSU) Connected(x, y int) bool { return d.Find(x) == d.Find(y) }

// Size returns the number of elements in x's set.
func (d *DSU) Size(x int) int { return d.size[d.Find(x)] }

// FindChecked is Find with range validation.
func (d *DSU) FindChecked(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.Find(x), nil
}

// UnionChecked is Union with range validation.
func (d *DSU) UnionChecked(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}

	return d.Union(x, y), nil
}

// Sets returns every set as a sorted slice; sets are ordered by smallest member.
func (d *DSU) Sets() [][]int {
	byRoot := make(map[int]int, d.count)
	out := make([][]int, 0, d.count)
	for i := range d.parent {
		r := d.Find(i)
		idx, ok := byRoot[r]
		if !ok {
			idx = len(out)
			byRoot[r] = idx
			out = append(out, nil)
		}
		out[idx] = append(out[idx], i)
	}
	// members are appended in ascending order, and sets appear in order of their minimum
	sort.SliceStable(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

func (d *DSU) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(d.parent))
	}

	return nil
}
