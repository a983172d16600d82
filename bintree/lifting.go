package bintree

import (
	"fmt"

	"github.com/katalvlaran/algokit/algoerr"
)

var (
	// ErrInvalidParent is returned by NewLifting for an out-of-range parent or a cycle.
	ErrInvalidParent = algoerr.New(algoerr.InvalidInput, "bintree: invalid parent array")

	// ErrOutOfRange is returned for a vertex id outside [0, n) or a negative k.
	ErrOutOfRange = algoerr.New(algoerr.InvalidInput, "bintree: vertex out of range")

	// ErrDifferentTrees is returned when two vertices share no ancestor.
	ErrDifferentTrees = algoerr.New(algoerr.Disconnected, "bintree: vertices are in different trees")
)

// Lifting is a binary-lifting table over a rooted forest.
type Lifting struct {
	up    [][]int // up[j][v] is the 2^j-th ancestor of v, or -1
	depth []int
}

// NewLifting builds the table from parent, where parent[v] is the parent of v
// and -1 marks a root.
//
// Complexity: O(n log n) time and space.
func NewLifting(parent []int) (*Lifting, error) {
	n := len(parent)
	for v, p := range parent {
		if p < -1 || p >= n || p == v {
			return nil, fmt.Errorf("%w: parent[%d] = %d", ErrInvalidParent, v, p)
		}
	}

	// Depths by walking up until a known depth; a revisit on the current walk is a cycle.
	depth := make([]int, n)
	for i := range depth {
		depth[i] = -1
	}
	onWalk := make([]bool, n)
	var walk []int
	for v := range parent {
		walk = walk[:0]
		u := v
		for u != -1 && depth[u] < 0 {
			if onWalk[u] {
				return nil, fmt.Errorf("%w: cycle through %d", ErrInvalidParent, u)
			}
			onWalk[u] = true
			walk = append(walk, u)
			u = parent[u]
		}
		d := -1
		if u != -1 {
			d = depth[u]
		}
		for i := len(walk) - 1; i >= 0; i-- {
			d++
			depth[walk[i]] = d
			onWalk[walk[i]] = false
		}
	}

	levels := 1
	for 1<<levels < n {
		levels++
	}
	up := make([][]int, levels)
	up[0] = append([]int(nil), parent...)
	for j := 1; j < levels; j++ {
		up[j] = make([]int, n)
		for v := range up[j] {
			if mid := up[j-1][v]; mid >= 0 {
				up[j][v] = up[j-1][mid]
			} else {
				up[j][v] = -1
			}
		}
	}

	return &Lifting{up: up, depth: depth}, nil
}

// Len returns the number of vertices.
func (l *Lifting) Len() int { return len(l.depth) }

func (l *Lifting) check(vs ...int) error {
	for _, v := range vs {
		if v < 0 || v >= len(l.depth) {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, v, len(l.depth))
		}
	}

	return nil
}

// Depth returns the number of edges between v and its root.
func (l *Lifting) Depth(v int) (int, error) {
	if err := l.check(v); err != nil {
		return 0, err
	}

	return l.depth[v], nil
}

func (l *Lifting) lift(v, k int) int {
	for j := 0; k > 0 && v >= 0; j++ {
		if k&1 == 1 {
			v = l.up[j][v]
		}
		k >>= 1
	}

	return v
}

// KthAncestor returns the k-th ancestor of v, or -1 when k exceeds its depth.
func (l *Lifting) KthAncestor(v, k int) (int, error) {
	if err := l.check(v); err != nil {
		return -1, err
	}
	if k < 0 {
		return -1, fmt.Errorf("%w: k=%d", ErrOutOfRange, k)
	}
	if k > l.depth[v] {
		return -1, nil
	}

	return l.lift(v, k), nil
}

// LCA returns the lowest common ancestor of u and v.
//
// Complexity: O(log n).
func (l *Lifting) LCA(u, v int) (int, error) {
	if err := l.check(u, v); err != nil {
		return -1, err
	}
	if l.depth[u] < l.depth[v] {
		u, v = v, u
	}
	u = l.lift(u, l.depth[u]-l.depth[v])
	if u == v {
		return u, nil
	}
	for j := len(l.up) - 1; j >= 0; j-- {
		if l.up[j][u] != l.up[j][v] {
			u, v = l.up[j][u], l.up[j][v]
		}
	}
	if l.up[0][u] < 0 {
		return -1, fmt.Errorf("%w: %d and %d", ErrDifferentTrees, u, v)
	}

	return l.up[0][u], nil
}

// Distance returns the number of edges on the path between u and v.
func (l *Lifting) Distance(u, v int) (int, error) {
	a, err := l.LCA(u, v)
	if err != nil {
		return 0, err
	}

	return l.depth[u] + l.depth[v] - 2*l.depth[a], nil
}

// TreeIndex pairs a Lifting with the nodes of a linked tree.
type TreeIndex[T any] struct {
	*Lifting
	Nodes []*Node[T] // Nodes[id] is the node with lifting id
	ids   map[*Node[T]]int
}

// FromTree numbers the nodes under root in breadth-first order (root is 0) and
// builds their lifting table. Child links define the tree; Parent fields are ignored.
func FromTree[T any](root *Node[T]) (*TreeIndex[T], error) {
	ix := &TreeIndex[T]{ids: make(map[*Node[T]]int)}
	if root == nil {
		ix.Lifting, _ = NewLifting(nil)
		return ix, nil
	}
	var parent []int
	queue := []*Node[T]{root}
	ix.ids[root] = 0
	parent = append(parent, -1)
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		for _, c := range [2]*Node[T]{n.Left, n.Right} {
			if c == nil {
				continue
			}
			if _, seen := ix.ids[c]; seen {
				return nil, fmt.Errorf("%w: node reachable twice", ErrInvalidParent)
			}
			ix.ids[c] = len(queue)
			parent = append(parent, head)
			queue = append(queue, c)
		}
	}
	ix.Nodes = queue

	lift, err := NewLifting(parent)
	if err != nil {
		return nil, err
	}
	ix.Lifting = lift

	return ix, nil
}

// ID returns the lifting id of n, or -1 when n is not in the tree.
func (ix *TreeIndex[T]) ID(n *Node[T]) int {
	if id, ok := ix.ids[n]; ok {
		return id
	}

	return -1
}

// LCANodes answers an LCA query on nodes.
func (ix *TreeIndex[T]) LCANodes(a, b *Node[T]) (*Node[T], error) {
	id, err := ix.LCA(ix.ID(a), ix.ID(b))
	if err != nil {
		return nil, err
	}

	return ix.Nodes[id], nil
}
