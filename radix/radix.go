package radix

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/algokit/algoerr"
)

// ErrCorrupt is returned by Validate when a structural invariant does not hold.
var ErrCorrupt = algoerr.New(algoerr.InvalidInput, "radix: invariant violated")

type node[V any] struct {
	label    string
	children []*node[V] // sorted by first rune of label
	leaf     bool
	key      string
	value    V
}

// head returns the encoding of the first code point of s. Invalid bytes stand
// for themselves, so distinct inputs never share a head.
func head(s string) string {
	_, size := utf8.DecodeRuneInString(s)

	return s[:size]
}

// child returns the position of the child whose label starts with h, and
// whether it exists. When absent the position is the insertion point.
func (n *node[V]) child(h string) (int, bool) {
	i := sort.Search(len(n.children), func(i int) bool { return head(n.children[i].label) >= h })

	return i, i < len(n.children) && head(n.children[i].label) == h
}

func (n *node[V]) addChild(c *node[V]) {
	i, _ := n.child(head(c.label))
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
}

// mergeChild absorbs the only child of n into n.
func (n *node[V]) mergeChild() {
	c := n.children[0]
	n.label += c.label
	n.children = c.children
	n.leaf, n.key, n.value = c.leaf, c.key, c.value
}

// commonPrefix returns the byte length of the longest rune-aligned common prefix.
func commonPrefix(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) {
		ha, hb := head(a[i:]), head(b[i:])
		if ha != hb {
			break
		}
		i += len(ha)
	}

	return i
}

// Tree is a radix tree. The zero value is not usable; call New.
type Tree[V any] struct {
	root *node[V]
	size int
}

// New returns an empty Tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{root: &node[V]{}}
}

// Len returns the number of keys.
func (t *Tree[V]) Len() int { return t.size }

// Insert stores value under key and reports whether an existing value was replaced.
//
// Complexity: O(len(key) + depth·log(fanout)).
func (t *Tree[V]) Insert(key string, value V) bool {
	cur, rest := t.root, key
	for {
		if rest == "" {
			updated := cur.leaf
			cur.leaf, cur.key, cur.value = true, key, value
			if !updated {
				t.size++
			}

			return updated
		}

		i, ok := cur.child(head(rest))
		if !ok {
			cur.addChild(&node[V]{label: rest, leaf: true, key: key, value: value})
			t.size++

			return false
		}
		c := cur.children[i]
		p := commonPrefix(rest, c.label)
		if p == len(c.label) {
			cur, rest = c, rest[p:]
			continue
		}

		// Split c at p.
		mid := &node[V]{label: c.label[:p]}
		c.label = c.label[p:]
		mid.children = []*node[V]{c}
		cur.children[i] = mid
		cur, rest = mid, rest[p:]
	}
}

// find returns the node for key, or nil.
func (t *Tree[V]) find(key string) *node[V] {
	cur, rest := t.root, key
	for rest != "" {
		i, ok := cur.child(head(rest))
		if !ok || !strings.HasPrefix(rest, cur.children[i].label) {
			return nil
		}
		cur = cur.children[i]
		rest = rest[len(cur.label):]
	}

	return cur
}

// Get returns the value stored under key.
func (t *Tree[V]) Get(key string) (V, bool) {
	if n := t.find(key); n != nil && n.leaf {
		return n.value, true
	}
	var zero V

	return zero, false
}

// Contains reports whether key is stored.
func (t *Tree[V]) Contains(key string) bool {
	_, ok := t.Get(key)

	return ok
}

// prefixNode returns the shallowest node whose path starts with prefix.
func (t *Tree[V]) prefixNode(prefix string) *node[V] {
	cur, rest := t.root, prefix
	for rest != "" {
		i, ok := cur.child(head(rest))
		if !ok {
			return nil
		}
		c := cur.children[i]
		switch {
		case strings.HasPrefix(rest, c.label):
			rest = rest[len(c.label):]
			cur = c
		case strings.HasPrefix(c.label, rest):
			return c
		default:
			return nil
		}
	}

	return cur
}

// HasPrefix reports whether some key starts with prefix.
func (t *Tree[V]) HasPrefix(prefix string) bool {
	n := t.prefixNode(prefix)
	if n == nil {
		return false
	}

	return n != t.root || t.size > 0
}

// Delete removes key and reports whether it was present.
func (t *Tree[V]) Delete(key string) bool {
	var parent *node[V]
	cur, rest := t.root, key
	for rest != "" {
		i, ok := cur.child(head(rest))
		if !ok || !strings.HasPrefix(rest, cur.children[i].label) {
			return false
		}
		parent, cur = cur, cur.children[i]
		rest = rest[len(cur.label):]
	}
	if !cur.leaf {
		return false
	}

	var zero V
	cur.leaf, cur.key, cur.value = false, "", zero
	t.size--

	switch {
	case cur == t.root:
	case len(cur.children) == 1:
		cur.mergeChild()
	case len(cur.children) == 0:
		i, _ := parent.child(head(cur.label))
		parent.children = append(parent.children[:i], parent.children[i+1:]...)
		if parent != t.root && !parent.leaf && len(parent.children) == 1 {
			parent.mergeChild()
		}
	}

	return true
}

// walk visits every key under n in lexicographic order until fn returns true.
func walk[V any](n *node[V], fn func(key string, value V) bool) bool {
	stack := []*node[V]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.leaf && fn(cur.key, cur.value) {
			return true
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}

	return false
}

// Walk visits every key in lexicographic order; fn returns true to stop.
func (t *Tree[V]) Walk(fn func(key string, value V) bool) {
	walk(t.root, fn)
}

// WalkPrefix visits keys starting with prefix in lexicographic order; fn returns true to stop.
func (t *Tree[V]) WalkPrefix(prefix string, fn func(key string, value V) bool) {
	if n := t.prefixNode(prefix); n != nil {
		walk(n, fn)
	}
}

// Keys returns every key in lexicographic order.
func (t *Tree[V]) Keys() []string {
	out := make([]string, 0, t.size)
	t.Walk(func(k string, _ V) bool {
		out = append(out, k)
		return false
	})

	return out
}

// LongestPrefix returns the longest stored key that is a prefix of s.
func (t *Tree[V]) LongestPrefix(s string) (string, V, bool) {
	var best *node[V]
	cur, rest := t.root, s
	for {
		if cur.leaf {
			best = cur
		}
		if rest == "" {
			break
		}
		i, ok := cur.child(head(rest))
		if !ok || !strings.HasPrefix(rest, cur.children[i].label) {
			break
		}
		cur = cur.children[i]
		rest = rest[len(cur.label):]
	}
	if best == nil {
		var zero V
		return "", zero, false
	}

	return best.key, best.value, true
}

// Validate checks the structural invariants:
//   - every non-root label is non-empty;
//   - sibling labels start with distinct, ascending code points;
//   - no non-root node that ends no key has fewer than two children;
//   - each stored key equals the concatenated labels on its path;
//   - Len matches the number of stored keys.
func (t *Tree[V]) Validate() error {
	type item struct {
		n    *node[V]
		path string
	}
	count := 0
	stack := []item{{n: t.root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := it.n
		if n != t.root {
			if n.label == "" {
				return fmt.Errorf("%w: empty label under %q", ErrCorrupt, it.path)
			}
			if !n.leaf && len(n.children) < 2 {
				return fmt.Errorf("%w: node %q has %d children and ends no key", ErrCorrupt, it.path, len(n.children))
			}
		}
		if n.leaf {
			count++
			if n.key != it.path {
				return fmt.Errorf("%w: key %q stored at path %q", ErrCorrupt, n.key, it.path)
			}
		}
		for i, c := range n.children {
			if i > 0 && head(n.children[i-1].label) >= head(c.label) {
				return fmt.Errorf("%w: children of %q out of order", ErrCorrupt, it.path)
			}
			stack = append(stack, item{n: c, path: it.path + c.label})
		}
	}
	if count != t.size {
		return fmt.Errorf("%w: Len %d but %d keys", ErrCorrupt, t.size, count)
	}

	return nil
}
