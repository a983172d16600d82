package trie

import (
	"sort"
	"strings"

	"github.com/katalvlaran/algokit/internal/symbol"
)

const root = 0

type node struct {
	children map[rune]int
	terminal bool
	seq      uint64 // insertion order of the key ending here
	keys     int    // keys stored in this subtree, including this node
}

// Trie is a set of strings supporting prefix queries.
type Trie struct {
	nodes []node
	free  []int
	seq   uint64
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{nodes: []node{{}}}
}

// Len returns the number of stored keys.
func (t *Trie) Len() int { return t.nodes[root].keys }

func (t *Trie) alloc() int {
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[id] = node{}

		return id
	}
	t.nodes = append(t.nodes, node{})

	return len(t.nodes) - 1
}

// walk returns the node reached by s, or -1.
func (t *Trie) walk(s string) int {
	cur := root
	for r := range symbol.All(s) {
		next, ok := t.nodes[cur].children[r]
		if !ok {
			return -1
		}
		cur = next
	}

	return cur
}

// Insert adds key and reports whether it was new.
//
// Complexity: O(len(key)).
func (t *Trie) Insert(key string) bool {
	if t.Contains(key) {
		return false
	}
	cur := root
	t.nodes[cur].keys++
	for r := range symbol.All(key) {
		next, ok := t.nodes[cur].children[r]
		if !ok {
			next = t.alloc()
			if t.nodes[cur].children == nil {
				t.nodes[cur].children = make(map[rune]int)
			}
			t.nodes[cur].children[r] = next
		}
		cur = next
		t.nodes[cur].keys++
	}
	t.seq++
	t.nodes[cur].terminal = true
	t.nodes[cur].seq = t.seq

	return true
}

// Contains reports whether key is stored.
func (t *Trie) Contains(key string) bool {
	id := t.walk(key)

	return id >= 0 && t.nodes[id].terminal
}

// HasPrefix reports whether some stored key starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	id := t.walk(prefix)

	return id >= 0 && t.nodes[id].keys > 0
}

// CountPrefix returns the number of stored keys starting with prefix.
func (t *Trie) CountPrefix(prefix string) int {
	id := t.walk(prefix)
	if id < 0 {
		return 0
	}

	return t.nodes[id].keys
}

// Delete removes key and reports whether it was present. Ancestors left with
// neither keys nor children are pruned.
//
// Complexity: O(len(key)).
func (t *Trie) Delete(key string) bool {
	if !t.Contains(key) {
		return false
	}
	type step struct {
		parent int
		r      rune
	}
	path := make([]step, 0, symbol.Count(key))
	cur := root
	t.nodes[cur].keys--
	for r := range symbol.All(key) {
		path = append(path, step{parent: cur, r: r})
		cur = t.nodes[cur].children[r]
		t.nodes[cur].keys--
	}
	t.nodes[cur].terminal = false
	t.nodes[cur].seq = 0

	for i := len(path) - 1; i >= 0; i-- {
		child := t.nodes[path[i].parent].children[path[i].r]
		if t.nodes[child].keys > 0 {
			break
		}
		delete(t.nodes[path[i].parent].children, path[i].r)
		t.nodes[child] = node{}
		t.free = append(t.free, child)
	}

	return true
}

// sortedRunes returns the child symbols of id in ascending order.
func (t *Trie) sortedRunes(id int) []rune {
	rs := make([]rune, 0, len(t.nodes[id].children))
	for r := range t.nodes[id].children {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })

	return rs
}

// collect appends keys under id in lexicographic order, stopping after limit
// keys when limit > 0. fn receives each key and its insertion seq.
func (t *Trie) collect(id int, prefix string, limit int, fn func(key string, seq uint64)) {
	type item struct {
		id  int
		key string
	}
	emitted := 0
	stack := []item{{id: id, key: prefix}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[it.id]
		if n.terminal {
			fn(it.key, n.seq)
			emitted++
			if limit > 0 && emitted == limit {
				return
			}
		}
		rs := t.sortedRunes(it.id)
		for i := len(rs) - 1; i >= 0; i-- {
			stack = append(stack, item{id: n.children[rs[i]], key: it.key + symbol.String(rs[i])})
		}
	}
}

// Keys returns every key in lexicographic (code point) order. Bytes of invalid
// UTF-8 sort after every code point.
func (t *Trie) Keys() []string {
	out := make([]string, 0, t.Len())
	t.collect(root, "", 0, func(k string, _ uint64) { out = append(out, k) })

	return out
}

// Order selects how Suggestions ranks completions.
type Order int

const (
	// Lexicographic orders completions by code point.
	Lexicographic Order = iota
	// InsertionOrder orders completions by when they were first inserted.
	InsertionOrder
)

// Suggestions returns up to k keys starting with prefix; k <= 0 returns all.
func (t *Trie) Suggestions(prefix string, k int, order Order) []string {
	id := t.walk(prefix)
	if id < 0 {
		return nil
	}
	if order == Lexicographic {
		var out []string
		t.collect(id, prefix, k, func(key string, _ uint64) { out = append(out, key) })

		return out
	}

	type keyed struct {
		key string
		seq uint64
	}
	var all []keyed
	t.collect(id, prefix, 0, func(key string, seq uint64) { all = append(all, keyed{key, seq}) })
	sort.Slice(all, func(i, j int) bool { return all[i].seq < all[j].seq })
	if k > 0 && len(all) > k {
		all = all[:k]
	}
	out := make([]string, len(all))
	for i, kv := range all {
		out[i] = kv.key
	}

	return out
}

// LongestCommonPrefix returns the longest prefix shared by every key; "" when empty.
func (t *Trie) LongestCommonPrefix() string {
	if t.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	cur := root
	for !t.nodes[cur].terminal && len(t.nodes[cur].children) == 1 {
		for r, next := range t.nodes[cur].children {
			sb.WriteString(symbol.String(r))
			cur = next
		}
	}

	return sb.String()
}
