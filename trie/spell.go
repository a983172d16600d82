package trie

import (
	"sort"

	"github.com/katalvlaran/algokit/internal/symbol"
)

// Correction is a stored key within the edit budget of a query word.
type Correction struct {
	Word     string
	Distance int
}

// SpellCheck returns every key within Levenshtein distance budget of word,
// ordered by (Distance, Word). A negative budget yields nil.
//
// Complexity: O(|word| · visited nodes); the budget prunes subtrees early.
func (t *Trie) SpellCheck(word string, budget int) []Correction {
	if budget < 0 {
		return nil
	}
	target := symbol.Slice(word)
	first := make([]int, len(target)+1)
	for i := range first {
		first[i] = i
	}

	type item struct {
		id  int
		key string
		row []int
	}
	var out []Correction
	if t.nodes[root].terminal && first[len(target)] <= budget {
		out = append(out, Correction{Word: "", Distance: first[len(target)]})
	}
	stack := make([]item, 0, 16)
	for _, r := range t.sortedRunes(root) {
		stack = append(stack, item{id: t.nodes[root].children[r], key: symbol.String(r), row: nextRow(first, target, r)})
	}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[it.id]
		if d := it.row[len(target)]; n.terminal && d <= budget {
			out = append(out, Correction{Word: it.key, Distance: d})
		}
		if minOf(it.row) > budget {
			continue
		}
		for r, child := range n.children {
			stack = append(stack, item{id: child, key: it.key + symbol.String(r), row: nextRow(it.row, target, r)})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}

		return out[i].Word < out[j].Word
	})

	return out
}

// nextRow extends a Levenshtein row by one trie symbol r.
func nextRow(prev []int, target []rune, r rune) []int {
	row := make([]int, len(prev))
	row[0] = prev[0] + 1
	for j := 1; j < len(row); j++ {
		cost := 1
		if target[j-1] == r {
			cost = 0
		}
		row[j] = min(row[j-1]+1, prev[j]+1, prev[j-1]+cost)
	}

	return row
}

func minOf(row []int) int {
	m := row[0]
	for _, v := range row[1:] {
		m = min(m, v)
	}

	return m
}
