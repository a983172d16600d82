package ahocorasick

import (
	"fmt"
	"iter"
	"sort"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/internal/symbol"
)

// ErrEmptyPattern is returned when the pattern list or any pattern is empty.
var ErrEmptyPattern = algoerr.New(algoerr.InvalidInput, "ahocorasick: empty pattern")

// Match is one occurrence of a pattern.
type Match struct {
	PatternID int    // index into the slice given to Build
	Pattern   string
	Start     int // rune offset of the first symbol
	End       int // rune offset one past the last symbol
}

type state struct {
	next map[rune]int
	fail int
	out  []int // pattern ids ending here, ascending
}

// Automaton is a compiled pattern set. It is immutable and safe for concurrent searches.
type Automaton struct {
	states   []state
	patterns []string
	lengths  []int // rune length per pattern
}

// Build compiles patterns.
//
// Steps:
//  1. Insert every pattern into the goto trie.
//  2. Breadth-first from the root, set each child's failure link to the deepest
//     proper suffix state and merge its outputs.
//
// Complexity: O(total pattern length · log σ) time and space.
func Build(patterns []string) (*Automaton, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no patterns", ErrEmptyPattern)
	}
	a := &Automaton{
		states:   []state{{next: map[rune]int{}}},
		patterns: append([]string(nil), patterns...),
		lengths:  make([]int, len(patterns)),
	}

	// 1) Goto trie
	for id, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("%w: pattern %d", ErrEmptyPattern, id)
		}
		cur := 0
		for r := range symbol.All(p) {
			nxt, ok := a.states[cur].next[r]
			if !ok {
				a.states = append(a.states, state{next: map[rune]int{}})
				nxt = len(a.states) - 1
				a.states[cur].next[r] = nxt
			}
			cur = nxt
			a.lengths[id]++
		}
		a.states[cur].out = append(a.states[cur].out, id)
	}

	// 2) Failure links
	queue := make([]int, 0, len(a.states))
	for _, s := range a.states[0].next {
		queue = append(queue, s)
	}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for r, v := range a.states[u].next {
			f := a.states[u].fail
			for {
				if t, ok := a.states[f].next[r]; ok {
					a.states[v].fail = t
					break
				}
				if f == 0 {
					break
				}
				f = a.states[f].fail
			}
			a.states[v].out = mergeSorted(a.states[v].out, a.states[a.states[v].fail].out)
			queue = append(queue, v)
		}
	}

	return a, nil
}

// mergeSorted unions two ascending id lists.
func mergeSorted(a, b []int) []int {
	if len(b) == 0 {
		return a
	}
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sort.Ints(out)

	return out
}

// step advances from s on r, following failure links.
func (a *Automaton) step(s int, r rune) int {
	for {
		if t, ok := a.states[s].next[r]; ok {
			return t
		}
		if s == 0 {
			return 0
		}
		s = a.states[s].fail
	}
}

// All yields every match in text in (End, PatternID) order.
func (a *Automaton) All(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		s, pos := 0, 0
		for r := range symbol.All(text) {
			pos++
			s = a.step(s, r)
			for _, id := range a.states[s].out {
				m := Match{PatternID: id, Pattern: a.patterns[id], Start: pos - a.lengths[id], End: pos}
				if !yield(m) {
					return
				}
			}
		}
	}
}

// Search returns every match in text in (End, PatternID) order.
func (a *Automaton) Search(text string) []Match {
	var out []Match
	for m := range a.All(text) {
		out = append(out, m)
	}

	return out
}

// Contains reports whether any pattern occurs in text.
func (a *Automaton) Contains(text string) bool {
	for range a.All(text) {
		return true
	}

	return false
}

// Patterns returns the compiled patterns indexed by PatternID.
func (a *Automaton) Patterns() []string {
	return append([]string(nil), a.patterns...)
}
