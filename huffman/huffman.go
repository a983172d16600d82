package huffman

import (
	"container/heap"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/algokit/algoerr"
)

var (
	// ErrInvalidFrequency is returned for an empty table or a non-positive count.
	ErrInvalidFrequency = algoerr.New(algoerr.InvalidInput, "huffman: invalid frequency table")

	// ErrUnknownSymbol is returned by Encode for a symbol missing from the code table.
	ErrUnknownSymbol = algoerr.New(algoerr.InvalidInput, "huffman: unknown symbol")

	// ErrInvalidCode is returned by the decoders for a malformed or truncated bit string.
	ErrInvalidCode = algoerr.New(algoerr.InvalidInput, "huffman: invalid code")
)

// Node is a node of a Huffman tree. Leaves have no children.
type Node struct {
	Symbol      rune
	Weight      int
	Left, Right *Node

	minSym rune
	seq    int
}

// Leaf reports whether n is a leaf.
func (n *Node) Leaf() bool { return n.Left == nil && n.Right == nil }

// Tree is a Huffman code tree.
type Tree struct {
	Root *Node
}

// Build constructs the Huffman tree for freq.
//
// Complexity: O(σ log σ) for σ distinct symbols.
func Build(freq map[rune]int) (*Tree, error) {
	if len(freq) == 0 {
		return nil, fmt.Errorf("%w: no symbols", ErrInvalidFrequency)
	}
	syms := make([]rune, 0, len(freq))
	for r, w := range freq {
		if w <= 0 {
			return nil, fmt.Errorf("%w: %q has count %d", ErrInvalidFrequency, r, w)
		}
		syms = append(syms, r)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	pq := make(nodePQ, 0, len(syms))
	seq := 0
	for _, r := range syms {
		pq = append(pq, &Node{Symbol: r, Weight: freq[r], minSym: r, seq: seq})
		seq++
	}
	heap.Init(&pq)
	for pq.Len() > 1 {
		a := heap.Pop(&pq).(*Node)
		b := heap.Pop(&pq).(*Node)
		heap.Push(&pq, &Node{Weight: a.Weight + b.Weight, Left: a, Right: b, minSym: min(a.minSym, b.minSym), seq: seq})
		seq++
	}

	return &Tree{Root: pq[0]}, nil
}

// Codes returns the code of every leaf symbol.
func (t *Tree) Codes() map[rune]string {
	codes := make(map[rune]string)
	if t.Root.Leaf() {
		codes[t.Root.Symbol] = "0"
		return codes
	}
	type item struct {
		n    *Node
		code string
	}
	stack := []item{{n: t.Root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.n.Leaf() {
			codes[it.n.Symbol] = it.code
			continue
		}
		stack = append(stack, item{it.n.Right, it.code + "1"}, item{it.n.Left, it.code + "0"})
	}

	return codes
}

// CanonicalCodes returns canonical codes with Huffman-optimal lengths for freq.
func CanonicalCodes(freq map[rune]int) (map[rune]string, error) {
	t, err := Build(freq)
	if err != nil {
		return nil, err
	}
	lengths := make(map[rune]int, len(freq))
	for r, c := range t.Codes() {
		lengths[r] = len(c)
	}

	return FromLengths(lengths), nil
}

// FromLengths assigns canonical codes: symbols sorted by (length, symbol) receive
// consecutive binary values, shifted left whenever the length grows.
func FromLengths(lengths map[rune]int) map[rune]string {
	syms := make([]rune, 0, len(lengths))
	for r := range lengths {
		syms = append(syms, r)
	}
	sort.Slice(syms, func(i, j int) bool {
		if lengths[syms[i]] != lengths[syms[j]] {
			return lengths[syms[i]] < lengths[syms[j]]
		}
		return syms[i] < syms[j]
	})

	codes := make(map[rune]string, len(syms))
	code, prevLen := uint64(0), 0
	for i, r := range syms {
		l := lengths[r]
		if i > 0 {
			code++
		}
		code <<= uint(l - prevLen)
		prevLen = l
		codes[r] = fmt.Sprintf("%0*b", l, code)
	}

	return codes
}

// Encode concatenates the codes of every rune in text.
func Encode(text string, codes map[rune]string) (string, error) {
	var sb strings.Builder
	for i, r := range text {
		c, ok := codes[r]
		if !ok {
			return "", fmt.Errorf("%w: %q at byte %d", ErrUnknownSymbol, r, i)
		}
		sb.WriteString(c)
	}

	return sb.String(), nil
}

// Decode walks t for every bit and emits a symbol at each leaf.
func Decode(bits string, t *Tree) (string, error) {
	var sb strings.Builder
	if t.Root.Leaf() {
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return "", fmt.Errorf("%w: bit %d is %q", ErrInvalidCode, i, bits[i])
			}
			sb.WriteRune(t.Root.Symbol)
		}

		return sb.String(), nil
	}

	cur := t.Root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			cur = cur.Left
		case '1':
			cur = cur.Right
		default:
			return "", fmt.Errorf("%w: bit %d is %q", ErrInvalidCode, i, bits[i])
		}
		if cur.Leaf() {
			sb.WriteRune(cur.Symbol)
			cur = t.Root
		}
	}
	if cur != t.Root {
		return "", fmt.Errorf("%w: truncated input", ErrInvalidCode)
	}

	return sb.String(), nil
}

// DecodeCanonical decodes bits against a prefix-free code table.
func DecodeCanonical(bits string, codes map[rune]string) (string, error) {
	rev := make(map[string]rune, len(codes))
	maxLen := 0
	for r, c := range codes {
		rev[c] = r
		maxLen = max(maxLen, len(c))
	}

	var sb strings.Builder
	from := 0
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return "", fmt.Errorf("%w: bit %d is %q", ErrInvalidCode, i, bits[i])
		}
		if r, ok := rev[bits[from:i+1]]; ok {
			sb.WriteRune(r)
			from = i + 1
			continue
		}
		if i+1-from >= maxLen {
			return "", fmt.Errorf("%w: no code matches at bit %d", ErrInvalidCode, from)
		}
	}
	if from != len(bits) {
		return "", fmt.Errorf("%w: truncated input", ErrInvalidCode)
	}

	return sb.String(), nil
}

// WeightedLength returns Σ freq[s]·len(codes[s]), the encoded size in bits.
func WeightedLength(freq map[rune]int, codes map[rune]string) int {
	total := 0
	for r, w := range freq {
		total += w * len(codes[r])
	}

	return total
}

// Frequencies counts the runes of text.
func Frequencies(text string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range text {
		freq[r]++
	}

	return freq
}

// nodePQ orders by (weight, smallest symbol, creation order).
type nodePQ []*Node

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.minSym != b.minSym {
		return a.minSym < b.minSym
	}

	return a.seq < b.seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*Node)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := old[len(old)-1]
	*pq = old[:len(old)-1]

	return n
}
