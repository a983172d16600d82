// Package radix implements a compressed (Patricia) trie mapping string keys to values.
//
// Every edge carries a non-empty label; single-child chains are merged into one
// edge, so every node that is neither the root nor a key end has at least two
// children. Children are kept sorted by the first code point of their label,
// which makes in-order walks lexicographic for valid UTF-8 keys.
//
// Delete re-merges a non-key node left with one child into that child, keeping
// the compression invariants after any sequence of operations. Validate checks
// them explicitly.
package radix
