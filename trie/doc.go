// Package trie implements a prefix tree over Unicode code points.
//
// Each byte of an invalid UTF-8 sequence is a symbol of its own, so keys that
// differ only in invalid bytes stay distinct and Keys returns them unchanged.
//
// Nodes live in a single arena slice and refer to their children by index.
// Deleted nodes are recycled through a free list.
//
// Each node caches the number of keys stored in its subtree, making CountPrefix
// O(len(prefix)). Delete clears the terminal flag and prunes ancestors that are
// left without children or keys, using an explicit stack.
//
// Spelling suggestions compute one Levenshtein row per node while walking the
// trie and stop descending once the smallest value in the row exceeds the budget.
//
// A Trie is not safe for concurrent mutation.
package trie
