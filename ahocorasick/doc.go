// Package ahocorasick finds all occurrences of a fixed set of patterns in a text
// in a single pass.
//
// Build compiles the patterns into a goto trie over code points, computes failure
// links breadth-first and merges each state's outputs with those of its failure
// target. Searching then costs O(len(text) + matches).
//
// Offsets are rune indexes; End is exclusive. Each byte of an invalid UTF-8
// sequence counts as one symbol and matches only itself. Matches are reported in order of
// End, then PatternID, and every (Start, PatternID) pair occurs exactly once.
// Duplicate patterns keep their own ids and are reported separately.
package ahocorasick
