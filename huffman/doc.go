// Package huffman builds optimal prefix codes from symbol frequencies.
//
// Build repeatedly merges the two lightest subtrees. Ties are broken by the
// smallest symbol in each subtree and then by creation order, so equal inputs
// always produce the same tree. The first subtree popped becomes the left ('0')
// child.
//
// Codes are strings of '0' and '1'. A single-symbol alphabet gets the code "0".
// CanonicalCodes reassigns codes of the same lengths in (length, symbol) order,
// which lets a decoder rebuild the table from lengths alone.
package huffman
