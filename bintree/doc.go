// Package bintree provides binary-tree nodes and lowest-common-ancestor queries.
//
//   - LCA answers a single query by post-order search from the root.
//   - LCAWithParents climbs Parent links from both nodes.
//   - Lifting preprocesses a rooted forest given as a parent array in
//     O(n log n) and answers LCA, k-th ancestor and distance in O(log n).
//
// MorrisInOrder walks a tree in order with O(1) extra space by threading right
// pointers, and restores every pointer before returning.
//
// None of the traversals recurse, so degenerate (list-shaped) trees are safe.
package bintree
