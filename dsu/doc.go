// Package dsu implements a disjoint-set union (union–find) forest over dense
// integer ids, plus a Labeled wrapper for arbitrary comparable keys.
//
// Find applies full path compression; Union links by rank. Together they give an
// amortized O(α(n)) cost per operation.
//
//	d := dsu.New(4)
//	d.Union(0, 1)      // true: two sets merged
//	d.Union(1, 0)      // false: already together
//	d.Connected(0, 1)  // true
//	d.Count()          // 3
//
// The zero value is not usable; construct with New or NewLabeled.
// A DSU is not safe for concurrent mutation.
package dsu
