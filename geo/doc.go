// Package geo provides great-circle helpers for graphs whose vertices carry
// "lat" and "lon" metadata: a Haversine distance, an admissible A* heuristic
// and an R-tree backed nearest-vertex index.
package geo
