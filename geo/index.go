package geo

import (
	"math"
	"sort"

	"github.com/tidwall/rtree"
)

// Index is a spatial index of vertex coordinates.
type Index struct {
	tr     rtree.RTreeG[string]
	coords map[string]Point
}

// NewIndex indexes every point in coords.
func NewIndex(coords map[string]Point) *Index {
	ix := &Index{coords: coords}
	ids := make([]string, 0, len(coords))
	for id := range coords {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := coords[id]
		pt := [2]float64{p.Lon, p.Lat}
		ix.tr.Insert(pt, pt, id)
	}

	return ix
}

// Len returns the number of indexed vertices.
func (ix *Index) Len() int { return ix.tr.Len() }

// Within returns the ids inside the lon/lat box, sorted.
func (ix *Index) Within(min, max Point) []string {
	var out []string
	ix.tr.Search([2]float64{min.Lon, min.Lat}, [2]float64{max.Lon, max.Lat},
		func(_, _ [2]float64, id string) bool {
			out = append(out, id)
			return true
		})
	sort.Strings(out)

	return out
}

// Nearest returns the indexed vertex closest to p in planar degree space,
// breaking ties by id. It reports false on an empty index.
//
// The search box starts small and doubles until it holds a candidate, then is
// widened once to the candidate's distance so no closer point can lie outside.
func (ix *Index) Nearest(p Point) (string, bool) {
	if ix.tr.Len() == 0 {
		return "", false
	}
	for w := 1e-3; ; w *= 2 {
		best, bestD := ix.scan(p, w)
		if best == "" {
			if w > 720 {
				return "", false
			}
			continue
		}
		if bestD > w {
			best, _ = ix.scan(p, bestD)
		}

		return best, true
	}
}

func (ix *Index) scan(p Point, w float64) (string, float64) {
	best, bestD := "", math.Inf(1)
	ix.tr.Search([2]float64{p.Lon - w, p.Lat - w}, [2]float64{p.Lon + w, p.Lat + w},
		func(_, _ [2]float64, id string) bool {
			q := ix.coords[id]
			d := math.Hypot(q.Lon-p.Lon, q.Lat-p.Lat)
			if d < bestD || (d == bestD && id < best) {
				best, bestD = id, d
			}
			return true
		})

	return best, bestD
}
