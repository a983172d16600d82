package geo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/astar"
	"github.com/katalvlaran/algokit/core"
)

// EarthRadiusMeters is the mean Earth radius.
const EarthRadiusMeters = 6_371_000.0

// Metadata keys read from core.Vertex.Metadata.
const (
	KeyLat = "lat"
	KeyLon = "lon"
)

// ErrNoCoordinates indicates a vertex without numeric lat/lon metadata.
var ErrNoCoordinates = algoerr.New(algoerr.InvalidInput, "geo: vertex has no coordinates")

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat, Lon float64
}

// Haversine returns the great-circle distance in meters between two points.
func Haversine(a, b Point) float64 {
	lat1r := a.Lat * math.Pi / 180
	lat2r := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Coordinates reads every vertex's lat/lon metadata. Values may be float64 or int.
func Coordinates(g *core.Graph) (map[string]Point, error) {
	out := make(map[string]Point, g.VertexCount())
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, err
		}
		lat, okLat := number(v.Metadata[KeyLat])
		lon, okLon := number(v.Metadata[KeyLon])
		if !okLat || !okLon {
			return nil, fmt.Errorf("%w: %q", ErrNoCoordinates, id)
		}
		out[id] = Point{Lat: lat, Lon: lon}
	}

	return out, nil
}

// HaversineHeuristic returns an A* heuristic estimating the straight-line distance
// from a vertex to target, divided by scale. It is admissible when every edge
// weight is at least its endpoints' great-circle distance divided by scale
// (scale = 1 for weights in meters, 1000 for kilometers).
func HaversineHeuristic(coords map[string]Point, target string, scale float64) (astar.Heuristic, error) {
	tp, ok := coords[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoCoordinates, target)
	}
	if scale <= 0 {
		scale = 1
	}

	return func(v string) float64 {
		p, ok := coords[v]
		if !ok {
			return 0
		}

		return Haversine(p, tp) / scale
	}, nil
}

func number(x any) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
