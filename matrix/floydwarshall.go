package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// NoHop marks an unreachable pair in APSP.Next.
const NoHop = -1

// APSP is the result of FloydWarshall.
//
// Dist[i][j] is the shortest i→j distance (+Inf when unreachable). Next[i][j] is
// the first hop after i on a shortest i→j path: j for a direct edge, NoHop when
// j is unreachable. NegativeCycle is true iff some Dist[i][i] < 0.
type APSP struct {
	Dist          *Dense
	Next          [][]int
	NegativeCycle bool
}

// FloydWarshall computes all-pairs shortest paths over the weight matrix m.
// m is not modified.
//
// Contract:
//   - m must be square; +Inf means "no edge"; NaN and -Inf are rejected.
//   - The diagonal is clamped to min(m[i][i], 0): a negative self-loop is a cycle.
//
// Loop order is fixed (k → i → j) and relaxation is strict, so ties keep the
// first path found.
//
// Complexity: Time O(n³), Space O(n²).
func FloydWarshall(m Matrix) (*APSP, error) {
	// 1) Validate
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}
	if err := ValidateWeights(m); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}

	// 2) Working copy and next-hop table
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}
	n := d.r
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				d.data[i*n+i] = math.Min(d.data[i*n+i], 0)
				next[i][j] = j
			case math.IsInf(d.data[i*n+j], 1):
				next[i][j] = NoHop
			default:
				next[i][j] = j
			}
		}
	}

	// 3) Closure
	data := d.data
	var ik, kj, cand float64
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj = data[k*n+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[i*n+j] {
					data[i*n+j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	// 4) Negative cycle iff some diagonal went below zero
	res := &APSP{Dist: d, Next: next}
	for i := 0; i < n; i++ {
		if data[i*n+i] < 0 {
			res.NegativeCycle = true
			break
		}
	}

	return res, nil
}

// Path reconstructs the vertex sequence [s, ..., t] of a shortest s→t path.
// It returns an empty slice when t is unreachable from s, and ErrNegativeCycle
// when some negative cycle is reachable from s and reaches t.
//
// Complexity: O(len(path)) when no negative cycle is present; O(n) otherwise.
func (a *APSP) Path(s, t int) ([]int, error) {
	n := len(a.Next)
	if s < 0 || s >= n || t < 0 || t >= n {
		return nil, fmt.Errorf("%w: (%d,%d) with n=%d", ErrOutOfRange, s, t, n)
	}
	if a.Next[s][t] == NoHop {
		return []int{}, nil
	}
	if a.NegativeCycle && a.touchesNegativeCycle(s, t) {
		return nil, fmt.Errorf("%w: %d→%d", ErrNegativeCycle, s, t)
	}

	path := []int{s}
	for u := s; u != t; {
		u = a.Next[u][t]
		path = append(path, u)
	}

	return path, nil
}

// Distance returns Dist[s][t], or ErrNegativeCycle when that value is undefined.
func (a *APSP) Distance(s, t int) (float64, error) {
	v, err := a.Dist.At(s, t)
	if err != nil {
		return 0, err
	}
	if a.NegativeCycle && !math.IsInf(v, 1) && a.touchesNegativeCycle(s, t) {
		return 0, fmt.Errorf("%w: %d→%d", ErrNegativeCycle, s, t)
	}

	return v, nil
}

func (a *APSP) touchesNegativeCycle(s, t int) bool {
	n := a.Dist.r
	data := a.Dist.data
	for k := 0; k < n; k++ {
		if data[k*n+k] < 0 && !math.IsInf(data[s*n+k], 1) && !math.IsInf(data[k*n+t], 1) {
			return true
		}
	}

	return false
}

// FloydWarshallInPlace runs the distance-only closure on a square *Dense.
// The caller must supply a distance matrix (0 diagonal, +Inf for no edge).
// It reports whether a negative cycle was found.
func FloydWarshallInPlace(d *Dense) (bool, error) {
	if err := ValidateSquare(d); err != nil {
		return false, matrixErrorf(opFloydWarshall, err)
	}
	n := d.r
	data := d.data
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if kj := data[k*n+j]; !math.IsInf(kj, 1) && ik+kj < data[i*n+j] {
					data[i*n+j] = ik + kj
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		if data[i*n+i] < 0 {
			return true, nil
		}
	}

	return false, nil
}
