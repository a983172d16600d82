package dp

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/algokit/algoerr"
)

var (
	// ErrEmpty is returned by Kadane for an empty slice.
	ErrEmpty = algoerr.New(algoerr.InvalidInput, "dp: empty input")

	// ErrNaN is returned when a floating-point input is NaN.
	ErrNaN = algoerr.New(algoerr.InvalidInput, "dp: NaN in input")
)

// SignedNumber is any type Kadane can sum.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// Kadane returns the maximum sum over non-empty contiguous subarrays and the
// inclusive witness xs[start..end]. Among equal sums the earliest start wins,
// then the shortest subarray.
//
// Complexity: O(n) time, O(1) space.
func Kadane[T SignedNumber](xs []T) (best T, start, end int, err error) {
	if len(xs) == 0 {
		return 0, 0, 0, ErrEmpty
	}
	// sum(xs[s:e]) = prefix(e) − prefix(s); keep the earliest minimal prefix.
	var prefix, minPrefix T
	minAt := 0
	for i, x := range xs {
		if x != x {
			return 0, 0, 0, ErrNaN
		}
		prefix += x
		if sum := prefix - minPrefix; i == 0 || sum > best {
			best, start, end = sum, minAt, i
		}
		if prefix < minPrefix {
			minPrefix, minAt = prefix, i+1
		}
	}

	return best, start, end, nil
}
