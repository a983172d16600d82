package dp

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/algokit/algoerr"
)

// ErrNegativeValue is returned by the house-robber routines for a negative entry.
var ErrNegativeValue = algoerr.New(algoerr.InvalidInput, "dp: negative value")

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

func checkNonNegative[T Number](xs []T) error {
	for i, x := range xs {
		if x != x {
			return fmt.Errorf("%w: index %d", ErrNaN, i)
		}
		if x < 0 {
			return fmt.Errorf("%w: index %d", ErrNegativeValue, i)
		}
	}

	return nil
}

// HouseRobber returns the maximum sum of pairwise non-adjacent elements.
// An empty slice yields 0.
func HouseRobber[T Number](xs []T) (T, error) {
	if err := checkNonNegative(xs); err != nil {
		return 0, err
	}

	return rob(xs), nil
}

func rob[T Number](xs []T) T {
	var skip, take T // best ending before i, best including i
	for _, x := range xs {
		skip, take = max(skip, take), skip+x
	}

	return max(skip, take)
}

// HouseRobberPicks returns the maximum sum together with the ascending indexes
// achieving it. When skipping an element ties with taking it, the element is skipped.
func HouseRobberPicks[T Number](xs []T) (T, []int, error) {
	if err := checkNonNegative(xs); err != nil {
		return 0, nil, err
	}
	n := len(xs)
	if n == 0 {
		return 0, nil, nil
	}

	// best[i] is the optimum over xs[:i].
	best := make([]T, n+1)
	best[1] = xs[0]
	for i := 2; i <= n; i++ {
		best[i] = max(best[i-1], best[i-2]+xs[i-1])
	}

	var picks []int
	for i := n; i > 0; {
		if best[i] == best[i-1] {
			i--
			continue
		}
		picks = append(picks, i-1)
		i -= 2
	}
	for l, r := 0, len(picks)-1; l < r; l, r = l+1, r-1 {
		picks[l], picks[r] = picks[r], picks[l]
	}

	return best[n], picks, nil
}

// HouseRobberCircular treats xs as a ring: the first and last elements are adjacent.
func HouseRobberCircular[T Number](xs []T) (T, error) {
	if err := checkNonNegative(xs); err != nil {
		return 0, err
	}
	switch len(xs) {
	case 0:
		return 0, nil
	case 1:
		return xs[0], nil
	}

	return max(rob(xs[:len(xs)-1]), rob(xs[1:])), nil
}
