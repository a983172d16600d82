package palindrome

// Radii returns Manacher's radius array over the interleaved sequence
// "#s0#s1#…#", which has 2n+1 positions. r[i] equals the rune length of the
// longest palindrome centred at position i.
//
// Complexity: O(n).
func Radii(s string) []int {
	rs := []rune(s)
	m := 2*len(rs) + 1
	at := func(i int) rune {
		if i%2 == 0 {
			return -1
		}
		return rs[i/2]
	}

	r := make([]int, m)
	center, right := 0, 0 // rightmost palindrome is [center−r, right)
	for i := 0; i < m; i++ {
		k := 0
		if i < right {
			k = min(r[2*center-i], right-i)
		}
		for i-k-1 >= 0 && i+k+1 < m && at(i-k-1) == at(i+k+1) {
			k++
		}
		r[i] = k
		if i+k > right {
			center, right = i, i+k
		}
	}

	return r
}

// Longest returns the rune start and length of the longest palindromic
// substring, preferring the earliest start on ties. The empty string yields (0, 0).
func Longest(s string) (start, length int) {
	for i, k := range Radii(s) {
		if k > length {
			start, length = (i-k)/2, k
		}
	}

	return start, length
}

// LongestString returns the substring located by Longest.
func LongestString(s string) string {
	start, length := Longest(s)

	return string([]rune(s)[start : start+length])
}

// Count returns the number of palindromic substrings counted by position.
func Count(s string) int {
	total := 0
	for _, k := range Radii(s) {
		total += (k + 1) / 2
	}

	return total
}

// Naive expands around every centre in O(n²). It follows the same tie rule as
// Longest and serves as a reference.
func Naive(s string) (start, length int) {
	rs := []rune(s)
	expand := func(l, r int) (int, int) {
		for l >= 0 && r < len(rs) && rs[l] == rs[r] {
			l--
			r++
		}
		return l + 1, r - l - 1
	}
	for c := range rs {
		for _, w := range [2]int{0, 1} {
			if st, n := expand(c, c+w); n > length || (n == length && st < start) {
				start, length = st, n
			}
		}
	}

	return start, length
}
