package palindrome_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algokit/palindrome"
)

func TestLongest(t *testing.T) {
	cases := []struct {
		in            string
		start, length int
		sub           string
	}{
		{"babad", 0, 3, "bab"},
		{"cbbd", 1, 2, "bb"},
		{"", 0, 0, ""},
		{"a", 0, 1, "a"},
		{"abc", 0, 1, "a"},
		{"forgeeksskeegfor", 3, 10, "geeksskeeg"},
		{"xабаy", 1, 3, "аба"},
		{"ротор и шалаш", 0, 5, "ротор"},
	}
	for _, tc := range cases {
		start, length := palindrome.Longest(tc.in)
		assert.Equal(t, tc.start, start, "%q start", tc.in)
		assert.Equal(t, tc.length, length, "%q length", tc.in)
		assert.Equal(t, tc.sub, palindrome.LongestString(tc.in))
	}
}

func TestRadii(t *testing.T) {
	// "#a#b#a#"
	assert.Equal(t, []int{0, 1, 0, 3, 0, 1, 0}, palindrome.Radii("aba"))
	assert.Equal(t, []int{0}, palindrome.Radii(""))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, palindrome.Count("abc"))
	assert.Equal(t, 6, palindrome.Count("aaa"))
	assert.Equal(t, 0, palindrome.Count(""))
}

func TestLongest_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for trial := 0; trial < 500; trial++ {
		b := make([]rune, rng.Intn(20))
		for i := range b {
			b[i] = []rune("abж")[rng.Intn(3)]
		}
		s := string(b)
		ws, wl := palindrome.Naive(s)
		gs, gl := palindrome.Longest(s)
		assert.Equal(t, []int{ws, wl}, []int{gs, gl}, "%q", s)
	}
}
