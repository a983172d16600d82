package huffman_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/huffman"
)

var classic = map[rune]int{'a': 45, 'b': 13, 'c': 12, 'd': 16, 'e': 9, 'f': 5}

func assertPrefixFree(t *testing.T, codes map[rune]string) {
	t.Helper()
	for a, ca := range codes {
		for b, cb := range codes {
			if a != b {
				assert.False(t, strings.HasPrefix(cb, ca), "%q=%s prefixes %q=%s", a, ca, b, cb)
			}
		}
	}
}

func TestBuild_Classic(t *testing.T) {
	tree, err := huffman.Build(classic)
	require.NoError(t, err)
	assert.Equal(t, 100, tree.Root.Weight)

	codes := tree.Codes()
	assert.Equal(t, map[rune]string{
		'a': "0", 'c': "100", 'b': "101", 'f': "1100", 'e': "1101", 'd': "111",
	}, codes)
	assert.Equal(t, 224, huffman.WeightedLength(classic, codes))
	assertPrefixFree(t, codes)
}

func TestCanonicalCodes(t *testing.T) {
	codes, err := huffman.CanonicalCodes(classic)
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{
		'a': "0", 'b': "100", 'c': "101", 'd': "110", 'e': "1110", 'f': "1111",
	}, codes)
	assert.Equal(t, 224, huffman.WeightedLength(classic, codes))

	bits, err := huffman.Encode("fade", codes)
	require.NoError(t, err)
	assert.Equal(t, "111101101110", bits)
	text, err := huffman.DecodeCanonical(bits, codes)
	require.NoError(t, err)
	assert.Equal(t, "fade", text)
}

func TestSingleSymbol(t *testing.T) {
	tree, err := huffman.Build(map[rune]int{'x': 7})
	require.NoError(t, err)
	codes := tree.Codes()
	assert.Equal(t, map[rune]string{'x': "0"}, codes)

	bits, err := huffman.Encode("xxx", codes)
	require.NoError(t, err)
	assert.Equal(t, "000", bits)
	text, err := huffman.Decode(bits, tree)
	require.NoError(t, err)
	assert.Equal(t, "xxx", text)

	_, err = huffman.Decode("01", tree)
	assert.ErrorIs(t, err, huffman.ErrInvalidCode)

	canon, err := huffman.CanonicalCodes(map[rune]int{'x': 7})
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{'x': "0"}, canon)
}

func TestErrors(t *testing.T) {
	_, err := huffman.Build(nil)
	require.ErrorIs(t, err, huffman.ErrInvalidFrequency)
	assert.True(t, algoerr.Is(err, algoerr.InvalidInput))
	_, err = huffman.Build(map[rune]int{'a': 1, 'b': 0})
	assert.ErrorIs(t, err, huffman.ErrInvalidFrequency)

	tree, err := huffman.Build(classic)
	require.NoError(t, err)
	_, err = huffman.Encode("az", tree.Codes())
	assert.ErrorIs(t, err, huffman.ErrUnknownSymbol)
	_, err = huffman.Decode("110", tree)
	assert.ErrorIs(t, err, huffman.ErrInvalidCode, "truncated")
	_, err = huffman.Decode("0x", tree)
	assert.ErrorIs(t, err, huffman.ErrInvalidCode)
	_, err = huffman.DecodeCanonical("11", map[rune]string{'a': "0", 'b': "10"})
	assert.ErrorIs(t, err, huffman.ErrInvalidCode)
}

// optimalCost is the Huffman cost computed by repeated merging on plain ints.
func optimalCost(weights []int) int {
	ws := append([]int(nil), weights...)
	cost := 0
	for len(ws) > 1 {
		i, j := 0, 1
		if ws[j] < ws[i] {
			i, j = j, i
		}
		for k := 2; k < len(ws); k++ {
			switch {
			case ws[k] < ws[i]:
				i, j = k, i
			case ws[k] < ws[j]:
				j = k
			}
		}
		merged := ws[i] + ws[j]
		cost += merged
		lo, hi := min(i, j), max(i, j)
		ws = append(ws[:hi], ws[hi+1:]...)
		ws[lo] = merged
	}

	return cost
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 100; trial++ {
		var sb strings.Builder
		alphabet := []rune("abcdefgπλж")[:1+rng.Intn(10)]
		for i := 0; i < 1+rng.Intn(60); i++ {
			sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		text := sb.String()
		freq := huffman.Frequencies(text)

		tree, err := huffman.Build(freq)
		require.NoError(t, err)
		codes := tree.Codes()
		assertPrefixFree(t, codes)
		bits, err := huffman.Encode(text, codes)
		require.NoError(t, err)
		got, err := huffman.Decode(bits, tree)
		require.NoError(t, err)
		assert.Equal(t, text, got)

		canon, err := huffman.CanonicalCodes(freq)
		require.NoError(t, err)
		assertPrefixFree(t, canon)
		cbits, err := huffman.Encode(text, canon)
		require.NoError(t, err)
		assert.Equal(t, len(bits), len(cbits))
		got, err = huffman.DecodeCanonical(cbits, canon)
		require.NoError(t, err)
		assert.Equal(t, text, got)

		weights := make([]int, 0, len(freq))
		for _, w := range freq {
			weights = append(weights, w)
		}
		if len(weights) > 1 {
			assert.Equal(t, optimalCost(weights), huffman.WeightedLength(freq, codes))
		}
	}
}
