package huffman_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/huffman"
)

func ExampleCanonicalCodes() {
	freq := huffman.Frequencies("abracadabra")
	codes, _ := huffman.CanonicalCodes(freq)
	for _, r := range "abcdr" {
		fmt.Printf("%c %s\n", r, codes[r])
	}
	bits, _ := huffman.Encode("abracadabra", codes)
	fmt.Println(len(bits), huffman.WeightedLength(freq, codes))
	// Output:
	// a 0
	// b 110
	// c 1110
	// d 1111
	// r 10
	// 23 23
}
