package trie_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/trie"
)

func ExampleTrie_Suggestions() {
	t := trie.New()
	for _, w := range []string{"go", "gopher", "golang", "good", "rust"} {
		t.Insert(w)
	}
	fmt.Println(t.Suggestions("go", 3, trie.Lexicographic))
	fmt.Println(t.CountPrefix("go"))
	// Output:
	// [go golang good]
	// 4
}
