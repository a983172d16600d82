package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/ahocorasick"
	"github.com/katalvlaran/algokit/huffman"
	"github.com/katalvlaran/algokit/internal/problem"
	"github.com/katalvlaran/algokit/palindrome"
	"github.com/katalvlaran/algokit/trie"
)

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", problem.ErrInvalidProblem, err)
	}
	return string(data), nil
}

func loadTrie(ctx context.Context, path string) (*trie.Trie, error) {
	words, err := problem.ReadLines(path)
	if err != nil {
		return nil, err
	}
	t := trie.New()
	for _, w := range words {
		t.Insert(w)
	}
	loggerFromContext(ctx).Debug("dictionary loaded", "path", path, "words", t.Len())

	return t, nil
}

func (a *app) newMatchCmd() *cobra.Command {
	var patternsPath, textPath string
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Find every occurrence of a pattern set (Aho–Corasick)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			patterns, err := problem.ReadLines(patternsPath)
			if err != nil {
				return err
			}
			text, err := readText(textPath)
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(ctx))
			v, err := a.solve(ctx, "aho-corasick", func(context.Context) (any, error) {
				ac, err := ahocorasick.Build(patterns)
				if err != nil {
					return nil, err
				}
				return ac.Search(text), nil
			})
			if err != nil {
				return err
			}
			matches := v.([]ahocorasick.Match)
			prog.done(fmt.Sprintf("Found %d matches of %d patterns", len(matches), len(patterns)))
			return a.emit(matches, func(w io.Writer) error {
				for _, m := range matches {
					if _, err := fmt.Fprintf(w, "%d\t%d\t%s\n", m.Start, m.End, m.Pattern); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&patternsPath, "patterns", "", "file with one pattern per line")
	f.StringVar(&textPath, "text", "", "file to search")
	_ = cmd.MarkFlagRequired("patterns")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func (a *app) newCompleteCmd() *cobra.Command {
	var wordsPath, prefix string
	var k int
	var insertion bool
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Autocomplete a prefix from a word list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			t, err := loadTrie(ctx, wordsPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("k") {
				k = a.cfg.Suggestions
			}
			order := trie.Lexicographic
			if insertion {
				order = trie.InsertionOrder
			}
			v, err := a.solve(ctx, "complete", func(context.Context) (any, error) {
				return t.Suggestions(prefix, k, order), nil
			})
			if err != nil {
				return err
			}
			words := v.([]string)
			return a.emit(words, func(w io.Writer) error {
				for _, s := range words {
					if _, err := fmt.Fprintln(w, s); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&wordsPath, "words", "", "file with one word per line")
	f.StringVar(&prefix, "prefix", "", "prefix to complete")
	f.IntVar(&k, "k", 10, "maximum completions (overrides config)")
	f.BoolVar(&insertion, "insertion-order", false, "rank by word-list order instead of lexicographically")
	_ = cmd.MarkFlagRequired("words")

	return cmd
}

func (a *app) newSpellCmd() *cobra.Command {
	var wordsPath, word string
	var budget int
	cmd := &cobra.Command{
		Use:   "spell",
		Short: "Suggest dictionary words within an edit distance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			t, err := loadTrie(ctx, wordsPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("budget") {
				budget = a.cfg.SpellBudget
			}
			if budget < 0 {
				return fmt.Errorf("%w: --budget must be ≥ 0", problem.ErrInvalidProblem)
			}
			v, err := a.solve(ctx, "spell", func(context.Context) (any, error) {
				return t.SpellCheck(word, budget), nil
			})
			if err != nil {
				return err
			}
			fixes := v.([]trie.Correction)
			return a.emit(fixes, func(w io.Writer) error {
				for _, c := range fixes {
					if _, err := fmt.Fprintf(w, "%s\t%d\n", c.Word, c.Distance); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&wordsPath, "words", "", "file with one word per line")
	f.StringVar(&word, "word", "", "word to check")
	f.IntVar(&budget, "budget", 2, "maximum Levenshtein distance (overrides config)")
	_ = cmd.MarkFlagRequired("words")
	_ = cmd.MarkFlagRequired("word")

	return cmd
}

type huffmanCode struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
	Code   string `json:"code"`
}

type huffmanOutput struct {
	Codes        []huffmanCode `json:"codes"`
	EncodedBits  int           `json:"encoded_bits"`
	OriginalBits int           `json:"original_bits"`
}

func (a *app) newHuffmanCmd() *cobra.Command {
	var textPath string
	cmd := &cobra.Command{
		Use:   "huffman",
		Short: "Canonical Huffman code of a text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			text, err := readText(textPath)
			if err != nil {
				return err
			}
			v, err := a.solve(ctx, "huffman", func(context.Context) (any, error) {
				freq := huffman.Frequencies(text)
				codes, err := huffman.CanonicalCodes(freq)
				if err != nil {
					return nil, err
				}
				symbols := make([]rune, 0, len(codes))
				for r := range codes {
					symbols = append(symbols, r)
				}
				sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
				out := &huffmanOutput{
					EncodedBits:  huffman.WeightedLength(freq, codes),
					OriginalBits: 8 * len(text),
				}
				for _, r := range symbols {
					out.Codes = append(out.Codes, huffmanCode{Symbol: string(r), Count: freq[r], Code: codes[r]})
				}
				return out, nil
			})
			if err != nil {
				return err
			}
			out := v.(*huffmanOutput)
			return a.emit(out, func(w io.Writer) error {
				for _, c := range out.Codes {
					if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", strconv.Quote(c.Symbol), c.Count, c.Code); err != nil {
						return err
					}
				}
				_, err := fmt.Fprintf(w, "bits\t%d of %d\n", out.EncodedBits, out.OriginalBits)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&textPath, "text", "", "file to encode")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

type palindromeOutput struct {
	Start      int    `json:"start"`
	Length     int    `json:"length"`
	Palindrome string `json:"palindrome"`
	Count      int    `json:"count"`
}

func (a *app) newPalindromeCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "palindrome [text]",
		Short: "Longest palindromic substring (Manacher)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				text = args[0]
			}
			v, err := a.solve(cmd.Context(), "manacher", func(context.Context) (any, error) {
				start, length := palindrome.Longest(text)
				return &palindromeOutput{
					Start:      start,
					Length:     length,
					Palindrome: palindrome.LongestString(text),
					Count:      palindrome.Count(text),
				}, nil
			})
			if err != nil {
				return err
			}
			out := v.(*palindromeOutput)
			return a.emit(out, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s\tstart %d\tlength %d\t%d palindromic substrings\n",
					strconv.Quote(out.Palindrome), out.Start, out.Length, out.Count)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "string to scan (or pass it as the argument)")

	return cmd
}
