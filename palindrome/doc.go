// Package palindrome finds palindromic substrings with Manacher's algorithm.
//
// Offsets and lengths count runes, not bytes.
package palindrome
