// Package wordkit provides small letter-counting utilities over fixed
// alphabets.
//
// Each subpackage can be used independently:
//
//   - alphabet: symbol-to-index mapping, input validation, letter sets
//   - extract: how many times a word can be assembled from a string's letters
//   - partition: fewest contiguous segments with no repeated letter
//   - casefile: YAML/TOML tables of known answers, used by the tests
//
// # Quick Start
//
// Counting words:
//
//	import "github.com/randalmurphal/wordkit/extract"
//	n, err := extract.MaxExtractions("BAOOLLNNOLOLGBAX") // 2
//
// Splitting strings:
//
//	import "github.com/randalmurphal/wordkit/partition"
//	n, err := partition.MinPartitions("abba") // 2
//
// # Errors
//
// Input outside a function's alphabet is rejected before any counting.
// The error wraps alphabet.ErrInvalidInput and, via errors.As, yields an
// *alphabet.SymbolError naming the symbol and its byte offset.
//
// All functions are pure and safe for concurrent use.
package wordkit
