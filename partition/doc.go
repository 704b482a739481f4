// Package partition splits a string into the fewest contiguous segments in
// which no letter repeats.
//
// The split is found greedily in one left-to-right pass: the current
// segment grows until the next letter is already in it, and only then a new
// segment starts. Growing a segment as far as possible never costs a
// segment later, so the greedy count is the minimum.
//
//	n, err := partition.MinPartitions("cycle")  // 2, nil ("cy", "cle")
//	segs, err := partition.Segments("abba")      // ["ab", "ba"], nil
//
// Input must be lowercase a-z. The empty string needs no segments and
// returns 0.
package partition
