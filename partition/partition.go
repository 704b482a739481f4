package partition

import "github.com/randalmurphal/wordkit/alphabet"

// MinPartitions returns the minimum number of contiguous segments of source
// such that no segment repeats a letter. Source must be lowercase a-z.
func MinPartitions(source string) (int, error) {
	if err := alphabet.Lower.Validate(source); err != nil {
		return 0, err
	}
	if source == "" {
		return 0, nil
	}

	count := 1
	var seen alphabet.Set
	for _, r := range source {
		i, _ := alphabet.Lower.Index(r)
		if seen.Has(i) {
			count++
			seen = 0
		}
		seen = seen.Add(i)
	}
	return count, nil
}

// Segments returns the segments MinPartitions counts, in order.
// Each segment is as long as it can be without repeating a letter.
func Segments(source string) ([]string, error) {
	if err := alphabet.Lower.Validate(source); err != nil {
		return nil, err
	}

	var segs []string
	start := 0
	var seen alphabet.Set
	for off, r := range source {
		i, _ := alphabet.Lower.Index(r)
		if seen.Has(i) {
			segs = append(segs, source[start:off])
			start = off
			seen = 0
		}
		seen = seen.Add(i)
	}
	if start < len(source) {
		segs = append(segs, source[start:])
	}
	return segs, nil
}
