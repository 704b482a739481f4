package extract

import (
	"math"

	"github.com/randalmurphal/wordkit/alphabet"
)

// MaxExtractions returns how many times "BALLOON" can be removed from the
// letters of source. Source must be uppercase A-Z.
func MaxExtractions(source string) (int, error) {
	return Balloon.Count(source)
}

// Count returns how many disjoint copies of the recipe can be taken from the
// letters of source. Letters the recipe does not use are ignored.
func (r Recipe) Count(source string) (int, error) {
	have, err := r.Alphabet().Count(source)
	if err != nil {
		return 0, err
	}

	best := math.MaxInt
	for i := range alphabet.Size {
		need := r.need.At(i)
		if need == 0 {
			continue
		}
		got := have.At(i)
		if got == 0 {
			return 0, nil
		}
		best = min(best, got/need)
	}

	// Only the zero Recipe gets here without a required letter.
	if best == math.MaxInt {
		return 0, nil
	}
	return best, nil
}
