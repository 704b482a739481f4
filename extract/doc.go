// Package extract counts how many times a target word can be assembled
// from the letters of a source string.
//
// Each extraction removes one full copy of the target's letter multiset from
// the source. The answer is bounded by the scarcest letter: for every letter
// the source can pay for count/required extractions, and the minimum across
// the target's letters wins.
//
// # Balloon
//
// The fixed instance counts copies of "BALLOON" in uppercase input:
//
//	n, err := extract.MaxExtractions("BAOOLLNNOLOLGBAX") // 2, nil
//	n, err := extract.MaxExtractions("balloon")          // 0, ErrInvalidInput
//
// # Recipes
//
// A Recipe is the letter multiset of any target word over an alphabet:
//
//	r, err := extract.NewRecipe(alphabet.Upper, "CAT")
//	n, err := r.Count("TACOCAT") // 2
//
// Input holding symbols outside the recipe's alphabet is rejected before
// anything is counted; the returned error wraps alphabet.ErrInvalidInput.
package extract
