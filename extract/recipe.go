package extract

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/wordkit/alphabet"
)

// BalloonWord is the target word of MaxExtractions.
const BalloonWord = "BALLOON"

// Balloon is the recipe for BalloonWord: {B:1, A:1, L:2, O:2, N:1}.
// It is never modified after init.
var Balloon = MustRecipe(alphabet.Upper, BalloonWord)

// Recipe is the letter multiset of a target word.
type Recipe struct {
	need alphabet.Counts
}

// NewRecipe builds the recipe for word over the given alphabet.
func NewRecipe(a alphabet.Alphabet, word string) (Recipe, error) {
	if word == "" {
		return Recipe{}, ErrEmptyRecipe
	}
	need, err := a.Count(word)
	if err != nil {
		return Recipe{}, fmt.Errorf("recipe %q: %w", word, err)
	}
	return Recipe{need: need}, nil
}

// MustRecipe is like NewRecipe but panics on error.
func MustRecipe(a alphabet.Alphabet, word string) Recipe {
	r, err := NewRecipe(a, word)
	if err != nil {
		panic(err)
	}
	return r
}

// Alphabet returns the alphabet the recipe accepts.
func (r Recipe) Alphabet() alphabet.Alphabet {
	return r.need.Alphabet()
}

// Need returns how many copies of sym one extraction consumes.
func (r Recipe) Need(sym rune) int {
	return r.need.Of(sym)
}

// Len returns the number of letters consumed per extraction.
func (r Recipe) Len() int {
	return r.need.Total()
}

// Word returns the recipe's letters in alphabet order, e.g. "ABLLNOO".
func (r Recipe) Word() string {
	var b strings.Builder
	a := r.Alphabet()
	for i := range alphabet.Size {
		for range r.need.At(i) {
			b.WriteRune(a.Symbol(i))
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (r Recipe) String() string {
	return "Recipe(" + r.Word() + ")"
}
