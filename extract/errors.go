package extract

import "errors"

// ErrEmptyRecipe is returned when a recipe is built from an empty word.
var ErrEmptyRecipe = errors.New("recipe word is empty")
