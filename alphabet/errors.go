package alphabet

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a string holds a symbol outside the alphabet.
var ErrInvalidInput = errors.New("invalid input")

// SymbolError reports the first out-of-range symbol found in a string.
type SymbolError struct {
	Alphabet string // Alphabet name ("upper", "lower")
	Symbol   rune   // Offending symbol
	Offset   int    // Byte offset of the symbol in the input
}

// Error implements the error interface.
func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: symbol %q at offset %d is not in the %s alphabet",
		ErrInvalidInput, e.Symbol, e.Offset, e.Alphabet)
}

// Unwrap returns ErrInvalidInput for errors.Is support.
func (e *SymbolError) Unwrap() error {
	return ErrInvalidInput
}

// IsInvalidInput checks if an error was caused by an out-of-alphabet symbol.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
