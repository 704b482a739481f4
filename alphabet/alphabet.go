package alphabet

import "math/bits"

// Size is the number of symbols in every alphabet defined here.
const Size = 26

// Alphabet is a contiguous run of Size symbols starting at First.
type Alphabet struct {
	name  string
	first rune
}

var (
	// Upper is the uppercase English alphabet, A-Z.
	Upper = Alphabet{name: "upper", first: 'A'}

	// Lower is the lowercase English alphabet, a-z.
	Lower = Alphabet{name: "lower", first: 'a'}
)

// Name returns the alphabet's name, as used in error messages.
func (a Alphabet) Name() string {
	return a.name
}

// Index returns the table index of r, or false if r is not in the alphabet.
func (a Alphabet) Index(r rune) (int, bool) {
	i := int(r - a.first)
	if i < 0 || i >= Size {
		return 0, false
	}
	return i, true
}

// Symbol returns the symbol at index i. It panics if i is out of range.
func (a Alphabet) Symbol(i int) rune {
	if i < 0 || i >= Size {
		panic("alphabet: index out of range")
	}
	return a.first + rune(i)
}

// Contains reports whether r is in the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.Index(r)
	return ok
}

// Validate checks every symbol of s, returning a *SymbolError for the first
// one outside the alphabet. Invalid UTF-8 is reported as utf8.RuneError.
func (a Alphabet) Validate(s string) error {
	for off, r := range s {
		if !a.Contains(r) {
			return &SymbolError{Alphabet: a.name, Symbol: r, Offset: off}
		}
	}
	return nil
}

// Counts is a frequency table indexed by alphabet position.
type Counts struct {
	alpha Alphabet
	n     [Size]int
}

// Count validates s and returns its frequency table.
// Nothing is counted if s holds an invalid symbol.
func (a Alphabet) Count(s string) (Counts, error) {
	if err := a.Validate(s); err != nil {
		return Counts{}, err
	}
	c := Counts{alpha: a}
	for _, r := range s {
		i, _ := a.Index(r)
		c.n[i]++
	}
	return c, nil
}

// Alphabet returns the alphabet the table was built over.
func (c Counts) Alphabet() Alphabet {
	return c.alpha
}

// At returns the count at index i.
func (c Counts) At(i int) int {
	return c.n[i]
}

// Of returns the count of r, or 0 if r is not in the alphabet.
func (c Counts) Of(r rune) int {
	i, ok := c.alpha.Index(r)
	if !ok {
		return 0
	}
	return c.n[i]
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c.n {
		total += n
	}
	return total
}

// Set is a bitmask over alphabet indices. Size must stay <= 32.
type Set uint32

// Has reports whether index i is in the set.
func (s Set) Has(i int) bool {
	return s&(1<<uint(i)) != 0
}

// Add returns the set with index i included.
func (s Set) Add(i int) Set {
	return s | 1<<uint(i)
}

// Len returns the number of indices in the set.
func (s Set) Len() int {
	return bits.OnesCount32(uint32(s))
}
