// Package alphabet maps the symbols of a small fixed alphabet to indices.
//
// Counting code in this module indexes fixed-size tables by symbol. Rather
// than subtracting character codes at each call site, callers go through an
// Alphabet, which validates input before any table is touched:
//
//	counts, err := alphabet.Upper.Count("BALLOON")
//	if err != nil {
//	    // errors.Is(err, alphabet.ErrInvalidInput)
//	}
//	counts.Of('L') // 2
//
// # Sets
//
// Set is a bitmask over alphabet indices. The zero value is the empty set:
//
//	var seen alphabet.Set
//	seen = seen.Add(i)
//	seen.Has(i) // true
package alphabet
