package alphabet

import "slices"

// Array is an alphabet backed only by its symbol slice.
// Forward lookup is O(1); reverse lookup scans linearly, which suits small
// alphabets or callers that rarely map symbols back to indices.
type Array[T comparable] struct {
	sequence[T]
}

// NewArray copies symbols into a new Array.
// If symbols repeat, Index resolves them to their first position.
func NewArray[T comparable](symbols []Symbol[T], opts ...Option) *Array[T] {
	arr := &Array[T]{sequence[T]{slices.Clone(symbols)}}
	reportDuplicates(buildConfig(opts), arr.symbols, func(_ Symbol[T], de *DuplicateError) int { return de.First })
	return arr
}

// Index returns the position of the first symbol equal to sym, or a
// *NotFoundError.
func (arr *Array[T]) Index(sym Symbol[T]) (int, error) {
	for i, have := range arr.symbols {
		if have == sym {
			return i, nil
		}
	}
	return -1, &NotFoundError{Symbol: sym.String()}
}
