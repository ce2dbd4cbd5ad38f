package alphabet

import "fmt"

// Encode maps each symbol of word to its index in a, as an automaton does
// when resolving input symbols to transition table columns.
// The first failed lookup is returned, annotated with its position in word.
func Encode[T comparable](a Alphabet[T], word []Symbol[T]) ([]int, error) {
	indices := make([]int, len(word))
	for i, sym := range word {
		index, err := a.Index(sym)
		if err != nil {
			return nil, fmt.Errorf("word[%v]: %w", i, err)
		}
		indices[i] = index
	}
	return indices, nil
}

// Decode maps each index back to its symbol in a.
// The first failed lookup is returned, annotated with its position.
func Decode[T comparable](a Alphabet[T], indices []int) ([]Symbol[T], error) {
	word := make([]Symbol[T], len(indices))
	for i, index := range indices {
		sym, err := a.Symbol(index)
		if err != nil {
			return nil, fmt.Errorf("word[%v]: %w", i, err)
		}
		word[i] = sym
	}
	return word, nil
}
