package alphabet

import (
	"iter"
	"slices"
	"strings"
)

// Alphabet is a finite, ordered collection of symbols, bijectively indexed by
// the dense range [0, Size()).
//
// Implementations are immutable after construction and safe for concurrent
// readers.
type Alphabet[T comparable] interface {
	// Size returns the number of symbols.
	Size() int

	// Symbol returns the symbol at index, in construction order.
	// Returns an *IndexError unless 0 <= index < Size().
	Symbol(index int) (Symbol[T], error)

	// Index returns the position of sym in construction order.
	// Returns a *NotFoundError if no stored symbol equals sym.
	Index(sym Symbol[T]) (int, error)

	// All returns a sequence of exactly Size() symbols in construction order.
	// Each traversal starts afresh from the first symbol.
	All() iter.Seq[Symbol[T]]
}

var (
	_ Alphabet[string] = (*Array[string])(nil)
	_ Alphabet[string] = (*Map[string])(nil)
)

// FromSymbols builds an alphabet using the default, array-backed,
// implementation.
func FromSymbols[T comparable](symbols []Symbol[T], opts ...Option) Alphabet[T] {
	return NewArray(symbols, opts...)
}

// FromNames builds a default alphabet from raw names, wrapping each in a Symbol.
func FromNames[T comparable](names ...T) Alphabet[T] {
	return FromSymbols(Symbols(names...))
}

// MustSymbol is like a.Symbol, but panics with the lookup error.
func MustSymbol[T comparable](a Alphabet[T], index int) Symbol[T] {
	sym, err := a.Symbol(index)
	if err != nil {
		panic(err)
	}
	return sym
}

// MustIndex is like a.Index, but panics with the lookup error.
func MustIndex[T comparable](a Alphabet[T], sym Symbol[T]) int {
	i, err := a.Index(sym)
	if err != nil {
		panic(err)
	}
	return i
}

// CheckUnique returns a *DuplicateError for the first symbol that occurs more
// than once in symbols, or nil if they are pairwise distinct.
//
// Neither alphabet constructor rejects duplicates: Array resolves a repeated
// symbol to its first position, while Map resolves it to its last. Callers
// that need the round trip to hold for every symbol should check first.
func CheckUnique[T comparable](symbols []Symbol[T]) error {
	for _, de := range duplicates(symbols) {
		return de
	}
	return nil
}

func duplicates[T comparable](syms []Symbol[T]) iter.Seq2[Symbol[T], *DuplicateError] {
	return func(yield func(Symbol[T], *DuplicateError) bool) {
		seen := make(map[Symbol[T]]int, len(syms))
		for i, sym := range syms {
			first, dup := seen[sym]
			if !dup {
				seen[sym] = i
				continue
			}
			if !yield(sym, &DuplicateError{Symbol: sym.String(), First: first, Again: i}) {
				return
			}
		}
	}
}

// sequence provides the forward half shared by both implementations.
type sequence[T comparable] struct {
	symbols []Symbol[T]
}

// Size returns the number of symbols.
func (seq sequence[T]) Size() int { return len(seq.symbols) }

// Symbol returns the symbol at index, or an *IndexError.
func (seq sequence[T]) Symbol(index int) (Symbol[T], error) {
	if index < 0 || index >= len(seq.symbols) {
		return Symbol[T]{}, &IndexError{Index: index, Size: len(seq.symbols)}
	}
	return seq.symbols[index], nil
}

// All returns a sequence over the symbols in construction order.
func (seq sequence[T]) All() iter.Seq[Symbol[T]] { return slices.Values(seq.symbols) }

// Indexed returns a sequence of (index, symbol) pairs in construction order.
func (seq sequence[T]) Indexed() iter.Seq2[int, Symbol[T]] { return slices.All(seq.symbols) }

// Names returns a new slice holding every symbol's name.
func (seq sequence[T]) Names() []T {
	names := make([]T, len(seq.symbols))
	for i, sym := range seq.symbols {
		names[i] = sym.name
	}
	return names
}

func (seq sequence[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, sym := range seq.symbols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sym.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
