package alphabet

import (
	"cmp"
	"fmt"
	"hash/maphash"
)

var symbolSeed = maphash.MakeSeed()

// Symbol is an immutable alphabet element wrapping a comparable name.
// Symbols are plain values: two Symbols with equal names are equal under ==,
// and may be used directly as map keys.
type Symbol[T comparable] struct {
	name T
}

// New returns the Symbol named name.
func New[T comparable](name T) Symbol[T] { return Symbol[T]{name} }

// Symbols wraps each of names, preserving order.
func Symbols[T comparable](names ...T) []Symbol[T] {
	syms := make([]Symbol[T], len(names))
	for i, name := range names {
		syms[i] = Symbol[T]{name}
	}
	return syms
}

// Name returns the underlying name.
func (s Symbol[T]) Name() T { return s.name }

// Equal reports whether other is a Symbol of the same name type with an equal
// name. Values of any other kind compare unequal.
func (s Symbol[T]) Equal(other any) bool {
	switch o := other.(type) {
	case Symbol[T]:
		return s == o
	case *Symbol[T]:
		return o != nil && s == *o
	}
	return false
}

// Hash returns a hash of the name, stable for the life of the process.
func (s Symbol[T]) Hash() uint64 {
	return maphash.Comparable(symbolSeed, s.name)
}

func (s Symbol[T]) String() string {
	if str, ok := any(s.name).(string); ok {
		return str
	}
	return fmt.Sprint(s.name)
}

// Compare orders symbols by their names, returning -1, 0 or +1.
func Compare[T cmp.Ordered](a, b Symbol[T]) int { return cmp.Compare(a.name, b.name) }

// Less reports whether a's name sorts before b's.
func Less[T cmp.Ordered](a, b Symbol[T]) bool { return cmp.Less(a.name, b.name) }
