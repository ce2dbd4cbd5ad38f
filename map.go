package alphabet

import "slices"

// Map is an alphabet that keeps a hash index from symbol to position beside
// its symbol slice. Both lookup directions are O(1), at the cost of the extra
// map; prefer it when reverse lookups dominate, such as encoding every input
// symbol while running an automaton.
type Map[T comparable] struct {
	sequence[T]
	index map[Symbol[T]]int
}

// NewMap copies symbols into a new Map, indexing them in one pass.
// If symbols repeat, Index resolves them to their last position.
func NewMap[T comparable](symbols []Symbol[T], opts ...Option) *Map[T] {
	m := &Map[T]{
		sequence: sequence[T]{slices.Clone(symbols)},
		index:    make(map[Symbol[T]]int, len(symbols)),
	}
	for i, sym := range m.symbols {
		m.index[sym] = i
	}
	reportDuplicates(buildConfig(opts), m.symbols, func(sym Symbol[T], _ *DuplicateError) int { return m.index[sym] })
	return m
}

// Index returns the position of sym, or a *NotFoundError.
func (m *Map[T]) Index(sym Symbol[T]) (int, error) {
	if i, ok := m.index[sym]; ok {
		return i, nil
	}
	return -1, &NotFoundError{Symbol: sym.String()}
}
