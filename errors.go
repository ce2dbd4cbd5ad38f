package alphabet

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrSymbolNotFound  = errors.New("symbol not found")
	ErrDuplicateSymbol = errors.New("duplicate symbol")
)

// IndexError indicates a forward lookup outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (ie *IndexError) Error() string {
	return fmt.Sprintf("alphabet index %v out of range [0, %v)", ie.Index, ie.Size)
}

func (ie *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// NotFoundError indicates a reverse lookup for a symbol the alphabet does not
// contain. Symbol holds the textual form of the queried symbol.
type NotFoundError struct {
	Symbol string
}

func (nf *NotFoundError) Error() string {
	return fmt.Sprintf("symbol %q not found in alphabet", nf.Symbol)
}

func (nf *NotFoundError) Is(target error) bool { return target == ErrSymbolNotFound }

// DuplicateError reports a symbol that occurs more than once in an input
// collection, at positions First and Again.
type DuplicateError struct {
	Symbol string
	First  int
	Again  int
}

func (de *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate symbol %q at %v, first at %v", de.Symbol, de.Again, de.First)
}

func (de *DuplicateError) Is(target error) bool { return target == ErrDuplicateSymbol }
