/*
Package alphabet indexes the symbols of a finite automaton.

An automaton addresses its input symbols by position: transition tables are
sized by the number of symbols, and each column belongs to one symbol. User
code, on the other hand, deals in symbol values. An Alphabet is the bijection
between the two, mapping a finite, ordered collection of symbols onto the
dense index range [0, Size()).

A Symbol wraps any comparable name. Symbols with equal names are equal, hash
equal, and are interchangeable as map keys; when the name type is ordered,
Compare and Less order symbols by name.

Two implementations trade memory for reverse lookup cost:

	Array  Symbol O(1), Index O(n) by linear scan, no extra memory
	Map    Symbol O(1), Index O(1) expected, plus a symbol -> index map

FromSymbols and FromNames build the default, array-backed, alphabet. Both
lookups return typed errors, *IndexError and *NotFoundError, which also match
ErrIndexOutOfRange and ErrSymbolNotFound under errors.Is.

Construction does not reject repeated symbols. Array resolves a repeated
symbol to its first position and Map to its last, so the round trip
Index(Symbol(i)) == i only holds for unique input. Use CheckUnique to reject
such input up front, or WithLogf to have construction report it.

Alphabets are immutable once built, so any number of goroutines may query
one without synchronization.
*/
package alphabet
