package alphabet_test

import (
	"slices"
	"testing"

	"github.com/jcorbin/alphabet"
	"github.com/stretchr/testify/assert"
)

func TestSymbol_equal(t *testing.T) {
	a, b := alphabet.New("a"), alphabet.New("a")
	other := alphabet.New("b")

	assert.Equal(t, a, b, "same name must make interchangeable symbols")
	assert.True(t, a == b)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(&b), "expected pointer to equal symbol to compare equal")
	assert.Equal(t, a.Hash(), b.Hash(), "equal symbols must hash equal")

	assert.False(t, a.Equal(other))
	assert.False(t, a.Equal("a"), "a bare name is not a symbol")
	assert.False(t, a.Equal(alphabet.New([]rune("a")[0])), "different name type")
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal((*alphabet.Symbol[string])(nil)))

	m := map[alphabet.Symbol[string]]int{a: 1}
	assert.Equal(t, 1, m[b], "expected symbols to work as map keys")
}

func TestSymbol_hash(t *testing.T) {
	for _, name := range []int{0, 1, -7, 1 << 40} {
		assert.Equal(t, alphabet.New(name).Hash(), alphabet.New(name).Hash(), "hash of %v", name)
	}
	assert.NotEqual(t,
		alphabet.New("left").Hash(), alphabet.New("right").Hash(),
		"expected distinct names to (very likely) hash apart")
}

func TestSymbol_order(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		cmp  int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"b", "b", 0},
		{"", "a", -1},
		{"ab", "b", -1},
	} {
		a, b := alphabet.New(tc.a), alphabet.New(tc.b)
		assert.Equal(t, tc.cmp, alphabet.Compare(a, b), "Compare(%q, %q)", tc.a, tc.b)
		assert.Equal(t, tc.cmp < 0, alphabet.Less(a, b), "Less(%q, %q)", tc.a, tc.b)
	}

	syms := alphabet.Symbols(3, 1, 2)
	slices.SortFunc(syms, alphabet.Compare[int])
	assert.Equal(t, alphabet.Symbols(1, 2, 3), syms, "expected sorted symbols")
}

func TestSymbol_string(t *testing.T) {
	assert.Equal(t, "a", alphabet.New("a").String())
	assert.Equal(t, "42", alphabet.New(42).String())
	assert.Equal(t, "true", alphabet.New(true).String())
	assert.Equal(t, "a", alphabet.New("a").Name())
}
