package alphabet_test

import (
	"fmt"
	"testing"

	"github.com/jcorbin/alphabet"
)

func BenchmarkIndex(b *testing.B) {
	for _, size := range []int{4, 64, 1024} {
		names := make([]string, size)
		for i := range names {
			names[i] = fmt.Sprintf("sym%v", i)
		}
		syms := alphabet.Symbols(names...)
		last := syms[len(syms)-1]

		for _, impl := range implementations[:2] {
			a := impl.build(syms)
			b.Run(fmt.Sprintf("%v/%v", impl.name, size), func(b *testing.B) {
				for b.Loop() {
					if _, err := a.Index(last); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkSymbol(b *testing.B) {
	syms := alphabet.Symbols("a", "b", "c", "d")
	for _, impl := range implementations[:2] {
		a := impl.build(syms)
		b.Run(impl.name, func(b *testing.B) {
			for i := 0; b.Loop(); i++ {
				if _, err := a.Symbol(i & 3); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
