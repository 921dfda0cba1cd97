package dfa_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/automata/dfa"
)

// ring builds an n-state cycle over {a,b}: a advances, b stays. Accepts state 0.
func ring(b *testing.B, n int, prefix string) *dfa.DFA {
	states := make([]string, n)
	for i := range states {
		states[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	tr := make(map[dfa.Key]string, 2*n)
	for i, s := range states {
		tr[dfa.Key{State: s, Symbol: "a"}] = states[(i+1)%n]
		tr[dfa.Key{State: s, Symbol: "b"}] = s
	}
	d, err := dfa.New(states, []string{"a", "b"}, tr, states[0], states[:1])
	if err != nil {
		b.Fatal(err)
	}
	return d
}

// BenchmarkCompare_Equivalent explores every reachable pair of two
// relabeled 97-state rings.
func BenchmarkCompare_Equivalent(b *testing.B) {
	x, y := ring(b, 97, "x"), ring(b, 97, "y")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfa.Compare(x, y)
	}
}

// BenchmarkCompare_Mismatch runs until the rings first disagree on a^499.
func BenchmarkCompare_Mismatch(b *testing.B) {
	x, y := ring(b, 500, "x"), ring(b, 499, "y")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfa.Compare(x, y)
	}
}
