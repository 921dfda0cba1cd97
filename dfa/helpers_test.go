package dfa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/dfa"
)

// build is New that fails the test on error.
func build(t testing.TB, states, alphabet []string, tr map[dfa.Key]string, start string, accept []string) *dfa.DFA {
	t.Helper()
	d, err := dfa.New(states, alphabet, tr, start, accept)
	require.NoError(t, err)
	return d
}

// evenA accepts strings over {a,b} with an even number of a's, using
// states named prefix+"0" and prefix+"1".
func evenA(t testing.TB, prefix string, accept ...string) *dfa.DFA {
	s0, s1 := prefix+"0", prefix+"1"
	if len(accept) == 0 {
		accept = []string{s0}
	}
	return build(t, []string{s0, s1}, []string{"a", "b"}, map[dfa.Key]string{
		{State: s0, Symbol: "a"}: s1,
		{State: s0, Symbol: "b"}: s0,
		{State: s1, Symbol: "a"}: s0,
		{State: s1, Symbol: "b"}: s1,
	}, s0, accept)
}

// endsAB accepts strings over {a,b} ending in "ab".
func endsAB(t testing.TB, prefix string) *dfa.DFA {
	s0, s1, s2 := prefix+"0", prefix+"1", prefix+"2"
	return build(t, []string{s0, s1, s2}, []string{"a", "b"}, map[dfa.Key]string{
		{State: s0, Symbol: "a"}: s1,
		{State: s0, Symbol: "b"}: s0,
		{State: s1, Symbol: "a"}: s1,
		{State: s1, Symbol: "b"}: s2,
		{State: s2, Symbol: "a"}: s1,
		{State: s2, Symbol: "b"}: s0,
	}, s0, []string{s2})
}

// countMod accepts a^k for k divisible by mod, over the single symbol "a".
func countMod(t testing.TB, mod int, accept ...int) *dfa.DFA {
	states := make([]string, mod)
	for i := range states {
		states[i] = string(rune('A' + i))
	}
	tr := make(map[dfa.Key]string, mod)
	for i := range states {
		tr[dfa.Key{State: states[i], Symbol: "a"}] = states[(i+1)%mod]
	}
	if len(accept) == 0 {
		accept = []int{0}
	}
	acc := make([]string, len(accept))
	for i, k := range accept {
		acc[i] = states[k]
	}
	return build(t, states, []string{"a"}, tr, states[0], acc)
}
