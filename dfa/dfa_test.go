package dfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/dfa"
)

func TestNew_Errors(t *testing.T) {
	_, err := dfa.New(nil, []string{"a"}, nil, "q0", nil)
	assert.ErrorIs(t, err, dfa.ErrNoStates)

	_, err = dfa.New([]string{"q0"}, []string{"a"}, nil, "zz", nil)
	assert.ErrorIs(t, err, dfa.ErrUnknownStartState)

	_, err = dfa.New([]string{"q0"}, []string{"a"}, nil, "q0", []string{"q9"})
	assert.ErrorIs(t, err, dfa.ErrUnknownAcceptState)

	bad := []map[dfa.Key]string{
		{{State: "zz", Symbol: "a"}: "q0"}, // unknown source
		{{State: "q0", Symbol: "a"}: "zz"}, // unknown target
		{{State: "q0", Symbol: "c"}: "q0"}, // unknown symbol
	}
	for _, tr := range bad {
		_, err = dfa.New([]string{"q0"}, []string{"a"}, tr, "q0", nil)
		assert.ErrorIs(t, err, dfa.ErrInvalidTransition)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	states := []string{"q0", "q1"}
	tr := map[dfa.Key]string{{State: "q0", Symbol: "a"}: "q1"}
	d, err := dfa.New(states, []string{"a"}, tr, "q0", []string{"q1"})
	require.NoError(t, err)

	tr[dfa.Key{State: "q1", Symbol: "a"}] = "q0"
	states[0] = "mutated"

	_, ok := d.Next("q1", "a")
	assert.False(t, ok)
	assert.True(t, d.HasState("q0"))
	assert.Equal(t, 1, d.NumTransitions())
}

func TestDFA_Queries(t *testing.T) {
	d := evenA(t, "q")
	assert.Equal(t, "q0", d.Start())
	assert.Equal(t, []string{"q0", "q1"}, d.States())
	assert.Equal(t, []string{"a", "b"}, d.Alphabet())
	assert.Equal(t, []string{"q0"}, d.AcceptStates())
	assert.True(t, d.IsAccepting("q0"))
	assert.False(t, d.IsAccepting("q1"))
	assert.True(t, d.HasSymbol("b"))
	assert.False(t, d.HasSymbol("c"))

	next, ok := d.Next("q0", "a")
	assert.True(t, ok)
	assert.Equal(t, "q1", next)

	// absent key is a signal, not an error
	_, ok = d.Next("q0", "c")
	assert.False(t, ok)
}

func TestDFA_Accepts(t *testing.T) {
	d := evenA(t, "q")
	assert.True(t, d.Accepts(nil))
	assert.True(t, d.Accepts([]string{"a", "b", "a"}))
	assert.False(t, d.Accepts([]string{"a", "b"}))
	assert.False(t, d.Accepts([]string{"c"}))

	ab := endsAB(t, "p")
	assert.True(t, ab.Accepts([]string{"b", "a", "b"}))
	assert.False(t, ab.Accepts([]string{"a", "b", "a"}))
}

func TestPair_String(t *testing.T) {
	assert.Equal(t, "(q0,p1)", dfa.Pair{A: "q0", B: "p1"}.String())
}
