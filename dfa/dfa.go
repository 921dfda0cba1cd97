package dfa

import (
	"fmt"
	"sort"
)

// DFA is an immutable deterministic finite automaton with a possibly partial
// transition function. A missing (state, symbol) entry means "no move".
type DFA struct {
	states      map[string]struct{}
	alphabet    map[string]struct{}
	transitions map[Key]string
	start       string
	accept      map[string]struct{}
}

// New validates its arguments and builds a DFA. All inputs are copied.
// Returns ErrNoStates, ErrUnknownStartState, ErrUnknownAcceptState or
// ErrInvalidTransition on inconsistent input.
func New(states, alphabet []string, transitions map[Key]string, start string, accept []string) (*DFA, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	d := &DFA{
		states:      toSet(states),
		alphabet:    toSet(alphabet),
		transitions: make(map[Key]string, len(transitions)),
		start:       start,
		accept:      make(map[string]struct{}, len(accept)),
	}
	if !d.HasState(start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStartState, start)
	}
	for _, s := range accept {
		if !d.HasState(s) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAcceptState, s)
		}
		d.accept[s] = struct{}{}
	}
	for k, to := range transitions {
		if err := d.checkTransition(k, to); err != nil {
			return nil, err
		}
		d.transitions[k] = to
	}

	return d, nil
}

// checkTransition verifies both endpoints and the symbol are declared.
func (d *DFA) checkTransition(k Key, to string) error {
	switch {
	case !d.HasState(k.State):
		return fmt.Errorf("%w: unknown source state %q", ErrInvalidTransition, k.State)
	case !d.HasState(to):
		return fmt.Errorf("%w: unknown target state %q from (%s,%s)", ErrInvalidTransition, to, k.State, k.Symbol)
	case !d.HasSymbol(k.Symbol):
		return fmt.Errorf("%w: unknown symbol %q", ErrInvalidTransition, k.Symbol)
	}
	return nil
}

// Start returns the start state.
func (d *DFA) Start() string { return d.start }

// HasState reports whether s is a declared state.
func (d *DFA) HasState(s string) bool {
	_, ok := d.states[s]
	return ok
}

// HasSymbol reports whether sym is in the alphabet.
func (d *DFA) HasSymbol(sym string) bool {
	_, ok := d.alphabet[sym]
	return ok
}

// IsAccepting reports whether s is an accept state.
func (d *DFA) IsAccepting(s string) bool {
	_, ok := d.accept[s]
	return ok
}

// Next returns the successor of state on symbol; ok is false when no
// transition is defined.
func (d *DFA) Next(state, symbol string) (next string, ok bool) {
	next, ok = d.transitions[Key{State: state, Symbol: symbol}]
	return next, ok
}

// Accepts runs input from the start state. An undefined move rejects.
func (d *DFA) Accepts(input []string) bool {
	cur := d.start
	for _, sym := range input {
		next, ok := d.Next(cur, sym)
		if !ok {
			return false
		}
		cur = next
	}
	return d.IsAccepting(cur)
}

// States returns the states in sorted order.
func (d *DFA) States() []string { return sortedKeys(d.states) }

// Alphabet returns the symbols in sorted order.
func (d *DFA) Alphabet() []string { return sortedKeys(d.alphabet) }

// AcceptStates returns the accept states in sorted order.
func (d *DFA) AcceptStates() []string { return sortedKeys(d.accept) }

// NumTransitions returns the number of defined transitions.
func (d *DFA) NumTransitions() int { return len(d.transitions) }

func toSet(xs []string) map[string]struct{} {
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// unionAlphabet returns the sorted union of both alphabets.
func unionAlphabet(a, b *DFA) []string {
	u := make(map[string]struct{}, len(a.alphabet)+len(b.alphabet))
	for s := range a.alphabet {
		u[s] = struct{}{}
	}
	for s := range b.alphabet {
		u[s] = struct{}{}
	}
	return sortedKeys(u)
}
