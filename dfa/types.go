// Package dfa provides the automaton value type, options and error definitions
// for product-automaton equivalence checking.
package dfa

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for DFA construction and comparison.
var (
	// ErrNilDFA is returned when Compare receives a nil automaton.
	ErrNilDFA = errors.New("dfa: automaton is nil")

	// ErrNoStates is returned when an automaton is built with an empty state set.
	ErrNoStates = errors.New("dfa: state set is empty")

	// ErrUnknownStartState is returned when the start state is not in the state set.
	ErrUnknownStartState = errors.New("dfa: start state not found")

	// ErrUnknownAcceptState is returned when an accept state is not in the state set.
	ErrUnknownAcceptState = errors.New("dfa: accept state not found")

	// ErrInvalidTransition is returned when a transition references an unknown
	// state or symbol, or when one (state, symbol) pair has two targets.
	ErrInvalidTransition = errors.New("dfa: invalid transition")

	// ErrDefinition is returned when a YAML definition cannot be decoded.
	ErrDefinition = errors.New("dfa: malformed definition")
)

// Key addresses one entry of the transition table.
type Key struct {
	State  string
	Symbol string
}

// Pair is a state of the product automaton: A belongs to the first DFA, B to the second.
type Pair struct {
	A string
	B string
}

// String renders p as "(A,B)".
func (p Pair) String() string {
	return fmt.Sprintf("(%s,%s)", p.A, p.B)
}

// Option configures Compare via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize the product search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a product state is first discovered.
	OnEnqueue func(p Pair, depth int)

	// OnVisit is called when a product state is dequeued. If it returns an
	// error, Compare aborts and propagates that error.
	OnVisit func(p Pair, depth int) error
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(Pair, int) {},
		OnVisit:   func(Pair, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(p Pair, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(p Pair, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of Compare:
//   - Equivalent: whether no reachable product state disagrees on acceptance.
//   - Visited:    number of distinct product states discovered (≤ |A.states|·|B.states|).
//   - Witness:    shortest input on which the automata disagree; nil when equivalent,
//     empty (non-nil) when the start states already disagree.
//   - Mismatch:   the product state reached by Witness; nil when equivalent.
type Result struct {
	Equivalent bool
	Visited    int
	Witness    []string
	Mismatch   *Pair
}
