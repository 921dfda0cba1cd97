// Package turing defines states, verdicts, options and errors
// for the unary-prime Turing machine.
package turing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/automata/internal/logging"
)

// Tape alphabet defaults and run limits.
const (
	// Unary is the only input symbol the machine counts.
	Unary = '1'

	// DefaultBlank fills the padding after the input.
	DefaultBlank = 'B'

	// DefaultMarked replaces every counted '1'.
	DefaultMarked = 'X'

	// DefaultBaseMaxSteps is added to the non-blank tape length to form the step budget.
	DefaultBaseMaxSteps = 50

	// minPadding is the smallest number of blank cells appended to the input.
	minPadding = 10
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("turing: invalid option supplied")

// State is the control state of the machine.
type State int

const (
	// StateStart reads the first cell.
	StateStart State = iota
	// StateMarking consumes the remaining '1' cells.
	StateMarking
	// StateCheckPrime tests the marked count for primality.
	StateCheckPrime
	// StateAccept is terminal.
	StateAccept
	// StateReject is terminal.
	StateReject
)

// String returns the snake_case name of s.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateMarking:
		return "marking"
	case StateCheckPrime:
		return "check_prime"
	case StateAccept:
		return "accept"
	case StateReject:
		return "reject"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether s is absorbing.
func (s State) Terminal() bool {
	return s == StateAccept || s == StateReject
}

// Verdict is the outcome of a run.
//
//   - Accept         — the machine halted in StateAccept.
//   - Reject         — the machine halted in StateReject, or the input was not unary.
//   - RejectMaxSteps — the step budget ran out before halting.
//
// RejectMaxSteps is a kind of rejection; use Rejected to treat both alike.
type Verdict int

const (
	Accept Verdict = iota
	Reject
	RejectMaxSteps
)

// String mirrors the diagnostic labels printed by the CLI.
func (v Verdict) String() string {
	switch v {
	case Accept:
		return "Accept"
	case Reject:
		return "Reject"
	case RejectMaxSteps:
		return "Reject (Max Steps)"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Accepted reports whether v is Accept.
func (v Verdict) Accepted() bool { return v == Accept }

// Rejected reports whether v is Reject or RejectMaxSteps.
func (v Verdict) Rejected() bool { return v == Reject || v == RejectMaxSteps }

// Config is a point-in-time view of the machine, handed to OnStep hooks.
type Config struct {
	Step  int
	State State
	Head  int
	Count int
	Tape  string
}

// Option configures the machine via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New or Decide.
type Option func(*Options)

// Options holds the tape alphabet, step budget and diagnostics hooks.
type Options struct {
	// Blank is the padding symbol.
	Blank rune

	// Marked overwrites each counted '1'.
	Marked rune

	// BaseMaxSteps is added to the non-blank cell count to form the step budget.
	BaseMaxSteps int

	// OnStep is called after every applied transition.
	OnStep func(Config)

	// Logger receives Debug records for every step and the halt.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Blank 'B', Marked 'X'
//   - BaseMaxSteps 50
//   - no-op OnStep hook
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Blank:        DefaultBlank,
		Marked:       DefaultMarked,
		BaseMaxSteps: DefaultBaseMaxSteps,
		OnStep:       func(Config) {},
		Logger:       logging.NewNop(),
	}
}

// WithBlank overrides the blank symbol. '1' is rejected.
func WithBlank(r rune) Option {
	return func(o *Options) {
		if r == Unary {
			o.err = fmt.Errorf("%w: blank symbol cannot be %q", ErrOptionViolation, r)
			return
		}
		o.Blank = r
	}
}

// WithMarked overrides the marked symbol. '1' is rejected.
func WithMarked(r rune) Option {
	return func(o *Options) {
		if r == Unary {
			o.err = fmt.Errorf("%w: marked symbol cannot be %q", ErrOptionViolation, r)
			return
		}
		o.Marked = r
	}
}

// WithBaseMaxSteps overrides the constant part of the step budget.
//
//	n >= 0: budget = non-blank cells + n
//	n < 0:  invalid option → ErrOptionViolation
func WithBaseMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: BaseMaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.BaseMaxSteps = n
	}
}

// WithOnStep registers a callback run after each transition.
func WithOnStep(fn func(Config)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithLogger routes step tracing to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions applies opts over DefaultOptions and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Blank == o.Marked {
		return o, fmt.Errorf("%w: blank and marked symbols must differ (%q)", ErrOptionViolation, o.Blank)
	}
	return o, nil
}
