package turing

import (
	"github.com/katalvlaran/automata/prime"
)

// Machine is a single-tape Turing machine that counts a unary prefix and
// decides whether the count is prime.
//
// A Machine is not safe for concurrent use; build one per run.
type Machine struct {
	tape  *Tape
	head  int
	state State
	count int
	steps int
	opts  Options
}

// New builds a machine over input. It does not check that input is unary;
// Decide does that. The only errors come from invalid options.
func New(input string, opts ...Option) (*Machine, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Machine{
		tape:  NewTape(input, o.Blank),
		state: StateStart,
		opts:  o,
	}, nil
}

// State returns the current control state.
func (m *Machine) State() State { return m.state }

// Head returns the head position.
func (m *Machine) Head() int { return m.head }

// Count returns how many '1' cells have been marked.
func (m *Machine) Count() int { return m.count }

// Steps returns how many transitions have been applied.
func (m *Machine) Steps() int { return m.steps }

// Snapshot returns the current configuration.
func (m *Machine) Snapshot() Config {
	return Config{
		Step:  m.steps,
		State: m.state,
		Head:  m.head,
		Count: m.count,
		Tape:  m.tape.String(),
	}
}

// Render draws the tape window around the head; see Tape.Render.
func (m *Machine) Render(limit int) (tape, marker string) {
	return m.tape.Render(m.head, limit)
}

// Step applies exactly one transition and reports whether one was applied.
// It returns false only when the machine is already halted.
//
//	start       '1'          → mark, count++, head++ → marking
//	start       blank        → check_prime
//	start       other        → reject
//	marking     '1'          → mark, count++, head++ → marking
//	marking     blank/marked → check_prime
//	marking     other        → reject
//	check_prime              → accept if count is prime, else reject
func (m *Machine) Step() bool {
	if m.state.Terminal() {
		return false
	}

	sym := m.tape.At(m.head)
	switch m.state {
	case StateStart:
		switch sym {
		case Unary:
			m.mark()
			m.state = StateMarking
		case m.opts.Blank:
			m.state = StateCheckPrime
		default:
			m.state = StateReject
		}

	case StateMarking:
		switch sym {
		case Unary:
			m.mark()
		case m.opts.Blank, m.opts.Marked:
			m.state = StateCheckPrime
		default:
			m.state = StateReject
		}

	case StateCheckPrime:
		if prime.IsPrime(m.count) {
			m.state = StateAccept
		} else {
			m.state = StateReject
		}
	}

	m.steps++
	m.trace()
	return true
}

// mark overwrites the cell under the head and advances.
func (m *Machine) mark() {
	m.tape.Set(m.head, m.opts.Marked)
	m.count++
	m.head++
}

// trace feeds the OnStep hook and the debug log.
func (m *Machine) trace() {
	cfg := m.Snapshot()
	m.opts.OnStep(cfg)
	tape, marker := m.Render(DisplayLimit)
	m.opts.Logger.Debug("tm step",
		"step", cfg.Step,
		"state", cfg.State.String(),
		"head", cfg.Head,
		"count", cfg.Count,
		"tape", tape,
		"marker", marker,
	)
}

// Budget returns the step limit Run would apply to the current tape:
// the number of non-blank cells plus BaseMaxSteps.
func (m *Machine) Budget() int {
	return m.tape.Len() - m.tape.Count(m.opts.Blank) + m.opts.BaseMaxSteps
}

// Run steps until the machine halts or the budget is spent.
// Running an already halted machine returns its verdict without stepping.
func (m *Machine) Run() Verdict {
	budget := m.Budget()
	log := m.opts.Logger
	log.Debug("tm run",
		"input", m.tape.String(),
		"state", m.state.String(),
		"budget", budget,
	)

	for taken := 0; !m.state.Terminal() && taken < budget; taken++ {
		if !m.Step() {
			break
		}
	}

	if !m.state.Terminal() {
		log.Warn("tm reached max steps without halting",
			"steps", m.steps,
			"budget", budget,
			"state", m.state.String(),
		)
		return RejectMaxSteps
	}

	v := Reject
	if m.state == StateAccept {
		v = Accept
	}
	log.Debug("tm halted", "state", m.state.String(), "count", m.count, "verdict", v.String())
	return v
}
