// Package automata is a small, pure-Go home for two classic decision
// procedures from formal-language theory.
//
// 🚀 What is inside?
//
//	Two independent kernels, no shared state between them:
//		• turing — a single-tape Turing machine deciding whether a unary
//		  string has prime length (tape, head, five control states)
//		• dfa    — language equivalence of two DFAs by breadth-first
//		  exploration of their product automaton
//		• prime  — the trial-division primality oracle used by turing
//
// ✨ Why use it?
//
//   - Deterministic – sorted alphabets, reproducible witnesses
//   - Safe – every run owns its tape or queue, so runs parallelise freely
//   - No surprises – bad symbols, missing transitions and exhausted step
//     budgets all end in a well-defined verdict, never a panic
//   - Observable – OnStep / OnVisit hooks and slog tracing
//
// Layout:
//
//	prime/            — IsPrime
//	turing/           — Machine, Tape, Decide, verdicts and options
//	dfa/              — DFA, Equivalent, Compare, YAML Load/Marshal
//	internal/logging/ — slog logger factory
//	cmd/automata/     — CLI: `automata prime 11111`, `automata equiv a.yaml b.yaml`
//
// Quick ASCII example (even number of a's):
//
//	      b          b
//	     ┌─┐   a    ┌─┐
//	    →(q0)──────→(q1)
//	      ↑    a     │
//	      └──────────┘
//
//	go get github.com/katalvlaran/automata
package automata
