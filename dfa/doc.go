// Package dfa decides language equivalence of two deterministic finite
// automata by breadth-first exploration of their product automaton.
//
// What
//
//   - DFA is an immutable value: states, alphabet, a partial transition
//     table keyed by (state, symbol), a start state and accept states.
//   - Equivalent(a, b) returns true when no reachable product state
//     disagrees on acceptance.
//   - Compare(a, b, opts...) runs the same search and reports the number of
//     product states discovered and, on a difference, the shortest
//     distinguishing input (Witness).
//   - Load/LoadFile read DFAs from YAML; Marshal writes them back.
//
// Algorithm
//
//  1. If exactly one start state accepts, the automata differ on the empty input.
//  2. Seed the queue and visited set with (startA, startB).
//  3. Dequeue (s1, s2). For every symbol of the sorted alphabet union:
//     - skip the symbol if either automaton has no move;
//     - if the successors disagree on acceptance, stop: not equivalent;
//     - otherwise enqueue the successor pair the first time it is seen.
//  4. An empty queue means equivalent.
//
// Partial transitions
//
//	A symbol undefined on either side is skipped, never treated as a move
//	into a rejecting sink. Only pairs where both automata move are compared,
//	and unreachable states are never looked at.
//
// Complexity (m, n = state counts, k = |alphabet union|)
//
//   - Time:   O(m·n·k)
//   - Memory: O(m·n)   (each product state enters the queue at most once)
//
// Errors
//
//   - ErrNilDFA, ErrNoStates, ErrUnknownStartState, ErrUnknownAcceptState,
//     ErrInvalidTransition, ErrDefinition.
//   - Context cancellation errors and wrapped OnVisit hook errors from Compare.
package dfa
