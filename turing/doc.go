// Package turing simulates a single-tape Turing machine that decides whether
// the length of a unary string is prime.
//
// What
//
//   - The tape holds the input followed by max(10, n+10) blank cells.
//   - Five control states: start, marking, check_prime, accept, reject.
//   - Each '1' is overwritten with the marked symbol and counted; the first
//     blank (or already marked) cell moves the machine to check_prime, which
//     asks prime.IsPrime about the count.
//   - Any other symbol in the start or marking state sends the machine to reject.
//
// Step budget
//
//	Run computes budget = (tape length − blank cells) + BaseMaxSteps before it
//	starts. A valid unary string of length n needs n+2 steps, so it always halts
//	through check_prime. A machine that exhausts the budget yields
//	RejectMaxSteps, which Verdict.Rejected treats as a rejection.
//
// Usage
//
//	v, err := turing.Decide("11111")
//	if err != nil {
//	    // only ErrOptionViolation
//	}
//	fmt.Println(v) // Accept
//
//	// Step-by-step with custom symbols and tracing:
//	m, _ := turing.New("111",
//	    turing.WithBlank('_'),
//	    turing.WithMarked('#'),
//	    turing.WithBaseMaxSteps(10),
//	    turing.WithOnStep(func(c turing.Config) { /* ... */ }),
//	    turing.WithLogger(logger),
//	)
//	for m.Step() {
//	}
//
// Errors
//
//   - ErrOptionViolation when blank or marked is '1', blank == marked, or
//     BaseMaxSteps is negative.
//
// Alphabet problems and budget exhaustion are never errors; they end in a
// reject verdict.
package turing
