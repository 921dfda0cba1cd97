// Command automata runs the unary-prime Turing machine and the DFA
// equivalence check from the command line.
package main

func main() {
	Execute()
}
