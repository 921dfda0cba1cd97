package turing

import "strings"

// DisplayLimit is the default window width used by Render.
const DisplayLimit = 70

// Tape is a fixed-length row of cells. Reads past either end yield the blank symbol.
type Tape struct {
	cells []rune
	blank rune
}

// NewTape copies input onto a new tape followed by max(10, len(input)+10) blanks.
func NewTape(input string, blank rune) *Tape {
	in := []rune(input)
	padding := max(minPadding, len(in)+minPadding)
	cells := make([]rune, len(in), len(in)+padding)
	copy(cells, in)
	for i := 0; i < padding; i++ {
		cells = append(cells, blank)
	}

	return &Tape{cells: cells, blank: blank}
}

// Len returns the number of cells.
func (t *Tape) Len() int { return len(t.cells) }

// At returns the symbol at i, or the blank symbol when i is out of range.
func (t *Tape) At(i int) rune {
	if i < 0 || i >= len(t.cells) {
		return t.blank
	}
	return t.cells[i]
}

// Set writes r at i. Writes outside the tape are ignored.
func (t *Tape) Set(i int, r rune) {
	if i < 0 || i >= len(t.cells) {
		return
	}
	t.cells[i] = r
}

// Count returns how many cells hold r.
func (t *Tape) Count(r rune) int {
	n := 0
	for _, c := range t.cells {
		if c == r {
			n++
		}
	}
	return n
}

// String returns the whole tape.
func (t *Tape) String() string { return string(t.cells) }

// Render returns a window of at most limit cells around head together with a
// marker line carrying '^' under the head. Elided ends are shown as "...".
// limit <= 0 disables windowing.
func (t *Tape) Render(head, limit int) (tape, marker string) {
	n := len(t.cells)
	marks := []rune(strings.Repeat(" ", n))
	if head >= 0 && head < n {
		marks[head] = '^'
	}
	if limit <= 0 || n <= limit {
		return string(t.cells), strings.TrimRight(string(marks), " ")
	}

	start := max(0, head-limit/2)
	end := min(n, start+limit)
	if end-start < limit && start > 0 {
		start = max(0, end-limit)
	}
	tape = string(t.cells[start:end])
	marker = string(marks[start:end])
	if start > 0 {
		tape = "..." + tape
		marker = "   " + marker
	}
	if end < n {
		tape += "..."
	}

	return tape, strings.TrimRight(marker, " ")
}
