package dfa

import (
	"context"
	"fmt"
)

// queueItem pairs a product state with its BFS depth.
type queueItem struct {
	pair  Pair
	depth int
}

// link records how a product state was first reached.
type link struct {
	prev   Pair
	symbol string
}

// walker encapsulates mutable product-search state.
type walker struct {
	a, b    *DFA
	opts    Options
	ctx     context.Context
	symbols []string
	queue   []queueItem
	visited map[Pair]bool
	parent  map[Pair]link
}

// Equivalent reports whether a and b accept the same language, judged only
// over product states reachable from (a.Start, b.Start) where both automata
// move. A nil automaton is never equivalent to anything.
func Equivalent(a, b *DFA) bool {
	res, err := Compare(a, b)
	if err != nil {
		return false
	}
	return res.Equivalent
}

// Compare runs the product BFS and returns a detailed Result.
// Returns ErrNilDFA for nil input, the context error on cancellation,
// or a wrapped OnVisit error.
func Compare(a, b *DFA, opts ...Option) (*Result, error) {
	if a == nil || b == nil {
		return nil, ErrNilDFA
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := Pair{A: a.start, B: b.start}
	if a.IsAccepting(start.A) != b.IsAccepting(start.B) {
		return &Result{Witness: []string{}, Mismatch: &start}, nil
	}

	capHint := len(a.states) * len(b.states)
	w := &walker{
		a:       a,
		b:       b,
		opts:    o,
		ctx:     o.Ctx,
		symbols: unionAlphabet(a, b),
		queue:   make([]queueItem, 0, capHint),
		visited: make(map[Pair]bool, capHint),
		parent:  make(map[Pair]link, capHint),
	}
	w.enqueue(start, 0)

	return w.loop()
}

// enqueue marks p visited and appends it to the queue.
func (w *walker) enqueue(p Pair, depth int) {
	w.visited[p] = true
	w.opts.OnEnqueue(p, depth)
	w.queue = append(w.queue, queueItem{pair: p, depth: depth})
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// loop drains the queue, stopping at the first acceptance mismatch.
func (w *walker) loop() (*Result, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.opts.OnVisit(item.pair, item.depth); err != nil {
			return nil, fmt.Errorf("dfa: OnVisit error at %s: %w", item.pair, err)
		}

		for _, sym := range w.symbols {
			n1, ok1 := w.a.Next(item.pair.A, sym)
			n2, ok2 := w.b.Next(item.pair.B, sym)
			// a move missing on either side is not evidence of a difference
			if !ok1 || !ok2 {
				continue
			}
			next := Pair{A: n1, B: n2}
			if w.a.IsAccepting(n1) != w.b.IsAccepting(n2) {
				return &Result{
					Visited:  len(w.visited),
					Witness:  append(w.pathTo(item.pair), sym),
					Mismatch: &next,
				}, nil
			}
			if !w.visited[next] {
				w.parent[next] = link{prev: item.pair, symbol: sym}
				w.enqueue(next, item.depth+1)
			}
		}
	}

	return &Result{Equivalent: true, Visited: len(w.visited)}, nil
}

// pathTo rebuilds the input that leads from the start pair to p.
func (w *walker) pathTo(p Pair) []string {
	path := []string{}
	for cur := p; ; {
		l, ok := w.parent[cur]
		if !ok {
			break
		}
		path = append(path, l.symbol)
		cur = l.prev
	}
	// reverse to get start → p
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
