package dfa

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of a DFA:
//
//	states:   [q0, q1]
//	alphabet: [a, b]
//	start:    q0
//	accept:   [q0]
//	transitions:
//	  - {from: q0, symbol: a, to: q1}
//	  - {from: q1, symbol: a, to: q0}
type Definition struct {
	States      []string        `yaml:"states"`
	Alphabet    []string        `yaml:"alphabet"`
	Start       string          `yaml:"start"`
	Accept      []string        `yaml:"accept"`
	Transitions []TransitionDef `yaml:"transitions"`
}

// TransitionDef is one row of Definition.Transitions.
type TransitionDef struct {
	From   string `yaml:"from"`
	Symbol string `yaml:"symbol"`
	To     string `yaml:"to"`
}

// Build converts the definition into a DFA. A (from, symbol) pair listed
// twice with different targets is nondeterministic and fails with
// ErrInvalidTransition.
func (def Definition) Build() (*DFA, error) {
	tr := make(map[Key]string, len(def.Transitions))
	for _, t := range def.Transitions {
		k := Key{State: t.From, Symbol: t.Symbol}
		if prev, dup := tr[k]; dup && prev != t.To {
			return nil, fmt.Errorf("%w: (%s,%s) goes to both %q and %q",
				ErrInvalidTransition, t.From, t.Symbol, prev, t.To)
		}
		tr[k] = t.To
	}
	return New(def.States, def.Alphabet, tr, def.Start, def.Accept)
}

// Definition exports d in its YAML form with sorted, deterministic output.
func (d *DFA) Definition() Definition {
	def := Definition{
		States:   d.States(),
		Alphabet: d.Alphabet(),
		Start:    d.start,
		Accept:   d.AcceptStates(),
	}
	for _, s := range def.States {
		for _, sym := range def.Alphabet {
			if to, ok := d.Next(s, sym); ok {
				def.Transitions = append(def.Transitions, TransitionDef{From: s, Symbol: sym, To: to})
			}
		}
	}
	return def
}

// Load decodes a single YAML definition from r and builds the DFA.
// Unknown fields are rejected. Decoding failures wrap ErrDefinition;
// validation failures carry the errors of New.
func Load(r io.Reader) (*DFA, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDefinition)
		}
		return nil, fmt.Errorf("%w: %v", ErrDefinition, err)
	}
	return def.Build()
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*DFA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dfa: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Marshal encodes d as YAML.
func Marshal(d *DFA) ([]byte, error) {
	if d == nil {
		return nil, ErrNilDFA
	}
	return yaml.Marshal(d.Definition())
}
