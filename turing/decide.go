package turing

// IsUnary reports whether s consists solely of '1'. The empty string is unary.
func IsUnary(s string) bool {
	for _, r := range s {
		if r != Unary {
			return false
		}
	}
	return true
}

// Decide is the entry point: it rejects non-unary input without simulating,
// otherwise runs a fresh Machine over input and returns its verdict.
// Errors come only from invalid options.
func Decide(input string, opts ...Option) (Verdict, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Reject, err
	}
	if !IsUnary(input) {
		o.Logger.Debug("input is not unary", "input", input)
		return Reject, nil
	}

	m, err := New(input, opts...)
	if err != nil {
		return Reject, err
	}
	return m.Run(), nil
}
