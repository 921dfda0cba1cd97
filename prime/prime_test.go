package prime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/automata/prime"
)

// naive checks primality by testing every candidate divisor below n.
func naive(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// TestIsPrime_Known covers small values, including the non-prime edge cases below 2.
func TestIsPrime_Known(t *testing.T) {
	cases := map[int]bool{
		-7: false, -1: false, 0: false, 1: false,
		2: true, 3: true, 4: false, 5: true, 9: false,
		25: false, 49: false, 97: true, 7919: true, 7921: false,
	}
	for n, want := range cases {
		assert.Equalf(t, want, prime.IsPrime(n), "IsPrime(%d)", n)
	}
}

// TestIsPrime_MatchesNaive compares the √n bound against exhaustive division.
func TestIsPrime_MatchesNaive(t *testing.T) {
	for n := -5; n <= 2000; n++ {
		assert.Equalf(t, naive(n), prime.IsPrime(n), "n=%d", n)
	}
}

// TestIsPrime_Pure asserts repeated calls agree.
func TestIsPrime_Pure(t *testing.T) {
	for n := 0; n < 100; n++ {
		first := prime.IsPrime(n)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, prime.IsPrime(n))
		}
	}
}

// TestIsPrime_LargeSquare guards the loop bound on perfect squares of primes.
func TestIsPrime_LargeSquare(t *testing.T) {
	assert.False(t, prime.IsPrime(7919*7919))
	assert.True(t, prime.IsPrime(2147483647))
}
