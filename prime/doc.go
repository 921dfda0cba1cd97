// Package prime provides the primality oracle used by the unary Turing machine.
//
// What
//
//   - IsPrime(n) reports whether n is a prime number.
//   - Values below 2 are never prime.
//
// How
//
//	Trial division by every i with 2 ≤ i ≤ ⌊√n⌋. The bound is checked as i*i ≤ n,
//	so no floating point is involved.
//
// Complexity
//
//   - Time:   O(√n)
//   - Memory: O(1)
//
// IsPrime is pure: the same input always yields the same answer, and it is
// safe to call from any number of goroutines.
package prime
