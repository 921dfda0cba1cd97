package prime

// IsPrime reports whether n is prime. n < 2 is never prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	// i <= n/i avoids overflowing i*i near math.MaxInt
	for i := 2; i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}

	return true
}
