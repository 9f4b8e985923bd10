package utils

// IsPrime - Returns true if n is a prime number
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n < 2 || n%2 == 0 {
		return false
	}

	for factor := 3; factor*factor <= n; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the closest prime number at or above n, searching odd numbers only.
// An even n is first bumped to n+1, so NextPrime(2) is 3.
func NextPrime(n int) int {
	if n < 1 {
		n = 1
	}

	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n
}
