//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsPrime(t *testing.T) {
	t.Run("recognizes primes", func(t *testing.T) {
		for _, p := range []int{2, 3, 5, 7, 11, 13, 17, 23, 97, 7919} {
			assert.Truef(t, IsPrime(p), "%d is prime", p)
		}
	})

	t.Run("rejects non primes", func(t *testing.T) {
		for _, n := range []int{-7, -1, 0, 1, 4, 9, 15, 21, 25, 49, 7917} {
			assert.Falsef(t, IsPrime(n), "%d is not prime", n)
		}
	})
}

func TestNextPrime(t *testing.T) {
	t.Run("rounds up to next prime", func(t *testing.T) {
		// Prepare
		input := []int{-5, 0, 1, 2, 3, 4, 10, 11, 22, 24, 100, 1000}
		expected := []int{3, 3, 3, 3, 3, 5, 11, 11, 23, 29, 101, 1009}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			assert.Equal(t, expected[i], NextPrime(input[i]), "rounds up correct")
		}
	})
}
