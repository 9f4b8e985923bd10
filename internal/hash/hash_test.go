//go:build unit

package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"hash/crc32"
	"testing"
)

func TestSumHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("sums character code points", func(t *testing.T) {
		// Prepare
		h := NewSumHashAlgorithm()

		// Execute
		hv := h.HashFunc("abc")

		// Check
		assert.Equal(t, uint64(294), hv, "correct hash value")
	})

	t.Run("anagrams collide", func(t *testing.T) {
		// Prepare
		h := NewSumHashAlgorithm()

		// Check
		assert.Equal(t, h.HashFunc("listen"), h.HashFunc("silent"), "anagrams give same hash value")
	})

	t.Run("empty key hashes to zero", func(t *testing.T) {
		assert.Equal(t, uint64(0), NewSumHashAlgorithm().HashFunc(""), "zero for empty key")
	})
}

func TestWeightedSumHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("weights code points by position", func(t *testing.T) {
		// Prepare
		h := NewWeightedSumHashAlgorithm()

		// Execute
		hv := h.HashFunc("abc")

		// Check
		assert.Equal(t, uint64(97+2*98+3*99), hv, "correct hash value")
	})

	t.Run("anagrams do not collide", func(t *testing.T) {
		// Prepare
		h := NewWeightedSumHashAlgorithm()

		// Check
		assert.NotEqual(t, h.HashFunc("ab"), h.HashFunc("ba"), "anagrams give different hash values")
	})

	t.Run("positions count characters not bytes", func(t *testing.T) {
		// Prepare
		h := NewWeightedSumHashAlgorithm()

		// Execute
		hv := h.HashFunc("éa")

		// Check
		assert.Equal(t, uint64(233+2*97), hv, "multi byte character counts as one position")
	})
}

func TestCRC32HashAlgorithm_HashFunc(t *testing.T) {
	t.Run("uses crc32 IEEE", func(t *testing.T) {
		// Prepare
		h := NewCRC32HashAlgorithm()

		// Execute
		hv := h.HashFunc("some key")

		// Check
		assert.Equal(t, uint64(crc32.ChecksumIEEE([]byte("some key"))), hv, "correct hash value")
	})
}

func TestXXHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("uses xxhash 64", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm()

		// Execute
		hv := h.HashFunc("some key")

		// Check
		assert.Equal(t, xxhash.Sum64String("some key"), hv, "correct hash value")
		assert.Equal(t, hv, h.HashFunc("some key"), "deterministic")
	})
}
