//go:build unit

package hashfunc

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("creates all built in algorithms", func(t *testing.T) {
		tests := []struct {
			algorithm Algorithm
			key       string
			expected  uint64
		}{
			{algorithm: Sum, key: "ab", expected: 97 + 98},
			{algorithm: WeightedSum, key: "ab", expected: 97 + 2*98},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("creates %s", test.algorithm), func(t *testing.T) {
				// Execute
				h, err := New(test.algorithm)

				// Check
				assert.NoError(t, err, "creates hash algorithm")
				assert.Equal(t, test.expected, h.HashFunc(test.key), "correct hash value")
			})
		}

		for _, a := range []Algorithm{CRC32, XXHash} {
			h, err := New(a)
			assert.NoErrorf(t, err, "creates %s", a)
			assert.NotNilf(t, h, "%s is assigned", a)
		}
	})

	t.Run("fails on unknown algorithm", func(t *testing.T) {
		// Execute
		h, err := New(Algorithm(0))

		// Check
		assert.Error(t, err, "unknown algorithm")
		assert.Nil(t, h, "no algorithm returned")
	})
}

func TestParse(t *testing.T) {
	t.Run("parses names", func(t *testing.T) {
		for _, a := range []Algorithm{Sum, WeightedSum, CRC32, XXHash} {
			p, err := Parse(a.String())
			assert.NoErrorf(t, err, "parses %s", a)
			assert.Equal(t, a, p, "correct algorithm")
		}
	})

	t.Run("fails on unknown name", func(t *testing.T) {
		_, err := Parse("md5")
		assert.Error(t, err, "unknown name")
	})
}

func TestFunc(t *testing.T) {
	t.Run("adapts a function", func(t *testing.T) {
		// Prepare
		var h HashAlgorithm = Func(func(key string) uint64 { return uint64(len(key)) })

		// Check
		assert.Equal(t, uint64(3), h.HashFunc("abc"), "calls the function")
	})
}
