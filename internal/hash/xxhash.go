package hash

import (
	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - Hash algorithm implemented using 64-bit xxHash, the best spreading of the built in algorithms
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// HashFunc - Given key it returns its 64-bit xxHash digest
func (X *XXHashAlgorithm) HashFunc(key string) uint64 {
	return xxhash.Sum64String(key)
}
