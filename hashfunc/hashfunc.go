package hashfunc

import (
	"fmt"
	"github.com/gostonefire/memhashmap/internal/hash"
)

// HashAlgorithm - Interface that permits an implementation using the HashMap to supply a custom hash
// function suited for its particular distribution of keys.
type HashAlgorithm interface {
	// HashFunc - Given key it generates a hash value. The map reduces it to a bucket by
	// hash value mod capacity, so the value itself may be of any magnitude.
	HashFunc(key string) uint64
}

// Func - Adapter to allow the use of an ordinary function as a HashAlgorithm
type Func func(key string) uint64

// HashFunc - Calls f(key)
func (f Func) HashFunc(key string) uint64 {
	return f(key)
}

// Algorithm - Enumerates the built in hash algorithms
type Algorithm int

const (
	// Sum - Sum of character code points
	Sum Algorithm = iota + 1
	// WeightedSum - Sum of character code points multiplied by their 1-based position
	WeightedSum
	// CRC32 - IEEE crc32 checksum of the key bytes
	CRC32
	// XXHash - 64-bit xxHash of the key bytes
	XXHash
)

// String - Returns the name of the algorithm as used in command line flags
func (A Algorithm) String() string {
	switch A {
	case Sum:
		return "sum"
	case WeightedSum:
		return "weighted"
	case CRC32:
		return "crc32"
	case XXHash:
		return "xxhash"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(A))
	}
}

// New - Returns a built in hash algorithm
//   - algorithm is one of Sum, WeightedSum, CRC32 or XXHash
//
// It returns:
//   - hashAlgorithm is the selected algorithm
//   - err is a standard error if the algorithm is unknown
func New(algorithm Algorithm) (hashAlgorithm HashAlgorithm, err error) {
	switch algorithm {
	case Sum:
		hashAlgorithm = hash.NewSumHashAlgorithm()
	case WeightedSum:
		hashAlgorithm = hash.NewWeightedSumHashAlgorithm()
	case CRC32:
		hashAlgorithm = hash.NewCRC32HashAlgorithm()
	case XXHash:
		hashAlgorithm = hash.NewXXHashAlgorithm()
	default:
		err = fmt.Errorf("unknown hash algorithm %d", int(algorithm))
	}

	return
}

// Parse - Returns the built in algorithm with the given name (sum, weighted, crc32 or xxhash)
func Parse(name string) (algorithm Algorithm, err error) {
	for _, a := range []Algorithm{Sum, WeightedSum, CRC32, XXHash} {
		if a.String() == name {
			algorithm = a
			return
		}
	}

	err = fmt.Errorf("unknown hash algorithm name %q", name)
	return
}
