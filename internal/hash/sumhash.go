package hash

// SumHashAlgorithm - Hashes a key by adding up the code points of all its characters.
// Anagrams collide, which makes it handy for tests that need predictable collisions.
type SumHashAlgorithm struct{}

// NewSumHashAlgorithm - Returns a pointer to a new SumHashAlgorithm instance
func NewSumHashAlgorithm() *SumHashAlgorithm {
	return &SumHashAlgorithm{}
}

// HashFunc - Given key it returns the sum of its character code points
func (S *SumHashAlgorithm) HashFunc(key string) uint64 {
	var h uint64
	for _, r := range key {
		h += uint64(r)
	}

	return h
}
