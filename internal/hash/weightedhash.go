package hash

// WeightedSumHashAlgorithm - Hashes a key by adding up the code points of all its characters, each
// multiplied by its 1-based character position.
type WeightedSumHashAlgorithm struct{}

// NewWeightedSumHashAlgorithm - Returns a pointer to a new WeightedSumHashAlgorithm instance
func NewWeightedSumHashAlgorithm() *WeightedSumHashAlgorithm {
	return &WeightedSumHashAlgorithm{}
}

// HashFunc - Given key it returns the position weighted sum of its character code points
func (W *WeightedSumHashAlgorithm) HashFunc(key string) uint64 {
	var h, i uint64
	for _, r := range key {
		i++
		h += i * uint64(r)
	}

	return h
}
