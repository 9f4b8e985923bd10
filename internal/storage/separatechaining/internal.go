package separatechaining

import (
	"github.com/gostonefire/memhashmap/internal/storage"
)

// chainOf - Returns the chain of the bucket that key hashes to
func (S *SCMap) chainOf(key string) *storage.Chain {
	return S.buckets.Get(int(S.hashAlgorithm.HashFunc(key) % uint64(S.capacity)))
}

// Increment - Uses the map as a frequency table: adds one to the count stored under key, or inserts key
// with count 1. Values of records touched by Increment must all be of type int.
func (S *SCMap) Increment(key string) {
	chain := S.chainOf(key)
	if r := chain.Contains(key); r != nil {
		r.Value = r.Value.(int) + 1
		return
	}

	chain.Insert(key, 1)
	S.size++
}

// ModeOfBucket - Folds the counts of one bucket into a running mode.
// A count above frequency restarts mode with that key, a count equal to frequency appends to it.
//   - bucketNo is the bucket to scan
//   - mode is the keys having the highest count seen so far
//   - frequency is the highest count seen so far
func (S *SCMap) ModeOfBucket(bucketNo int, mode []string, frequency int) ([]string, int) {
	for _, r := range S.buckets.Get(bucketNo).Records() {
		count := r.Value.(int)
		if count > frequency {
			frequency = count
			mode = []string{r.Key}
		} else if count == frequency {
			mode = append(mode, r.Key)
		}
	}

	return mode, frequency
}
