package memhashmap

import (
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage/separatechaining"
)

// FindMode - Returns the most frequent value(s) of values and how many times they occur.
// Values are counted in a separate chaining map of default capacity, which is then scanned bucket by bucket.
// All values sharing the highest count are returned, in bucket and chain order rather than input or sorted order.
//   - values is the sequence to analyse
//
// It returns:
//   - mode is the values having the highest count, empty if values is empty
//   - frequency is that highest count, 0 if values is empty
func FindMode(values []string) (mode []string, frequency int) {
	// DefaultCapacity is positive, so this can not fail
	scMap, _ := separatechaining.NewSCMap(model.CRTConf{Capacity: separatechaining.DefaultCapacity})

	for _, v := range values {
		scMap.Increment(v)
	}

	mode = []string{}
	for i := 0; i < scMap.GetCapacity(); i++ {
		mode, frequency = scMap.ModeOfBucket(i, mode, frequency)
	}

	return
}
