package openaddressing

import (
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage"
)

// newBuckets - Returns a bucket array where every record is empty
func newBuckets(capacity int) *storage.Buckets[model.Record] {
	return storage.NewBuckets[model.Record](capacity, func() model.Record { return model.Record{} })
}

// bucketNo - Returns the home bucket of a key
func (Q *OAMap) bucketNo(key string) int {
	return int(Q.hashAlgorithm.HashFunc(key) % uint64(Q.capacity))
}

// find - Linear scan for the live record with key, returns its index or -1
func (Q *OAMap) find(key string) int {
	for i := 0; i < Q.capacity; i++ {
		r := Q.buckets.Get(i)
		if r.State == model.RecordOccupied && r.Key == key {
			return i
		}
	}

	return -1
}

// countState - Returns number of buckets with a record in the given state
func (Q *OAMap) countState(state uint8) (n int) {
	for i := 0; i < Q.capacity; i++ {
		if Q.buckets.Get(i).State == state {
			n++
		}
	}

	return
}

// insert - Is the Quadratic Probing algorithm for setting a record. It never grows the table.
// A tombstone with the same key is reactivated and counts as a new live record, a tombstone with another
// key is probed past.
func (Q *OAMap) insert(key string, value any) (err error) {
	base := Q.bucketNo(key)

	// j*j mod capacity repeats with period capacity, so capacity steps cover every reachable bucket
	for j := 0; j < Q.capacity; j++ {
		probe := (base + j*j) % Q.capacity
		r := Q.buckets.Get(probe)

		switch r.State {
		case model.RecordEmpty:
			Q.buckets.Set(probe, model.Record{State: model.RecordOccupied, Key: key, Value: value})
			Q.size++
			return

		case model.RecordOccupied:
			if r.Key == key {
				r.Value = value
				Q.buckets.Set(probe, r)
				return
			}

		case model.RecordDeleted:
			if r.Key == key {
				r.State = model.RecordOccupied
				r.Value = value
				Q.buckets.Set(probe, r)
				Q.size++
				return
			}
		}
	}

	err = crt.ProbingAlgorithm{}
	return
}

// rebuild - Replaces the bucket array with an empty one of newCapacity and raw inserts all live records.
// On failure the previous bucket array is restored.
func (Q *OAMap) rebuild(newCapacity int) (err error) {
	oldBuckets, oldCapacity, oldSize := Q.buckets, Q.capacity, Q.size

	Q.buckets = newBuckets(newCapacity)
	Q.capacity = newCapacity
	Q.size = 0

	for i := 0; i < oldCapacity; i++ {
		r := oldBuckets.Get(i)
		if r.State != model.RecordOccupied {
			continue
		}
		err = Q.insert(r.Key, r.Value)
		if err != nil {
			Q.buckets, Q.capacity, Q.size = oldBuckets, oldCapacity, oldSize
			return
		}
	}

	return
}
