package memhashmap

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is of type crt.NoRecordFound if the key is not in the map
func (H *HashMap) Get(key string) (value any, err error) {
	return H.storage.Get(key)
}

// ContainsKey - Returns true if the key is in the map
func (H *HashMap) ContainsKey(key string) bool {
	return H.storage.ContainsKey(key)
}

// Put - Updates an existing record with new data or add it if no existing is found with same key.
// A quadratic probing map grows before inserting if its load is at or above 0.5, a separate chaining map never
// grows by itself.
//   - key is the identifier of a record
//   - value is any value to associate with the key
//
// It returns:
//   - err is of type crt.ProbingAlgorithm if a quadratic probing map could not place the record
func (H *HashMap) Put(key string, value any) (err error) {
	return H.storage.Set(key, value)
}

// Remove - Removes the record with the given key, it is a no-op if the key is not in the map.
// It returns true if a record was removed.
func (H *HashMap) Remove(key string) bool {
	return H.storage.Remove(key)
}

// Pop - Returns the value corresponding to key and removes it from the hash map.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - err is of type crt.NoRecordFound if the key is not in the map
func (H *HashMap) Pop(key string) (value any, err error) {
	value, err = H.storage.Get(key)
	if err != nil {
		return
	}

	H.storage.Remove(key)

	return
}

// Clear - Removes all records, capacity is kept
func (H *HashMap) Clear() {
	H.storage.Clear()
}

// ResizeTable - Rebuilds the hash map with a new capacity, rounded up to the next prime.
// A quadratic probing map rejects a capacity below its size, a separate chaining map rejects a capacity below 1.
//   - newCapacity is the requested capacity
//
// It returns:
//   - err is of type crt.InvalidCapacity if the capacity was rejected, the hash map is then left unchanged
func (H *HashMap) ResizeTable(newCapacity int) (err error) {
	return H.storage.ResizeTable(newCapacity)
}

// EmptyBuckets - Returns number of empty buckets, tombstones do not count as empty
func (H *HashMap) EmptyBuckets() int {
	return H.storage.EmptyBuckets()
}

// TableLoad - Returns size / capacity
func (H *HashMap) TableLoad() float64 {
	return H.storage.TableLoad()
}

// GetSize - Returns number of records
func (H *HashMap) GetSize() int {
	return H.storage.GetSize()
}

// GetCapacity - Returns number of buckets
func (H *HashMap) GetCapacity() int {
	return H.storage.GetCapacity()
}

// GetKeysAndValues - Returns all key/value pairs in bucket order.
// For separate chaining records within a bucket come in insertion order.
func (H *HashMap) GetKeysAndValues() (keyValues []KeyValue) {
	records := H.storage.GetKeysAndValues()
	keyValues = make([]KeyValue, len(records))
	for i, r := range records {
		keyValues[i] = KeyValue{Key: r.Key, Value: r.Value}
	}

	return
}

// GetValues - Returns all values in the same order as GetKeysAndValues
func (H *HashMap) GetValues() (values []any) {
	return H.storage.GetValues()
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - EmptyBuckets is the number of buckets without records (and without tombstones)
//   - Tombstones is the number of deleted records still occupying a bucket, always 0 for separate chaining
//   - TableLoad is records / capacity
//   - MaxBucketRecords is the number of records in the most crowded bucket
//   - BucketDistribution is the number of records stored in each bucket
type HashMapStat struct {
	Records            int
	EmptyBuckets       int
	Tombstones         int
	TableLoad          float64
	MaxBucketRecords   int
	BucketDistribution []int
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length capacity with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap) Stat(includeDistribution bool) *HashMapStat {
	sp := H.storage.GetStorageParameters()
	hms := HashMapStat{
		Records:      sp.Size,
		EmptyBuckets: H.storage.EmptyBuckets(),
		Tombstones:   sp.Tombstones,
		TableLoad:    H.storage.TableLoad(),
	}

	if includeDistribution {
		hms.BucketDistribution = make([]int, sp.Capacity)
	}

	// Iterate over every available bucket
	for i := 0; i < sp.Capacity; i++ {
		n := len(H.storage.GetBucket(i))
		if n > hms.MaxBucketRecords {
			hms.MaxBucketRecords = n
		}
		if includeDistribution {
			hms.BucketDistribution[i] = n
		}
	}

	return &hms
}
