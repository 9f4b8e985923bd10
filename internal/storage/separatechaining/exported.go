package separatechaining

import (
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// DefaultCapacity - Capacity used when a map is only needed as a scratch table
const DefaultCapacity int = 11

// SCMap - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket is a singly linked chain of records and colliding records are appended to the chain.
// The table never grows by itself, chains simply get longer until ResizeTable is called.
type SCMap struct {
	buckets           *storage.Buckets[*storage.Chain]
	capacity          int
	size              int
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewSCMap - Returns a pointer to a new instance of the Separate Chaining implementation.
//   - crtConf is a model.CRTConf struct providing requested capacity and hash algorithm
//
// It returns:
//   - scMap which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCMap(crtConf model.CRTConf) (scMap *SCMap, err error) {
	if crtConf.Capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewSumHashAlgorithm()
		internalAlg = true
	}

	capacity := utils.NextPrime(crtConf.Capacity)

	scMap = &SCMap{
		buckets:           storage.NewBuckets[*storage.Chain](capacity, storage.NewChain),
		capacity:          capacity,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCMap
func (S *SCMap) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		Capacity:                     S.capacity,
		Size:                         S.size,
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// GetSize - Returns number of records
func (S *SCMap) GetSize() int {
	return S.size
}

// GetCapacity - Returns number of buckets
func (S *SCMap) GetCapacity() int {
	return S.capacity
}

// GetBucket - Returns the records of one bucket in chain order
//   - bucketNo is the identifier of a bucket, 0 -> capacity - 1
func (S *SCMap) GetBucket(bucketNo int) (records []model.Record) {
	chain := S.buckets.Get(bucketNo).Records()
	records = make([]model.Record, len(chain))
	for i, r := range chain {
		records[i] = *r
	}

	return
}

// Get - Gets the value that corresponds to the given key, only the key's own bucket is searched.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - err is of type crt.NoRecordFound if the key is not in the map
func (S *SCMap) Get(key string) (value any, err error) {
	r := S.chainOf(key).Contains(key)
	if r == nil {
		err = crt.NoRecordFound{}
		return
	}

	value = r.Value

	return
}

// ContainsKey - Returns true if the key is in the map
func (S *SCMap) ContainsKey(key string) bool {
	return S.chainOf(key).Contains(key) != nil
}

// Set - Updates an existing record with new data or appends it to the bucket's chain if no existing is found with same key.
//   - key is the identifier of the record
//   - value is any value to associate with the key
//
// It returns:
//   - err is always nil, it is there to satisfy the same contract as open addressing
func (S *SCMap) Set(key string, value any) (err error) {
	chain := S.chainOf(key)
	if r := chain.Contains(key); r != nil {
		r.Value = value
		return
	}

	chain.Insert(key, value)
	S.size++

	return
}

// Remove - Unlinks the record with the given key from its chain.
// It returns true if a record was removed, false if there was no such key.
func (S *SCMap) Remove(key string) bool {
	if !S.chainOf(key).Remove(key) {
		return false
	}
	S.size--

	return true
}

// Clear - Replaces every chain with an empty one, capacity is kept
func (S *SCMap) Clear() {
	for i := 0; i < S.capacity; i++ {
		S.buckets.Set(i, storage.NewChain())
	}
	S.size = 0
}

// EmptyBuckets - Returns number of buckets with an empty chain
func (S *SCMap) EmptyBuckets() (n int) {
	for i := 0; i < S.capacity; i++ {
		if S.buckets.Get(i).Length() == 0 {
			n++
		}
	}

	return
}

// TableLoad - Returns size / capacity, it may well go above 1
func (S *SCMap) TableLoad() float64 {
	return float64(S.size) / float64(S.capacity)
}

// ResizeTable - Rebuilds the table with a new capacity, rehashing all records in bucket then chain order.
// Any capacity from 1 and up is accepted regardless of size, a small capacity just gives long chains.
//   - newCapacity is the requested capacity, it is rounded up to the next prime if not already a prime
//
// It returns:
//   - err is of type crt.InvalidCapacity if newCapacity is below 1, the table is then left unchanged
func (S *SCMap) ResizeTable(newCapacity int) (err error) {
	if newCapacity < 1 {
		err = crt.InvalidCapacity{}
		return
	}
	if !utils.IsPrime(newCapacity) {
		newCapacity = utils.NextPrime(newCapacity)
	}

	oldBuckets, oldCapacity := S.buckets, S.capacity

	S.buckets = storage.NewBuckets[*storage.Chain](newCapacity, storage.NewChain)
	S.capacity = newCapacity
	S.size = 0

	for i := 0; i < oldCapacity; i++ {
		for _, r := range oldBuckets.Get(i).Records() {
			_ = S.Set(r.Key, r.Value)
		}
	}

	return
}

// GetKeysAndValues - Returns all records in bucket order, then chain insertion order
func (S *SCMap) GetKeysAndValues() (records []model.Record) {
	records = make([]model.Record, 0, S.size)
	for i := 0; i < S.capacity; i++ {
		records = append(records, S.GetBucket(i)...)
	}

	return
}

// GetValues - Returns values of all records in bucket order, then chain insertion order
func (S *SCMap) GetValues() (values []any) {
	values = make([]any, 0, S.size)
	for i := 0; i < S.capacity; i++ {
		for _, r := range S.buckets.Get(i).Records() {
			values = append(values, r.Value)
		}
	}

	return
}
