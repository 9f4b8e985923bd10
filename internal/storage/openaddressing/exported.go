package openaddressing

import (
	"errors"
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// maxLoadFactor - Table load at which Set grows the table before inserting
const maxLoadFactor float64 = 0.5

// OAMap - Represents an implementation of the Quadratic Probing Collision Resolution Technique.
// It uses one array of buckets where each bucket holds at most one record. In case of a collision, it probes through
// the table with (base + j*j) mod capacity looking for an empty slot. Deleted records are kept as tombstones so that
// probe sequences passing them stay intact; they are dropped at the next resize.
type OAMap struct {
	buckets           *storage.Buckets[model.Record]
	capacity          int
	size              int
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewOAMap - Returns a pointer to a new instance of the Quadratic Probing implementation.
//   - crtConf is a model.CRTConf struct providing requested capacity and hash algorithm
//
// It returns:
//   - oaMap which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOAMap(crtConf model.CRTConf) (oaMap *OAMap, err error) {
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

	oaMap = &OAMap{
		buckets:           newBuckets(capacity),
		capacity:          capacity,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OAMap
func (Q *OAMap) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.QuadraticProbing,
		Capacity:                     Q.capacity,
		Size:                         Q.size,
		Tombstones:                   Q.countState(model.RecordDeleted),
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// GetSize - Returns number of live records
func (Q *OAMap) GetSize() int {
	return Q.size
}

// GetCapacity - Returns number of buckets
func (Q *OAMap) GetCapacity() int {
	return Q.capacity
}

// GetBucket - Returns the live record in a bucket, as a slice of zero or one records
//   - bucketNo is the identifier of a bucket, 0 -> capacity - 1
func (Q *OAMap) GetBucket(bucketNo int) (records []model.Record) {
	r := Q.buckets.Get(bucketNo)
	if r.State == model.RecordOccupied {
		records = []model.Record{r}
	}

	return
}

// Get - Gets the value that corresponds to the given key.
// The whole bucket array is scanned rather than the probe sequence of the key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - err is of type crt.NoRecordFound if no live record has the key
func (Q *OAMap) Get(key string) (value any, err error) {
	index := Q.find(key)
	if index < 0 {
		err = crt.NoRecordFound{}
		return
	}

	value = Q.buckets.Get(index).Value

	return
}

// ContainsKey - Returns true if a live record with the given key exists
func (Q *OAMap) ContainsKey(key string) bool {
	return Q.find(key) >= 0
}

// Set - Updates an existing record with new data or add it if no existing is found with same key.
// If the table load is at or above 0.5 the table is first doubled, whether the key is new or not.
//   - key is the identifier of the record
//   - value is any value to associate with the key
//
// It returns:
//   - err is of type crt.ProbingAlgorithm if no slot could be found even after purging tombstones
func (Q *OAMap) Set(key string, value any) (err error) {
	if Q.TableLoad() >= maxLoadFactor {
		err = Q.ResizeTable(Q.capacity * 2)
		if err != nil {
			return
		}
	}

	err = Q.insert(key, value)
	if errors.Is(err, crt.ProbingAlgorithm{}) {
		// Tombstones do not count toward load, so they can fill up every probe slot of a key
		err = Q.rebuild(Q.capacity)
		if err != nil {
			return
		}
		err = Q.insert(key, value)
	}

	return
}

// Remove - Marks the live record with the given key as a tombstone.
// It returns true if a record was removed, false if there was no such key.
func (Q *OAMap) Remove(key string) bool {
	index := Q.find(key)
	if index < 0 {
		return false
	}

	r := Q.buckets.Get(index)
	r.State = model.RecordDeleted
	Q.buckets.Set(index, r)
	Q.size--

	return true
}

// Clear - Empties every bucket, capacity is kept
func (Q *OAMap) Clear() {
	for i := 0; i < Q.capacity; i++ {
		Q.buckets.Set(i, model.Record{})
	}
	Q.size = 0
}

// EmptyBuckets - Returns number of buckets that have never been used since last resize or clear.
// Tombstones are not counted as empty.
func (Q *OAMap) EmptyBuckets() int {
	return Q.countState(model.RecordEmpty)
}

// TableLoad - Returns size / capacity
func (Q *OAMap) TableLoad() float64 {
	return float64(Q.size) / float64(Q.capacity)
}

// ResizeTable - Rebuilds the table with a new capacity, rehashing all live records and dropping tombstones.
//   - newCapacity is the requested capacity, it is rounded up to the next prime if not already a prime
//
// It returns:
//   - err is of type crt.InvalidCapacity if newCapacity is below the current size, or crt.ProbingAlgorithm if
//     the live records could not all be placed. In both cases the table is left unchanged.
func (Q *OAMap) ResizeTable(newCapacity int) (err error) {
	if newCapacity < Q.size {
		err = crt.InvalidCapacity{}
		return
	}
	if !utils.IsPrime(newCapacity) {
		newCapacity = utils.NextPrime(newCapacity)
	}

	err = Q.rebuild(newCapacity)

	return
}

// GetKeysAndValues - Returns all live records in physical bucket order
func (Q *OAMap) GetKeysAndValues() (records []model.Record) {
	records = make([]model.Record, 0, Q.size)
	for i := 0; i < Q.capacity; i++ {
		records = append(records, Q.GetBucket(i)...)
	}

	return
}

// GetValues - Returns values of all live records in physical bucket order
func (Q *OAMap) GetValues() (values []any) {
	values = make([]any, 0, Q.size)
	for _, r := range Q.GetKeysAndValues() {
		values = append(values, r.Value)
	}

	return
}
