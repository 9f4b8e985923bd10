package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage/openaddressing"
	"github.com/gostonefire/memhashmap/internal/storage/separatechaining"
)

// StorageManagement - Interface for any collision resolution technique implementation
type StorageManagement interface {
	Get(key string) (value any, err error)
	ContainsKey(key string) bool
	Set(key string, value any) (err error)
	Remove(key string) bool
	Clear()
	ResizeTable(newCapacity int) (err error)
	EmptyBuckets() int
	TableLoad() float64
	GetSize() int
	GetCapacity() int
	GetBucket(bucketNo int) (records []model.Record)
	GetKeysAndValues() (records []model.Record)
	GetValues() (values []any)
	GetStorageParameters() (params model.StorageParameters)
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - CollisionResolutionTechnique is one of the crt constants
//   - Capacity is the actual (prime) number of buckets
//   - InternalAlgorithm is true if the internal default hash algorithm is used
type HashMapInfo struct {
	CollisionResolutionTechnique int
	Capacity                     int
	InternalAlgorithm            bool
}

// KeyValue - One key/value pair as returned by GetKeysAndValues
type KeyValue struct {
	Key   string
	Value any
}

// HashMap - The main implementation struct
type HashMap struct {
	storage       StorageManagement
	crtType       int
	hashAlgorithm hashfunc.HashAlgorithm
}

// NewHashMap - Returns a new hash map using the given collision resolution technique.
//   - crtType is one of crt.QuadraticProbing or crt.SeparateChaining
//   - capacity is the requested number of buckets, it will be rounded up to the next prime
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil gives the internal default.
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashMap(crtType int, capacity int, hashAlgorithm hashfunc.HashAlgorithm) (
	hashMap *HashMap,
	hashMapInfo HashMapInfo,
	err error,
) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	crtConf := model.CRTConf{
		Capacity:      capacity,
		HashAlgorithm: hashAlgorithm,
	}

	var sm StorageManagement
	switch crtType {
	case crt.QuadraticProbing:
		sm, err = openaddressing.NewOAMap(crtConf)
	case crt.SeparateChaining:
		sm, err = separatechaining.NewSCMap(crtConf)
	default:
		err = fmt.Errorf("unknown collision resolution technique %d", crtType)
	}
	if err != nil {
		return
	}

	hashMap = &HashMap{
		storage:       sm,
		crtType:       crtType,
		hashAlgorithm: hashAlgorithm,
	}

	hashMapInfo = hashMap.Info()

	return
}

// Info - Returns a HashMapInfo struct reflecting the current state of the hash map
func (H *HashMap) Info() HashMapInfo {
	sp := H.storage.GetStorageParameters()

	return HashMapInfo{
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		Capacity:                     sp.Capacity,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}
}

// ReorgConf - Is a struct used in the call to Reorg holding configuration for the new hash map.
// Go zero values mean "keep what the original hash map has".
//   - CollisionResolutionTechnique is the technique to use
//   - Capacity is the requested number of buckets
//   - HashAlgorithm is the hash algorithm to use
type ReorgConf struct {
	CollisionResolutionTechnique int
	Capacity                     int
	HashAlgorithm                hashfunc.HashAlgorithm
}

// Reorg - Is used when a hash map needs to reflect new conditions as compared to when it was first created,
// for instance a different collision resolution technique or a hash algorithm better suited for the keys.
// The original hash map is left as is and a new one holding all its records is returned.
//
// The reorganization will happen only if there are detectable changes coming from the ReorgConf struct. An empty
// (fields are Go zero values) ReorgConf struct returns the original hash map with no processing. To force a
// reorganization anyway, use the force flag. This can be handy for a quadratic probing map that has gathered
// many tombstones.
//   - from is the hash map to reorganize
//   - reorgConf is an instance of the ReorgConf struct.
//   - force set to true forces a reorganization regardless of what is changed from the ReorgConf struct
func Reorg(from *HashMap, reorgConf ReorgConf, force bool) (to *HashMap, toHashMapInfo HashMapInfo, err error) {
	hasChanges := force
	crtType, capacity, hashAlgorithm := from.crtType, from.GetCapacity(), from.hashAlgorithm

	if reorgConf.CollisionResolutionTechnique != 0 && reorgConf.CollisionResolutionTechnique != crtType {
		crtType = reorgConf.CollisionResolutionTechnique
		hasChanges = true
	}
	if reorgConf.Capacity > 0 && reorgConf.Capacity != capacity {
		capacity = reorgConf.Capacity
		hasChanges = true
	}
	if reorgConf.HashAlgorithm != nil {
		hashAlgorithm = reorgConf.HashAlgorithm
		hasChanges = true
	}
	if !hasChanges {
		to, toHashMapInfo = from, from.Info()
		return
	}

	to, toHashMapInfo, err = NewHashMap(crtType, capacity, hashAlgorithm)
	if err != nil {
		err = fmt.Errorf("error while creating reorganized hash map: %w", err)
		return
	}

	err = reorgRecords(from, to)
	if err != nil {
		return
	}

	toHashMapInfo = to.Info()

	return
}

// reorgRecords - Reads bucket by bucket, record by record, and writes to the new hash map
func reorgRecords(from *HashMap, to *HashMap) (err error) {
	var key string
	var value any
	iter := from.Records()
	for iter.HasNext() {
		key, value, err = iter.Next()
		if err != nil {
			return
		}
		err = to.Put(key, value)
		if err != nil {
			err = fmt.Errorf("error while adding record to reorganized hash map: %w", err)
			return
		}
	}

	return
}
