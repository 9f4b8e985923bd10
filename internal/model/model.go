package model

import "github.com/gostonefire/memhashmap/hashfunc"

// RecordEmpty - State indicating a record that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a record that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a record that has been in use but was deleted (a tombstone)
const RecordDeleted uint8 = 2

// Record - Represents one key/value entry in a bucket
type Record struct {
	State uint8
	Key   string
	Value any
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	Capacity                     int
	Size                         int
	Tombstones                   int
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXMap and contains configuration that affects
// the bucket array.
//   - Capacity is the requested number of buckets, it is rounded up to the next prime
//   - HashAlgorithm is the hash function to use, nil selects the internal default
type CRTConf struct {
	Capacity      int
	HashAlgorithm hashfunc.HashAlgorithm
}
