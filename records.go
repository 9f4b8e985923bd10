package memhashmap

import (
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/model"
)

// Records - Is used to iterate over all records one by one, bucket by bucket.
// The hash map must not be modified while iterating.
type Records struct {
	storage  StorageManagement
	bucketNo int
	pending  []model.Record
}

// Records - Returns a pointer to a new Records iterator positioned before the first record
func (H *HashMap) Records() *Records {
	return &Records{storage: H.storage}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	for len(R.pending) == 0 && R.bucketNo < R.storage.GetCapacity() {
		R.pending = R.storage.GetBucket(R.bucketNo)
		R.bucketNo++
	}

	return len(R.pending) > 0
}

// Next - Returns the next record.
// It returns:
//   - key is the key of the record
//   - value is the value of the record
//   - err is an error of type crt.NoRecordFound if there are no more records when calling this function
func (R *Records) Next() (key string, value any, err error) {
	if !R.HasNext() {
		err = crt.NoRecordFound{}
		return
	}

	key, value = R.pending[0].Key, R.pending[0].Value
	R.pending = R.pending[1:]

	return
}
