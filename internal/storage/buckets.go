package storage

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// Buckets - Index addressable bucket array of fixed length backed by a gods array list.
// The length is set at creation and never changes, a resize replaces the whole Buckets.
type Buckets[T any] struct {
	list *arraylist.List
}

// NewBuckets - Returns a pointer to a new Buckets instance with length slots
//   - length is the number of slots
//   - init returns the value every slot starts out with
func NewBuckets[T any](length int, init func() T) *Buckets[T] {
	b := &Buckets[T]{list: arraylist.New()}
	for i := 0; i < length; i++ {
		b.list.Add(init())
	}

	return b
}

// Get - Returns the value at index, which must be within 0 -> Length - 1
func (B *Buckets[T]) Get(index int) (value T) {
	v, ok := B.list.Get(index)
	if !ok {
		panic("bucket index out of range")
	}

	return v.(T)
}

// Set - Replaces the value at index, which must be within 0 -> Length - 1
func (B *Buckets[T]) Set(index int, value T) {
	if index < 0 || index >= B.list.Size() {
		panic("bucket index out of range")
	}

	B.list.Set(index, value)
}

// Length - Returns the number of slots
func (B *Buckets[T]) Length() int {
	return B.list.Size()
}
