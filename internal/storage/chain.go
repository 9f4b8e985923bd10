package storage

import (
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/gostonefire/memhashmap/internal/model"
)

// Chain - Singly linked list of records used as one bucket in separate chaining.
// Records are kept in insertion order and are pointers so that values can be updated in place.
type Chain struct {
	list *singlylinkedlist.List
}

// NewChain - Returns a pointer to a new empty Chain
func NewChain() *Chain {
	return &Chain{list: singlylinkedlist.New()}
}

// Contains - Returns the record with matching key, or nil if the chain has no such key
func (C *Chain) Contains(key string) *model.Record {
	_, v := C.list.Find(func(_ int, value interface{}) bool {
		return value.(*model.Record).Key == key
	})
	if v == nil {
		return nil
	}

	return v.(*model.Record)
}

// Insert - Appends a new record to the end of the chain, it does not check for an existing key
func (C *Chain) Insert(key string, value any) {
	C.list.Append(&model.Record{State: model.RecordOccupied, Key: key, Value: value})
}

// Remove - Unlinks the record with matching key and returns true, or returns false if not found
func (C *Chain) Remove(key string) bool {
	index, _ := C.list.Find(func(_ int, value interface{}) bool {
		return value.(*model.Record).Key == key
	})
	if index < 0 {
		return false
	}

	C.list.Remove(index)

	return true
}

// Records - Returns all records in insertion order
func (C *Chain) Records() (records []*model.Record) {
	records = make([]*model.Record, 0, C.list.Size())
	it := C.list.Iterator()
	for it.Next() {
		records = append(records, it.Value().(*model.Record))
	}

	return
}

// Length - Returns the number of records in the chain
func (C *Chain) Length() int {
	return C.list.Size()
}
