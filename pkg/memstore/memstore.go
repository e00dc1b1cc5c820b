// Package memstore provides generic in-memory collections used as the
// backing store for all mock services. Collections hand out snapshot
// copies, so callers can filter and sort without affecting stored state.
package memstore

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Collection is a mutex-guarded in-memory set of records keyed by ID.
// Insertion order is preserved and is the order List operations observe.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	index map[snowflake.ID]int
	idOf  func(T) snowflake.ID
}

// NewCollection builds an empty collection. idOf extracts the record ID.
func NewCollection[T any](idOf func(T) snowflake.ID) *Collection[T] {
	return &Collection[T]{
		index: make(map[snowflake.ID]int),
		idOf:  idOf,
	}
}

// Insert appends a record. An existing record with the same ID is replaced.
func (c *Collection[T]) Insert(record T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(record)
	if pos, ok := c.index[id]; ok {
		c.items[pos] = record
		return
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, record)
}

// Get returns the record with the given ID.
func (c *Collection[T]) Get(id snowflake.ID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if pos, ok := c.index[id]; ok {
		return c.items[pos], true
	}
	var zero T
	return zero, false
}

// Update replaces the record with the given ID in place. Returns false
// when no such record exists.
func (c *Collection[T]) Update(id snowflake.ID, record T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return false
	}
	c.items[pos] = record
	return true
}

// Delete removes the record with the given ID. Returns false when no
// such record exists. Relative order of the remaining records is kept.
func (c *Collection[T]) Delete(id snowflake.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.items); i++ {
		c.index[c.idOf(c.items[i])] = i
	}
	return true
}

// DeleteWhere removes every record matching the predicate and returns
// how many were removed.
func (c *Collection[T]) DeleteWhere(match func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := 0
	for _, item := range c.items {
		if match(item) {
			delete(c.index, c.idOf(item))
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	for i, item := range c.items {
		c.index[c.idOf(item)] = i
	}
	return removed
}

// All returns a snapshot copy of every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Replace swaps the entire contents of the collection. Used by seeding.
func (c *Collection[T]) Replace(records []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(records))
	copy(c.items, records)
	c.index = make(map[snowflake.ID]int, len(records))
	for i, item := range c.items {
		c.index[c.idOf(item)] = i
	}
}
