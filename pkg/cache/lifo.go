package cache

import "github.com/dmitrymomot/cachemapset/pkg/validator"

// LIFO is a bounded map that, when full, evicts the most recently inserted
// entry to make room for the new one. The incoming key then becomes the
// newest entry and the next victim.
// Updating an existing key keeps its position; reads never change order.
// LIFO is not safe for concurrent use.
type LIFO[K comparable, V any] struct {
	capacity int
	entries  orderedEntries[K, V]
}

// NewLIFO creates a LIFO container and inserts entries in order.
func NewLIFO[K comparable, V any, N validator.Numeric](capacity N, entries ...Entry[K, V]) (*LIFO[K, V], error) {
	c, err := Capacity(capacity)
	if err != nil {
		return nil, err
	}

	m := &LIFO[K, V]{capacity: c, entries: newOrderedEntries[K, V](c)}
	populate[K, V](m, entries)
	return m, nil
}

func (m *LIFO[K, V]) Has(key K) bool {
	_, ok := m.entries.lookup(key)
	return ok
}

func (m *LIFO[K, V]) Get(key K) (V, bool) {
	if n, ok := m.entries.lookup(key); ok {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (m *LIFO[K, V]) Set(key K, value V) {
	if m.capacity == 0 {
		return
	}
	if n, ok := m.entries.lookup(key); ok {
		n.value = value
		return
	}
	// The victim is chosen before the new key is appended.
	if m.entries.len() >= m.capacity {
		m.entries.drop(m.entries.newest())
	}
	m.entries.push(key, value)
}

func (m *LIFO[K, V]) Delete(key K) bool { return m.entries.dropKey(key) }
func (m *LIFO[K, V]) Clear()            { m.entries.reset() }
func (m *LIFO[K, V]) Len() int          { return m.entries.len() }
func (m *LIFO[K, V]) Cap() int          { return m.capacity }
