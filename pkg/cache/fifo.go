package cache

import "github.com/dmitrymomot/cachemapset/pkg/validator"

// FIFO is a bounded map that evicts the entry inserted longest ago.
// Updating an existing key keeps its position; reads never change order.
// FIFO is not safe for concurrent use.
type FIFO[K comparable, V any] struct {
	capacity int
	entries  orderedEntries[K, V]
}

// NewFIFO creates a FIFO container and inserts entries in order.
func NewFIFO[K comparable, V any, N validator.Numeric](capacity N, entries ...Entry[K, V]) (*FIFO[K, V], error) {
	c, err := Capacity(capacity)
	if err != nil {
		return nil, err
	}

	m := &FIFO[K, V]{capacity: c, entries: newOrderedEntries[K, V](c)}
	populate[K, V](m, entries)
	return m, nil
}

func (m *FIFO[K, V]) Has(key K) bool {
	_, ok := m.entries.lookup(key)
	return ok
}

func (m *FIFO[K, V]) Get(key K) (V, bool) {
	if n, ok := m.entries.lookup(key); ok {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (m *FIFO[K, V]) Set(key K, value V) {
	if m.capacity == 0 {
		return
	}
	if n, ok := m.entries.lookup(key); ok {
		n.value = value
		return
	}
	if m.entries.len() >= m.capacity {
		m.entries.drop(m.entries.oldest())
	}
	m.entries.push(key, value)
}

func (m *FIFO[K, V]) Delete(key K) bool { return m.entries.dropKey(key) }
func (m *FIFO[K, V]) Clear()            { m.entries.reset() }
func (m *FIFO[K, V]) Len() int          { return m.entries.len() }
func (m *FIFO[K, V]) Cap() int          { return m.capacity }
