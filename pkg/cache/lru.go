package cache

import "github.com/dmitrymomot/cachemapset/pkg/validator"

// LRU is a bounded map that evicts the least recently accessed entry.
//
// A successful Get, a Has that finds its key, and every Set count as an
// access and move the key to the most recent end. Read-only traffic through
// Has therefore protects keys from eviction exactly like Get does.
// LRU is not safe for concurrent use.
type LRU[K comparable, V any] struct {
	capacity int
	entries  orderedEntries[K, V]
}

// NewLRU creates an LRU container and inserts entries in order.
func NewLRU[K comparable, V any, N validator.Numeric](capacity N, entries ...Entry[K, V]) (*LRU[K, V], error) {
	c, err := Capacity(capacity)
	if err != nil {
		return nil, err
	}

	m := &LRU[K, V]{capacity: c, entries: newOrderedEntries[K, V](c)}
	populate[K, V](m, entries)
	return m, nil
}

// Has reports whether key is present and marks it as recently used.
func (m *LRU[K, V]) Has(key K) bool {
	n, ok := m.entries.lookup(key)
	if ok {
		m.entries.order.moveToBack(n)
	}
	return ok
}

// Get returns the value for key and marks it as recently used.
func (m *LRU[K, V]) Get(key K) (V, bool) {
	if n, ok := m.entries.lookup(key); ok {
		m.entries.order.moveToBack(n)
		return n.value, true
	}
	var zero V
	return zero, false
}

// Set adds or updates key and marks it as recently used.
// If the container is full, the least recently used entry is evicted.
func (m *LRU[K, V]) Set(key K, value V) {
	if m.capacity == 0 {
		return
	}
	if n, ok := m.entries.lookup(key); ok {
		n.value = value
		m.entries.order.moveToBack(n)
		return
	}
	if m.entries.len() >= m.capacity {
		m.entries.drop(m.entries.oldest())
	}
	m.entries.push(key, value)
}

func (m *LRU[K, V]) Delete(key K) bool { return m.entries.dropKey(key) }
func (m *LRU[K, V]) Clear()            { m.entries.reset() }
func (m *LRU[K, V]) Len() int          { return m.entries.len() }
func (m *LRU[K, V]) Cap() int          { return m.capacity }
