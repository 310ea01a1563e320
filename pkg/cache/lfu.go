package cache

import "github.com/dmitrymomot/cachemapset/pkg/validator"

// initialCount is the access count of a freshly inserted entry.
const initialCount = 1

type lfuEntry[K comparable, V any] struct {
	key   K
	value V
	count int
}

// LFU is a bounded map that evicts an entry with the lowest access count.
//
// Every entry starts at count 1. A successful Get or a Set on an existing key
// increments it; Has does not. Among entries sharing the lowest count the one
// that reached that count first is evicted. Inserting a new key always resets
// the minimum count to 1, so fresh entries are the first eviction candidates.
//
// Entries live in an arena addressed by stable integer ids; the frequency
// index stores ids, so keys are hashed only by the key index.
// LFU is not safe for concurrent use.
type LFU[K comparable, V any] struct {
	capacity int
	entries  []lfuEntry[K, V]
	free     []int
	index    map[K]int
	freq     frequencyIndex
	minFreq  int
}

// NewLFU creates an LFU container and inserts entries in order.
func NewLFU[K comparable, V any, N validator.Numeric](capacity N, entries ...Entry[K, V]) (*LFU[K, V], error) {
	c, err := Capacity(capacity)
	if err != nil {
		return nil, err
	}

	m := &LFU[K, V]{
		capacity: c,
		entries:  make([]lfuEntry[K, V], 0, preallocHint(c)),
		index:    make(map[K]int, preallocHint(c)),
		freq:     newFrequencyIndex(),
		minFreq:  initialCount,
	}
	populate[K, V](m, entries)
	return m, nil
}

// Has reports whether key is present without counting as an access.
func (m *LFU[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Get returns the value for key and increments its access count.
func (m *LFU[K, V]) Get(key K) (V, bool) {
	id, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	m.touch(id)
	return m.entries[id].value, true
}

// Set adds or updates key. Updating counts as an access.
func (m *LFU[K, V]) Set(key K, value V) {
	if m.capacity == 0 {
		return
	}
	if id, ok := m.index[key]; ok {
		m.entries[id].value = value
		m.touch(id)
		return
	}
	if len(m.index) >= m.capacity {
		m.evict()
	}

	id := m.alloc(lfuEntry[K, V]{key: key, value: value, count: initialCount})
	m.index[key] = id
	m.freq.insert(initialCount, id)
	m.minFreq = initialCount
}

// Delete removes key and its frequency bucket membership.
func (m *LFU[K, V]) Delete(key K) bool {
	id, ok := m.index[key]
	if !ok {
		return false
	}
	m.freq.remove(m.entries[id].count, id)
	m.release(id)
	return true
}

func (m *LFU[K, V]) Clear() {
	clear(m.index)
	clear(m.entries)
	m.entries = m.entries[:0]
	m.free = m.free[:0]
	m.freq.reset()
	m.minFreq = initialCount
}

func (m *LFU[K, V]) Len() int { return len(m.index) }
func (m *LFU[K, V]) Cap() int { return m.capacity }

// touch records an access to id.
func (m *LFU[K, V]) touch(id int) {
	e := &m.entries[id]
	old := e.count
	e.count++

	if m.freq.move(id, old, e.count) && old == m.minFreq {
		m.minFreq++
	}
}

// evict removes the oldest member of the lowest populated frequency bucket.
func (m *LFU[K, V]) evict() {
	// Delete can empty the minimum bucket without raising minFreq.
	if !m.freq.has(m.minFreq) {
		low, ok := m.freq.lowest()
		if !ok {
			return
		}
		m.minFreq = low
	}

	id, _ := m.freq.oldest(m.minFreq)
	m.freq.remove(m.minFreq, id)
	m.release(id)
}

func (m *LFU[K, V]) alloc(e lfuEntry[K, V]) int {
	if n := len(m.free); n > 0 {
		id := m.free[n-1]
		m.free = m.free[:n-1]
		m.entries[id] = e
		return id
	}
	m.entries = append(m.entries, e)
	return len(m.entries) - 1
}

func (m *LFU[K, V]) release(id int) {
	delete(m.index, m.entries[id].key)
	m.entries[id] = lfuEntry[K, V]{}
	m.free = append(m.free, id)
}
