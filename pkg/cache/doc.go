// Package cache provides generic, capacity-bounded maps and sets with four
// cache replacement policies: FIFO, LIFO, LRU and LFU.
//
// Every container behaves like an ordinary map until it holds Cap() entries.
// From then on, inserting a new key first evicts exactly one existing entry
// chosen by the policy. Updating a key that is already present never evicts.
//
// # Key Features
//
//   - Generic over any comparable key type and any value type
//   - One contract, Map, implemented by FIFO, LIFO, LRU and LFU
//   - A single generic Set adapter over any Map
//   - O(1) Has, Get, Set and Delete for every policy
//   - Capacity accepted as any numeric type, truncated toward zero
//
// # Usage
//
//	lru, err := cache.NewLRU[string, int](2)
//	if err != nil {
//		// negative or NaN capacity
//	}
//
//	lru.Set("a", 1)
//	lru.Set("b", 2)
//	lru.Get("a")    // "a" is now the most recently used
//	lru.Set("c", 3) // evicts "b"
//
// Containers can be pre-populated; entries are inserted in order with normal
// eviction:
//
//	fifo := cache.Must(cache.NewFIFO(2,
//		cache.Entry[string, int]{Key: "a", Value: 1},
//		cache.Entry[string, int]{Key: "b", Value: 2},
//		cache.Entry[string, int]{Key: "c", Value: 3},
//	)) // holds b and c
//
// Sets wrap a map whose values are struct{}:
//
//	seen, _ := cache.NewLFUSet[string](1000)
//	seen.Add("x")
//
// # Policies
//
//   - FIFO evicts the entry inserted longest ago. Updates and reads do not
//     change order.
//   - LIFO evicts the newest entry already stored, then inserts the new key.
//     Updates and reads do not change order.
//   - LRU evicts the least recently accessed entry. Get, Has (when found) and
//     Set are accesses.
//   - LFU evicts an entry with the smallest access count. Get (when found) and
//     Set on an existing key increment the count; Has does not. Ties go to
//     the entry that reached the smallest count first. Every new key starts
//     at count 1 and resets the minimum to 1.
//
// # Capacity
//
// Capacity validates and truncates the constructor argument. Negative values,
// including negative fractions, and NaN yield an error matching
// ErrInvalidCapacity. A capacity of 0 builds a container that never stores
// anything. +Inf yields Unbounded.
//
// # Thread Safety
//
// Containers hold no locks and are not safe for concurrent use. Callers that
// share a container between goroutines must synchronise access themselves.
package cache
