package cache

// Map is the contract shared by every eviction policy container.
type Map[K comparable, V any] interface {
	// Has reports whether key is present.
	Has(key K) bool
	// Get returns the value stored for key, or the zero value and false.
	Get(key K) (V, bool)
	// Set inserts or updates key. When an absent key is inserted into a full
	// container, exactly one entry chosen by the policy is evicted first.
	// Set on a zero-capacity container does nothing.
	Set(key K, value V)
	// Delete removes key and reports whether it was present.
	Delete(key K) bool
	// Clear removes all entries and resets policy state.
	Clear()
	// Len returns the number of live entries.
	Len() int
	// Cap returns the maximum number of entries.
	Cap() int
}

// Entry is a key-value pair used to pre-populate a container.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Must panics if err is non-nil and returns v otherwise.
//
//	lru := cache.Must(cache.NewLRU[string, int](128))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func populate[K comparable, V any](m Map[K, V], entries []Entry[K, V]) {
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
}

var (
	_ Map[string, int] = (*FIFO[string, int])(nil)
	_ Map[string, int] = (*LIFO[string, int])(nil)
	_ Map[string, int] = (*LRU[string, int])(nil)
	_ Map[string, int] = (*LFU[string, int])(nil)
)
