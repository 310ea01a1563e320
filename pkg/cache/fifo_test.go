package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cachemapset/pkg/cache"
)

func TestFIFO_Basic(t *testing.T) {
	t.Parallel()

	t.Run("starts empty", func(t *testing.T) {
		m := cache.Must(cache.NewFIFO[string, int](1))
		assert.Equal(t, 0, m.Len())
		assert.Equal(t, 1, m.Cap())
	})

	t.Run("set and get", func(t *testing.T) {
		m := cache.Must(cache.NewFIFO[string, int](2))
		m.Set("a", 1)

		val, ok := m.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
		assert.True(t, m.Has("a"))

		val, ok = m.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("update keeps a single entry", func(t *testing.T) {
		m := cache.Must(cache.NewFIFO[string, int](2))
		m.Set("a", 1)
		m.Set("a", 2)

		val, _ := m.Get("a")
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, m.Len())
	})
}

func TestFIFO_Eviction(t *testing.T) {
	t.Parallel()

	t.Run("capacity of 1", func(t *testing.T) {
		m := cache.Must(cache.NewFIFO[int, int](1))
		m.Set(0, 0)
		m.Set(1, 1)

		assert.Equal(t, 1, m.Len())
		assert.False(t, m.Has(0))
		assert.True(t, m.Has(1))
	})

	t.Run("evicts oldest insert", func(t *testing.T) {
		m := cache.Must(cache.NewFIFO[string, int](2))
		m.Set("A", 1)
		m.Set("B", 2)
		m.Set("C", 3)

		assert.False(t, m.Has("A"))
		assert.True(t, m.Has("B"))
		assert.True(t, m.Has("C"))

		m.Set("D", 4)
		assert.False(t, m.Has("B"))
		assert.True(t, m.Has("C"))
		assert.True(t, m.Has("D"))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("update does not refresh position", func(t *testing.T) {
		m := cache.Must(cache.NewFIFO[string, int](2))
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("a", 10)
		m.Set("c", 3)

		assert.False(t, m.Has("a"), "a was inserted first and must be evicted")
		assert.True(t, m.Has("b"))
		assert.True(t, m.Has("c"))
	})

	t.Run("reads do not refresh position", func(t *testing.T) {
		m := cache.Must(cache.NewFIFO[string, int](2))
		m.Set("a", 1)
		m.Set("b", 2)
		m.Get("a")
		m.Has("a")
		m.Set("c", 3)

		assert.False(t, m.Has("a"))
		assert.True(t, m.Has("b"))
	})

	t.Run("deleted slot is reused without eviction", func(t *testing.T) {
		m := cache.Must(cache.NewFIFO[string, int](2))
		m.Set("a", 1)
		m.Set("b", 2)
		require.True(t, m.Delete("a"))
		m.Set("c", 3)

		assert.True(t, m.Has("b"))
		assert.True(t, m.Has("c"))
		assert.Equal(t, 2, m.Len())
	})
}

func TestFIFO_InitialEntries(t *testing.T) {
	t.Parallel()

	m := cache.Must(cache.NewFIFO(2,
		cache.Entry[string, int]{Key: "a", Value: 0},
		cache.Entry[string, int]{Key: "b", Value: 1},
		cache.Entry[string, int]{Key: "c", Value: 2},
	))

	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Has("a"))
	val, ok := m.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, val)
}
