package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cachemapset/pkg/cache"
)

func TestLFU_Eviction(t *testing.T) {
	t.Parallel()

	t.Run("capacity of 1", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[int, int](1))
		m.Set(0, 0)

		assert.Equal(t, 1, m.Len())
		val, ok := m.Get(0)
		assert.True(t, ok)
		assert.Equal(t, 0, val)

		m.Set(1, 1)
		assert.Equal(t, 1, m.Len())
		assert.False(t, m.Has(0))
		val, ok = m.Get(1)
		assert.True(t, ok)
		assert.Equal(t, 1, val)
	})

	t.Run("evicts lowest count", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[string, int](2))
		m.Set("A", 1)
		m.Set("B", 2)
		m.Get("A")
		m.Set("C", 3)

		assert.True(t, m.Has("A"))
		assert.False(t, m.Has("B"))
		assert.True(t, m.Has("C"))
	})

	t.Run("ties go to the oldest member", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[int, int](2))
		m.Set(0, 0)
		m.Set(1, 0)

		m.Set(2, 0)
		assert.True(t, m.Has(1))
		assert.True(t, m.Has(2))

		m.Set(3, 0)
		assert.True(t, m.Has(2))
		assert.True(t, m.Has(3))
	})

	t.Run("tie order follows entry into the bucket", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[string, int](3))
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("c", 3)
		m.Get("b")
		m.Get("a")

		m.Set("d", 4)
		assert.False(t, m.Has("c"))

		m.Get("d")
		m.Set("e", 5)
		assert.False(t, m.Has("b"), "b reached count 2 before a and d")
		assert.True(t, m.Has("a"))
		assert.True(t, m.Has("d"))
		assert.True(t, m.Has("e"))
	})

	t.Run("has is not an access", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[string, int](2))
		m.Set("a", 1)
		m.Set("b", 2)
		m.Has("a")
		m.Has("a")
		m.Set("c", 3)

		assert.False(t, m.Has("a"))
		assert.True(t, m.Has("b"))
	})

	t.Run("update counts as access", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[int, int](2))
		m.Set(1, 1)
		m.Set(2, 2)
		m.Set(1, 3)
		m.Set(10, 10)

		_, ok := m.Get(2)
		assert.False(t, ok)
		val, ok := m.Get(10)
		assert.True(t, ok)
		assert.Equal(t, 10, val)
	})

	t.Run("repeated updates keep the latest value", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[int, int](2))
		m.Set(1, 1)
		m.Set(1, 2)
		m.Set(1, 3)
		m.Set(5, 20)

		val, ok := m.Get(1)
		assert.True(t, ok)
		assert.Equal(t, 3, val)
	})

	t.Run("fresh insert is the next candidate", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[string, int](2))
		m.Set("hot", 1)
		for range 5 {
			m.Get("hot")
		}
		m.Set("x", 1)
		m.Set("y", 1)

		assert.True(t, m.Has("hot"))
		assert.False(t, m.Has("x"))
		assert.True(t, m.Has("y"))
	})

	t.Run("update then insert", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[int, int](2))
		m.Set(0, 0)
		m.Set(1, 0)
		m.Set(0, 2)
		assert.Equal(t, 2, m.Len())

		m.Set(2, 2)
		assert.True(t, m.Has(0))
		assert.True(t, m.Has(2))
		assert.Equal(t, 2, m.Len())
	})
}

func TestLFU_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deleted key frees a slot", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[int, int](2))
		m.Set(1, 1)
		m.Set(2, 2)
		require.True(t, m.Delete(1))

		_, ok := m.Get(1)
		assert.False(t, ok)

		m.Set(3, 3)
		m.Set(4, 4)

		_, ok = m.Get(2)
		assert.False(t, ok)
		val, ok := m.Get(3)
		assert.True(t, ok)
		assert.Equal(t, 3, val)
	})

	t.Run("deleting the only minimum entry", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[string, int](2))
		m.Set("a", 1)
		m.Get("a")
		m.Set("b", 2)
		require.True(t, m.Delete("b"))

		m.Set("c", 3)
		m.Set("d", 4)

		assert.True(t, m.Has("a"))
		assert.False(t, m.Has("c"))
		assert.True(t, m.Has("d"))
	})

	t.Run("reinserted key starts over", func(t *testing.T) {
		m := cache.Must(cache.NewLFU[string, int](2))
		m.Set("a", 1)
		m.Get("a")
		m.Get("a")
		m.Delete("a")
		m.Set("b", 2)
		m.Get("b")
		m.Set("a", 1)
		m.Set("c", 3)

		assert.False(t, m.Has("a"))
		assert.True(t, m.Has("b"))
	})
}
