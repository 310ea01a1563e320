package cache

import "github.com/dmitrymomot/cachemapset/pkg/validator"

// Set is a bounded set backed by any policy Map. Each value is stored as a
// key with an empty struct value, so eviction behaviour is exactly that of
// the wrapped map. Set is not safe for concurrent use.
type Set[T comparable] struct {
	m Map[T, struct{}]
}

// NewSet wraps m and adds values in order.
func NewSet[T comparable](m Map[T, struct{}], values ...T) *Set[T] {
	s := &Set[T]{m: m}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Has reports whether v is present. For an LRU-backed set this counts as an access.
func (s *Set[T]) Has(v T) bool { return s.m.Has(v) }

// Add inserts v, evicting one value per the wrapped policy when full.
func (s *Set[T]) Add(v T) { s.m.Set(v, struct{}{}) }

func (s *Set[T]) Delete(v T) bool { return s.m.Delete(v) }
func (s *Set[T]) Clear()          { s.m.Clear() }
func (s *Set[T]) Len() int        { return s.m.Len() }
func (s *Set[T]) Cap() int        { return s.m.Cap() }

// NewFIFOSet creates a set that evicts the value added longest ago.
func NewFIFOSet[T comparable, N validator.Numeric](capacity N, values ...T) (*Set[T], error) {
	m, err := NewFIFO[T, struct{}](capacity)
	if err != nil {
		return nil, err
	}
	return NewSet[T](m, values...), nil
}

// NewLIFOSet creates a set that evicts the most recently added value.
func NewLIFOSet[T comparable, N validator.Numeric](capacity N, values ...T) (*Set[T], error) {
	m, err := NewLIFO[T, struct{}](capacity)
	if err != nil {
		return nil, err
	}
	return NewSet[T](m, values...), nil
}

// NewLRUSet creates a set that evicts the least recently used value.
func NewLRUSet[T comparable, N validator.Numeric](capacity N, values ...T) (*Set[T], error) {
	m, err := NewLRU[T, struct{}](capacity)
	if err != nil {
		return nil, err
	}
	return NewSet[T](m, values...), nil
}

// NewLFUSet creates a set that evicts the least frequently used value.
func NewLFUSet[T comparable, N validator.Numeric](capacity N, values ...T) (*Set[T], error) {
	m, err := NewLFU[T, struct{}](capacity)
	if err != nil {
		return nil, err
	}
	return NewSet[T](m, values...), nil
}
