package cache

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/cachemapset/pkg/validator"
)

// Policy names an eviction policy.
type Policy string

const (
	PolicyFIFO Policy = "fifo"
	PolicyLIFO Policy = "lifo"
	PolicyLRU  Policy = "lru"
	PolicyLFU  Policy = "lfu"
)

// Policies lists every supported policy.
var Policies = []Policy{PolicyFIFO, PolicyLIFO, PolicyLRU, PolicyLFU}

// ParsePolicy converts a case-insensitive name into a Policy.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PolicyFIFO, PolicyLIFO, PolicyLRU, PolicyLFU:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// New creates a container for the given policy.
func New[K comparable, V any, N validator.Numeric](p Policy, capacity N, entries ...Entry[K, V]) (Map[K, V], error) {
	switch p {
	case PolicyFIFO:
		m, err := NewFIFO[K, V](capacity, entries...)
		if err != nil {
			return nil, err
		}
		return m, nil
	case PolicyLIFO:
		m, err := NewLIFO[K, V](capacity, entries...)
		if err != nil {
			return nil, err
		}
		return m, nil
	case PolicyLRU:
		m, err := NewLRU[K, V](capacity, entries...)
		if err != nil {
			return nil, err
		}
		return m, nil
	case PolicyLFU:
		m, err := NewLFU[K, V](capacity, entries...)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, p)
	}
}

// NewSetOf creates a set backed by a container for the given policy.
func NewSetOf[T comparable, N validator.Numeric](p Policy, capacity N, values ...T) (*Set[T], error) {
	m, err := New[T, struct{}](p, capacity)
	if err != nil {
		return nil, err
	}
	return NewSet(m, values...), nil
}

// Config describes a container in environment terms. It is meant to be
// embedded into an application config loaded with config.Load.
type Config struct {
	Policy   string  `env:"CACHE_POLICY" envDefault:"lru"`
	Capacity float64 `env:"CACHE_CAPACITY" envDefault:"1024"`
}

// NewFromConfig creates a container from cfg.
func NewFromConfig[K comparable, V any](cfg Config) (Map[K, V], error) {
	p, err := ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	return New[K, V](p, cfg.Capacity)
}
