package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/cachemapset/pkg/cache"
)

var (
	mu sync.Mutex
	// loaded holds one parsed copy per config type, keyed by type name.
	loaded = cache.Must(cache.NewFIFO[string, any](math.Inf(1)))

	defaultEnvLoaded sync.Once
)

// LoadEnv loads the given .env files into the process environment. Variables
// that are already set are not overridden. Without paths it loads ./.env.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses environment variables into v based on its `env` field tags.
// The default .env file is read once, if present. Each config type is parsed
// only once per process; later calls receive the cached copy.
//
// Example:
//
//	type SimConfig struct {
//		Policy   string  `env:"CACHE_POLICY" envDefault:"lru"`
//		Capacity float64 `env:"CACHE_CAPACITY" envDefault:"1024"`
//	}
//
//	var cfg SimConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded.Get(typeName); ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	loaded.Set(typeName, parsed)
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every parsed config. Intended for tests.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	loaded.Clear()
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
