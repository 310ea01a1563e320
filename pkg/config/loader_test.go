package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cachemapset/pkg/cache"
	"github.com/dmitrymomot/cachemapset/pkg/config"
)

type TestConfigSuccess struct {
	Name  string `env:"TEST_NAME_SUCCESS" envDefault:"default_value"`
	Count int    `env:"TEST_COUNT_SUCCESS" envDefault:"42"`
	Debug bool   `env:"TEST_DEBUG_SUCCESS" envDefault:"true"`
}

type TestConfigDefault struct {
	Name  string `env:"TEST_NAME_DEFAULT" envDefault:"default_value"`
	Count int    `env:"TEST_COUNT_DEFAULT" envDefault:"42"`
}

type TestConfigSingleton struct {
	Name string `env:"TEST_NAME_SINGLETON" envDefault:"default_value"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type TestCacheConfig struct {
	Cache cache.Config
}

type EnvFileConfig struct {
	Policies []string `env:"TEST_FILE_POLICIES" envSeparator:","`
	Capacity float64  `env:"TEST_FILE_CAPACITY"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_NAME_SUCCESS", "test_value")
	t.Setenv("TEST_COUNT_SUCCESS", "100")
	t.Setenv("TEST_DEBUG_SUCCESS", "false")
	config.ResetCache()

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "test_value", cfg.Name)
	assert.Equal(t, 100, cfg.Count)
	assert.False(t, cfg.Debug)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_NAME_DEFAULT")
	os.Unsetenv("TEST_COUNT_DEFAULT")
	config.ResetCache()

	var cfg TestConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
}

func TestLoad_CacheConfig(t *testing.T) {
	t.Setenv("CACHE_POLICY", "lfu")
	t.Setenv("CACHE_CAPACITY", "2.5")
	config.ResetCache()

	var cfg TestCacheConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "lfu", cfg.Cache.Policy)
	assert.Equal(t, 2.5, cfg.Cache.Capacity)

	m, err := cache.NewFromConfig[string, int](cfg.Cache)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Cap())
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "Load should return an error when a required value is missing")
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_NAME_SINGLETON", "first_value")
	config.ResetCache()

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_NAME_SINGLETON", "second_value")

	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first_value", second.Name, "second load should be served from the cache")

	config.ResetCache()
	var third TestConfigSingleton
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second_value", third.Name, "reset forces a fresh parse")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("TEST_FILE_POLICIES")
	os.Unsetenv("TEST_FILE_CAPACITY")
	t.Cleanup(func() {
		os.Unsetenv("TEST_FILE_POLICIES")
		os.Unsetenv("TEST_FILE_CAPACITY")
	})
	config.ResetCache()

	path := filepath.Join(t.TempDir(), ".env.sim")
	require.NoError(t, os.WriteFile(path, []byte("TEST_FILE_POLICIES=fifo,lru\nTEST_FILE_CAPACITY=\"16\"\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))

	var cfg EnvFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, []string{"fifo", "lru"}, cfg.Policies)
	assert.Equal(t, 16.0, cfg.Capacity)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	})
}
