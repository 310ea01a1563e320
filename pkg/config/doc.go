// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type, so each config struct is parsed once.
//   - MustLoad and MustLoadEnv panic instead of returning an error.
//   - ResetCache clears parsed configs between tests.
//
// Parsed configs are kept in an unbounded cache.FIFO guarded by a mutex.
//
// # Usage
//
//	type appConfig struct {
//	    Env   string       `env:"APP_ENV" envDefault:"development"`
//	    Cache cache.Config
//	}
//
//	var cfg appConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors can be compared with `errors.Is`:
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – an explicit .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load/MustLoad.
package config
