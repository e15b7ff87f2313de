package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration values keyed by prefix and type.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using its `env` struct tags.
// The default .env file is read once per process if present.
// Each configuration type is parsed once and served from cache afterwards.
//
// Example:
//
//	type Settings struct {
//		LogLevel string `env:"STRYNG_LOG_LEVEL" envDefault:"warn"`
//		Seed     string `env:"STRYNG_SEED"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	return load(v, "")
}

// LoadWithPrefix works like Load but prepends prefix to every variable name,
// so `env:"SEED"` with prefix "STRYNG_" reads STRYNG_SEED.
// Values are cached per prefix.
func LoadWithPrefix[T any](v *T, prefix string) error {
	return load(v, prefix)
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment, later
// files overriding earlier ones. With no paths it reads ./.env.
// Variables already set in the environment by other means are overwritten.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// ForceReloadConfig drops the cached value for T and parses it again.
func ForceReloadConfig[T any](v *T) error {
	return forceReload(v, "")
}

// ForceReloadWithPrefix is ForceReloadConfig for prefixed configurations.
func ForceReloadWithPrefix[T any](v *T, prefix string) error {
	return forceReload(v, prefix)
}

// ResetCache clears every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
	globalCache.mu.Unlock()
}

func forceReload[T any](v *T, prefix string) error {
	if v == nil {
		return ErrNilPointer
	}
	key := cacheKey[T](prefix)

	globalCache.mu.Lock()
	delete(globalCache.values, key)
	delete(globalCache.onces, key)
	globalCache.mu.Unlock()

	return load(v, prefix)
}

func load[T any](v *T, prefix string) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if !isStruct[T]() {
		return ErrInvalidConfigType
	}

	key := cacheKey[T](prefix)

	if cached, ok := lookup[T](key); ok {
		*v = cached
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[key]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		var parseErr error
		if prefix == "" {
			parseErr = env.Parse(v)
		} else {
			parseErr = env.ParseWithOptions(v, env.Options{Prefix: prefix})
		}
		if parseErr != nil {
			err = newLoadError(prefix, reflect.TypeFor[T]().String(), parseErr)
			// Allow a later call to retry after the environment is fixed.
			globalCache.mu.Lock()
			delete(globalCache.onces, key)
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[key] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if cached, ok := lookup[T](key); ok {
		*v = cached
		return nil
	}
	return ErrConfigNotLoaded
}

func lookup[T any](key string) (T, bool) {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	cached, ok := globalCache.values[key]
	if !ok {
		var zero T
		return zero, false
	}
	return cached.(T), true
}

func cacheKey[T any](prefix string) string {
	return prefix + "|" + reflect.TypeFor[T]().String()
}

func isStruct[T any]() bool {
	return reflect.TypeFor[T]().Kind() == reflect.Struct
}
