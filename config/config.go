package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig indicates Load was handed a nil pointer.
var ErrNilConfig = errors.New("config target must be a non-nil pointer")

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	// loadDotEnv runs once per process. A missing .env file is not an error;
	// deployed environments set variables directly.
	loadDotEnv = sync.OnceFunc(func() {
		_ = godotenv.Load()
	})
)

// Load parses environment variables into cfg. The first call for a given type
// reads the environment; subsequent calls for the same type copy the cached
// value, so two loads of one type always agree.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}
	loadDotEnv()

	mu.Lock()
	defer mu.Unlock()

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment into %s: %w", t, err)
	}
	cache[t] = *cfg
	return nil
}

// MustLoad is Load that panics on failure. Intended for process startup,
// where a broken environment should stop the program immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
