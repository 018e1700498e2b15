// Package config loads application configuration from environment variables
// into tagged structs. A local .env file, when present, is loaded once before
// the first parse so development setups work without exporting anything.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadDotenv sync.Once

// Load parses environment variables into the provided configuration struct
// based on `env` field tags.
//
// Example:
//
//	type MongoConfig struct {
//		URL     string        `env:"MONGODB_URL,required"`
//		Timeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg MongoConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	loadDotenv.Do(func() {
		// The .env file is optional; missing files are not an error.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Intended for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}
