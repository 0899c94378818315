// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/syncbus/core/config"
//		"github.com/dmitrymomot/syncbus/pkg/broadcast"
//	)
//
//	func main() {
//		var cfg broadcast.Config
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//
//		bus := broadcast.NewFromConfig[Value](cfg)
//		defer bus.Close()
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 broadcast.Config
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 broadcast.Config
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type AppConfig struct {
//		Name string `env:"APP_NAME,required"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&broadcast.Config{})
//	config.MustLoad(&AppConfig{})
//
// Reset drops the cache, which tests use after changing the environment:
//
//	t.Setenv("BROADCAST_CAPACITY", "32")
//	config.Reset()
//	config.MustLoad(&cfg)
package config
