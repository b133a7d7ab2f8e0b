// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/lankaid/nic/config"
//
//	type CLIConfig struct {
//		LogLevel  string `env:"NICCTL_LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"NICCTL_LOG_FORMAT" envDefault:"text"`
//	}
//
//	func main() {
//		var cfg CLIConfig
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process lifetime:
//
//	var cfg1 CLIConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 CLIConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently.
package config
