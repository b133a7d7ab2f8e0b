package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"

	"github.com/lankaid/nic/config"
	"github.com/lankaid/nic/logger"
)

// Config tunes nicctl through NICCTL_* environment variables. Flags handle
// per-invocation choices; the environment carries operator preferences.
type Config struct {
	LogLevel   string `env:"NICCTL_LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"NICCTL_LOG_FORMAT" envDefault:"text"`
	NoColor    bool   `env:"NICCTL_NO_COLOR" envDefault:"false"`
	RedactLogs bool   `env:"NICCTL_REDACT_LOGS" envDefault:"true"`
}

// app carries the pieces every subcommand needs.
type app struct {
	cfg Config
	log *slog.Logger
}

func newApp() (*app, error) {
	var cfg Config
	config.MustLoad(&cfg)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid NICCTL_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	opts := []logger.Option{logger.WithLevel(level)}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSONFormatter())
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	return &app{cfg: cfg, log: logger.New(opts...)}, nil
}

// inputAttr logs an identifier, masked unless redaction was switched off.
func (a *app) inputAttr(value string) slog.Attr {
	if a.cfg.RedactLogs {
		return logger.Redacted("input", value)
	}
	return slog.String("input", value)
}
