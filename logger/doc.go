// Package logger provides structured logging for the nicctl command, built on
// Go's standard slog package.
//
// The validator library itself never logs; this package exists so the CLI has
// one place for handler construction and for attribute helpers that keep
// identifiers out of log output in readable form.
//
// # Basic Usage
//
//	import "github.com/lankaid/nic/logger"
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithJSONFormatter(),
//	)
//
//	log.Info("validated",
//		logger.Component("validate"),
//		logger.Redacted("input", raw),
//		logger.Elapsed(start),
//	)
//
// By default output goes to stderr in text format at info level, so stdout
// stays reserved for the command's own machine-readable output.
package logger
