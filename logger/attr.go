package logger

import (
	"log/slog"
	"strings"
	"time"
)

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error. Returns empty attr for nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Application Metadata
// ============================================================================

// Component identifies the subsystem producing the record, such as a
// subcommand name.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Count creates a generic count attribute.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// ============================================================================
// Performance and Timing
// ============================================================================

// Elapsed creates an attribute with the time elapsed since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Privacy
// ============================================================================

// Redacted logs a sensitive value in masked form, keeping only the last three
// characters. NIC numbers encode birth dates and must never reach logs whole.
func Redacted(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	const keep = 3
	if len(value) <= keep {
		return slog.String(key, strings.Repeat("*", len(value)))
	}
	return slog.String(key, strings.Repeat("*", len(value)-keep)+value[len(value)-keep:])
}
