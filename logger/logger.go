package logger

import (
	"io"
	"log/slog"
	"os"
)

// options configures handler construction.
type options struct {
	// level is the minimum level emitted.
	// Default: slog.LevelInfo
	level slog.Leveler

	// json selects the JSON handler instead of the text handler.
	// Default: false
	json bool

	// output is the destination writer.
	// Default: os.Stderr
	output io.Writer

	// attrs are attached to every record via Logger.With.
	attrs []slog.Attr
}

// Option is a functional option for configuring the logger.
type Option func(*options)

// WithLevel sets the minimum level emitted.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches output to the JSON handler.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithTextFormatter selects the text handler. This is the default, so the
// option is only needed for clarity.
func WithTextFormatter() Option {
	return func(o *options) {
		o.json = false
	}
}

// WithOutput redirects log output to the given writer.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithAttr attaches attributes to every record produced by the logger.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

func defaultOptions() *options {
	return &options{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
}

func applyOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New builds a slog.Logger from the given options.
func New(opts ...Option) *slog.Logger {
	o := applyOptions(opts...)

	ho := &slog.HandlerOptions{Level: o.level}
	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.output, ho)
	} else {
		h = slog.NewTextHandler(o.output, ho)
	}

	log := slog.New(h)
	if len(o.attrs) > 0 {
		args := make([]any, 0, len(o.attrs))
		for _, a := range o.attrs {
			args = append(args, a)
		}
		log = log.With(args...)
	}
	return log
}
