// Package logging configures the process-wide logger.
//
// Two sinks are active: a rotating log file that records INFO and
// above, and stderr for WARN and above. Stdout is never written to —
// the MCP host reads it as protocol framing.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config defines logger options.
type Config struct {
	// File is the log file path. Empty disables the file sink.
	File string

	// MaxSizeMB is the file size at which rotation happens. Default 10.
	MaxSizeMB int

	// MaxBackups is how many rotated files to keep. Default 3.
	MaxBackups int
}

// New creates the dual-sink logger. The file sink rotates via
// lumberjack; the stderr sink only emits WARN and above.
func New(cfg Config) *slog.Logger {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}

	var fileWriter io.Writer = io.Discard
	if cfg.File != "" {
		fileWriter = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
	}
	return NewWithWriters(fileWriter, os.Stderr)
}

// NewWithWriters creates the dual-sink logger on top of arbitrary
// writers: info receives INFO and above, warn receives WARN and above.
// Used by tests to capture output.
func NewWithWriters(info, warn io.Writer) *slog.Logger {
	return slog.New(tee{
		slog.NewTextHandler(info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	})
}

// NewNop creates a logger that discards everything. Test use only.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// tee fans each record out to every handler whose level accepts it.
type tee []slog.Handler

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t tee) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(tee, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t tee) WithGroup(name string) slog.Handler {
	out := make(tee, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
