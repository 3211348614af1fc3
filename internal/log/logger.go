// Package log wraps log/slog with a component tag and fintrack's field names.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Field names shared across components.
const (
	FieldComponent     = "component"
	FieldOperation     = "operation"
	FieldTransactionID = "transaction_id"
	FieldCategoryID    = "category_id"
	FieldAmount        = "amount"
	FieldMonth         = "month"
	FieldCount         = "count"
	FieldBackend       = "backend"
	FieldPath          = "path"
	FieldError         = "error"
)

// Component names.
const (
	ComponentApp     = "app"
	ComponentSession = "session"
	ComponentStorage = "storage"
	ComponentTUI     = "tui"
)

// Logger is a slog.Logger tagged with a component.
type Logger struct {
	*slog.Logger
	component string
}

// Config controls where and how much New logs.
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer // defaults to os.Stderr
	JSON      bool
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	component := cfg.Component
	if component == "" {
		component = ComponentApp
	}
	return &Logger{
		Logger:    slog.New(h).With(FieldComponent, component),
		component: component,
	}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(Config{Output: io.Discard, Level: slog.LevelError + 1})
}

// WithComponent returns a child logger tagged with component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

// With returns a child logger carrying args.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// Op logs a completed operation at debug level.
func (l *Logger) Op(ctx context.Context, op string, args ...any) {
	l.Logger.DebugContext(ctx, op, append([]any{FieldOperation, op}, args...)...)
}

// Failed logs a failed operation at error level.
func (l *Logger) Failed(ctx context.Context, op string, err error, args ...any) {
	l.Logger.ErrorContext(ctx, op+" failed", append([]any{FieldOperation, op, FieldError, err.Error()}, args...)...)
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelWarn, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}
