package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Logger is the leveled, context-aware logging interface shared by all
// layers. The plain methods attach key/value attribute pairs, the
// f-variants format a message with no attributes.
type Logger interface {
	Debug(ctx context.Context, msg string, kv ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, msg string, kv ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, msg string, kv ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, msg string, kv ...any)
	Errorf(ctx context.Context, format string, args ...any)
	With(kv ...any) Logger
}

type ctxKey struct{}

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the context's logger, or the process-wide default
// when none was attached.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok && l != nil {
		return l
	}
	return defaultLogger()
}

// ParseLevel converts a level name (debug|info|warn|error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.New("unsupported log level: " + name)
	}
}

// New builds a Logger writing to stderr. Formats: human (default), text, json.
func New(format string, level slog.Leveler) (Logger, error) {
	return NewWithWriter(format, level, os.Stderr)
}

// NewWithWriter builds a Logger for an explicit destination writer.
func NewWithWriter(format string, level slog.Leveler, w io.Writer) (Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "", "human":
		if w == os.Stderr {
			// Route through slog.Default so terminal runs get the standard
			// log package prefix instead of key=value noise.
			slog.SetLogLoggerLevel(level.Level())
			return defaultLogger(), nil
		}
		return &slogLogger{s: slog.New(slog.NewTextHandler(w, opts))}, nil
	case "text":
		return &slogLogger{s: slog.New(slog.NewTextHandler(w, opts))}, nil
	case "json":
		return &slogLogger{s: slog.New(slog.NewJSONHandler(w, opts))}, nil
	default:
		return nil, errors.New("unsupported log format: " + format)
	}
}

// defaultLogger is shared by every human-format stderr Logger and by
// FromContext fallbacks, so level changes apply process-wide.
var defaultLogger = sync.OnceValue(func() Logger {
	return &slogLogger{s: slog.Default()}
})

// slogLogger adapts a slog.Logger to the Logger interface.
type slogLogger struct{ s *slog.Logger }

func (l *slogLogger) Debug(ctx context.Context, msg string, kv ...any) {
	l.s.Log(ctx, slog.LevelDebug, msg, kv...)
}
func (l *slogLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.s.Log(ctx, slog.LevelDebug, fmt.Sprintf(format, args...))
}
func (l *slogLogger) Info(ctx context.Context, msg string, kv ...any) {
	l.s.Log(ctx, slog.LevelInfo, msg, kv...)
}
func (l *slogLogger) Infof(ctx context.Context, format string, args ...any) {
	l.s.Log(ctx, slog.LevelInfo, fmt.Sprintf(format, args...))
}
func (l *slogLogger) Warn(ctx context.Context, msg string, kv ...any) {
	l.s.Log(ctx, slog.LevelWarn, msg, kv...)
}
func (l *slogLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.s.Log(ctx, slog.LevelWarn, fmt.Sprintf(format, args...))
}
func (l *slogLogger) Error(ctx context.Context, msg string, kv ...any) {
	l.s.Log(ctx, slog.LevelError, msg, kv...)
}
func (l *slogLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.s.Log(ctx, slog.LevelError, fmt.Sprintf(format, args...))
}

func (l *slogLogger) With(kv ...any) Logger { return &slogLogger{s: l.s.With(kv...)} }
