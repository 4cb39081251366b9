package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a component scoped wrapper over slog. The Err and Error helpers
// log and hand back an error so call sites can `return log.Err(...)`.
type Logger struct {
	base      *slog.Logger
	component string
	function  string
}

// Setup installs the process wide default handler.
func Setup(level, format string) {
	slog.SetDefault(slog.New(newHandler(os.Stdout, level, format)))
}

func newHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func New(component string) Logger {
	return Logger{component: component}
}

// Function returns a copy of the logger tagged with the calling function.
func (l Logger) Function(name string) Logger {
	l.function = name
	return l
}

func (l Logger) entry() *slog.Logger {
	base := l.base
	if base == nil {
		base = slog.Default()
	}
	base = base.With("component", l.component)
	if l.function != "" {
		base = base.With("function", l.function)
	}
	return base
}

func (l Logger) Debug(msg string, args ...any) {
	l.entry().Debug(msg, args...)
}

func (l Logger) Info(msg string, args ...any) {
	l.entry().Info(msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.entry().Warn(msg, args...)
}

// Er logs err without returning it.
func (l Logger) Er(msg string, err error, args ...any) {
	l.entry().Error(msg, append([]any{"error", err}, args...)...)
}

// Err logs err and returns it wrapped with msg.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.Er(msg, err, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs msg and returns it as a new error.
func (l Logger) Error(msg string, args ...any) error {
	l.entry().Error(msg, args...)
	return errors.New(msg)
}

// Slog exposes the underlying slog logger for libraries that want one.
func (l Logger) Slog() *slog.Logger {
	return l.entry()
}
