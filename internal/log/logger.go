// Package log provides structured logging for the CLI.
//
// Logs go to stderr so that stdout carries only command output.
package log

import (
	"io"
	"log/slog"
	"strings"

	"github.com/shinji-kodama/edo-compare/internal/config"
)

// Logger wraps slog.Logger with convenience methods.
type Logger struct {
	logger *slog.Logger
}

// NewLoggerWithWriter creates a Logger that writes to w in the given
// format ("json" or "pretty") at the given level name.
func NewLoggerWithWriter(w io.Writer, format, level string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: opts.Level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				// Pretty output is read by people watching a terminal;
				// the timestamp adds noise.
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		})
	}

	return &Logger{logger: slog.New(handler)}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a new Logger with additional attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...)}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}
