package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
)

type Logger = *slog.Logger

// NewLogger creates a colored console logger writing to stderr.
func NewLogger(level slog.Level) Logger {
	return slog.New(newTintHandler(os.Stderr, level))
}

// NewLoggerWithSentry creates a logger that also reports errors through
// the current Sentry hub. Call InitSentry first.
func NewLoggerWithSentry(level slog.Level) Logger {
	return slog.New(NewSentryHandler(newTintHandler(os.Stderr, level), nil))
}

// InitSentry configures the global Sentry client. The returned function
// flushes buffered events and should be deferred by the caller.
func InitSentry(dsn string) (func(), error) {
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

func newTintHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})
}
