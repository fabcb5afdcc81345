package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// SentryHandler wraps an slog.Handler and reports Error records to Sentry.
type SentryHandler struct {
	handler slog.Handler
	hub     *sentry.Hub
	attrs   []slog.Attr
}

// NewSentryHandler creates a SentryHandler reporting to hub, or to the
// current hub when hub is nil.
func NewSentryHandler(handler slog.Handler, hub *sentry.Hub) *SentryHandler {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	return &SentryHandler{handler: handler, hub: hub}
}

func (h *SentryHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle forwards the record. Error records are also sent to Sentry: the
// "error" attribute as an exception, otherwise the message. Remaining
// attributes become tags.
func (h *SentryHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		h.capture(r)
	}
	return h.handler.Handle(ctx, r)
}

func (h *SentryHandler) capture(r slog.Record) {
	var captured error
	tags := make(map[string]string)
	collect := func(a slog.Attr) bool {
		if a.Key == "error" {
			if err, ok := a.Value.Any().(error); ok {
				captured = err
				return true
			}
		}
		tags[a.Key] = a.Value.String()
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	hub := h.hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		scope.SetTag("log_message", r.Message)
	})
	if captured != nil {
		hub.CaptureException(captured)
		return
	}
	hub.CaptureMessage(r.Message)
}

func (h *SentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &SentryHandler{handler: h.handler.WithAttrs(attrs), hub: h.hub, attrs: merged}
}

func (h *SentryHandler) WithGroup(name string) slog.Handler {
	return &SentryHandler{handler: h.handler.WithGroup(name), hub: h.hub, attrs: h.attrs}
}
