package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
	attrService = "service"
	attrMode    = "mode"
)

// TracingHandler is an [slog.Handler] that adds the trace_id and span_id of
// the active span to every record logged with a context.
type TracingHandler struct {
	next slog.Handler
}

// NewTracingHandler wraps next. Service and mode are attached up front so they
// stay at the top level of the record when callers open groups.
func NewTracingHandler(next slog.Handler, service string, mode AppMode) *TracingHandler {
	return &TracingHandler{
		next: next.WithAttrs([]slog.Attr{
			slog.String(attrService, service),
			slog.String(attrMode, string(mode)),
		}),
	}
}

// Enabled delegates to the wrapped handler.
func (h *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle adds span identifiers when ctx carries a valid span context.
func (h *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	if err := h.next.Handle(ctx, record); err != nil {
		return fmt.Errorf("tracing handler: %w", err)
	}

	return nil
}

// WithAttrs returns a TracingHandler whose wrapped handler carries attrs.
func (h *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{next: h.next.WithAttrs(attrs)}
}

// WithGroup returns a TracingHandler whose wrapped handler opens group name.
func (h *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{next: h.next.WithGroup(name)}
}
