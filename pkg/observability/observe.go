package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const spanPrefix = "stretch."

// Observe runs fn inside a span named after op and records the outcome on om.
// fn returns the number of elements it produced. A nil tracer or om disables
// the corresponding signal.
func Observe(
	ctx context.Context, tracer trace.Tracer, om *OpMetrics, op string,
	fn func(ctx context.Context) (int, error),
) error {
	var span trace.Span

	if tracer != nil {
		ctx, span = tracer.Start(ctx, spanPrefix+op, trace.WithAttributes(attribute.String(attrOp, op)))
		defer span.End()
	}

	start := time.Now()
	elements, err := fn(ctx)

	if om != nil {
		om.Record(ctx, op, elements, time.Since(start), err)
	}

	if span != nil {
		span.SetAttributes(attribute.Int("elements", elements))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}

	return err
}
