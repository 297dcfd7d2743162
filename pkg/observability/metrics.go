package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricOpsTotal    = "stretch.ops.total"
	metricOpDuration  = "stretch.op.duration.seconds"
	metricOpElements  = "stretch.op.elements"
	metricErrorsTotal = "stretch.errors.total"

	attrOp     = "op"
	attrStatus = "status"

	// StatusOK marks a successful operation.
	StatusOK = "ok"
	// StatusError marks a failed operation.
	StatusError = "error"
)

// durationBucketBoundaries covers 1µs to 1s; walks are memory-bound and fast.
var durationBucketBoundaries = []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1}

// elementBucketBoundaries covers output sizes from a handful to millions.
var elementBucketBoundaries = []float64{1, 10, 100, 1e3, 1e4, 1e5, 1e6}

// OpMetrics holds the instruments recorded for each line, resample and
// partition call.
type OpMetrics struct {
	opsTotal    metric.Int64Counter
	opDuration  metric.Float64Histogram
	opElements  metric.Int64Histogram
	errorsTotal metric.Int64Counter
}

// NewOpMetrics creates operation instruments from the given meter.
func NewOpMetrics(mt metric.Meter) (*OpMetrics, error) {
	opsTotal, err := mt.Int64Counter(metricOpsTotal,
		metric.WithDescription("Total number of operations"),
		metric.WithUnit("{op}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricOpsTotal, err)
	}

	opDuration, err := mt.Float64Histogram(metricOpDuration,
		metric.WithDescription("Operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricOpDuration, err)
	}

	opElements, err := mt.Int64Histogram(metricOpElements,
		metric.WithDescription("Number of elements produced per operation"),
		metric.WithUnit("{element}"),
		metric.WithExplicitBucketBoundaries(elementBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricOpElements, err)
	}

	errorsTotal, err := mt.Int64Counter(metricErrorsTotal,
		metric.WithDescription("Total number of failed operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricErrorsTotal, err)
	}

	return &OpMetrics{
		opsTotal:    opsTotal,
		opDuration:  opDuration,
		opElements:  opElements,
		errorsTotal: errorsTotal,
	}, nil
}

// Record records one finished operation. Elements is only recorded on success.
func (om *OpMetrics) Record(ctx context.Context, op string, elements int, duration time.Duration, opErr error) {
	status := StatusOK
	if opErr != nil {
		status = StatusError
	}

	attrs := metric.WithAttributes(
		attribute.String(attrOp, op),
		attribute.String(attrStatus, status),
	)

	om.opsTotal.Add(ctx, 1, attrs)
	om.opDuration.Record(ctx, duration.Seconds(), attrs)

	if opErr != nil {
		om.errorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrOp, op)))

		return
	}

	om.opElements.Record(ctx, int64(elements), metric.WithAttributes(attribute.String(attrOp, op)))
}
