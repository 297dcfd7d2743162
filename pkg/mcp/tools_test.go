package mcp

import (
	"context"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/stretch/pkg/observability"
	"github.com/Sumatoshi-tech/stretch/pkg/safeconv"
)

func resultText(t *testing.T, result *mcpsdk.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)

	return text.Text
}

func TestHandleLine(t *testing.T) {
	t.Parallel()

	result, out, err := handleLine(context.Background(), nil, LineInput{X1: 0, Y1: 0, X2: 4, Y2: 10})
	require.NoError(t, err)
	require.False(t, result.IsError)

	data, ok := out.Data.(LineResult)
	require.True(t, ok)
	assert.Equal(t, []int{0, 3, 5, 8, 10}, data.Values)
	assert.Equal(t, 5, out.Elements)
	assert.Contains(t, resultText(t, result), `"values"`)
}

func TestHandleLine_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   LineInput
		want string
	}{
		{name: "overflow", in: LineInput{X1: safeconv.MinInt, X2: 1}, want: "overflow"},
		{name: "too_large", in: LineInput{X2: MaxOutputElements}, want: ErrOutputTooLarge.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, out, err := handleLine(context.Background(), nil, tt.in)
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Nil(t, out.Data)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}

func TestHandleResample(t *testing.T) {
	t.Parallel()

	result, out, err := handleResample(context.Background(), nil, ResampleInput{
		Values: []float64{0, 1, 2, 3, 4, 5},
		Length: 3,
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	data, ok := out.Data.(ResampleResult)
	require.True(t, ok)
	assert.Equal(t, []int{0, 3, 5}, data.Indices)
	assert.Equal(t, []float64{0, 3, 5}, data.Values)
	assert.Equal(t, 3, out.Elements)
}

func TestHandleResample_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   ResampleInput
	}{
		{name: "empty_values", in: ResampleInput{Length: 3}},
		{name: "zero_length", in: ResampleInput{Values: []float64{1}, Length: 0}},
		{name: "too_large", in: ResampleInput{Values: []float64{1}, Length: MaxOutputElements + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, _, err := handleResample(context.Background(), nil, tt.in)
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}

func TestHandlePartition(t *testing.T) {
	t.Parallel()

	result, out, err := handlePartition(context.Background(), nil, PartitionInput{Total: 55, Parts: 3})
	require.NoError(t, err)
	require.False(t, result.IsError)

	data, ok := out.Data.(PartitionResult)
	require.True(t, ok)
	assert.Equal(t, []int{0, 18, 37, 55}, data.Bounds)
	assert.Equal(t, []partitionRange{{0, 18}, {18, 37}, {37, 55}}, data.Ranges)
}

func TestHandlePartition_InvalidParts(t *testing.T) {
	t.Parallel()

	result, _, err := handlePartition(context.Background(), nil, PartitionInput{Total: 10, Parts: 0})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "partition count must be positive")
}

func TestWithMetrics_RecordsOutcome(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	om, err := observability.NewOpMetrics(mp.Meter("test"))
	require.NoError(t, err)

	handler := withMetrics(om, ToolNamePartition, handlePartition)

	_, _, err = handler(context.Background(), nil, PartitionInput{Total: 10, Parts: 2})
	require.NoError(t, err)

	_, _, err = handler(context.Background(), nil, PartitionInput{Total: 10, Parts: 0})
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics

	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}

	assert.True(t, names["stretch.ops.total"])
	assert.True(t, names["stretch.errors.total"])
	assert.True(t, names["stretch.op.elements"])
}

func TestWithTracing_AppendsTraceID(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	handler := withTracing(tp.Tracer("test"), ToolNameLine, handleLine)

	result, _, err := handler(context.Background(), nil, LineInput{X2: 3, Y2: 3})
	require.NoError(t, err)
	require.Len(t, result.Content, 2)

	last, ok := result.Content[1].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, last.Text, "trace_id=")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "mcp.stretch_line", spans[0].Name())
}

func TestWrappers_NilPassthrough(t *testing.T) {
	t.Parallel()

	handler := withMetrics(nil, ToolNameLine, withTracing(nil, ToolNameLine, handleLine))

	result, _, err := handler(context.Background(), nil, LineInput{X2: 1, Y2: 1})
	require.NoError(t, err)
	assert.Len(t, result.Content, 1)
}
