// Package mcp implements a Model Context Protocol server exposing the line,
// resample and partition operations as MCP tools over stdio transport.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/stretch/pkg/observability"
)

const (
	serverName = "stretch"

	// toolCount is the expected number of registered tools.
	toolCount = 3
)

// errToolFailed marks a call whose result was flagged IsError.
var errToolFailed = errors.New("tool call failed")

// ServerDeps holds injectable dependencies for the MCP server.
// Zero-value fields use production defaults.
type ServerDeps struct {
	// Version is reported as the implementation version. Empty uses "dev".
	Version string

	// Logger is an optional structured logger. Nil uses slog default.
	Logger *slog.Logger

	// Metrics is an optional operation recorder. Nil disables per-tool metrics.
	Metrics *observability.OpMetrics

	// Tracer is an optional OTel tracer for per-tool-call spans. Nil disables tracing.
	Tracer trace.Tracer
}

// Server wraps the MCP SDK server with the stretch tool registrations.
type Server struct {
	inner   *mcpsdk.Server
	mu      sync.RWMutex
	tools   []string
	metrics *observability.OpMetrics
	tracer  trace.Tracer
}

// NewServer creates a new MCP server with all tools registered.
func NewServer(deps ServerDeps) *Server {
	opts := &mcpsdk.ServerOptions{}
	if deps.Logger != nil {
		opts.Logger = deps.Logger
	}

	version := deps.Version
	if version == "" {
		version = "dev"
	}

	inner := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    serverName,
			Version: version,
		},
		opts,
	)

	srv := &Server{
		inner:   inner,
		tools:   make([]string, 0, toolCount),
		metrics: deps.Metrics,
		tracer:  deps.Tracer,
	}

	srv.registerTools()

	return srv
}

// ListToolNames returns the sorted names of all registered tools.
func (s *Server) ListToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.tools))
	copy(names, s.tools)
	sort.Strings(names)

	return names
}

// Run starts the MCP server on stdio transport. It blocks until the context
// is canceled or the connection closes.
func (s *Server) Run(ctx context.Context) error {
	return s.RunWithTransport(ctx, &mcpsdk.StdioTransport{})
}

// RunWithTransport starts the MCP server on the given transport. It blocks
// until the context is canceled or the connection closes.
func (s *Server) RunWithTransport(ctx context.Context, transport mcpsdk.Transport) error {
	err := s.inner.Run(ctx, transport)
	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolNameLine,
		Description: lineToolDescription,
	}, withMetrics(s.metrics, ToolNameLine, withTracing(s.tracer, ToolNameLine, handleLine)))
	s.trackTool(ToolNameLine)

	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolNameResample,
		Description: resampleToolDescription,
	}, withMetrics(s.metrics, ToolNameResample, withTracing(s.tracer, ToolNameResample, handleResample)))
	s.trackTool(ToolNameResample)

	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolNamePartition,
		Description: partitionToolDescription,
	}, withMetrics(s.metrics, ToolNamePartition, withTracing(s.tracer, ToolNamePartition, handlePartition)))
	s.trackTool(ToolNamePartition)
}

func (s *Server) trackTool(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tools = append(s.tools, name)
}

// mcpSpanPrefix is the prefix for MCP tool span names.
const mcpSpanPrefix = "mcp."

// traceIDMetaKey is the key of the trace_id line appended to tool responses.
const traceIDMetaKey = "trace_id"

// withTracing wraps a tool handler to create an OTel span per invocation
// and include trace_id in the response content when sampled.
func withTracing[Input any](
	tracer trace.Tracer,
	toolName string,
	handler func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error),
) func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if tracer == nil {
		return handler
	}

	return func(ctx context.Context, req *mcpsdk.CallToolRequest, input Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
		ctx, span := tracer.Start(ctx, mcpSpanPrefix+toolName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("mcp.tool", toolName)),
		)
		defer span.End()

		result, output, err := handler(ctx, req, input)

		span.SetAttributes(attribute.Int("elements", output.Elements))

		sc := span.SpanContext()
		if sc.IsSampled() && result != nil {
			traceContent := &mcpsdk.TextContent{Text: fmt.Sprintf("%s=%s", traceIDMetaKey, sc.TraceID().String())}
			result.Content = append(result.Content, traceContent)
		}

		return result, output, err
	}
}

// withMetrics wraps a tool handler to record operation metrics per invocation.
func withMetrics[Input any](
	metrics *observability.OpMetrics,
	toolName string,
	handler func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error),
) func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if metrics == nil {
		return handler
	}

	return func(ctx context.Context, req *mcpsdk.CallToolRequest, input Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
		start := time.Now()

		result, output, err := handler(ctx, req, input)

		opErr := err
		if opErr == nil && result != nil && result.IsError {
			opErr = errToolFailed
		}

		metrics.Record(ctx, mcpSpanPrefix+toolName, output.Elements, time.Since(start), opErr)

		return result, output, err
	}
}

// Tool description constants.
const (
	lineToolDescription = "Walk the digital line from (x1,y1) to (x2,y2) and return " +
		"the y value for every integer x step, using integer Bresenham arithmetic."

	resampleToolDescription = "Resample a numeric series to a target length. " +
		"Shrinking drops samples, growing repeats them; the first and last values are kept."

	partitionToolDescription = "Split `total` elements into `parts` contiguous ranges " +
		"whose sizes differ by at most one. Returns parts+1 boundaries and the ranges."
)
