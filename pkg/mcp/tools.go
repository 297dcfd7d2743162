package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/stretch/pkg/alg/bresenham"
	"github.com/Sumatoshi-tech/stretch/pkg/alg/partition"
	"github.com/Sumatoshi-tech/stretch/pkg/alg/resample"
)

// Tool name constants.
const (
	ToolNameLine      = "stretch_line"
	ToolNameResample  = "stretch_resample"
	ToolNamePartition = "stretch_partition"
)

// MaxOutputElements caps the size of any tool response (1M elements).
const MaxOutputElements = 1 << 20

// ErrOutputTooLarge indicates a request would produce more than MaxOutputElements values.
var ErrOutputTooLarge = errors.New("output exceeds maximum size")

// Input types (auto-generate JSON schemas via struct tags).

// LineInput is the input schema for the stretch_line tool.
type LineInput struct {
	X1 int `json:"x1" jsonschema:"x of the start point"`
	Y1 int `json:"y1" jsonschema:"y of the start point"`
	X2 int `json:"x2" jsonschema:"x of the end point"`
	Y2 int `json:"y2" jsonschema:"y of the end point"`
}

// ResampleInput is the input schema for the stretch_resample tool.
type ResampleInput struct {
	Values []float64 `json:"values" jsonschema:"series to resample, at least one value"`
	Length int       `json:"length" jsonschema:"target length, at least 1"`
}

// PartitionInput is the input schema for the stretch_partition tool.
type PartitionInput struct {
	Total int `json:"total" jsonschema:"number of elements to split"`
	Parts int `json:"parts" jsonschema:"number of ranges, at least 1"`
}

// LineResult is the data returned by stretch_line.
type LineResult struct {
	Values []int `json:"values"`
}

// ResampleResult is the data returned by stretch_resample.
type ResampleResult struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// PartitionResult is the data returned by stretch_partition.
type PartitionResult struct {
	Bounds []int            `json:"bounds"`
	Ranges []partitionRange `json:"ranges"`
}

type partitionRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`

	// Elements is the number of values produced, for metrics.
	Elements int `json:"-"`
}

func handleLine(_ context.Context, _ *mcpsdk.CallToolRequest, in LineInput) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := bresenham.CheckSpan(in.X1, in.Y1, in.X2, in.Y2)
	if err != nil {
		return errorResult(err)
	}

	steps := in.X2 - in.X1
	if steps < 0 {
		steps = -steps
	}

	if steps >= MaxOutputElements {
		return errorResult(fmt.Errorf("%w: %d values (max %d)", ErrOutputTooLarge, steps+1, MaxOutputElements))
	}

	values := bresenham.Stretch(in.X1, in.Y1, in.X2, in.Y2)

	return jsonResult(LineResult{Values: values}, len(values))
}

func handleResample(
	_ context.Context, _ *mcpsdk.CallToolRequest, in ResampleInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if in.Length > MaxOutputElements {
		return errorResult(fmt.Errorf("%w: %d values (max %d)", ErrOutputTooLarge, in.Length, MaxOutputElements))
	}

	indices, err := resample.Indices(len(in.Values), in.Length)
	if err != nil {
		return errorResult(err)
	}

	values, err := resample.Resample(in.Values, in.Length)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(ResampleResult{Indices: indices, Values: values}, len(values))
}

func handlePartition(
	_ context.Context, _ *mcpsdk.CallToolRequest, in PartitionInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if in.Parts > MaxOutputElements {
		return errorResult(fmt.Errorf("%w: %d parts (max %d)", ErrOutputTooLarge, in.Parts, MaxOutputElements))
	}

	bounds, err := partition.Bounds(in.Total, in.Parts)
	if err != nil {
		return errorResult(err)
	}

	ranges := partition.FromBounds(bounds)

	out := PartitionResult{Bounds: bounds, Ranges: make([]partitionRange, len(ranges))}
	for i, r := range ranges {
		out.Ranges[i] = partitionRange{Start: r.Start, End: r.End}
	}

	return jsonResult(out, len(bounds))
}

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any, elements int) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value, Elements: elements}, nil
}
