package mcp_test

import (
	"context"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/stretch/pkg/mcp"
)

const testTimeout = 10 * time.Second

func connect(t *testing.T) (context.Context, *mcpsdk.ClientSession) {
	t.Helper()

	srv := mcp.NewServer(mcp.ServerDeps{Version: "test"})

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)

	serverDone := make(chan error, 1)

	go func() {
		serverDone <- srv.RunWithTransport(ctx, serverTransport)
	}()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()

		cancel()
		<-serverDone
	})

	return ctx, session
}

func TestNewServer_ToolsRegistered(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{})

	assert.Equal(t, []string{
		mcp.ToolNameLine,
		mcp.ToolNamePartition,
		mcp.ToolNameResample,
	}, srv.ListToolNames())
}

func TestServer_Run_CancelledContext(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, srv.Run(ctx))
}

func TestMCPServer_InMemoryTransport_ToolsList(t *testing.T) {
	t.Parallel()

	ctx, session := connect(t)

	toolsResult, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	toolNames := make([]string, 0, len(toolsResult.Tools))
	for _, tool := range toolsResult.Tools {
		toolNames = append(toolNames, tool.Name)

		assert.NotNil(t, tool.InputSchema, "tool %s missing input schema", tool.Name)
	}

	assert.ElementsMatch(t, []string{"stretch_line", "stretch_resample", "stretch_partition"}, toolNames)
}

func TestMCPServer_InMemoryTransport_CallTools(t *testing.T) {
	t.Parallel()

	ctx, session := connect(t)

	tests := []struct {
		name    string
		tool    string
		args    map[string]any
		want    string
		isError bool
	}{
		{
			name: "line",
			tool: mcp.ToolNameLine,
			args: map[string]any{"x1": 0, "y1": 0, "x2": 4, "y2": 10},
			want: "10",
		},
		{
			name: "resample",
			tool: mcp.ToolNameResample,
			args: map[string]any{"values": []float64{1, 2, 3, 4}, "length": 2},
			want: "indices",
		},
		{
			name: "partition",
			tool: mcp.ToolNamePartition,
			args: map[string]any{"total": 55, "parts": 3},
			want: "37",
		},
		{
			name:    "partition_invalid",
			tool:    mcp.ToolNamePartition,
			args:    map[string]any{"total": -1, "parts": 3},
			want:    "must not be negative",
			isError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
				Name:      tt.tool,
				Arguments: tt.args,
			})
			require.NoError(t, err)
			require.NotEmpty(t, result.Content)
			assert.Equal(t, tt.isError, result.IsError)

			text, ok := result.Content[0].(*mcpsdk.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.want)
		})
	}
}
