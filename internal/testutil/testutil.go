package testutil

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"pokelists-mcp/internal/identity"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

// ToolHandler is the signature shared by every tool's Handle method
type ToolHandler func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ContextWithUser returns a context carrying the given user identity,
// the way the HTTP transport hook would set it
func ContextWithUser(userID string) context.Context {
	return identity.WithUserID(context.Background(), userID)
}

// NewToolRequest builds a tool call request with the given arguments
func NewToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// CallTool invokes a tool handler and decodes its JSON payload into target
func CallTool(t *testing.T, ctx context.Context, handler ToolHandler, name string, args map[string]any, target interface{}) {
	t.Helper()

	res, err := handler(ctx, NewToolRequest(name, args))
	require.NoError(t, err, "Tool handler returned an error")
	require.NotNil(t, res)

	DecodeToolResult(t, res, target)
}

// DecodeToolResult parses the text content of a tool result into target
func DecodeToolResult(t *testing.T, res *mcp.CallToolResult, target interface{}) {
	t.Helper()

	require.False(t, res.IsError, "Expected a payload result, got a tool error")
	require.NotEmpty(t, res.Content, "Tool result has no content")

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "Tool result content is not text")

	err := json.Unmarshal([]byte(text.Text), target)
	require.NoError(t, err, "Failed to parse tool result JSON")
}

// ParseJSONResponse parses a recorded JSON response into a target structure
func ParseJSONResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()

	err := json.Unmarshal(w.Body.Bytes(), target)
	require.NoError(t, err, "Failed to parse JSON response")
}

// IntPtr returns a pointer to an int value
func IntPtr(n int) *int {
	return &n
}

// StringPtr returns a pointer to a string value
func StringPtr(s string) *string {
	return &s
}
