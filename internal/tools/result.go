package tools

import (
	"encoding/json"
	"fmt"

	"pokelists-mcp/internal/models"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult marshals a payload into the text content of a tool result.
// Precondition failures are reported through payloads with success=false,
// never as protocol-level errors.
func jsonResult(payload any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// failure builds a success=false payload with the given message
func failure(format string, args ...any) (*mcp.CallToolResult, error) {
	return jsonResult(models.Result{
		Success: false,
		Message: fmt.Sprintf(format, args...),
	})
}
