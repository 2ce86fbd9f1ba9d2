package tools

import (
	"context"

	"pokelists-mcp/internal/identity"
	"pokelists-mcp/internal/models"
	"pokelists-mcp/internal/storage"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetListsTool returns summaries of all of the calling user's lists
type GetListsTool struct {
	store storage.Store
}

// NewGetListsTool creates a new get_lists tool
func NewGetListsTool(store storage.Store) *GetListsTool {
	return &GetListsTool{store: store}
}

// Definition describes the tool and its arguments
func (t *GetListsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_lists",
		mcp.WithDescription("Get all lists with their basic information"),
	)
}

// Handle executes the tool. It never fails.
func (t *GetListsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries := t.store.Lists(identity.FromContext(ctx))

	return jsonResult(models.ListsResult{
		Result:     models.Result{Success: true},
		Lists:      summaries,
		TotalLists: len(summaries),
	})
}
