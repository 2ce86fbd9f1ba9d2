package tools

import (
	"context"
	"errors"
	"fmt"

	"pokelists-mcp/internal/identity"
	"pokelists-mcp/internal/models"
	"pokelists-mcp/internal/storage"

	"github.com/mark3labs/mcp-go/mcp"
)

// DeleteListTool deletes an entire list and all of its items
type DeleteListTool struct {
	store storage.Store
}

// NewDeleteListTool creates a new delete_list tool
func NewDeleteListTool(store storage.Store) *DeleteListTool {
	return &DeleteListTool{store: store}
}

// Definition describes the tool and its arguments
func (t *DeleteListTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_list",
		mcp.WithDescription("Delete an entire list"),
		mcp.WithString("list_name",
			mcp.Required(),
			mcp.Description("Name of the list to delete"),
		),
	)
}

// Handle executes the tool
func (t *DeleteListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listName, err := req.RequireString("list_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	deleted, err := t.store.DeleteList(identity.FromContext(ctx), listName)
	if err != nil {
		if errors.Is(err, storage.ErrListNotFound) {
			return failure("List '%s' does not exist", listName)
		}
		return nil, err
	}

	return jsonResult(models.DeleteListResult{
		Result: models.Result{
			Success: true,
			Message: fmt.Sprintf("List '%s' deleted successfully", listName),
		},
		DeletedList: deleted,
	})
}
