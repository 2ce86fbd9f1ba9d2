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

// RemoveItemTool removes one item from a list by its ID
type RemoveItemTool struct {
	store storage.Store
}

// NewRemoveItemTool creates a new remove_item_from_list tool
func NewRemoveItemTool(store storage.Store) *RemoveItemTool {
	return &RemoveItemTool{store: store}
}

// Definition describes the tool and its arguments
func (t *RemoveItemTool) Definition() mcp.Tool {
	return mcp.NewTool("remove_item_from_list",
		mcp.WithDescription("Remove an item from a specific list"),
		mcp.WithString("list_name",
			mcp.Required(),
			mcp.Description("Name of the list to remove the item from"),
		),
		mcp.WithNumber("item_id",
			mcp.Required(),
			mcp.Description("ID of the item to remove"),
		),
	)
}

// Handle executes the tool
func (t *RemoveItemTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listName, err := req.RequireString("list_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	itemID, err := req.RequireInt("item_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	removed, err := t.store.RemoveItem(identity.FromContext(ctx), listName, itemID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrListNotFound):
			return failure("List '%s' does not exist", listName)
		case errors.Is(err, storage.ErrItemNotFound):
			return failure("Item with ID %d not found in list '%s'", itemID, listName)
		}
		return nil, err
	}

	return jsonResult(models.RemoveItemResult{
		Result: models.Result{
			Success: true,
			Message: fmt.Sprintf("Item removed from list '%s'", listName),
		},
		RemovedItem: removed,
	})
}
