package tools

import (
	"context"
	"errors"

	"pokelists-mcp/internal/identity"
	"pokelists-mcp/internal/models"
	"pokelists-mcp/internal/storage"

	"github.com/mark3labs/mcp-go/mcp"
)

// ToggleItemTool flips the completed flag on one item in a list
type ToggleItemTool struct {
	store storage.Store
}

// NewToggleItemTool creates a new toggle_item_completion tool
func NewToggleItemTool(store storage.Store) *ToggleItemTool {
	return &ToggleItemTool{store: store}
}

// Definition describes the tool and its arguments
func (t *ToggleItemTool) Definition() mcp.Tool {
	return mcp.NewTool("toggle_item_completion",
		mcp.WithDescription("Mark an item as completed or uncompleted in a list"),
		mcp.WithString("list_name",
			mcp.Required(),
			mcp.Description("Name of the list containing the item"),
		),
		mcp.WithNumber("item_id",
			mcp.Required(),
			mcp.Description("ID of the item to toggle"),
		),
	)
}

// Handle executes the tool
func (t *ToggleItemTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listName, err := req.RequireString("list_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	itemID, err := req.RequireInt("item_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	item, err := t.store.ToggleItem(identity.FromContext(ctx), listName, itemID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrListNotFound):
			return failure("List '%s' does not exist", listName)
		case errors.Is(err, storage.ErrItemNotFound):
			return failure("Item with ID %d not found in list '%s'", itemID, listName)
		}
		return nil, err
	}

	status := "uncompleted"
	if item.Completed {
		status = "completed"
	}

	return jsonResult(models.ToggleItemResult{
		Result: models.Result{
			Success: true,
			Message: "Item marked as " + status,
		},
		Item: item,
	})
}
