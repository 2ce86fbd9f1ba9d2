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

// AddItemTool appends an item to one of the calling user's lists
type AddItemTool struct {
	store storage.Store
}

// NewAddItemTool creates a new add_item_to_list tool
func NewAddItemTool(store storage.Store) *AddItemTool {
	return &AddItemTool{store: store}
}

// Definition describes the tool and its arguments
func (t *AddItemTool) Definition() mcp.Tool {
	return mcp.NewTool("add_item_to_list",
		mcp.WithDescription("Add an item to a specific list"),
		mcp.WithString("list_name",
			mcp.Required(),
			mcp.Description("Name of the list to add the item to"),
		),
		mcp.WithString("item",
			mcp.Required(),
			mcp.Description("Text of the item to add"),
		),
		mcp.WithNumber("quantity",
			mcp.Description("Quantity of the item"),
			mcp.DefaultNumber(1),
		),
		mcp.WithString("notes",
			mcp.Description("Optional notes for the item"),
		),
	)
}

// Handle executes the tool
func (t *AddItemTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listName, err := req.RequireString("list_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := req.RequireString("item")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	quantity := req.GetInt("quantity", 1)
	notes := req.GetString("notes", "")

	item, err := t.store.AddItem(identity.FromContext(ctx), listName, text, quantity, notes)
	if err != nil {
		if errors.Is(err, storage.ErrListNotFound) {
			return failure("List '%s' does not exist", listName)
		}
		return nil, err
	}

	return jsonResult(models.AddItemResult{
		Result: models.Result{
			Success: true,
			Message: fmt.Sprintf("Item '%s' added to list '%s'", text, listName),
		},
		Item: item,
	})
}
