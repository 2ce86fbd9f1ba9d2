package tools

import (
	"context"
	"errors"

	"pokelists-mcp/internal/identity"
	"pokelists-mcp/internal/models"
	"pokelists-mcp/internal/storage"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetListItemsTool returns the full item sequence of one list
type GetListItemsTool struct {
	store storage.Store
}

// NewGetListItemsTool creates a new get_list_items tool
func NewGetListItemsTool(store storage.Store) *GetListItemsTool {
	return &GetListItemsTool{store: store}
}

// Definition describes the tool and its arguments
func (t *GetListItemsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_list_items",
		mcp.WithDescription("Get all items from a specific list"),
		mcp.WithString("list_name",
			mcp.Required(),
			mcp.Description("Name of the list to retrieve items from"),
		),
	)
}

// Handle executes the tool
func (t *GetListItemsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listName, err := req.RequireString("list_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	items, err := t.store.ListItems(identity.FromContext(ctx), listName)
	if err != nil {
		if errors.Is(err, storage.ErrListNotFound) {
			return failure("List '%s' does not exist", listName)
		}
		return nil, err
	}

	return jsonResult(models.ListItemsResult{
		Result:     models.Result{Success: true},
		ListName:   listName,
		Items:      items,
		TotalItems: len(items),
	})
}
