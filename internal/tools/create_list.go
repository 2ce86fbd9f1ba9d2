package tools

import (
	"context"
	"errors"

	"pokelists-mcp/internal/identity"
	"pokelists-mcp/internal/models"
	"pokelists-mcp/internal/storage"

	"github.com/mark3labs/mcp-go/mcp"
)

// CreateListTool creates a new, empty list for the calling user
type CreateListTool struct {
	store storage.Store
}

// NewCreateListTool creates a new create_list tool
func NewCreateListTool(store storage.Store) *CreateListTool {
	return &CreateListTool{store: store}
}

// Definition describes the tool and its arguments
func (t *CreateListTool) Definition() mcp.Tool {
	return mcp.NewTool("create_list",
		mcp.WithDescription("Create a new list with a given name"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the list to create"),
		),
		mcp.WithString("description",
			mcp.Description("Optional description of the list"),
		),
	)
}

// Handle executes the tool
func (t *CreateListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description := req.GetString("description", "")

	list, err := t.store.CreateList(identity.FromContext(ctx), name, description)
	if err != nil {
		if errors.Is(err, storage.ErrListNameExists) {
			return failure("List '%s' already exists", name)
		}
		return nil, err
	}

	return jsonResult(models.CreateListResult{
		Result: models.Result{
			Success: true,
			Message: "List '" + name + "' created successfully",
		},
		List: list,
	})
}
