package tools

import (
	"context"

	"pokelists-mcp/internal/identity"
	"pokelists-mcp/internal/models"
	"pokelists-mcp/internal/storage"

	"github.com/mark3labs/mcp-go/mcp"
)

// SearchItemsTool searches item text and notes across one or all lists
type SearchItemsTool struct {
	store storage.Store
}

// NewSearchItemsTool creates a new search_items tool
func NewSearchItemsTool(store storage.Store) *SearchItemsTool {
	return &SearchItemsTool{store: store}
}

// Definition describes the tool and its arguments
func (t *SearchItemsTool) Definition() mcp.Tool {
	return mcp.NewTool("search_items",
		mcp.WithDescription("Search for items across all lists or within a specific list"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for in item text and notes"),
		),
		mcp.WithString("list_name",
			mcp.Description("Optional list name to restrict the search to"),
		),
	)
}

// Handle executes the tool. It never fails; an unknown list_name falls
// back to searching all lists.
func (t *SearchItemsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	listName := req.GetString("list_name", "")

	results := t.store.SearchItems(identity.FromContext(ctx), query, listName)

	return jsonResult(models.SearchResult{
		Result:     models.Result{Success: true},
		Query:      query,
		Results:    results,
		TotalFound: len(results),
	})
}
