// Package server wires the MCP server together: it creates the tool
// implementations, registers them, and exposes the streamable HTTP
// transport. No business logic lives here, only wiring.
package server

import (
	"pokelists-mcp/internal/identity"
	"pokelists-mcp/internal/storage"
	"pokelists-mcp/internal/tools"

	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with all list tools registered against the
// given store. The store is injected so tests can run against a fresh
// instance per test.
func New(store storage.Store) *server.MCPServer {
	s := server.NewMCPServer(
		"Poke Lists MCP Server",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	createList := tools.NewCreateListTool(store)
	s.AddTool(createList.Definition(), createList.Handle)

	addItem := tools.NewAddItemTool(store)
	s.AddTool(addItem.Definition(), addItem.Handle)

	getLists := tools.NewGetListsTool(store)
	s.AddTool(getLists.Definition(), getLists.Handle)

	getListItems := tools.NewGetListItemsTool(store)
	s.AddTool(getListItems.Definition(), getListItems.Handle)

	removeItem := tools.NewRemoveItemTool(store)
	s.AddTool(removeItem.Definition(), removeItem.Handle)

	deleteList := tools.NewDeleteListTool(store)
	s.AddTool(deleteList.Definition(), deleteList.Handle)

	toggleItem := tools.NewToggleItemTool(store)
	s.AddTool(toggleItem.Definition(), toggleItem.Handle)

	searchItems := tools.NewSearchItemsTool(store)
	s.AddTool(searchItems.Definition(), searchItems.Handle)

	return s
}

// NewStreamableHTTP wraps an MCP server in the stateless streamable HTTP
// transport. The identity hook copies the x-user-id header onto the
// request context before any tool handler runs.
func NewStreamableHTTP(s *server.MCPServer) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s,
		server.WithStateLess(true),
		server.WithHTTPContextFunc(identity.FromRequest),
	)
}
