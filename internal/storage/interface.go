package storage

import (
	"pokelists-mcp/internal/models"
)

// Store defines the interface for list storage operations. Every method
// takes the caller's user ID as its first argument; state is fully
// partitioned by user.
type Store interface {
	// List operations
	CreateList(userID, name, description string) (*models.List, error)
	Lists(userID string) []models.ListSummary
	ListItems(userID, listName string) ([]models.Item, error)
	DeleteList(userID, listName string) (*models.List, error)

	// Item operations
	AddItem(userID, listName, text string, quantity int, notes string) (*models.Item, error)
	RemoveItem(userID, listName string, itemID int) (*models.Item, error)
	ToggleItem(userID, listName string, itemID int) (*models.Item, error)
	SearchItems(userID, query, listName string) []models.SearchMatch

	// Stats returns aggregate counters for health reporting
	Stats() models.StoreStats
}
