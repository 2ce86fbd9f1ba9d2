package models

// Item represents a single entry within a list.
//
// IDs are assigned as (current item count in the list) + 1 at insertion
// time. Removed items are never renumbered, so after a removal a newly
// added item can collide with a surviving item's ID. This mirrors the
// behavior existing clients depend on and is intentionally left alone.
type Item struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
	Completed bool   `json:"completed"`
}

// List represents a named, user-owned collection of items
type List struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
}

// ListSummary is the per-list overview returned by get_lists
type ListSummary struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	ItemCount      int    `json:"item_count"`
	CompletedCount int    `json:"completed_count"`
}

// SearchMatch pairs a matching item with the list it was found in
type SearchMatch struct {
	ListName string `json:"list_name"`
	Item     Item   `json:"item"`
}

// StoreStats holds aggregate counters across all users, reported by the
// detailed health endpoint
type StoreStats struct {
	Users int `json:"users"`
	Lists int `json:"lists"`
	Items int `json:"items"`
}

// Result is the envelope shared by every tool response. Failures carry
// only these two fields; successful responses embed it in one of the
// operation-specific result types below.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateListResult is the success payload for create_list
type CreateListResult struct {
	Result
	List *List `json:"list,omitempty"`
}

// AddItemResult is the success payload for add_item_to_list
type AddItemResult struct {
	Result
	Item *Item `json:"item,omitempty"`
}

// ListsResult is the payload for get_lists, which never fails
type ListsResult struct {
	Result
	Lists      []ListSummary `json:"lists"`
	TotalLists int           `json:"total_lists"`
}

// ListItemsResult is the success payload for get_list_items
type ListItemsResult struct {
	Result
	ListName   string `json:"list_name"`
	Items      []Item `json:"items"`
	TotalItems int    `json:"total_items"`
}

// RemoveItemResult is the success payload for remove_item_from_list
type RemoveItemResult struct {
	Result
	RemovedItem *Item `json:"removed_item,omitempty"`
}

// DeleteListResult is the success payload for delete_list
type DeleteListResult struct {
	Result
	DeletedList *List `json:"deleted_list,omitempty"`
}

// ToggleItemResult is the success payload for toggle_item_completion
type ToggleItemResult struct {
	Result
	Item *Item `json:"item,omitempty"`
}

// SearchResult is the payload for search_items, which never fails
type SearchResult struct {
	Result
	Query      string        `json:"query"`
	Results    []SearchMatch `json:"results"`
	TotalFound int           `json:"total_found"`
}
