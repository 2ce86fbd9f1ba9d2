package storage

import (
	"errors"
	"strings"
	"sync"

	"pokelists-mcp/internal/models"
)

var (
	ErrListNotFound   = errors.New("list not found")
	ErrItemNotFound   = errors.New("item not found in list")
	ErrListNameExists = errors.New("list with this name already exists")
)

// userLists holds one user's lists. All mutations for a user are
// serialized on its mutex, so concurrent requests from the same user
// cannot interleave mid-operation.
type userLists struct {
	mu    sync.Mutex
	lists map[string]*models.List
	order []string // list names in creation order, for deterministic output
}

// Storage provides in-memory, per-user storage for lists and items.
// Entries live for the life of the process; nothing is persisted.
type Storage struct {
	mu    sync.Mutex
	users map[string]*userLists
}

// NewStorage creates a new in-memory storage instance
func NewStorage() *Storage {
	return &Storage{
		users: make(map[string]*userLists),
	}
}

// user returns the lists for a user, creating them lazily on first access
func (s *Storage) user(userID string) *userLists {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[userID]
	if !exists {
		u = &userLists{lists: make(map[string]*models.List)}
		s.users[userID] = u
	}
	return u
}

// CreateList creates a new, empty list for a user
func (s *Storage) CreateList(userID, name, description string) (*models.List, error) {
	u := s.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.lists[name]; exists {
		return nil, ErrListNameExists
	}

	list := &models.List{
		Name:        name,
		Description: description,
		Items:       []models.Item{},
	}
	u.lists[name] = list
	u.order = append(u.order, name)

	return copyList(list), nil
}

// Lists returns summaries of all of a user's lists in creation order
func (s *Storage) Lists(userID string) []models.ListSummary {
	u := s.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	summaries := make([]models.ListSummary, 0, len(u.order))
	for _, name := range u.order {
		list := u.lists[name]
		completed := 0
		for _, item := range list.Items {
			if item.Completed {
				completed++
			}
		}
		summaries = append(summaries, models.ListSummary{
			Name:           list.Name,
			Description:    list.Description,
			ItemCount:      len(list.Items),
			CompletedCount: completed,
		})
	}
	return summaries
}

// ListItems returns all items in one of a user's lists
func (s *Storage) ListItems(userID, listName string) ([]models.Item, error) {
	u := s.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	list, exists := u.lists[listName]
	if !exists {
		return nil, ErrListNotFound
	}

	items := make([]models.Item, len(list.Items))
	copy(items, list.Items)
	return items, nil
}

// DeleteList removes an entire list, releasing its items with it
func (s *Storage) DeleteList(userID, listName string) (*models.List, error) {
	u := s.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	list, exists := u.lists[listName]
	if !exists {
		return nil, ErrListNotFound
	}

	delete(u.lists, listName)
	for i, name := range u.order {
		if name == listName {
			u.order = append(u.order[:i], u.order[i+1:]...)
			break
		}
	}

	return copyList(list), nil
}

// AddItem appends a new item to a list. The item ID is the current item
// count plus one; see the models.Item doc for the resulting ID semantics.
func (s *Storage) AddItem(userID, listName, text string, quantity int, notes string) (*models.Item, error) {
	u := s.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	list, exists := u.lists[listName]
	if !exists {
		return nil, ErrListNotFound
	}

	item := models.Item{
		ID:        len(list.Items) + 1,
		Text:      text,
		Quantity:  quantity,
		Notes:     notes,
		Completed: false,
	}
	list.Items = append(list.Items, item)

	return &item, nil
}

// RemoveItem removes the first item with a matching ID from a list
func (s *Storage) RemoveItem(userID, listName string, itemID int) (*models.Item, error) {
	u := s.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	list, exists := u.lists[listName]
	if !exists {
		return nil, ErrListNotFound
	}

	for i, item := range list.Items {
		if item.ID == itemID {
			removed := item
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			return &removed, nil
		}
	}

	return nil, ErrItemNotFound
}

// ToggleItem flips the completed flag on the first item with a matching ID
func (s *Storage) ToggleItem(userID, listName string, itemID int) (*models.Item, error) {
	u := s.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	list, exists := u.lists[listName]
	if !exists {
		return nil, ErrListNotFound
	}

	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items[i].Completed = !list.Items[i].Completed
			item := list.Items[i]
			return &item, nil
		}
	}

	return nil, ErrItemNotFound
}

// SearchItems returns all items whose text or notes contain the query,
// case-insensitively. If listName names an existing list the search is
// restricted to it; an empty or unknown listName searches every list.
// An unknown listName deliberately falls back to searching everything
// rather than failing, matching the behavior clients already rely on.
func (s *Storage) SearchItems(userID, query, listName string) []models.SearchMatch {
	u := s.user(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	results := []models.SearchMatch{}
	if query == "" {
		return results
	}

	names := u.order
	if listName != "" {
		if _, exists := u.lists[listName]; exists {
			names = []string{listName}
		}
	}

	needle := strings.ToLower(query)
	for _, name := range names {
		list := u.lists[name]
		for _, item := range list.Items {
			if strings.Contains(strings.ToLower(item.Text), needle) ||
				strings.Contains(strings.ToLower(item.Notes), needle) {
				results = append(results, models.SearchMatch{
					ListName: name,
					Item:     item,
				})
			}
		}
	}
	return results
}

// Stats counts users, lists, and items across the whole store
func (s *Storage) Stats() models.StoreStats {
	s.mu.Lock()
	users := make([]*userLists, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.Unlock()

	stats := models.StoreStats{Users: len(users)}
	for _, u := range users {
		u.mu.Lock()
		stats.Lists += len(u.lists)
		for _, list := range u.lists {
			stats.Items += len(list.Items)
		}
		u.mu.Unlock()
	}
	return stats
}

// copyList returns a deep copy so callers never hold references into
// store-owned state
func copyList(list *models.List) *models.List {
	items := make([]models.Item, len(list.Items))
	copy(items, list.Items)
	return &models.List{
		Name:        list.Name,
		Description: list.Description,
		Items:       items,
	}
}
