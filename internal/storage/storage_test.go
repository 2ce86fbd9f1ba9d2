package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "user-a"

func TestNewStorage(t *testing.T) {
	store := NewStorage()
	assert.NotNil(t, store)
	assert.NotNil(t, store.users)
}

func TestCreateList(t *testing.T) {
	store := NewStorage()

	t.Run("successfully creates a list", func(t *testing.T) {
		list, err := store.CreateList(testUser, "Work Tasks", "Tasks for work")
		require.NoError(t, err)
		assert.Equal(t, "Work Tasks", list.Name)
		assert.Equal(t, "Tasks for work", list.Description)
		assert.Empty(t, list.Items)
	})

	t.Run("fails when list name already exists", func(t *testing.T) {
		_, err := store.CreateList(testUser, "Duplicate List", "First")
		require.NoError(t, err)

		_, err = store.CreateList(testUser, "Duplicate List", "Second")
		assert.ErrorIs(t, err, ErrListNameExists)
	})

	t.Run("name collision leaves the existing list unmodified", func(t *testing.T) {
		_, err := store.CreateList(testUser, "Groceries", "Weekly shopping")
		require.NoError(t, err)
		_, err = store.AddItem(testUser, "Groceries", "Milk", 1, "")
		require.NoError(t, err)

		_, err = store.CreateList(testUser, "Groceries", "Something else")
		assert.ErrorIs(t, err, ErrListNameExists)

		items, err := store.ListItems(testUser, "Groceries")
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Milk", items[0].Text)
	})

	t.Run("same name is allowed for different users", func(t *testing.T) {
		_, err := store.CreateList("user-b", "Work Tasks", "")
		assert.NoError(t, err)
	})
}

func TestAddItem(t *testing.T) {
	store := NewStorage()
	_, err := store.CreateList(testUser, "Groceries", "")
	require.NoError(t, err)

	t.Run("assigns sequential ids without removals", func(t *testing.T) {
		for i := 1; i <= 5; i++ {
			item, err := store.AddItem(testUser, "Groceries", "Item", 1, "")
			require.NoError(t, err)
			assert.Equal(t, i, item.ID)
		}
	})

	t.Run("applies defaults", func(t *testing.T) {
		item, err := store.AddItem(testUser, "Groceries", "Bread", 1, "")
		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, "", item.Notes)
		assert.False(t, item.Completed)
	})

	t.Run("fails when list does not exist", func(t *testing.T) {
		_, err := store.AddItem(testUser, "No Such List", "Milk", 1, "")
		assert.ErrorIs(t, err, ErrListNotFound)
	})

	t.Run("id can collide with a surviving item after a removal", func(t *testing.T) {
		_, err := store.CreateList(testUser, "Collisions", "")
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			_, err := store.AddItem(testUser, "Collisions", "Item", 1, "")
			require.NoError(t, err)
		}

		_, err = store.RemoveItem(testUser, "Collisions", 2)
		require.NoError(t, err)

		// Count is now 2, so the new item gets id 3 even though an
		// item with id 3 survives.
		item, err := store.AddItem(testUser, "Collisions", "New Item", 1, "")
		require.NoError(t, err)
		assert.Equal(t, 3, item.ID)

		items, err := store.ListItems(testUser, "Collisions")
		require.NoError(t, err)
		ids := make([]int, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}
		assert.Equal(t, []int{1, 3, 3}, ids)
	})
}

func TestLists(t *testing.T) {
	store := NewStorage()

	t.Run("returns empty summaries for a new user", func(t *testing.T) {
		assert.Empty(t, store.Lists("nobody"))
	})

	t.Run("returns summaries in creation order", func(t *testing.T) {
		for _, name := range []string{"Alpha", "Beta", "Gamma"} {
			_, err := store.CreateList(testUser, name, "desc "+name)
			require.NoError(t, err)
		}

		summaries := store.Lists(testUser)
		require.Len(t, summaries, 3)
		assert.Equal(t, "Alpha", summaries[0].Name)
		assert.Equal(t, "Beta", summaries[1].Name)
		assert.Equal(t, "Gamma", summaries[2].Name)
	})

	t.Run("counts items and completed items", func(t *testing.T) {
		_, err := store.CreateList(testUser, "Counted", "")
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			_, err := store.AddItem(testUser, "Counted", "Item", 1, "")
			require.NoError(t, err)
		}
		_, err = store.ToggleItem(testUser, "Counted", 1)
		require.NoError(t, err)
		_, err = store.ToggleItem(testUser, "Counted", 3)
		require.NoError(t, err)

		found := false
		for _, s := range store.Lists(testUser) {
			if s.Name == "Counted" {
				found = true
				assert.Equal(t, 4, s.ItemCount)
				assert.Equal(t, 2, s.CompletedCount)
			}
		}
		require.True(t, found)
	})
}

func TestListItems(t *testing.T) {
	store := NewStorage()
	_, err := store.CreateList(testUser, "Groceries", "")
	require.NoError(t, err)
	_, err = store.AddItem(testUser, "Groceries", "Milk", 2, "whole")
	require.NoError(t, err)

	t.Run("returns items in insertion order", func(t *testing.T) {
		_, err := store.AddItem(testUser, "Groceries", "Eggs", 1, "")
		require.NoError(t, err)

		items, err := store.ListItems(testUser, "Groceries")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Milk", items[0].Text)
		assert.Equal(t, "Eggs", items[1].Text)
	})

	t.Run("fails when list does not exist", func(t *testing.T) {
		_, err := store.ListItems(testUser, "Missing")
		assert.ErrorIs(t, err, ErrListNotFound)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		items, err := store.ListItems(testUser, "Groceries")
		require.NoError(t, err)
		items[0].Text = "Mutated"

		fresh, err := store.ListItems(testUser, "Groceries")
		require.NoError(t, err)
		assert.Equal(t, "Milk", fresh[0].Text)
	})
}

func TestRemoveItem(t *testing.T) {
	store := NewStorage()
	_, err := store.CreateList(testUser, "Groceries", "")
	require.NoError(t, err)
	for _, text := range []string{"Milk", "Eggs", "Bread"} {
		_, err := store.AddItem(testUser, "Groceries", text, 1, "")
		require.NoError(t, err)
	}

	t.Run("removes exactly one item by id", func(t *testing.T) {
		removed, err := store.RemoveItem(testUser, "Groceries", 2)
		require.NoError(t, err)
		assert.Equal(t, "Eggs", removed.Text)

		items, err := store.ListItems(testUser, "Groceries")
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("second removal with the same id fails", func(t *testing.T) {
		_, err := store.RemoveItem(testUser, "Groceries", 2)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("fails when list does not exist", func(t *testing.T) {
		_, err := store.RemoveItem(testUser, "Missing", 1)
		assert.ErrorIs(t, err, ErrListNotFound)
	})
}

func TestToggleItem(t *testing.T) {
	store := NewStorage()
	_, err := store.CreateList(testUser, "Groceries", "")
	require.NoError(t, err)
	_, err = store.AddItem(testUser, "Groceries", "Milk", 1, "")
	require.NoError(t, err)

	t.Run("toggling twice restores the original state", func(t *testing.T) {
		item, err := store.ToggleItem(testUser, "Groceries", 1)
		require.NoError(t, err)
		assert.True(t, item.Completed)

		item, err = store.ToggleItem(testUser, "Groceries", 1)
		require.NoError(t, err)
		assert.False(t, item.Completed)
	})

	t.Run("fails when item does not exist", func(t *testing.T) {
		_, err := store.ToggleItem(testUser, "Groceries", 42)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("fails when list does not exist", func(t *testing.T) {
		_, err := store.ToggleItem(testUser, "Missing", 1)
		assert.ErrorIs(t, err, ErrListNotFound)
	})
}

func TestDeleteList(t *testing.T) {
	store := NewStorage()
	_, err := store.CreateList(testUser, "Doomed", "going away")
	require.NoError(t, err)
	_, err = store.AddItem(testUser, "Doomed", "Item", 1, "")
	require.NoError(t, err)

	t.Run("removes the list and returns it", func(t *testing.T) {
		deleted, err := store.DeleteList(testUser, "Doomed")
		require.NoError(t, err)
		assert.Equal(t, "Doomed", deleted.Name)
		assert.Len(t, deleted.Items, 1)

		_, err = store.ListItems(testUser, "Doomed")
		assert.ErrorIs(t, err, ErrListNotFound)
		assert.Empty(t, store.Lists(testUser))
	})

	t.Run("fails when list does not exist", func(t *testing.T) {
		_, err := store.DeleteList(testUser, "Doomed")
		assert.ErrorIs(t, err, ErrListNotFound)
	})

	t.Run("name can be reused after deletion", func(t *testing.T) {
		_, err := store.CreateList(testUser, "Doomed", "back again")
		require.NoError(t, err)

		items, err := store.ListItems(testUser, "Doomed")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestSearchItems(t *testing.T) {
	store := NewStorage()
	_, err := store.CreateList(testUser, "Groceries", "")
	require.NoError(t, err)
	_, err = store.CreateList(testUser, "Hardware", "")
	require.NoError(t, err)
	_, err = store.AddItem(testUser, "Groceries", "Milk", 2, "whole milk")
	require.NoError(t, err)
	_, err = store.AddItem(testUser, "Groceries", "Eggs", 12, "")
	require.NoError(t, err)
	_, err = store.AddItem(testUser, "Hardware", "Nails", 100, "for the milk crate")
	require.NoError(t, err)

	t.Run("matches item text case-insensitively", func(t *testing.T) {
		results := store.SearchItems(testUser, "MILK", "")
		require.Len(t, results, 2)
		assert.Equal(t, "Groceries", results[0].ListName)
		assert.Equal(t, "Milk", results[0].Item.Text)
	})

	t.Run("matches notes as well as text", func(t *testing.T) {
		results := store.SearchItems(testUser, "crate", "")
		require.Len(t, results, 1)
		assert.Equal(t, "Hardware", results[0].ListName)
		assert.Equal(t, "Nails", results[0].Item.Text)
	})

	t.Run("restricts search to a named list", func(t *testing.T) {
		results := store.SearchItems(testUser, "milk", "Groceries")
		require.Len(t, results, 1)
		assert.Equal(t, "Groceries", results[0].ListName)
	})

	t.Run("unknown list name falls back to searching all lists", func(t *testing.T) {
		results := store.SearchItems(testUser, "milk", "No Such List")
		assert.Len(t, results, 2)
	})

	t.Run("empty query returns no results", func(t *testing.T) {
		results := store.SearchItems(testUser, "", "")
		assert.Empty(t, results)
	})

	t.Run("non-matching query returns no results", func(t *testing.T) {
		results := store.SearchItems(testUser, "zucchini", "")
		assert.Empty(t, results)
	})
}

func TestUserIsolation(t *testing.T) {
	store := NewStorage()

	_, err := store.CreateList("user-a", "Groceries", "")
	require.NoError(t, err)
	_, err = store.AddItem("user-a", "Groceries", "Milk", 1, "")
	require.NoError(t, err)

	t.Run("another user does not see the list", func(t *testing.T) {
		assert.Empty(t, store.Lists("user-b"))
		assert.Empty(t, store.Lists("anonymous"))

		_, err := store.ListItems("user-b", "Groceries")
		assert.ErrorIs(t, err, ErrListNotFound)
	})

	t.Run("another user cannot mutate the list", func(t *testing.T) {
		_, err := store.AddItem("user-b", "Groceries", "Eggs", 1, "")
		assert.ErrorIs(t, err, ErrListNotFound)

		_, err = store.DeleteList("user-b", "Groceries")
		assert.ErrorIs(t, err, ErrListNotFound)

		items, err := store.ListItems("user-a", "Groceries")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("search is scoped to the calling user", func(t *testing.T) {
		assert.Empty(t, store.SearchItems("user-b", "milk", ""))
	})
}

func TestStats(t *testing.T) {
	store := NewStorage()

	assert.Equal(t, 0, store.Stats().Users)

	_, err := store.CreateList("user-a", "One", "")
	require.NoError(t, err)
	_, err = store.CreateList("user-b", "Two", "")
	require.NoError(t, err)
	_, err = store.AddItem("user-a", "One", "Item", 1, "")
	require.NoError(t, err)

	stats := store.Stats()
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 2, stats.Lists)
	assert.Equal(t, 1, stats.Items)
}
