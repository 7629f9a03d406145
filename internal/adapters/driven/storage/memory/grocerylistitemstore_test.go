package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

func TestGroceryListItemStore_GetAllForList(t *testing.T) {
	store := NewGroceryListItemStore(
		domain.GroceryListItem{ID: 1, GroceryListID: 1, ProductID: 1, Amount: 2},
		domain.GroceryListItem{ID: 2, GroceryListID: 2, ProductID: 1, Amount: 1},
		domain.GroceryListItem{ID: 3, GroceryListID: 1, ProductID: 3, Amount: 1},
	)
	ctx := context.Background()

	items, err := store.GetAllForList(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)

	items, err = store.GetAllForList(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, items)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGroceryListItemStore_CRUD(t *testing.T) {
	store := NewGroceryListItemStore()
	ctx := context.Background()

	added, err := store.Add(ctx, domain.NewGroceryListItem(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.ID)

	got, err := store.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, *added, *got)

	added.Amount = 7
	updated, err := store.Update(ctx, *added)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Amount)

	deleted, err := store.Delete(ctx, *added)
	require.NoError(t, err)
	assert.NotNil(t, deleted)

	got, err = store.Get(ctx, added.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	updated, err = store.Update(ctx, *added)
	assert.NoError(t, err)
	assert.Nil(t, updated)
}
