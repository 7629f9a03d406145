package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/grocery-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

func newTestGroceryListService() *GroceryListService {
	return NewGroceryListService(memory.NewGroceryListItemStore(
		domain.GroceryListItem{ID: 1, GroceryListID: 1, ProductID: 1, Amount: 2},
		domain.GroceryListItem{ID: 2, GroceryListID: 1, ProductID: 2, Amount: 3},
		domain.GroceryListItem{ID: 3, GroceryListID: 2, ProductID: 3, Amount: 1},
	))
}

func TestGroceryListService_Items(t *testing.T) {
	svc := newTestGroceryListService()

	items, err := svc.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestGroceryListService_ItemsForList(t *testing.T) {
	svc := newTestGroceryListService()
	ctx := context.Background()

	items, err := svc.ItemsForList(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.ItemsForList(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGroceryListService_AddItem(t *testing.T) {
	svc := newTestGroceryListService()
	ctx := context.Background()

	item := domain.NewGroceryListItem(2, 1, 4)
	item.ID = 2

	added, err := svc.AddItem(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, int64(4), added.ID)

	got, err := svc.Item(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Amount)

	original, err := svc.Item(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, original.Amount)
}

func TestGroceryListService_UpdateItem(t *testing.T) {
	svc := newTestGroceryListService()
	ctx := context.Background()

	updated, err := svc.UpdateItem(ctx, domain.GroceryListItem{ID: 1, GroceryListID: 1, ProductID: 1, Amount: 9})
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := svc.Item(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Amount)

	updated, err = svc.UpdateItem(ctx, domain.GroceryListItem{ID: 50})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestGroceryListService_RemoveItem(t *testing.T) {
	svc := newTestGroceryListService()
	ctx := context.Background()

	removed, err := svc.RemoveItem(ctx, domain.GroceryListItem{ID: 3})
	require.NoError(t, err)
	require.NotNil(t, removed)

	items, err := svc.ItemsForList(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, items)

	removed, err = svc.RemoveItem(ctx, domain.GroceryListItem{ID: 3})
	assert.NoError(t, err)
	assert.Nil(t, removed)
}
