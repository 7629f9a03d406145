package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

func kaas() domain.Product {
	return domain.Product{
		ID:        3,
		Name:      "Kaas",
		Stock:     100,
		ShelfLife: domain.NewDate(2026, time.June, 30),
		Price:     decimal.RequireFromString("3.50"),
	}
}

func TestProductStore_AddAssignsIDsAfterInitial(t *testing.T) {
	store := NewProductStore(kaas())
	ctx := context.Background()

	added, err := store.Add(ctx, domain.NewProduct("Yoghurt", 50, domain.NewDate(2026, time.January, 1), decimal.RequireFromString("1.89")))
	require.NoError(t, err)
	assert.Equal(t, int64(4), added.ID)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(3), all[0].ID)
	assert.Equal(t, int64(4), all[1].ID)
}

func TestProductStore_GetNotFound(t *testing.T) {
	store := NewProductStore()

	p, err := store.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductStore_GetReturnsCopy(t *testing.T) {
	store := NewProductStore(kaas())
	ctx := context.Background()

	p, err := store.Get(ctx, 3)
	require.NoError(t, err)
	p.Name = "changed"

	again, err := store.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Kaas", again.Name)
}

func TestProductStore_UpdateAndDelete(t *testing.T) {
	store := NewProductStore(kaas())
	ctx := context.Background()

	changed := kaas()
	changed.Stock = 5
	updated, err := store.Update(ctx, changed)
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := store.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)

	missing := kaas()
	missing.ID = 9
	updated, err = store.Update(ctx, missing)
	assert.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := store.Delete(ctx, changed)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	deleted, err = store.Delete(ctx, changed)
	assert.NoError(t, err)
	assert.Nil(t, deleted)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductStore_IDsNotReused(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	first, err := store.Add(ctx, kaas())
	require.NoError(t, err)
	_, err = store.Delete(ctx, *first)
	require.NoError(t, err)

	second, err := store.Add(ctx, kaas())
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}
