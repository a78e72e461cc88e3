package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcland/storefront-api/catalog"
	"github.com/pcland/storefront-api/types"
)

func loadedCache() *catalog.Cache {
	cache := &catalog.Cache{}
	cache.Load([]types.Product{
		{
			ProductID:   "p1",
			ProductName: "Laptop",
			Items: []types.ProductItem{
				{ItemID: "i1", Price: 100000, Discount: 10, ProductCode: "LP-1"},
				{ItemID: "i2", Price: 120000, Discount: 0, ProductCode: "LP-2"},
			},
		},
		{
			ProductID:   "p2",
			ProductName: "Mouse",
			Items: []types.ProductItem{
				{ItemID: "i1", Price: 50000, Discount: 0, ProductCode: "MS-1"},
			},
		},
	})
	return cache
}

func TestReconcileJoinsReferencesAgainstSnapshot(t *testing.T) {
	references := []types.CartReference{
		{ProductID: "p1", ItemID: "i1", Quantity: 2},
		{ProductID: "p2", ItemID: "i1", Quantity: 1},
	}

	lines, err := Reconcile(references, loadedCache())
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// Most recently added first
	assert.Equal(t, "p2", lines[0].ProductID)
	assert.Equal(t, "Mouse", lines[0].ProductName)
	assert.Equal(t, int64(50000), lines[0].Price)
	assert.Equal(t, 1, lines[0].Quantity)

	assert.Equal(t, "p1", lines[1].ProductID)
	assert.Equal(t, "Laptop", lines[1].ProductName)
	assert.Equal(t, int64(100000), lines[1].Price)
	assert.Equal(t, 10.0, lines[1].Discount)
	assert.Equal(t, 2, lines[1].Quantity)
}

func TestReconcileDropsUnresolvedReferences(t *testing.T) {
	references := []types.CartReference{
		{ProductID: "p1", ItemID: "i1", Quantity: 1},
		{ProductID: "gone", ItemID: "i1", Quantity: 1},
		{ProductID: "p1", ItemID: "gone", Quantity: 1},
	}

	lines, err := Reconcile(references, loadedCache())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "i1", lines[0].ItemID)
}

func TestReconcileItemsWithSharedItemIDs(t *testing.T) {
	// Both products use the item ID "i1"; the join key is the pair
	references := []types.CartReference{
		{ProductID: "p1", ItemID: "i1", Quantity: 1},
		{ProductID: "p2", ItemID: "i1", Quantity: 1},
	}

	lines, err := Reconcile(references, loadedCache())
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "LP-1", lines[1].ProductCode)
	assert.Equal(t, "MS-1", lines[0].ProductCode)
}

func TestReconcileEmptyReferences(t *testing.T) {
	lines, err := Reconcile(nil, loadedCache())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReconcileBeforeSnapshotLoaded(t *testing.T) {
	references := []types.CartReference{
		{ProductID: "p1", ItemID: "i1", Quantity: 1},
	}

	// Not-loaded is not a not-found: the pass aborts instead of
	// silently reporting an empty cart
	_, err := Reconcile(references, &catalog.Cache{})
	var notLoaded *catalog.SnapshotNotLoadedError
	require.True(t, errors.As(err, &notLoaded))
}
