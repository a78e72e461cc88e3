package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcland/storefront-api/types"
)

func snapshot() []types.Product {
	return []types.Product{
		{
			ProductID:   "p1",
			ProductName: "Laptop",
			Items: []types.ProductItem{
				{ItemID: "i1", Price: 100000},
				{ItemID: "i2", Price: 120000},
			},
		},
		{
			ProductID:   "p2",
			ProductName: "Mouse",
			Items: []types.ProductItem{
				{ItemID: "i1", Price: 50000},
			},
		},
	}
}

func TestCacheBeforeLoad(t *testing.T) {
	cache := &Cache{}

	_, err := cache.Products()
	var notLoaded *SnapshotNotLoadedError
	require.True(t, errors.As(err, &notLoaded))

	_, err = cache.Product("p1")
	require.True(t, errors.As(err, &notLoaded))

	_, _, err = cache.Item("p1", "i1")
	require.True(t, errors.As(err, &notLoaded))
}

func TestCacheLookupsAfterLoad(t *testing.T) {
	cache := &Cache{}
	cache.Load(snapshot())

	products, err := cache.Products()
	require.NoError(t, err)
	assert.Len(t, products, 2)

	product, err := cache.Product("p2")
	require.NoError(t, err)
	assert.Equal(t, "Mouse", product.ProductName)

	product, item, err := cache.Item("p1", "i2")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", product.ProductName)
	assert.Equal(t, int64(120000), item.Price)
}

func TestCacheMissingLookups(t *testing.T) {
	cache := &Cache{}
	cache.Load(snapshot())

	_, err := cache.Product("gone")
	var productNotFound *ProductNotFoundError
	require.True(t, errors.As(err, &productNotFound))
	assert.Equal(t, "gone", productNotFound.ProductID)

	_, _, err = cache.Item("p1", "gone")
	var itemNotFound *ItemNotFoundError
	require.True(t, errors.As(err, &itemNotFound))

	// An item ID that exists under a different product does not resolve
	_, _, err = cache.Item("p2", "i2")
	require.True(t, errors.As(err, &itemNotFound))
}

func TestLoadReplacesSnapshotWholesale(t *testing.T) {
	cache := &Cache{}
	cache.Load(snapshot())

	cache.Load([]types.Product{
		{ProductID: "p3", ProductName: "Keyboard", Items: []types.ProductItem{{ItemID: "i1"}}},
	})

	_, err := cache.Product("p1")
	var productNotFound *ProductNotFoundError
	require.True(t, errors.As(err, &productNotFound))

	product, err := cache.Product("p3")
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", product.ProductName)
}
