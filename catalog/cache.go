package catalog

import (
	"sync"

	"github.com/pcland/storefront-api/types"
)

type itemKey struct {
	productID string
	itemID    string
}

// Cache holds a point-in-time snapshot of the remote catalog
// that implements the SnapshotProvider interface
type Cache struct {
	sync.Mutex
	loaded   bool
	products []types.Product
	byID     map[string]int
	items    map[itemKey]int
}

// Load replaces the cache contents with the given snapshot,
// marking it as ready.
//
// Note: keeps the passed in slice as the backing store;
// the caller cannot reuse it afterwards
func (c *Cache) Load(products []types.Product) {
	c.Lock()
	defer c.Unlock()

	c.loaded = true
	c.products = products

	// Build the lookup indexes
	c.byID = make(map[string]int)
	c.items = make(map[itemKey]int)
	for i, product := range products {
		c.byID[product.ProductID] = i
		for j, item := range product.Items {
			c.items[itemKey{product.ProductID, item.ItemID}] = j
		}
	}
}

// Products gets all products in the current snapshot
func (c *Cache) Products() ([]types.Product, error) {
	c.Lock()
	defer c.Unlock()

	if !c.loaded {
		return nil, NewSnapshotNotLoadedError("list products")
	}

	return c.products, nil
}

// Product gets a single product from the current snapshot by its ID
func (c *Cache) Product(productID string) (*types.Product, error) {
	c.Lock()
	defer c.Unlock()

	if !c.loaded {
		return nil, NewSnapshotNotLoadedError("get product")
	}

	if i, ok := c.byID[productID]; ok {
		product := c.products[i]
		return &product, nil
	}

	return nil, NewProductNotFoundError(productID)
}

// Item resolves a (productID, itemID) pair against the current snapshot,
// returning both the owning product and the matching item
func (c *Cache) Item(productID string, itemID string) (*types.Product, *types.ProductItem, error) {
	c.Lock()
	defer c.Unlock()

	if !c.loaded {
		return nil, nil, NewSnapshotNotLoadedError("resolve catalog item")
	}

	i, ok := c.byID[productID]
	if !ok {
		return nil, nil, NewProductNotFoundError(productID)
	}

	j, ok := c.items[itemKey{productID, itemID}]
	if !ok {
		return nil, nil, NewItemNotFoundError(productID, itemID)
	}

	product := c.products[i]
	item := product.Items[j]
	return &product, &item, nil
}
