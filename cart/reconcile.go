package cart

import (
	"errors"

	"github.com/pcland/storefront-api/catalog"
	"github.com/pcland/storefront-api/types"
)

// ItemLookup resolves a (productID, itemID) pair against a catalog
// snapshot. Satisfied by catalog.Cache and catalog.Provider.
type ItemLookup interface {
	Item(productID string, itemID string) (*types.Product, *types.ProductItem, error)
}

// Reconcile joins a device's cart references against a catalog snapshot,
// producing the display-ready cart rows most-recently-added first.
//
// The join is inner on (productID, itemID): a reference that no longer
// resolves contributes nothing to the output. It stays in storage; only
// the display list drops it.
// Only not-found lookups are dropped; any other lookup failure
// (such as the snapshot not having been loaded yet) aborts the pass.
//
// This is a full recompute over the reference sequence; there is no
// incremental update path.
func Reconcile(references []types.CartReference, lookup ItemLookup) ([]types.CartLine, error) {
	lines := make([]types.CartLine, 0, len(references))

	for i := len(references) - 1; i >= 0; i-- {
		reference := references[i]

		product, item, err := lookup.Item(reference.ProductID, reference.ItemID)
		if err != nil {
			var productNotFound *catalog.ProductNotFoundError
			var itemNotFound *catalog.ItemNotFoundError
			if errors.As(err, &productNotFound) || errors.As(err, &itemNotFound) {
				// Silent drop: the reference points at nothing
				// in this snapshot
				continue
			}

			return nil, err
		}

		lines = append(lines, types.CartLine{
			ProductID:   product.ProductID,
			ItemID:      item.ItemID,
			ProductName: product.ProductName,
			Thumbnail:   item.Thumbnail,
			Price:       item.Price,
			Discount:    item.Discount,
			Quantity:    reference.Quantity,
			ProductCode: item.ProductCode,
			ColorName:   item.ColorName,
			StorageName: item.StorageName,
			Height:      product.Height,
			Weight:      product.Weight,
			Length:      product.Length,
			Width:       product.Width,
		})
	}

	return lines, nil
}
