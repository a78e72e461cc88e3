package catalog

import (
	"context"

	"github.com/pcland/storefront-api/types"
)

// Provider represents a remote catalog provider,
// including its connection lifecycle
type Provider interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error

	SnapshotProvider
}

// SnapshotProvider exposes the most recently fetched catalog snapshot
type SnapshotProvider interface {
	Products() ([]types.Product, error)
	Product(productID string) (*types.Product, error)
	Item(productID string, itemID string) (*types.Product, *types.ProductItem, error)
}
