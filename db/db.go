package db

import (
	"context"

	"github.com/pcland/storefront-api/types"
)

// Provider represents a database provider implementation
type Provider interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error

	CartProvider
}

// CartProvider provides persistence for the device-scoped cart
// reference sequences. The stored order is the insertion order;
// a missing device resolves to an empty sequence, never an error.
type CartProvider interface {
	GetReferences(ctx context.Context, deviceID string) ([]types.CartReference, error)
	PutReferences(ctx context.Context, deviceID string, references []types.CartReference) error
	ClearReferences(ctx context.Context, deviceID string) error
}
