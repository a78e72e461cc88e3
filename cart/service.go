package cart

import (
	"context"
	"strings"

	"github.com/pcland/storefront-api/db"
	"github.com/pcland/storefront-api/types"
)

// Service owns the device-scoped cart reference sequences.
// Every operation loads the stored sequence, mutates it and persists
// the result before returning; concurrent mutations on the same device
// follow last-write-wins with no sequencing.
type Service struct {
	store db.CartProvider
}

// NewService creates a new cart service on top of a cart provider
func NewService(store db.CartProvider) *Service {
	return &Service{
		store: store,
	}
}

// References gets the ordered reference sequence for a device,
// oldest first
func (s *Service) References(ctx context.Context, deviceID string) ([]types.CartReference, error) {
	return s.store.GetReferences(ctx, deviceID)
}

// Add appends a reference to the device's cart.
// Adding a (productID, itemID) pair that is already present sums the
// quantities into the existing reference, which keeps its position.
// The returned result reports validation failures; the store is only
// touched when it is successful.
func (s *Service) Add(ctx context.Context, deviceID string, reference types.CartReference) (types.ValidationResult, error) {
	reference.ProductID = strings.TrimSpace(reference.ProductID)
	reference.ItemID = strings.TrimSpace(reference.ItemID)

	if reference.ProductID == "" || reference.ItemID == "" {
		return types.ValidationResult{Success: false, Message: "product and item identifiers cannot be blank"}, nil
	}
	if reference.Quantity < 1 {
		return types.ValidationResult{Success: false, Message: "quantity must be at least 1"}, nil
	}

	references, err := s.store.GetReferences(ctx, deviceID)
	if err != nil {
		return types.ValidationResult{}, err
	}

	merged := false
	for i, existing := range references {
		if existing.ProductID == reference.ProductID && existing.ItemID == reference.ItemID {
			references[i].Quantity += reference.Quantity
			merged = true
			break
		}
	}
	if !merged {
		references = append(references, reference)
	}

	err = s.store.PutReferences(ctx, deviceID, references)
	if err != nil {
		return types.ValidationResult{}, err
	}

	return types.ValidationResult{Success: true}, nil
}

// Remove deletes the reference with the given key from the device's cart.
// Removing an absent reference is a no-op; the store is left unchanged.
func (s *Service) Remove(ctx context.Context, deviceID string, productID string, itemID string) error {
	references, err := s.store.GetReferences(ctx, deviceID)
	if err != nil {
		return err
	}

	remaining := make([]types.CartReference, 0, len(references))
	for _, reference := range references {
		if reference.ProductID != productID || reference.ItemID != itemID {
			remaining = append(remaining, reference)
		}
	}

	if len(remaining) == len(references) {
		return nil
	}

	return s.store.PutReferences(ctx, deviceID, remaining)
}

// SetQuantity updates the quantity on an existing reference.
// A quantity below 1 is rejected without mutating the store;
// no stock-aware upper bound is enforced.
func (s *Service) SetQuantity(ctx context.Context, deviceID string, productID string, itemID string, quantity int) (types.ValidationResult, error) {
	if quantity < 1 {
		return types.ValidationResult{Success: false, Message: "quantity must be at least 1"}, nil
	}

	references, err := s.store.GetReferences(ctx, deviceID)
	if err != nil {
		return types.ValidationResult{}, err
	}

	for i, reference := range references {
		if reference.ProductID == productID && reference.ItemID == itemID {
			references[i].Quantity = quantity
			err = s.store.PutReferences(ctx, deviceID, references)
			if err != nil {
				return types.ValidationResult{}, err
			}

			return types.ValidationResult{Success: true}, nil
		}
	}

	return types.ValidationResult{Success: false, Message: "item is not in the cart"}, nil
}

// Clear removes every reference from the device's cart
func (s *Service) Clear(ctx context.Context, deviceID string) error {
	return s.store.ClearReferences(ctx, deviceID)
}
