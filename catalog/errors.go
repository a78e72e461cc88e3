package catalog

import "fmt"

// SnapshotNotLoadedError is an error used to encode when the catalog
// snapshot has not been fetched yet
type SnapshotNotLoadedError struct {
	Action string
}

// NewSnapshotNotLoadedError constructs a new SnapshotNotLoadedError
func NewSnapshotNotLoadedError(action string) *SnapshotNotLoadedError {
	return &SnapshotNotLoadedError{
		Action: action,
	}
}

func (e *SnapshotNotLoadedError) Error() string {
	return fmt.Sprintf("cannot %s: catalog snapshot has not been loaded", e.Action)
}

// ProductNotFoundError is an error used to encode when a product
// isn't found in the current catalog snapshot
type ProductNotFoundError struct {
	ProductID string
}

// NewProductNotFoundError constructs a new ProductNotFoundError
func NewProductNotFoundError(productID string) *ProductNotFoundError {
	return &ProductNotFoundError{
		ProductID: productID,
	}
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with identifier '%s' not found in the catalog snapshot",
		e.ProductID)
}

// ItemNotFoundError is an error used to encode when a product exists
// but the requested item (variant) isn't found on it
type ItemNotFoundError struct {
	ProductID string
	ItemID    string
}

// NewItemNotFoundError constructs a new ItemNotFoundError
func NewItemNotFoundError(productID string, itemID string) *ItemNotFoundError {
	return &ItemNotFoundError{
		ProductID: productID,
		ItemID:    itemID,
	}
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item with identifier '%s' on product '%s' not found in the catalog snapshot",
		e.ItemID, e.ProductID)
}
