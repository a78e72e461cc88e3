package admin

import (
	"context"
	"log"
	"sync"

	"github.com/pcland/storefront-api/catalog/remote"
	"github.com/pcland/storefront-api/types"
	"github.com/pcland/storefront-api/validate"
)

// ProductController holds the product screen's view of the remote
// product list and applies mutations to it
type ProductController struct {
	client *remote.Client

	mu       sync.Mutex
	products []types.Product
}

// NewProductController creates a new controller with an empty view
func NewProductController(client *remote.Client) *ProductController {
	return &ProductController{
		client:   client,
		products: []types.Product{},
	}
}

// Load re-fetches the authoritative product list,
// replacing the view wholesale.
// On failure the prior view is left untouched.
func (c *ProductController) Load(ctx context.Context) error {
	products, err := c.client.GetProducts(ctx)
	if err != nil {
		return err
	}
	if products == nil {
		products = []types.Product{}
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	return nil
}

// Products gets the current view of the product list
func (c *ProductController) Products() []types.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	products := make([]types.Product, len(c.products))
	copy(products, c.products)
	return products
}

// Add creates a new product from the raw form payload,
// validating the product fields and every nested item before the
// single upstream call
func (c *ProductController) Add(ctx context.Context, userID string, payload map[string]interface{}) types.Notification {
	normalized, fieldError := normalizeProductPayload(payload, true)
	if fieldError != nil {
		return validationNotification(fieldError)
	}

	err := c.client.CreateProduct(ctx, userID, normalized)
	if err != nil {
		return failureNotification(err, "add", "product")
	}

	c.reload(ctx)
	return successNotification("product added")
}

// Update applies a product form payload to an existing product
func (c *ProductController) Update(ctx context.Context, userID string, id string, payload map[string]interface{}) types.Notification {
	normalized, fieldError := normalizeProductPayload(payload, false)
	if fieldError != nil {
		return validationNotification(fieldError)
	}

	err := c.client.UpdateProduct(ctx, userID, id, normalized)
	if err != nil {
		return failureNotification(err, "update", "product")
	}

	c.reload(ctx)
	return successNotification("product updated")
}

// Delete deletes an existing product and re-fetches the list on success
func (c *ProductController) Delete(ctx context.Context, userID string, id string) types.Notification {
	err := c.client.DeleteProduct(ctx, userID, id)
	if err != nil {
		return failureNotification(err, "delete", "product")
	}

	c.reload(ctx)
	return successNotification("product deleted")
}

func (c *ProductController) reload(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		log.Println("could not re-fetch products after mutation:")
		log.Println(err)
	}
}

// Validates the product fields plus every nested item,
// producing the normalized payload that gets forwarded upstream.
// Creation requires at least one item; updates may omit them.
func normalizeProductPayload(payload map[string]interface{}, requireItems bool) (map[string]interface{}, *validate.FieldError) {
	normalized, fieldError := validate.Product.Apply(payload)
	if fieldError != nil {
		return nil, fieldError
	}

	rawItems, present := payload["productItems"]
	if !present || rawItems == nil {
		if requireItems {
			return nil, &validate.FieldError{Field: "productItems", Message: "cannot be empty"}
		}
		return normalized, nil
	}

	itemList, ok := rawItems.([]interface{})
	if !ok {
		return nil, &validate.FieldError{Field: "productItems", Message: "not a list of items"}
	}
	if requireItems && len(itemList) == 0 {
		return nil, &validate.FieldError{Field: "productItems", Message: "cannot be empty"}
	}

	normalizedItems := make([]interface{}, 0, len(itemList))
	for _, rawItem := range itemList {
		itemRecord, ok := rawItem.(map[string]interface{})
		if !ok {
			return nil, &validate.FieldError{Field: "productItems", Message: "not a list of items"}
		}

		normalizedItem, fieldError := validate.Item.Apply(itemRecord)
		if fieldError != nil {
			return nil, fieldError
		}
		normalizedItems = append(normalizedItems, normalizedItem)
	}

	normalized["productItems"] = normalizedItems
	return normalized, nil
}
