package admin

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/pcland/storefront-api/catalog/remote"
	"github.com/pcland/storefront-api/types"
	"github.com/pcland/storefront-api/validate"
)

// CategoryController holds the category screen's view of the remote
// category list and applies mutations to it
type CategoryController struct {
	client *remote.Client

	mu         sync.Mutex
	categories []types.Category
}

// NewCategoryController creates a new controller with an empty view
func NewCategoryController(client *remote.Client) *CategoryController {
	return &CategoryController{
		client:     client,
		categories: []types.Category{},
	}
}

// Load re-fetches the authoritative category list,
// replacing the view wholesale.
// On failure the prior view is left untouched.
func (c *CategoryController) Load(ctx context.Context) error {
	categories, err := c.client.GetCategories(ctx)
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []types.Category{}
	}

	c.mu.Lock()
	c.categories = categories
	c.mu.Unlock()

	return nil
}

// Categories gets the current view of the category list
func (c *CategoryController) Categories() []types.Category {
	c.mu.Lock()
	defer c.mu.Unlock()

	categories := make([]types.Category, len(c.categories))
	copy(categories, c.categories)
	return categories
}

// Add creates a new category and re-fetches the list on success
func (c *CategoryController) Add(ctx context.Context, userID string, rawName string) types.Notification {
	name := strings.TrimSpace(rawName)
	if _, fieldError := validate.Category.Apply(map[string]interface{}{"name": name}); fieldError != nil {
		return validationNotification(fieldError)
	}

	err := c.client.CreateCategory(ctx, userID, name)
	if err != nil {
		return failureNotification(err, "add", "category")
	}

	c.reload(ctx)
	return successNotification("category added")
}

// Update renames an existing category and re-fetches the list on success
func (c *CategoryController) Update(ctx context.Context, userID string, id string, rawName string) types.Notification {
	name := strings.TrimSpace(rawName)
	if _, fieldError := validate.Category.Apply(map[string]interface{}{"name": name}); fieldError != nil {
		return validationNotification(fieldError)
	}

	err := c.client.UpdateCategory(ctx, userID, id, name)
	if err != nil {
		return failureNotification(err, "update", "category")
	}

	c.reload(ctx)
	return successNotification("category updated")
}

// Delete deletes an existing category and re-fetches the list on success
func (c *CategoryController) Delete(ctx context.Context, userID string, id string) types.Notification {
	err := c.client.DeleteCategory(ctx, userID, id)
	if err != nil {
		return failureNotification(err, "delete", "category")
	}

	c.reload(ctx)
	return successNotification("category deleted")
}

// Re-fetches after a successful mutation.
// A failed re-fetch keeps the stale view; the mutation itself
// already succeeded upstream.
func (c *CategoryController) reload(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		log.Println("could not re-fetch categories after mutation:")
		log.Println(err)
	}
}
