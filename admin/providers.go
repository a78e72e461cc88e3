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

// ProviderController holds the provider screen's view of the remote
// provider list and applies mutations to it
type ProviderController struct {
	client *remote.Client

	mu        sync.Mutex
	providers []types.Provider
}

// NewProviderController creates a new controller with an empty view
func NewProviderController(client *remote.Client) *ProviderController {
	return &ProviderController{
		client:    client,
		providers: []types.Provider{},
	}
}

// Load re-fetches the authoritative provider list,
// replacing the view wholesale.
// On failure the prior view is left untouched.
func (c *ProviderController) Load(ctx context.Context) error {
	providers, err := c.client.GetProviders(ctx)
	if err != nil {
		return err
	}
	if providers == nil {
		providers = []types.Provider{}
	}

	c.mu.Lock()
	c.providers = providers
	c.mu.Unlock()

	return nil
}

// Providers gets the current view of the provider list
func (c *ProviderController) Providers() []types.Provider {
	c.mu.Lock()
	defer c.mu.Unlock()

	providers := make([]types.Provider, len(c.providers))
	copy(providers, c.providers)
	return providers
}

// Add creates a new provider and re-fetches the list on success
func (c *ProviderController) Add(ctx context.Context, userID string, rawName string) types.Notification {
	name := strings.TrimSpace(rawName)
	if _, fieldError := validate.Provider.Apply(map[string]interface{}{"name": name}); fieldError != nil {
		return validationNotification(fieldError)
	}

	err := c.client.CreateProvider(ctx, userID, name)
	if err != nil {
		return failureNotification(err, "add", "provider")
	}

	c.reload(ctx)
	return successNotification("provider added")
}

// Update renames an existing provider and re-fetches the list on success
func (c *ProviderController) Update(ctx context.Context, userID string, id string, rawName string) types.Notification {
	name := strings.TrimSpace(rawName)
	if _, fieldError := validate.Provider.Apply(map[string]interface{}{"name": name}); fieldError != nil {
		return validationNotification(fieldError)
	}

	err := c.client.UpdateProvider(ctx, userID, id, name)
	if err != nil {
		return failureNotification(err, "update", "provider")
	}

	c.reload(ctx)
	return successNotification("provider updated")
}

// Delete deletes an existing provider and re-fetches the list on success
func (c *ProviderController) Delete(ctx context.Context, userID string, id string) types.Notification {
	err := c.client.DeleteProvider(ctx, userID, id)
	if err != nil {
		return failureNotification(err, "delete", "provider")
	}

	c.reload(ctx)
	return successNotification("provider deleted")
}

func (c *ProviderController) reload(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		log.Println("could not re-fetch providers after mutation:")
		log.Println(err)
	}
}
