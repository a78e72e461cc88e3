package memory

import (
	"context"
	"sync"

	"github.com/pcland/storefront-api/types"
)

// Provider keeps cart reference sequences in process memory.
// It backs tests and local development runs where no MongoDB
// instance is available; nothing survives a restart.
type Provider struct {
	mu    sync.Mutex
	carts map[string][]types.CartReference
}

// NewProvider creates a new empty in-memory provider
func NewProvider() *Provider {
	return &Provider{
		carts: make(map[string][]types.CartReference),
	}
}

// Connect is a no-op for the in-memory provider
func (p *Provider) Connect(ctx context.Context) error {
	return nil
}

// Disconnect is a no-op for the in-memory provider
func (p *Provider) Disconnect(ctx context.Context) error {
	return nil
}

// GetReferences gets the ordered cart reference sequence for a device
func (p *Provider) GetReferences(ctx context.Context, deviceID string) ([]types.CartReference, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := p.carts[deviceID]
	references := make([]types.CartReference, len(stored))
	copy(references, stored)

	return references, nil
}

// PutReferences replaces the stored cart reference sequence for a device
func (p *Provider) PutReferences(ctx context.Context, deviceID string, references []types.CartReference) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := make([]types.CartReference, len(references))
	copy(stored, references)
	p.carts[deviceID] = stored

	return nil
}

// ClearReferences removes the stored cart for a device entirely
func (p *Provider) ClearReferences(ctx context.Context, deviceID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.carts, deviceID)

	return nil
}
