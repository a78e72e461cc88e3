package remote

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/hako/durafmt"

	"github.com/pcland/storefront-api/catalog"
	"github.com/pcland/storefront-api/env"
)

// Provider bundles together a stateful catalog provider via the remote
// admin API, including the JSON client
// and a snapshot cache in front of it
//
// Safe to copy and keep multiple references
type Provider struct {
	stopFetch chan struct{}

	// Config values
	fetchPeriod time.Duration

	*Client
	*catalog.Cache
}

// NewProvider loads values from the environment
// and creates the provider
// (doesn't perform any fetch or start goroutines)
func NewProvider() (*Provider, error) {
	baseURL, err := env.GetEnv("remote admin API base URL", "API_BASE_URL")
	if err != nil {
		return nil, err
	}

	fetchPeriod, err := env.GetDurationEnv("catalog snapshot fetch period", "CATALOG_FETCH_PERIOD")
	if err != nil {
		return nil, err
	}

	timeout, err := env.GetDurationEnv("remote admin API timeout", "API_TIMEOUT")
	if err != nil {
		return nil, err
	}

	client := NewClient(baseURL, &http.Client{Timeout: timeout})

	return &Provider{
		stopFetch: make(chan struct{}),

		fetchPeriod: fetchPeriod,

		Client: client,
		Cache:  &catalog.Cache{},
	}, nil
}

// Connect performs the initial snapshot fetch
// and starts the goroutine that keeps it fresh
func (p *Provider) Connect(ctx context.Context) error {
	err := p.fetch(ctx)
	if err != nil {
		return err
	}

	go p.periodFetch()

	return nil
}

// Disconnect stops the periodic fetch goroutine
func (p *Provider) Disconnect(ctx context.Context) error {
	p.stopFetch <- struct{}{}

	return nil
}

// Periodically fetches the catalog from the remote admin API
// and loads it into the snapshot cache
func (p *Provider) periodFetch() {
	humanDuration := durafmt.Parse(p.fetchPeriod).LimitFirstN(2).String()
	for {
		select {
		case <-p.stopFetch:
			return
		case <-time.After(p.fetchPeriod):
			err := p.fetch(context.Background())
			if err != nil {
				// Report error,
				// but continue the goroutine
				log.Println("an error occurred while refreshing the catalog snapshot:")
				log.Println(err)
			} else {
				log.Printf("refreshed the catalog snapshot; fetching again in %s\n", humanDuration)
			}
		}
	}
}

// Fetches the catalog once and replaces the snapshot
func (p *Provider) fetch(ctx context.Context) error {
	products, err := p.Client.GetProducts(ctx)
	if err != nil {
		return err
	}

	p.Cache.Load(products)
	log.Printf("loaded catalog snapshot (%d products)\n", len(products))

	return nil
}
