package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"

	"github.com/pcland/storefront-api/types"
)

// userIDHeader identifies the acting operator on mutating calls;
// it is forwarded verbatim and never interpreted here
const userIDHeader = "User-id"

// Client is a thin JSON client for the remote admin API.
//
// Failed calls are never retried; the caller surfaces the failure
// and the user re-invokes the action.
//
// Safe to copy and keep multiple references
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new instance of the client
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{}
	}

	return &Client{
		baseURL: baseURL,
		client:  client,
	}
}

// GetProducts fetches the full product catalog
func (c *Client) GetProducts(ctx context.Context) ([]types.Product, error) {
	var products []types.Product
	err := c.get(ctx, "/products", &products)
	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetCategories fetches the full category list
func (c *Client) GetCategories(ctx context.Context) ([]types.Category, error) {
	var categories []types.Category
	err := c.get(ctx, "/categories", &categories)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// CreateCategory creates a new category with the given name
func (c *Client) CreateCategory(ctx context.Context, userID string, name string) error {
	body := map[string]interface{}{"name": name}
	return c.send(ctx, http.MethodPost, "/categories", userID, "category", body)
}

// UpdateCategory renames an existing category
func (c *Client) UpdateCategory(ctx context.Context, userID string, id string, name string) error {
	body := map[string]interface{}{"name": name}
	return c.send(ctx, http.MethodPatch, "/categories/"+id, userID, "category", body)
}

// DeleteCategory deletes an existing category
func (c *Client) DeleteCategory(ctx context.Context, userID string, id string) error {
	return c.send(ctx, http.MethodDelete, "/categories/"+id, userID, "category", nil)
}

// GetProviders fetches the full provider list
func (c *Client) GetProviders(ctx context.Context) ([]types.Provider, error) {
	var providers []types.Provider
	err := c.get(ctx, "/providers", &providers)
	if err != nil {
		return nil, err
	}

	return providers, nil
}

// CreateProvider creates a new provider with the given name
func (c *Client) CreateProvider(ctx context.Context, userID string, name string) error {
	body := map[string]interface{}{"name": name}
	return c.send(ctx, http.MethodPost, "/providers", userID, "provider", body)
}

// UpdateProvider renames an existing provider
func (c *Client) UpdateProvider(ctx context.Context, userID string, id string, name string) error {
	body := map[string]interface{}{"name": name}
	return c.send(ctx, http.MethodPatch, "/providers/"+id, userID, "provider", body)
}

// DeleteProvider deletes an existing provider
func (c *Client) DeleteProvider(ctx context.Context, userID string, id string) error {
	return c.send(ctx, http.MethodDelete, "/providers/"+id, userID, "provider", nil)
}

// CreateProduct creates a new product from an already-validated payload
func (c *Client) CreateProduct(ctx context.Context, userID string, payload map[string]interface{}) error {
	return c.send(ctx, http.MethodPost, "/products", userID, "product", payload)
}

// UpdateProduct applies an already-validated partial update to a product
func (c *Client) UpdateProduct(ctx context.Context, userID string, id string, payload map[string]interface{}) error {
	return c.send(ctx, http.MethodPatch, "/products/"+id, userID, "product", payload)
}

// DeleteProduct deletes an existing product
func (c *Client) DeleteProduct(ctx context.Context, userID string, id string) error {
	return c.send(ctx, http.MethodDelete, "/products/"+id, userID, "product", nil)
}

// GetInvoices fetches the full invoice list
func (c *Client) GetInvoices(ctx context.Context) ([]types.Invoice, error) {
	var invoices []types.Invoice
	err := c.get(ctx, "/invoices", &invoices)
	if err != nil {
		return nil, err
	}

	return invoices, nil
}

// CreateInvoice places a new invoice from an already-validated payload
func (c *Client) CreateInvoice(ctx context.Context, userID string, payload map[string]interface{}) error {
	return c.send(ctx, http.MethodPost, "/invoices", userID, "invoice", payload)
}

// UpdateInvoiceStatus moves an existing invoice to the given status
func (c *Client) UpdateInvoiceStatus(ctx context.Context, userID string, id string, status string) error {
	body := map[string]interface{}{"status": status}
	return c.send(ctx, http.MethodPatch, "/invoices/"+id, userID, "invoice", body)
}

// Performs a GET request against the remote admin API
// and decodes the JSON response into out
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "could not build remote admin API request")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "could not GET %s from the remote admin API", path)
	}
	defer res.Body.Close()

	if err := statusError(res, path); err != nil {
		return err
	}

	err = json.NewDecoder(res.Body).Decode(out)
	if err != nil {
		return errors.Wrapf(err, "could not decode %s response from the remote admin API", path)
	}

	return nil
}

// Performs a single mutating request against the remote admin API,
// attaching the acting operator's ID.
// The response body is discarded; callers re-fetch the authoritative
// list afterwards instead of patching local state.
func (c *Client) send(ctx context.Context, method string, path string,
	userID string, resource string, body interface{}) error {

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "could not encode remote admin API request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "could not build remote admin API request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(userIDHeader, userID)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "could not %s %s on the remote admin API", method, path)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusConflict {
		return NewConflictError(resource)
	}

	return statusError(res, path)
}

// Converts a non-2xx response into a StatusError,
// pulling the message out of the standard error body when present
func statusError(res *http.Response, path string) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	message := fmt.Sprintf("request to %s failed", path)
	raw, err := ioutil.ReadAll(res.Body)
	if err == nil {
		var errorResponse types.ErrorResponse
		if json.Unmarshal(raw, &errorResponse) == nil && errorResponse.Message != "" {
			message = errorResponse.Message
		}
	}

	return NewStatusError(res.StatusCode, message)
}
