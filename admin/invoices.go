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

// InvoiceController holds the invoice screen's view of the remote
// invoice list and applies mutations to it
type InvoiceController struct {
	client *remote.Client

	mu       sync.Mutex
	invoices []types.Invoice
}

// NewInvoiceController creates a new controller with an empty view
func NewInvoiceController(client *remote.Client) *InvoiceController {
	return &InvoiceController{
		client:   client,
		invoices: []types.Invoice{},
	}
}

// Load re-fetches the authoritative invoice list,
// replacing the view wholesale.
// On failure the prior view is left untouched.
func (c *InvoiceController) Load(ctx context.Context) error {
	invoices, err := c.client.GetInvoices(ctx)
	if err != nil {
		return err
	}
	if invoices == nil {
		invoices = []types.Invoice{}
	}

	c.mu.Lock()
	c.invoices = invoices
	c.mu.Unlock()

	return nil
}

// Invoices gets the current view of the invoice list
func (c *InvoiceController) Invoices() []types.Invoice {
	c.mu.Lock()
	defer c.mu.Unlock()

	invoices := make([]types.Invoice, len(c.invoices))
	copy(invoices, c.invoices)
	return invoices
}

// Create places a new invoice from the raw checkout payload,
// validating the invoice fields and every line before the single
// upstream call
func (c *InvoiceController) Create(ctx context.Context, userID string, payload map[string]interface{}) types.Notification {
	normalized, fieldError := validate.Invoice.Apply(payload)
	if fieldError != nil {
		return validationNotification(fieldError)
	}

	rawProducts, present := payload["products"]
	productList, ok := rawProducts.([]interface{})
	if !present || !ok || len(productList) == 0 {
		return validationNotification(&validate.FieldError{Field: "products", Message: "cannot be empty"})
	}

	normalizedProducts := make([]interface{}, 0, len(productList))
	for _, rawProduct := range productList {
		productRecord, ok := rawProduct.(map[string]interface{})
		if !ok {
			return validationNotification(&validate.FieldError{Field: "products", Message: "not a list of lines"})
		}

		normalizedProduct, fieldError := validate.InvoiceProduct.Apply(productRecord)
		if fieldError != nil {
			return validationNotification(fieldError)
		}
		normalizedProducts = append(normalizedProducts, normalizedProduct)
	}
	normalized["products"] = normalizedProducts

	err := c.client.CreateInvoice(ctx, userID, normalized)
	if err != nil {
		return failureNotification(err, "create", "invoice")
	}

	c.reload(ctx)
	return successNotification("invoice created")
}

// UpdateStatus moves an existing invoice to the given status
func (c *InvoiceController) UpdateStatus(ctx context.Context, userID string, id string, rawStatus string) types.Notification {
	status := strings.TrimSpace(rawStatus)
	if status == "" {
		return validationNotification(&validate.FieldError{Field: "status", Message: "cannot be blank"})
	}

	err := c.client.UpdateInvoiceStatus(ctx, userID, id, status)
	if err != nil {
		return failureNotification(err, "update", "invoice")
	}

	c.reload(ctx)
	return successNotification("invoice updated")
}

func (c *InvoiceController) reload(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		log.Println("could not re-fetch invoices after mutation:")
		log.Println(err)
	}
}
