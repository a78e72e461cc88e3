package cart

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartservice "github.com/pcland/storefront-api/cart"
	"github.com/pcland/storefront-api/catalog"
	"github.com/pcland/storefront-api/db/memory"
	"github.com/pcland/storefront-api/types"
)

func newCartRouter() http.Handler {
	cache := &catalog.Cache{}
	cache.Load([]types.Product{
		{
			ProductID:   "p1",
			ProductName: "Laptop",
			Items: []types.ProductItem{
				{ItemID: "i1", Price: 100000, Discount: 10},
			},
		},
		{
			ProductID:   "p2",
			ProductName: "Mouse",
			Items: []types.ProductItem{
				{ItemID: "i1", Price: 50000},
			},
		},
	})

	return Routes(cartservice.NewService(memory.NewProvider()), cache)
}

func do(t *testing.T, router http.Handler, method string, path string, device string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if device != "" {
		req.Header.Set("Device-id", device)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCartRequiresDeviceHeader(t *testing.T) {
	router := newCartRouter()
	recorder := do(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCartRoundTrip(t *testing.T) {
	router := newCartRouter()

	recorder := do(t, router, http.MethodPost, "/items", "d1",
		types.CartReference{ProductID: "p1", ItemID: "i1", Quantity: 2})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = do(t, router, http.MethodPost, "/items", "d1",
		types.CartReference{ProductID: "p2", ItemID: "i1", Quantity: 1})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = do(t, router, http.MethodGet, "/", "d1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Items []types.CartLine `json:"items"`
		Totals struct {
			Total    string `json:"total"`
			Discount string `json:"totalDiscount"`
			Net      string `json:"netPayable"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	require.Len(t, response.Items, 2)
	// Most recently added first
	assert.Equal(t, "Mouse", response.Items[0].ProductName)
	assert.Equal(t, "Laptop", response.Items[1].ProductName)
	assert.Equal(t, "250000", response.Totals.Total)
	assert.Equal(t, "20000", response.Totals.Discount)
	assert.Equal(t, "230000", response.Totals.Net)
}

func TestCartAddRejectsInvalidQuantity(t *testing.T) {
	router := newCartRouter()

	recorder := do(t, router, http.MethodPost, "/items", "d1",
		types.CartReference{ProductID: "p1", ItemID: "i1", Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var result types.ValidationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}

func TestCartSetQuantity(t *testing.T) {
	router := newCartRouter()

	recorder := do(t, router, http.MethodPost, "/items", "d1",
		types.CartReference{ProductID: "p1", ItemID: "i1", Quantity: 1})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = do(t, router, http.MethodPatch, "/items/p1/i1", "d1",
		map[string]int{"quantity": 5})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = do(t, router, http.MethodPatch, "/items/p1/i1", "d1",
		map[string]int{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = do(t, router, http.MethodPatch, "/items/gone/i1", "d1",
		map[string]int{"quantity": 2})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCartRemoveAndClear(t *testing.T) {
	router := newCartRouter()

	recorder := do(t, router, http.MethodPost, "/items", "d1",
		types.CartReference{ProductID: "p1", ItemID: "i1", Quantity: 1})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = do(t, router, http.MethodDelete, "/items/p1/i1", "d1", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	// Removing again still succeeds
	recorder = do(t, router, http.MethodDelete, "/items/p1/i1", "d1", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = do(t, router, http.MethodDelete, "/", "d1", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = do(t, router, http.MethodGet, "/", "d1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var response struct {
		Items []types.CartLine `json:"items"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Empty(t, response.Items)
}

func TestCartUnavailableBeforeSnapshotLoads(t *testing.T) {
	// No Load yet: the references cannot be reconciled, and an empty
	// cart would be a lie
	router := Routes(cartservice.NewService(memory.NewProvider()), &catalog.Cache{})

	recorder := do(t, router, http.MethodPost, "/items", "d1",
		types.CartReference{ProductID: "p1", ItemID: "i1", Quantity: 1})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = do(t, router, http.MethodGet, "/", "d1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestCartHidesStaleReferences(t *testing.T) {
	router := newCartRouter()

	// The reference goes in unchecked; reconciliation decides visibility
	recorder := do(t, router, http.MethodPost, "/items", "d1",
		types.CartReference{ProductID: "discontinued", ItemID: "i1", Quantity: 1})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = do(t, router, http.MethodGet, "/", "d1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var response struct {
		Items []types.CartLine `json:"items"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Empty(t, response.Items)
}
