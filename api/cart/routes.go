package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/pcland/storefront-api/cart"
	"github.com/pcland/storefront-api/types"
	"github.com/pcland/storefront-api/util"
)

// deviceIDHeader scopes every cart route to one device's cart
const deviceIDHeader = "Device-id"

// Routes creates a new Chi router with all of the routes for the cart resource,
// at the root level
func Routes(carts *cart.Service, lookup cart.ItemLookup) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", Get(carts, lookup))
	router.Delete("/", Clear(carts))
	router.Post("/items", AddItem(carts))
	router.Patch("/items/{productID}/{itemID}", SetQuantity(carts))
	router.Delete("/items/{productID}/{itemID}", RemoveItem(carts))
	return router
}

// Pulls the device ID out of the request,
// writing the error response when it is missing
func deviceID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(deviceIDHeader)
	if id == "" {
		util.ErrorWithCode(w, errors.New("the Device-id header is empty"),
			http.StatusBadRequest)
		return "", false
	}

	return id, true
}

// Get reconciles the device's cart against the current catalog
// snapshot and returns the display-ready rows with their totals.
// References that no longer resolve are omitted, not reported.
func Get(carts *cart.Service, lookup cart.ItemLookup) http.HandlerFunc {
	// Use a closure to inject the cart service
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := deviceID(w, r)
		if !ok {
			return
		}

		references, err := carts.References(r.Context(), id)
		if err != nil {
			util.Error(w, err)
			return
		}

		lines, err := cart.Reconcile(references, lookup)
		if err != nil {
			util.Error(w, err)
			return
		}
		totals := cart.ComputeTotals(lines)

		// Return the lines and totals in a JSON object
		jsonResponse, err := json.Marshal(map[string]interface{}{
			"items":  lines,
			"totals": totals,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(jsonResponse)
	}
}

// AddItem adds a catalog reference to the device's cart
func AddItem(carts *cart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := deviceID(w, r)
		if !ok {
			return
		}

		var reference types.CartReference
		err := json.NewDecoder(r.Body).Decode(&reference)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusBadRequest)
			return
		}

		result, err := carts.Add(r.Context(), id, reference)
		if err != nil {
			util.Error(w, err)
			return
		}

		writeResult(w, result, http.StatusCreated)
	}
}

// SetQuantity updates the quantity on one reference in the device's cart
func SetQuantity(carts *cart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := deviceID(w, r)
		if !ok {
			return
		}

		productID := chi.URLParam(r, "productID")
		itemID := chi.URLParam(r, "itemID")
		if productID == "" || itemID == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		var body struct {
			Quantity int `json:"quantity"`
		}
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusBadRequest)
			return
		}

		result, err := carts.SetQuantity(r.Context(), id, productID, itemID, body.Quantity)
		if err != nil {
			util.Error(w, err)
			return
		}

		writeResult(w, result, http.StatusOK)
	}
}

// RemoveItem deletes one reference from the device's cart.
// Removing a reference that isn't there still responds with no content.
func RemoveItem(carts *cart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := deviceID(w, r)
		if !ok {
			return
		}

		productID := chi.URLParam(r, "productID")
		itemID := chi.URLParam(r, "itemID")
		if productID == "" || itemID == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		err := carts.Remove(r.Context(), id, productID, itemID)
		if err != nil {
			util.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// Clear empties the device's cart
func Clear(carts *cart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := deviceID(w, r)
		if !ok {
			return
		}

		err := carts.Clear(r.Context(), id)
		if err != nil {
			util.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// Writes a validation result,
// using the given status only when it succeeded
func writeResult(w http.ResponseWriter, result types.ValidationResult, successCode int) {
	statusCode := successCode
	if !result.Success {
		statusCode = http.StatusBadRequest
	}

	jsonResponse, err := json.Marshal(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonResponse)
}
