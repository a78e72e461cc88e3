package invoices

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/pcland/storefront-api/admin"
	"github.com/pcland/storefront-api/cart"
	"github.com/pcland/storefront-api/types"
	"github.com/pcland/storefront-api/util"
)

// userIDHeader identifies the acting operator on mutating calls;
// deviceIDHeader lets checkout clear the ordering device's cart
const (
	userIDHeader   = "User-id"
	deviceIDHeader = "Device-id"
)

// Routes creates a new Chi router with all of the routes for the invoice resource,
// at the root level
func Routes(controller *admin.InvoiceController, carts *cart.Service) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", GetAll(controller))
	router.Post("/", Create(controller, carts))
	router.Patch("/{id}", UpdateStatus(controller))
	return router
}

// GetAll re-fetches the authoritative invoice list and returns it
func GetAll(controller *admin.InvoiceController) http.HandlerFunc {
	// Use a closure to inject the controller
	return func(w http.ResponseWriter, r *http.Request) {
		err := controller.Load(r.Context())
		if err != nil {
			util.Error(w, err)
			return
		}

		// Return the list in a JSON object
		jsonResponse, err := json.Marshal(map[string]interface{}{
			"invoices": controller.Invoices(),
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

// Create places an invoice through the controller (checkout).
// When the request carries a device ID, the device's cart is cleared
// after the invoice is accepted upstream.
func Create(controller *admin.InvoiceController, carts *cart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := make(map[string]interface{})
		err := json.NewDecoder(r.Body).Decode(&payload)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusBadRequest)
			return
		}

		notification := controller.Create(r.Context(), r.Header.Get(userIDHeader), payload)

		if notification.Success {
			if deviceID := r.Header.Get(deviceIDHeader); deviceID != "" {
				if err := carts.Clear(r.Context(), deviceID); err != nil {
					// The order itself went through; losing the clear
					// only leaves stale references behind
					log.Println("could not clear the cart after checkout:")
					log.Println(err)
				}
			}
		}

		writeOutcome(w, notification, http.StatusCreated)
	}
}

// UpdateStatus moves an invoice to a new status through the controller
func UpdateStatus(controller *admin.InvoiceController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		var body struct {
			Status string `json:"status"`
		}
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusBadRequest)
			return
		}

		notification := controller.UpdateStatus(r.Context(), r.Header.Get(userIDHeader), id, body.Status)
		writeOutcome(w, notification, http.StatusOK)
	}
}

func writeOutcome(w http.ResponseWriter, notification types.Notification, successCode int) {
	jsonResponse, err := json.Marshal(map[string]interface{}{
		"notification": notification,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(util.NotificationStatus(notification, successCode))
	w.Write(jsonResponse)
}
