package providers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/pcland/storefront-api/admin"
	"github.com/pcland/storefront-api/types"
	"github.com/pcland/storefront-api/util"
)

// userIDHeader identifies the acting operator on mutating calls
const userIDHeader = "User-id"

// Routes creates a new Chi router with all of the routes for the provider resource,
// at the root level
func Routes(controller *admin.ProviderController) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", GetAll(controller))
	router.Post("/", Create(controller))
	router.Patch("/{id}", Update(controller))
	router.Delete("/{id}", Delete(controller))
	return router
}

// GetAll re-fetches the authoritative provider list and returns it
func GetAll(controller *admin.ProviderController) http.HandlerFunc {
	// Use a closure to inject the controller
	return func(w http.ResponseWriter, r *http.Request) {
		err := controller.Load(r.Context())
		if err != nil {
			util.Error(w, err)
			return
		}

		// Return the list in a JSON object
		jsonResponse, err := json.Marshal(map[string]interface{}{
			"providers": controller.Providers(),
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

// Create creates a new provider through the controller
func Create(controller *admin.ProviderController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusBadRequest)
			return
		}

		notification := controller.Add(r.Context(), r.Header.Get(userIDHeader), body.Name)
		writeOutcome(w, controller, notification, http.StatusCreated)
	}
}

// Update renames a provider through the controller
func Update(controller *admin.ProviderController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		var body struct {
			Name string `json:"name"`
		}
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusBadRequest)
			return
		}

		notification := controller.Update(r.Context(), r.Header.Get(userIDHeader), id, body.Name)
		writeOutcome(w, controller, notification, http.StatusOK)
	}
}

// Delete deletes a provider through the controller
func Delete(controller *admin.ProviderController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		notification := controller.Delete(r.Context(), r.Header.Get(userIDHeader), id)
		writeOutcome(w, controller, notification, http.StatusOK)
	}
}

// Writes the mutation outcome along with the controller's current view
// of the list (refreshed on success, untouched on failure)
func writeOutcome(w http.ResponseWriter, controller *admin.ProviderController,
	notification types.Notification, successCode int) {

	jsonResponse, err := json.Marshal(map[string]interface{}{
		"notification": notification,
		"providers":    controller.Providers(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(util.NotificationStatus(notification, successCode))
	w.Write(jsonResponse)
}
