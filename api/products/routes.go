package products

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pcland/storefront-api/admin"
	"github.com/pcland/storefront-api/catalog"
	"github.com/pcland/storefront-api/types"
	"github.com/pcland/storefront-api/util"
)

// userIDHeader identifies the acting operator on mutating calls
const userIDHeader = "User-id"

// Routes creates a new Chi router with all of the routes for the product resource,
// at the root level.
// Reads are served from the catalog snapshot; mutations go through the
// controller to the remote admin API.
func Routes(snapshot catalog.SnapshotProvider, controller *admin.ProductController) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", GetAll(snapshot))
	router.Get("/{id}", GetSingle(snapshot))
	router.Post("/", Create(controller))
	router.Patch("/{id}", Update(controller))
	router.Delete("/{id}", Delete(controller))
	return router
}

// GetAll gets all product summaries from the catalog snapshot,
// with an optional search querystring param
func GetAll(snapshot catalog.SnapshotProvider) http.HandlerFunc {
	// Use a closure to inject the snapshot provider
	return func(w http.ResponseWriter, r *http.Request) {
		// See if we have a search parameter,
		// which can be empty
		search := strings.ToLower(r.URL.Query().Get("search"))

		products, err := snapshot.Products()
		if err != nil {
			util.Error(w, err)
			return
		}

		summaries := []types.ProductSummary{}
		for i := range products {
			// Make sure the name passes a search if it was given
			if search != "" && !fuzzy.MatchNormalized(search, strings.ToLower(products[i].ProductName)) {
				continue
			}

			summaries = append(summaries, products[i].Summary())
		}

		// Return the list in a JSON object
		jsonResponse, err := json.Marshal(map[string]interface{}{
			"products": summaries,
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

// GetSingle gets a single full product from the catalog snapshot by its ID
func GetSingle(snapshot catalog.SnapshotProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		product, err := snapshot.Product(id)
		if err != nil {
			util.Error(w, err)
			return
		}

		// Return the single product as the top-level JSON
		jsonResponse, err := json.Marshal(product)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(jsonResponse)
	}
}

// Create creates a new product through the controller
func Create(controller *admin.ProductController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := make(map[string]interface{})
		err := json.NewDecoder(r.Body).Decode(&payload)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusBadRequest)
			return
		}

		notification := controller.Add(r.Context(), r.Header.Get(userIDHeader), payload)
		writeOutcome(w, notification, http.StatusCreated)
	}
}

// Update applies a partial product payload through the controller
func Update(controller *admin.ProductController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		payload := make(map[string]interface{})
		err := json.NewDecoder(r.Body).Decode(&payload)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusBadRequest)
			return
		}

		notification := controller.Update(r.Context(), r.Header.Get(userIDHeader), id, payload)
		writeOutcome(w, notification, http.StatusOK)
	}
}

// Delete deletes a product through the controller
func Delete(controller *admin.ProductController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			util.ErrorWithCode(w, errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		notification := controller.Delete(r.Context(), r.Header.Get(userIDHeader), id)
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
