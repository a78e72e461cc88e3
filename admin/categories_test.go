package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcland/storefront-api/catalog/remote"
	"github.com/pcland/storefront-api/types"
)

// fakeAdminAPI stands in for the remote admin API, serving a mutable
// category list and recording the mutating requests it receives
type fakeAdminAPI struct {
	mu         sync.Mutex
	categories []types.Category
	createCode int
	requests   []*http.Request
}

func (f *fakeAdminAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(f.categories)
		case http.MethodPost:
			f.requests = append(f.requests, r)
			if f.createCode != 0 {
				w.WriteHeader(f.createCode)
				json.NewEncoder(w).Encode(types.ErrorResponse{Message: "upstream rejected the category"})
				return
			}

			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			f.categories = append(f.categories, types.Category{
				CategoryID:   "c2",
				CategoryName: body["name"],
			})
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func newCategoryFixture(t *testing.T) (*fakeAdminAPI, *CategoryController) {
	t.Helper()

	fake := &fakeAdminAPI{
		categories: []types.Category{
			{CategoryID: "c1", CategoryName: "Laptops"},
		},
	}
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	return fake, NewCategoryController(remote.NewClient(server.URL, server.Client()))
}

func TestCategoryAddSuccessRefetches(t *testing.T) {
	ctx := context.Background()
	fake, controller := newCategoryFixture(t)
	require.NoError(t, controller.Load(ctx))

	notification := controller.Add(ctx, "user-1", " Mice ")
	assert.True(t, notification.Success)
	assert.Equal(t, "category added", notification.Message)

	// The view now holds the re-fetched authoritative list
	categories := controller.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Mice", categories[1].CategoryName)

	// Exactly one mutating call, carrying the operator header
	require.Len(t, fake.requests, 1)
	assert.Equal(t, "user-1", fake.requests[0].Header.Get("User-id"))
}

func TestCategoryAddValidationFailureNeverReachesUpstream(t *testing.T) {
	ctx := context.Background()
	fake, controller := newCategoryFixture(t)
	require.NoError(t, controller.Load(ctx))

	notification := controller.Add(ctx, "user-1", "   ")
	assert.False(t, notification.Success)
	assert.Equal(t, types.NotificationValidation, notification.Kind)

	assert.Empty(t, fake.requests)
	assert.Len(t, controller.Categories(), 1)
}

func TestCategoryAddConflictKeepsStateUntouched(t *testing.T) {
	ctx := context.Background()
	fake, controller := newCategoryFixture(t)
	require.NoError(t, controller.Load(ctx))
	fake.createCode = http.StatusConflict

	notification := controller.Add(ctx, "user-1", "Laptops")
	assert.False(t, notification.Success)
	assert.Equal(t, types.NotificationConflict, notification.Kind)
	assert.Equal(t, "could not add category: it already exists", notification.Message)

	// The conflict left the view exactly as it was
	categories := controller.Categories()
	require.Len(t, categories, 1)
	assert.Equal(t, "Laptops", categories[0].CategoryName)

	// Still exactly one call; conflicts are not retried
	assert.Len(t, fake.requests, 1)
}

func TestCategoryAddUpstreamFailureKeepsStateUntouched(t *testing.T) {
	ctx := context.Background()
	fake, controller := newCategoryFixture(t)
	require.NoError(t, controller.Load(ctx))
	fake.createCode = http.StatusInternalServerError

	notification := controller.Add(ctx, "user-1", "Mice")
	assert.False(t, notification.Success)
	assert.Equal(t, types.NotificationUpstream, notification.Kind)

	assert.Len(t, controller.Categories(), 1)
	assert.Len(t, fake.requests, 1)
}

func TestCategoryLoadFailureKeepsPriorView(t *testing.T) {
	ctx := context.Background()
	fake, controller := newCategoryFixture(t)
	require.NoError(t, controller.Load(ctx))
	_ = fake

	// Point a second controller at a dead server: Load fails and the
	// empty initial view survives
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()
	broken := NewCategoryController(remote.NewClient(dead.URL, nil))
	require.Error(t, broken.Load(ctx))
	assert.Empty(t, broken.Categories())
}
