package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/ironstar-io/chizerolog"
	"github.com/rs/zerolog"

	"github.com/pcland/storefront-api/admin"
	cartapi "github.com/pcland/storefront-api/api/cart"
	"github.com/pcland/storefront-api/api/categories"
	"github.com/pcland/storefront-api/api/invoices"
	apiProducts "github.com/pcland/storefront-api/api/products"
	"github.com/pcland/storefront-api/api/providers"
	"github.com/pcland/storefront-api/api/uploads"
	"github.com/pcland/storefront-api/cart"
	"github.com/pcland/storefront-api/catalog/remote"
	"github.com/pcland/storefront-api/db"
	"github.com/pcland/storefront-api/db/mongo"
	"github.com/pcland/storefront-api/upload"
	"github.com/pcland/storefront-api/upload/s3"
)

// APIServer is a struct that bundles together the various server-wide
// resources used at runtime that each have
// a lifecycle of initialization, connection, and disconnection
type APIServer struct {
	logger zerolog.Logger

	catalogProvider *remote.Provider
	dbProvider      db.Provider
	uploadProvider  upload.Provider

	carts              *cart.Service
	categoryController *admin.CategoryController
	providerController *admin.ProviderController
	productController  *admin.ProductController
	invoiceController  *admin.InvoiceController
}

// NewAPIServer initializes the struct and all constituent components
func NewAPIServer(logger zerolog.Logger) (*APIServer, error) {
	// Initialize the remote catalog provider
	catalogProvider, err := remote.NewProvider()
	if err != nil {
		return nil, err
	}

	// Initialize the MongoDB handler
	dbProvider, err := mongo.NewProvider()
	if err != nil {
		return nil, err
	}

	// Initialize the S3 upload provider
	uploadProvider, err := s3.NewProvider()
	if err != nil {
		return nil, err
	}

	return &APIServer{
		logger: logger,

		catalogProvider: catalogProvider,
		dbProvider:      dbProvider,
		uploadProvider:  uploadProvider,

		carts:              cart.NewService(dbProvider),
		categoryController: admin.NewCategoryController(catalogProvider.Client),
		providerController: admin.NewProviderController(catalogProvider.Client),
		productController:  admin.NewProductController(catalogProvider.Client),
		invoiceController:  admin.NewInvoiceController(catalogProvider.Client),
	}, nil
}

// Connect connects to all downstream services
func (a *APIServer) Connect(ctx context.Context) error {
	// Perform the initial catalog fetch and start the refresh goroutine
	log.Println("initializing remote admin API connector")
	err := a.catalogProvider.Connect(ctx)
	if err != nil {
		log.Println("could not fetch the initial catalog snapshot")
		return err
	}
	log.Println("successfully loaded the initial catalog snapshot")

	// Connect to the MongoDB database
	log.Println("initializing MongoDB database provider")
	err = a.dbProvider.Connect(ctx)
	if err != nil {
		log.Println("could not connect to the database")
		return err
	}
	log.Println("successfully connected to and pinged the database")

	return nil
}

// Disconnect disconnects from all downstream services
func (a *APIServer) Disconnect(ctx context.Context) error {
	err := a.dbProvider.Disconnect(ctx)
	if err != nil {
		log.Println("could not disconnect from the database")
		return err
	}
	log.Println("disconnected from the database")

	err = a.catalogProvider.Disconnect(ctx)
	if err != nil {
		log.Println("could not stop the catalog refresh")
		return err
	}
	log.Println("stopped the catalog refresh")

	return nil
}

// Serve runs the main API server until it's cancelled for some reason,
// in which case it attempts to gracefully shutdown.
// This function blocks.
func (a *APIServer) Serve(ctx context.Context, port int) {
	router := a.routes()
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()
	log.Printf("API server started; serving on port %d\n", port)

	<-ctx.Done()
	log.Println("API server stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer func() {
		cancel()
	}()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("API server shutdown failed: %+v", err)
	}
	log.Println("API server exited properly")
}

func (a *APIServer) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,                          // Recover from panics without crashing the server
		chizerolog.LoggerMiddleware(&a.logger),        // Log API request calls with structured fields
		middleware.RedirectSlashes,                    // Redirect slashes to no slash URL versions
		render.SetContentType(render.ContentTypeJSON), // Set content-type headers to application/json
		middleware.Compress(5),                        // Compress results, mostly gzipping assets and json
		middleware.NoCache,                            // Prevent clients from caching the results
		a.corsMiddleware(),                            // Create cors middleware from go-chi/cors
	)

	// ==============================
	// Add all routes to the API here
	// ==============================
	router.Route("/v1", func(r chi.Router) {
		// Can be used for health checks
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(204)
		})

		r.Mount("/cart", cartapi.Routes(a.carts, a.catalogProvider))
		r.Mount("/categories", categories.Routes(a.categoryController))
		r.Mount("/providers", providers.Routes(a.providerController))
		r.Mount("/products", apiProducts.Routes(a.catalogProvider, a.productController))
		r.Mount("/invoices", invoices.Routes(a.invoiceController, a.carts))
		r.Mount("/uploads", uploads.Routes(a.uploadProvider))
	})

	return router
}

func (a *APIServer) corsMiddleware() func(http.Handler) http.Handler {
	// See if the CORS_ALLOWED_ORIGINS environment variable was set
	allowedOrigins := "*"
	if value, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		allowedOrigins = value
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "User-id", "Device-id"},
		ExposedHeaders:   []string{},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
