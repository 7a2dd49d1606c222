package router

import (
	"net/http"

	"agrive-admin/internal/apiclient"
	"agrive-admin/internal/handler"
	"agrive-admin/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Session   *handler.SessionHandler
	Catalog   *handler.CatalogHandler
	Orders    *handler.OrderHandler
	Dashboard *handler.DashboardHandler
	Directory *handler.DirectoryHandler
	Media     *handler.MediaHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Session
	mux.HandleFunc("POST /api/session/login", h.Session.Login)
	mux.HandleFunc("POST /api/session/logout", h.Session.Logout)
	mux.HandleFunc("GET /api/session", h.Session.Status)

	// Catalog
	mux.HandleFunc("GET /api/catalog", h.Catalog.List)
	mux.HandleFunc("GET /api/catalog/export", h.Catalog.Export)
	mux.HandleFunc("GET /api/catalog/taxonomy", h.Catalog.Taxonomy)
	mux.HandleFunc("POST /api/catalog/products", h.Catalog.Create)
	mux.HandleFunc("PUT /api/catalog/products/{productId}/variants/{index}", h.Catalog.UpdateVariant)
	mux.HandleFunc("DELETE /api/catalog/products/{productId}", h.Catalog.Delete)
	mux.HandleFunc("POST /api/catalog/bulk", h.Catalog.Bulk)

	// Orders
	mux.HandleFunc("GET /api/orders", h.Orders.List)
	mux.HandleFunc("POST /api/orders/{orderId}/accept", h.Orders.Accept)
	mux.HandleFunc("PUT /api/orders/{orderId}/status", h.Orders.UpdateStatus)
	mux.HandleFunc("POST /api/orders/{orderId}/invoice", h.Orders.Invoice)

	mux.HandleFunc("GET /api/dashboard", h.Dashboard.Summary)

	// Directory
	mux.HandleFunc("GET /api/delivery-persons", h.Directory.ListDeliveryPersons)
	mux.HandleFunc("POST /api/delivery-persons", h.Directory.CreateDeliveryPerson)
	mux.HandleFunc("PUT /api/delivery-persons/{id}", h.Directory.UpdateDeliveryPerson)
	mux.HandleFunc("DELETE /api/delivery-persons/{id}", h.Directory.DeleteDeliveryPerson)

	mux.HandleFunc("GET /api/coupons", h.Directory.ListCoupons)
	mux.HandleFunc("POST /api/coupons", h.Directory.CreateCoupon)
	mux.HandleFunc("PUT /api/coupons/{id}", h.Directory.UpdateCoupon)
	mux.HandleFunc("DELETE /api/coupons/{id}", h.Directory.DeleteCoupon)

	mux.HandleFunc("GET /api/warehouses", h.Directory.ListWarehouses)
	mux.HandleFunc("POST /api/warehouses", h.Directory.CreateWarehouse)
	mux.HandleFunc("PUT /api/warehouses/{id}", h.Directory.UpdateWarehouse)
	mux.HandleFunc("DELETE /api/warehouses/{id}", h.Directory.DeleteWarehouse)

	mux.HandleFunc("GET /api/users", h.Directory.ListUsers)
	mux.HandleFunc("PUT /api/users/{id}", h.Directory.UpdateUser)
	mux.HandleFunc("DELETE /api/users/{id}", h.Directory.DeleteUser)

	// Media
	for prefix, kind := range map[string]apiclient.MediaKind{
		"/api/banners": apiclient.MediaBanner,
		"/api/deals":   apiclient.MediaDeal,
	} {
		mux.HandleFunc("GET "+prefix, h.Media.ListFor(kind))
		mux.HandleFunc("POST "+prefix, h.Media.UploadFor(kind))
		mux.HandleFunc("PUT "+prefix+"/{id}", h.Media.ReplaceFor(kind))
		mux.HandleFunc("DELETE "+prefix+"/{id}", h.Media.DeleteFor(kind))
	}

	mux.HandleFunc("GET /api/product-images/{variantId}", h.Media.ListProductImages)
	mux.HandleFunc("POST /api/product-images/{variantId}", h.Media.UploadProductImages)
	mux.HandleFunc("PUT /api/product-images/item/{id}", h.Media.ReplaceProductImage)
	mux.HandleFunc("DELETE /api/product-images/item/{id}", h.Media.DeleteProductImage)

	// Apply middleware in order: RequestID -> Recovery -> Logging -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}
