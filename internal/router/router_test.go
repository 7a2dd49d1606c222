package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agrive-admin/internal/handler"
	"agrive-admin/internal/middleware"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

const testAPIKey = "router-test-key"

// newTestRouter mounts handlers without services; only requests that are
// rejected before reaching a service may be sent.
func newTestRouter() http.Handler {
	logger := zerolog.Nop()
	return New(Handlers{
		Session:   handler.NewSessionHandler(nil, logger),
		Catalog:   handler.NewCatalogHandler(nil, nil, logger),
		Orders:    handler.NewOrderHandler(nil, logger),
		Dashboard: handler.NewDashboardHandler(nil, logger),
		Directory: handler.NewDirectoryHandler(nil, nil, nil, nil, logger),
		Media:     handler.NewMediaHandler(nil, logger),
	}, testAPIKey, logger)
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		apiKey         string
		expectedStatus int
	}{
		{name: "health without key", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
		{name: "missing key", method: http.MethodGet, path: "/api/catalog", expectedStatus: http.StatusUnauthorized},
		{name: "wrong key", method: http.MethodGet, path: "/api/orders", apiKey: "nope", expectedStatus: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, path: "/api/nothing", apiKey: testAPIKey, expectedStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, path: "/api/catalog", apiKey: testAPIKey, expectedStatus: http.StatusMethodNotAllowed},
		{name: "invalid product id", method: http.MethodDelete, path: "/api/catalog/products/P1", apiKey: testAPIKey, expectedStatus: http.StatusBadRequest},
		{name: "invalid banner id", method: http.MethodDelete, path: "/api/banners/b1", apiKey: testAPIKey, expectedStatus: http.StatusBadRequest},
		{name: "invalid deal id", method: http.MethodDelete, path: "/api/deals/d1", apiKey: testAPIKey, expectedStatus: http.StatusBadRequest},
		{name: "invalid gallery id", method: http.MethodDelete, path: "/api/product-images/item/x", apiKey: testAPIKey, expectedStatus: http.StatusBadRequest},
		{name: "preflight", method: http.MethodOptions, path: "/api/catalog", expectedStatus: http.StatusNoContent},
	}

	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}
