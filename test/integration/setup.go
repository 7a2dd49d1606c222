package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"agrive-admin/internal/apiclient"
	"agrive-admin/internal/catalog"
	"agrive-admin/internal/database"
	"agrive-admin/internal/handler"
	"agrive-admin/internal/model"
	"agrive-admin/internal/orders"
	"agrive-admin/internal/repository"
	"agrive-admin/internal/router"
	"agrive-admin/internal/service"
	"agrive-admin/internal/session"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAPIKey   = "test-api-key"
	testToken    = "upstream-admin-token"
	testEmail    = "admin@agrive.test"
	testPassword = "secret"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
}

// SetupTestDB creates a PostgreSQL test container with the session table.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	opts := database.DefaultPoolOptions()
	opts.MaxConns = 4
	opts.MinConns = 1
	pool, err := database.Open(ctx, connStr, opts)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
	}
}

// CleanupDB removes every stored session value.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM admin_session"); err != nil {
		t.Logf("failed to clean admin_session: %v", err)
	}
}

// fakeAgrive is an in-memory stand-in for the Agrive API.
type fakeAgrive struct {
	mu       sync.Mutex
	products []model.Product
	orders   []model.Order
	coupons  []model.Coupon
	users    []model.AppUser
	persons  []model.DeliveryPerson
	houses   []model.Warehouse
	accepted []model.AcceptOrderRequest
}

func newFakeAgrive() *fakeAgrive {
	return &fakeAgrive{
		products: []model.Product{
			{
				ID:       "665f1c2ab7e4a1d2c3b4a5f1",
				Name:     "Tomato",
				Category: "Vegetables",
				IsLive:   true,
				Variants: []model.Variant{
					{ID: "665f1c2ab7e4a1d2c3b4a5a1", Price: 40, MRP: 50, Quantity: 1, Unit: "kg",
						WarehouseStock: []model.WarehouseStock{{WarehouseID: "W1", Stock: 12}}},
					{ID: "665f1c2ab7e4a1d2c3b4a5a2", Price: 18, MRP: 20, Quantity: 500, Unit: "g",
						WarehouseStock: []model.WarehouseStock{{WarehouseID: "W1", Stock: 0}}},
				},
			},
		},
		orders: []model.Order{
			{OrderID: "ORD-1", Status: "pending", Amount: 80, CreatedAt: time.Now().UTC().Format(time.RFC3339)},
			{OrderID: "ORD-2", Status: "delivered", Amount: 40, CreatedAt: "2024-01-02T10:00:00Z"},
		},
		users:   []model.AppUser{{ID: "U1", Name: "Asha"}, {ID: "U2", Name: "Ravi"}},
		persons: []model.DeliveryPerson{{UserID: "DP-1", Name: "Kiran", Phone: "9876543210"}},
		houses:  []model.Warehouse{{ID: "W1", Name: "Central", Pincode: "560001"}},
	}
}

func (f *fakeAgrive) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid token"})
			return false
		}
		return true
	}
	reply := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("POST /api/auth/loginAdmin", func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != testEmail || req.Password != testPassword {
			w.WriteHeader(http.StatusUnauthorized)
			reply(w, map[string]string{"message": "Invalid credentials"})
			return
		}
		reply(w, map[string]string{"token": testToken})
	})

	mux.HandleFunc("GET /api/user/products", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		reply(w, map[string]any{"products": f.products, "totalPages": 1})
	})
	mux.HandleFunc("DELETE /api/admin/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		kept := f.products[:0]
		for _, p := range f.products {
			if p.ID != r.PathValue("id") {
				kept = append(kept, p)
			}
		}
		f.products = kept
		reply(w, map[string]string{"message": "deleted"})
	})

	mux.HandleFunc("GET /api/delivery/orders", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		reply(w, map[string]any{"data": f.orders})
	})
	mux.HandleFunc("POST /api/delivery/accept", func(w http.ResponseWriter, r *http.Request) {
		var req model.AcceptOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("fake agrive: bad accept body: %v", err)
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.accepted = append(f.accepted, req)
		for i := range f.orders {
			if f.orders[i].OrderID == req.OrderID {
				f.orders[i].Status = "accepted"
			}
		}
		reply(w, map[string]string{"message": "accepted"})
	})

	mux.HandleFunc("GET /api/coupons", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		reply(w, map[string]any{"coupons": f.coupons})
	})
	mux.HandleFunc("POST /api/coupons", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var c model.Coupon
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			t.Errorf("fake agrive: bad coupon body: %v", err)
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		c.ID = "665f1c2ab7e4a1d2c3b4a600"
		f.coupons = append(f.coupons, c)
		w.WriteHeader(http.StatusCreated)
		reply(w, c)
	})

	mux.HandleFunc("GET /api/admin/users", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		reply(w, map[string]any{"users": f.users})
	})
	mux.HandleFunc("GET /api/delivery/delivery-persons", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		reply(w, map[string]any{"data": f.persons})
	})
	mux.HandleFunc("GET /api/wareHouse", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		reply(w, map[string]any{"data": f.houses})
	})

	return mux
}

// setupTestServer wires the full BFF against a fake Agrive API. The
// session token is kept in a file under t.TempDir.
func setupTestServer(t *testing.T) (http.Handler, *fakeAgrive) {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	fake := newFakeAgrive()
	upstream := httptest.NewServer(fake.handler(t))
	t.Cleanup(upstream.Close)

	store := repository.NewFileTokenRepository(filepath.Join(t.TempDir(), "session.json"), logger)
	sess, err := session.New(ctx, store, logger)
	require.NoError(t, err)

	client := apiclient.New(apiclient.Options{
		BaseURL:  upstream.URL,
		Timeout:  5 * time.Second,
		PageSize: 50,
	}, sess, logger)

	view := catalog.NewView(client.BaseURL())
	board := orders.NewBoard(nil)

	authService := service.NewAuthService(client, sess, logger)
	catalogService := service.NewCatalogService(client, view, logger)
	bulkService := service.NewBulkService(client, nil, logger)
	orderService := service.NewOrderService(client, client, board, logger)
	dashboardService := service.NewDashboardService(service.DashboardSources{
		Products:        client,
		Users:           client,
		Orders:          client,
		DeliveryPersons: client,
		Coupons:         client,
		Warehouses:      client,
	}, board, logger)

	h := router.New(router.Handlers{
		Session:   handler.NewSessionHandler(authService, logger),
		Catalog:   handler.NewCatalogHandler(catalogService, bulkService, logger),
		Orders:    handler.NewOrderHandler(orderService, logger),
		Dashboard: handler.NewDashboardHandler(dashboardService, logger),
		Directory: handler.NewDirectoryHandler(
			service.NewDeliveryPersonService(client, logger),
			service.NewCouponService(client, logger),
			service.NewWarehouseService(client, logger),
			service.NewUserService(client, logger),
			logger,
		),
		Media: handler.NewMediaHandler(service.NewMediaService(client, logger), logger),
	}, testAPIKey, logger)

	return h, fake
}

// send performs an authenticated request against h.
func send(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("X-API-Key", testAPIKey)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
