package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agrive-admin/internal/apiclient"
	"agrive-admin/internal/bulk"
	"agrive-admin/internal/catalog"
	"agrive-admin/internal/config"
	"agrive-admin/internal/database"
	"agrive-admin/internal/handler"
	"agrive-admin/internal/orders"
	"agrive-admin/internal/repository"
	"agrive-admin/internal/router"
	"agrive-admin/internal/service"
	"agrive-admin/internal/session"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("upstream", cfg.Upstream.BaseURL).
		Str("session_store", cfg.Session.Store).
		Msg("starting agrive-admin server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize token store and session
	store, closeStore, err := openTokenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	sess, err := session.New(ctx, store, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize session: %w", err)
	}

	// Initialize Agrive API client
	client := apiclient.New(apiclient.Options{
		BaseURL:  cfg.Upstream.BaseURL,
		Timeout:  cfg.Upstream.TimeoutDuration(),
		PageSize: cfg.Upstream.PageSize,
	}, sess, logger)

	// Screen state
	view := catalog.NewView(client.BaseURL())
	board := orders.NewBoard(nil)

	// Initialize services
	authService := service.NewAuthService(client, sess, logger)
	catalogService := service.NewCatalogService(client, view, logger)
	bulkService := service.NewBulkService(client, newSheetLoader(ctx, cfg, logger), logger)
	orderService := service.NewOrderService(client, client, board, logger)
	dashboardService := service.NewDashboardService(service.DashboardSources{
		Products:        client,
		Users:           client,
		Orders:          client,
		DeliveryPersons: client,
		Coupons:         client,
		Warehouses:      client,
	}, board, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
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
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.APIKey, logger)

	// Create HTTP server. Writes wait on the Agrive API, so the write
	// timeout leaves room for one full upstream round trip.
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Upstream.TimeoutDuration() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Cancel in-flight upstream calls tied to the app context
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// openTokenStore returns the configured token repository and a func that
// releases it.
func openTokenStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.TokenRepository, func(), error) {
	if cfg.Session.Store != config.SessionStorePostgres {
		logger.Info().Str("file", cfg.Session.File).Msg("using file session store")
		return repository.NewFileTokenRepository(cfg.Session.File, logger), func() {}, nil
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := repository.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to prepare session table: %w", err)
	}

	logger.Info().Msg("using postgres session store")
	return repository.NewPostgresTokenRepository(pool, logger), pool.Close, nil
}

// newSheetLoader builds the bulk sheet loader: the local sheet directory,
// fronted by S3 when enabled.
func newSheetLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) bulk.Loader {
	fileLoader := bulk.NewFileLoader(cfg.Bulk.SheetDir, logger)
	if !cfg.S3.Enabled {
		logger.Info().Str("dir", cfg.Bulk.SheetDir).Msg("using local file system for bulk sheets (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := bulk.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}
	return bulk.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}
