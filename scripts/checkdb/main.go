package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"agrive-admin/internal/config"
	"agrive-admin/internal/database"
	"agrive-admin/internal/repository"
)

// checkdb verifies that the configured session database is reachable and
// that the admin_session table exists.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Schema check failed: %v\n", err)
		os.Exit(1)
	}

	var stored int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM admin_session").Scan(&stored); err != nil {
		fmt.Fprintf(os.Stderr, "Session table check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n", dbName)
	fmt.Printf("admin_session table ready (%d stored keys)\n", stored)
}
