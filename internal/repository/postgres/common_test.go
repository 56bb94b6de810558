package postgres

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/google/uuid"

	"github.com/catalogd/catalogd/internal/config"
	"github.com/catalogd/catalogd/internal/pkg/database"
)

// getTestDB returns a database dialer for integration tests.
// Skips the test if the database is not available.
func getTestDB(t *testing.T) *database.Postgres {
	if os.Getenv("POSTGRES_TEST_HOST") == "" {
		t.Skip("Skipping integration test: POSTGRES_TEST_HOST not set")
		return nil
	}

	port := 5432
	if p := os.Getenv("POSTGRES_TEST_PORT"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			port = parsed
		}
	}

	cfg := config.DatabaseConfig{
		Host:     os.Getenv("POSTGRES_TEST_HOST"),
		Port:     port,
		User:     os.Getenv("POSTGRES_TEST_USER"),
		Password: os.Getenv("POSTGRES_TEST_PASS"),
		Name:     os.Getenv("POSTGRES_TEST_DB"),
		SSLMode:  "disable",
	}
	if cfg.User == "" {
		cfg.User = "postgres"
	}
	if cfg.Name == "" {
		cfg.Name = "test_catalogd"
	}

	db := database.NewPostgres(cfg)
	if err := db.Ping(context.Background()); err != nil {
		t.Skipf("Skipping integration test: failed to connect to PostgreSQL: %v", err)
		return nil
	}

	return db
}

// createTestUser inserts a user row and returns its ID
func createTestUser(t *testing.T, db *database.Postgres) (int64, string) {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Connect(ctx)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close(ctx)

	username := "test-user-" + uuid.New().String()[:8]
	var id int64
	err = conn.QueryRow(ctx, "INSERT INTO users (username) VALUES ($1) RETURNING id", username).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	t.Cleanup(func() { cleanupRow(t, db, "users", id) })
	return id, username
}

// createTestCategory inserts a category row and returns its ID
func createTestCategory(t *testing.T, db *database.Postgres) (int64, string) {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Connect(ctx)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close(ctx)

	name := "test-category-" + uuid.New().String()[:8]
	var id int64
	err = conn.QueryRow(ctx, "INSERT INTO categories (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	t.Cleanup(func() { cleanupRow(t, db, "categories", id) })
	return id, name
}

// cleanupRow removes a row by ID, ignoring errors
func cleanupRow(t *testing.T, db *database.Postgres, table string, id int64) {
	ctx := context.Background()
	conn, err := db.Connect(ctx)
	if err != nil {
		return
	}
	defer conn.Close(ctx)
	_, _ = conn.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
}

// countItems returns the number of rows in items
func countItems(t *testing.T, db *database.Postgres) int64 {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Connect(ctx)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close(ctx)

	var count int64
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		t.Fatalf("failed to count items: %v", err)
	}
	return count
}
