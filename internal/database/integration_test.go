package database

import (
	"path/filepath"
	"testing"

	"weddingrsvp/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DatabaseType:   "sqlite",
		DatabasePath:   filepath.Join(t.TempDir(), "test.db"),
		MigrationsPath: "../../migrations",
	}
}

func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := Initialize(testConfig(t))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	tables := []string{"users", "rsvps", "sms_invites", "migrations"}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := Initialize(testConfig(t))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Re-running migrations failed: %v", err)
	}

	files, err := filepath.Glob("../../migrations/*.sql")
	if err != nil {
		t.Fatalf("Failed to list migration files: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count recorded migrations: %v", err)
	}
	if count != len(files) {
		t.Errorf("Expected %d recorded migrations, got %d", len(files), count)
	}
}

func TestInitializeRejectsUnknownType(t *testing.T) {
	cfg := &config.Config{DatabaseType: "oracle"}
	if _, err := Initialize(cfg); err == nil {
		t.Error("Expected an error for an unsupported database type")
	}
}
