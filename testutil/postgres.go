package testutil

import (
	"testing"

	"festival/config"
	"festival/repository"

	"github.com/ory/dockertest/v3"
	"gorm.io/gorm"
)

// NewPostgresDB starts a disposable postgres container and migrates the festival schema into it.
// The test is skipped in -short mode or when no docker daemon is reachable.
func NewPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in short mode")
	}
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("Could not construct pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "POSTGRES_DB=postgres"})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	_ = resource.Expire(600)
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	cfg := &config.Config{
		DatabaseHost:     "localhost",
		DatabasePort:     resource.GetPort("5432/tcp"),
		PostgresUser:     "postgres",
		PostgresPassword: "postgres",
		DatabaseName:     "postgres",
		DatabaseSchema:   "festival",
	}
	var db *gorm.DB
	err = pool.Retry(func() error {
		var err error
		db, err = config.InitDB(cfg, repository.Models()...)
		return err
	})
	if err != nil {
		t.Fatalf("Could not connect to database: %s", err)
	}
	return db
}
