package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"festival/config"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Applies migrations/<n>.sql in order, starting after the version recorded in the schema's
// migrations table.
func main() {
	cfg := config.Env()
	logger, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.DatabaseName,
		cfg.DatabaseSchema,
	)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	version, err := getMigrationVersion(db, cfg.DatabaseSchema)
	if err != nil {
		logger.Fatal("failed to read migration version", zap.Error(err))
	}
	for {
		err = migrateUp(db, version+1)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("database is up to date", zap.Int("version", version))
			return
		}
		if err != nil {
			logger.Fatal("migration failed", zap.Int("version", version+1), zap.Error(err))
		}
		version++
		logger.Info("migrated", zap.Int("version", version))
	}
}

func migrateUp(db *sql.DB, version int) error {
	file, err := os.ReadFile(fmt.Sprintf("migrations/%d.sql", version))
	if err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec(string(file)); err != nil {
		return fmt.Errorf("error executing migration: %w", err)
	}
	if _, err := tx.Exec("UPDATE migrations SET version = $1", version); err != nil {
		return fmt.Errorf("error updating migration version: %w", err)
	}
	return tx.Commit()
}

func getMigrationVersion(db *sql.DB, schema string) (version int, err error) {
	if _, err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s;", schema)); err != nil {
		return 0, err
	}
	err = db.QueryRow("SELECT version FROM migrations").Scan(&version)
	if err != nil {
		return 0, generateMigrationTable(db)
	}
	return version, nil
}

func generateMigrationTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INT PRIMARY KEY
		);
		INSERT INTO migrations (version) VALUES (0);
	`)
	return err
}
