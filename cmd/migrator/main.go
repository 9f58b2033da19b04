package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/YusovID/pangea-backend/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type MigrationCfg struct {
	DatabaseURL     string
	MigrationsPath  string
	MigrationsTable string
}

func main() {
	migration, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	m, err := migrate.New(
		"file://"+migration.MigrationsPath,
		fmt.Sprintf("%s&x-migrations-table=%s", migration.DatabaseURL, migration.MigrationsTable),
	)
	if err != nil {
		log.Fatalf("can't create new migration: %v", err)
	}

	var cmd string
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "down":
		if err := down(m); err != nil {
			log.Fatal(err)
		}

		fmt.Println("migrations rolled back successfully")
	default:
		if err := up(m); err != nil {
			log.Fatal(err)
		}

		fmt.Println("migrations applied successfully")
	}
}

// Load reads the service config plus the migration-only environment.
func Load() (*MigrationCfg, error) {
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		return nil, errors.New("MIGRATIONS_PATH is not set")
	}

	migrationsTable := os.Getenv("MIGRATIONS_TABLE")
	if migrationsTable == "" {
		migrationsTable = "schema_migrations"
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return &MigrationCfg{
		DatabaseURL:     cfg.Postgres.DSN(),
		MigrationsPath:  migrationsPath,
		MigrationsTable: migrationsTable,
	}, nil
}

func up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no new migrations to apply")
			return nil
		}

		return fmt.Errorf("can't do migrations: %w", err)
	}

	return nil
}

func down(m *migrate.Migrate) error {
	if err := m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return errors.New("no migrations to roll back")
		}

		return fmt.Errorf("can't down migrations: %w", err)
	}

	return nil
}
