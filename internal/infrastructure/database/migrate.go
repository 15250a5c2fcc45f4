package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies the embedded schema migrations to db.
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	const operation = "database.RunMigrations"

	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("%s: open embedded migrations: %w", operation, err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("%s: start postgres driver: %w", operation, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("%s: migration failed to start: %w", operation, err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: could not run up migrations: %w", operation, err)
	}

	version, dirty, _ := m.Version()
	logger.Info("[startup] migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
