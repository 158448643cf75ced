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
	"gorm.io/gorm"

	"hr-records/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the schema up to date for the configured driver.
// PostgreSQL runs the versioned SQL migrations; sqlite, used for local runs
// and tests, is built from the gorm models.
func Migrate(db *gorm.DB, driver string, models []interface{}, logger *zap.Logger) error {
	if driver == config.DriverSQLite {
		return AutoMigrate(db, models, logger)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return RunMigrations(sqlDB, logger)
}

// RunMigrations applies every pending migration under migrations/.
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("database migration is dirty", zap.Uint("version", version))
	} else {
		logger.Info("database migrations applied", zap.Uint("version", version))
	}

	return nil
}

// AutoMigrate creates or updates tables straight from the models.
func AutoMigrate(db *gorm.DB, models []interface{}, logger *zap.Logger) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("schema auto-migrated", zap.Int("tables", len(models)))
	return nil
}
