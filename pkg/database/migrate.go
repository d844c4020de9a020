package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

// MigrationStatus is reported by the "version" action.
type MigrationStatus struct {
	Version uint
	Dirty   bool
	Applied bool
}

// Migrate applies action ("up", "down", "drop", "version") using the SQL files
// in migrations against the database at dsn.
func Migrate(dsn string, migrations fs.FS, action string) (MigrationStatus, error) {
	var status MigrationStatus

	src, err := iofs.New(migrations, ".")
	if err != nil {
		return status, fmt.Errorf("migrate: open source: %w", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return status, fmt.Errorf("migrate: open database: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return status, fmt.Errorf("migrate: create driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return status, fmt.Errorf("migrate: create instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "drop":
		err = m.Drop()
	case "version":
	default:
		return status, fmt.Errorf("migrate: unsupported action %q", action)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("migrate %s: %w", action, err)
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return status, nil
	}
	if err != nil {
		return status, fmt.Errorf("migrate: read version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty, Applied: true}, nil
}
