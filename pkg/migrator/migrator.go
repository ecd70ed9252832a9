package migrator

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Up применяет все миграции из каталога migrationsPath.
// Возвращает применённую версию схемы.
func Up(db *sql.DB, migrationsPath string) (uint, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, fmt.Errorf("migrator: create postgres driver: %w", err)
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return 0, fmt.Errorf("migrator: resolve migrations path: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(SourceURL(absPath), "postgres", driver)
	if err != nil {
		return 0, fmt.Errorf("migrator: create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migrator: apply migrations: %w", err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("migrator: read schema version: %w", err)
	}

	return version, nil
}

// SourceURL строит URL файлового источника миграций
func SourceURL(absPath string) string {
	return "file://" + filepath.ToSlash(absPath)
}
