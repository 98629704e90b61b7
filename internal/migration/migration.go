// Package migration aplica el esquema embebido en el arranque, para que la API
// sea usable sin pasos manuales en entornos locales y autohospedados.
package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var embeddedMigrations embed.FS

const migrationsDir = "sql"

// Run aplica las migraciones pendientes sobre el handle dado.
// migrate.ErrNoChange no es un error: el esquema ya está al día.
func Run(db *sql.DB) error {
	if db == nil {
		return errors.New("se requiere el handle de base de datos")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("abrir migraciones: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("crear source de migraciones: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("crear driver de migraciones: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("crear migrador: %w", err)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	// No cerrar el migrador aquí: cerraría el *sql.DB compartido.

	return nil
}
