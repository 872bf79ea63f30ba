// Package sqlite implementa los puertos de persistencia sobre la base
// embebida local (un único archivo .db por instalación).
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/FedericoMusa/ordico2/internal/domain"
)

// Open abre (o crea) la base local y verifica la conexión.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	// Un solo proceso accede al archivo; una conexión evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return db, nil
}

// InitSchema crea las tablas si no existen. La unicidad de username, email y
// dni se garantiza acá, de forma atómica en cada INSERT.
func InitSchema(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS usuarios (
		id         TEXT PRIMARY KEY,
		username   TEXT UNIQUE NOT NULL,
		password   TEXT NOT NULL,
		email      TEXT UNIQUE NOT NULL,
		dni        TEXT UNIQUE NOT NULL,
		rol        TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	CREATE TABLE IF NOT EXISTS productos (
		id         TEXT PRIMARY KEY,
		nombre     TEXT UNIQUE NOT NULL,
		categoria  TEXT NOT NULL,
		cantidad   INTEGER NOT NULL,
		precio     TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("inicializar esquema: %w", err)
	}
	return nil
}
