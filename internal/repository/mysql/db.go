// Package mysql adapts the WooCommerce MySQL schema (HPOS order tables,
// order items, tax rates, options) to the repository ports. Nothing above
// this package knows how the store lays out its tables.
package mysql

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"corrispettivi/internal/config"
)

// NewDB creates a new MySQL connection pool against the store database.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to mysql: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	return db, nil
}
