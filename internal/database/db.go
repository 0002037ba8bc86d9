// Package database stores component snapshots and small settings in a local
// SQLite file. It never validates snapshot contents; the components check
// their own invariants on restore.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/akyairhashvil/kitchendeck/internal/util"
	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the SQLite file at path and brings the schema up to date.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	// One connection keeps writes from a single session serialized.
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		util.LogError("close database after failed ping", conn.Close())
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	d := &Database{DB: conn, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		util.LogError("close database after failed schema", conn.Close())
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		util.LogError("close database after failed migration", conn.Close())
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the file backing the database.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "create table", Resource: "database", Err: err}
		}
	}
	return nil
}

func (d *Database) migrate(ctx context.Context) error {
	migrations := []string{
		"ALTER TABLE snapshots ADD COLUMN updated_at DATETIME",
	}
	for _, m := range migrations {
		if _, err := d.DB.ExecContext(ctx, m); err != nil && !isDuplicateColumn(err) {
			return &OpError{Op: "migrate", Resource: "database", Err: fmt.Errorf("%s: %w", m, err)}
		}
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column")
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			util.LogError("rollback", rbErr)
		}
		return err
	}
	return tx.Commit()
}
