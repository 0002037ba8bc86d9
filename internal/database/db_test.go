package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, db.Path())
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	if err := again.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestOpen_BadPath(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "missing", "dir", "test.db")
	if _, err := Open(ctx, path); err == nil {
		t.Fatalf("expected error opening %s", path)
	}
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok, err := db.GetSetting(ctx, "theme"); err != nil || ok {
		t.Fatalf("expected missing setting, got ok=%v err=%v", ok, err)
	}
	if err := db.SetSetting(ctx, "theme", "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "theme", "default"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	value, ok, err := db.GetSetting(ctx, "theme")
	if err != nil || !ok || value != "default" {
		t.Fatalf("GetSetting = %q, %v, %v", value, ok, err)
	}
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", "tx", "1"); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	if err == nil {
		t.Fatalf("expected error from WithTx")
	}
	if _, ok, _ := db.GetSetting(ctx, "tx"); ok {
		t.Fatalf("expected rollback to drop setting")
	}

	if err := db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", "tx", "2")
		return err
	}); err != nil {
		t.Fatalf("WithTx commit failed: %v", err)
	}
	if v, ok, _ := db.GetSetting(ctx, "tx"); !ok || v != "2" {
		t.Fatalf("expected committed setting, got %q", v)
	}
}

func TestOpErrorFormatting(t *testing.T) {
	base := errors.New("boom")
	err := &OpError{Op: "load", Resource: "snapshot", Name: "recipe", Err: base}
	if got := err.Error(); got != `load snapshot "recipe": boom` {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected OpError to unwrap")
	}
	plain := &OpError{Op: "open", Resource: "database", Err: base}
	if got := plain.Error(); got != "open database: boom" {
		t.Fatalf("Error() = %q", got)
	}
	var nilErr *OpError
	if nilErr.Error() != "" {
		t.Fatalf("nil OpError should render empty")
	}
	if wrapSnapshotErr("save", "x", nil) != nil {
		t.Fatalf("wrapping nil should stay nil")
	}
}
