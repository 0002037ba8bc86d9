package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/kitchendeck/internal/models"
)

// Snapshot kinds stored in the kind column.
const (
	KindTimer    = "timer"
	KindCarousel = "carousel"
)

// StoredSnapshot is a raw row of the snapshots table.
type StoredSnapshot struct {
	Name      string
	Kind      string
	Payload   string
	UpdatedAt *time.Time
}

func (d *Database) SaveTimer(ctx context.Context, name string, s models.TimerSnapshot) error {
	return d.save(ctx, name, KindTimer, s)
}

func (d *Database) LoadTimer(ctx context.Context, name string) (models.TimerSnapshot, error) {
	var s models.TimerSnapshot
	err := d.load(ctx, name, KindTimer, &s)
	return s, err
}

func (d *Database) SaveCarousel(ctx context.Context, name string, s models.CarouselSnapshot) error {
	return d.save(ctx, name, KindCarousel, s)
}

func (d *Database) LoadCarousel(ctx context.Context, name string) (models.CarouselSnapshot, error) {
	var s models.CarouselSnapshot
	err := d.load(ctx, name, KindCarousel, &s)
	return s, err
}

// DeleteSnapshot removes name. Deleting a missing snapshot is not an error.
func (d *Database) DeleteSnapshot(ctx context.Context, name string) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM snapshots WHERE name = ?", name)
	return wrapSnapshotErr("delete", name, err)
}

// ListSnapshots returns every stored snapshot ordered by name.
func (d *Database) ListSnapshots(ctx context.Context) ([]StoredSnapshot, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT name, kind, payload, updated_at FROM snapshots ORDER BY name ASC")
	if err != nil {
		return nil, wrapSnapshotErr("list", "", err)
	}
	defer rows.Close()

	var out []StoredSnapshot
	for rows.Next() {
		var s StoredSnapshot
		var updated sql.NullTime
		if err := rows.Scan(&s.Name, &s.Kind, &s.Payload, &updated); err != nil {
			return nil, wrapSnapshotErr("list", "", err)
		}
		if updated.Valid {
			t := updated.Time
			s.UpdatedAt = &t
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSnapshotErr("list", "", err)
	}
	return out, nil
}

func (d *Database) save(ctx context.Context, name, kind string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return wrapSnapshotErr("encode", name, err)
	}
	_, err = d.DB.ExecContext(ctx, `
		INSERT INTO snapshots (name, kind, payload, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			kind = excluded.kind,
			payload = excluded.payload,
			updated_at = excluded.updated_at`, name, kind, string(payload))
	return wrapSnapshotErr("save", name, err)
}

func (d *Database) load(ctx context.Context, name, kind string, v any) error {
	var storedKind, payload string
	err := d.DB.QueryRowContext(ctx, "SELECT kind, payload FROM snapshots WHERE name = ?", name).Scan(&storedKind, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return wrapSnapshotErr("load", name, ErrSnapshotNotFound)
	}
	if err != nil {
		return wrapSnapshotErr("load", name, err)
	}
	if storedKind != kind {
		return wrapSnapshotErr("load", name, fmt.Errorf("%w: stored %s, want %s", ErrKindMismatch, storedKind, kind))
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return wrapSnapshotErr("decode", name, err)
	}
	return nil
}
