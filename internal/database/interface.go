package database

import (
	"context"

	"github.com/akyairhashvil/kitchendeck/internal/models"
)

// TimerStore persists countdown snapshots.
type TimerStore interface {
	SaveTimer(ctx context.Context, name string, s models.TimerSnapshot) error
	LoadTimer(ctx context.Context, name string) (models.TimerSnapshot, error)
}

// CarouselStore persists carousel snapshots.
type CarouselStore interface {
	SaveCarousel(ctx context.Context, name string, s models.CarouselSnapshot) error
	LoadCarousel(ctx context.Context, name string) (models.CarouselSnapshot, error)
}

// SnapshotStore combines both stores with housekeeping.
type SnapshotStore interface {
	TimerStore
	CarouselStore
	DeleteSnapshot(ctx context.Context, name string) error
	ListSnapshots(ctx context.Context) ([]StoredSnapshot, error)
}

var _ SnapshotStore = (*Database)(nil)
