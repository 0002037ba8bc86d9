package testutil

import (
	"fmt"

	"github.com/akyairhashvil/kitchendeck/internal/config"
	"github.com/akyairhashvil/kitchendeck/internal/models"
)

// Gallery returns n items with stable IDs.
func Gallery(n int) []models.Item {
	items := make([]models.Item, n)
	for i := range items {
		items[i] = NewItem().WithIndex(i).Build()
	}
	return items
}

// ItemBuilder provides fluent API for creating carousel items.
type ItemBuilder struct {
	item models.Item
}

func NewItem() *ItemBuilder {
	return &ItemBuilder{item: models.Item{ID: "img-0", Src: "img-0.jpg", Alt: "Image 0"}}
}

func (b *ItemBuilder) WithIndex(i int) *ItemBuilder {
	b.item.ID = fmt.Sprintf("img-%d", i)
	b.item.Src = fmt.Sprintf("img-%d.jpg", i)
	b.item.Thumbnail = fmt.Sprintf("img-%d-thumb.jpg", i)
	b.item.Alt = fmt.Sprintf("Image %d", i)
	return b
}

func (b *ItemBuilder) WithAlt(alt string) *ItemBuilder {
	b.item.Alt = alt
	return b
}

func (b *ItemBuilder) Build() models.Item {
	return b.item
}

// TimerSnapshotBuilder provides fluent API for creating timer snapshots.
type TimerSnapshotBuilder struct {
	snap models.TimerSnapshot
}

func NewTimerSnapshot() *TimerSnapshotBuilder {
	return &TimerSnapshotBuilder{
		snap: models.TimerSnapshot{
			Total:     config.RecipeTimerSeconds,
			Remaining: config.RecipeTimerSeconds,
			State:     models.TimerIdle,
		},
	}
}

func (b *TimerSnapshotBuilder) WithTotal(total int) *TimerSnapshotBuilder {
	b.snap.Total = total
	b.snap.Remaining = total
	return b
}

func (b *TimerSnapshotBuilder) Paused(remaining int) *TimerSnapshotBuilder {
	b.snap.Remaining = remaining
	b.snap.State = models.TimerPaused
	return b
}

func (b *TimerSnapshotBuilder) Running(remaining int) *TimerSnapshotBuilder {
	b.snap.Remaining = remaining
	b.snap.State = models.TimerRunning
	return b
}

func (b *TimerSnapshotBuilder) Completed() *TimerSnapshotBuilder {
	b.snap.Remaining = 0
	b.snap.State = models.TimerCompleted
	return b
}

func (b *TimerSnapshotBuilder) Build() models.TimerSnapshot {
	return b.snap
}

// Config returns the default configuration with a smaller timer and the
// given gallery, suitable for driving a session in tests.
func Config(seconds int, items []models.Item) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Timer.Seconds = seconds
	if items != nil {
		cfg.Carousel.Items = items
		if cfg.Carousel.StartIndex >= len(items) {
			cfg.Carousel.StartIndex = 0
		}
	}
	cfg.Carousel.Autoplay = false
	return cfg
}
