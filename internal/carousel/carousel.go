// Package carousel keeps a single-selection cursor over a fixed list of
// items. Navigation wraps around silently in both directions.
package carousel

import (
	"github.com/akyairhashvil/kitchendeck/internal/models"
	"github.com/akyairhashvil/kitchendeck/internal/notify"
	"github.com/google/uuid"
)

// Carousel is not safe for concurrent use.
type Carousel struct {
	name     string
	items    []models.Item
	index    int
	notifier notify.Notifier
}

// Option customizes a Carousel.
type Option func(*Carousel)

// WithName sets the event source name. Defaults to "carousel".
func WithName(name string) Option {
	return func(c *Carousel) { c.name = name }
}

// New builds a carousel over a copy of items, selecting start. Items without
// an ID are given a random one.
func New(items []models.Item, start int, n notify.Notifier, opts ...Option) (*Carousel, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCollection
	}
	if start < 0 || start >= len(items) {
		return nil, &RangeError{Op: "new", Index: start, Len: len(items)}
	}
	if n == nil {
		n = notify.Discard
	}
	owned := make([]models.Item, len(items))
	copy(owned, items)
	for i := range owned {
		if owned[i].ID == "" {
			owned[i].ID = uuid.NewString()
		}
	}
	c := &Carousel{name: "carousel", items: owned, index: start, notifier: n}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Name is the source name carried by the carousel's events.
func (c *Carousel) Name() string { return c.name }

// Index is the zero-based position of the selected item.
func (c *Carousel) Index() int { return c.index }

// Len is the number of items; it never changes after New.
func (c *Carousel) Len() int { return len(c.items) }

// Current returns the selected item.
func (c *Carousel) Current() models.Item {
	return c.items[c.index]
}

// Items returns a copy of the item list.
func (c *Carousel) Items() []models.Item {
	out := make([]models.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Next advances one item, wrapping to the first after the last.
func (c *Carousel) Next() {
	c.move((c.index + 1) % len(c.items))
}

// Previous steps back one item, wrapping to the last before the first.
func (c *Carousel) Previous() {
	c.move((c.index - 1 + len(c.items)) % len(c.items))
}

// GoTo selects index. Selecting the current item is a silent no-op.
func (c *Carousel) GoTo(index int) error {
	if index < 0 || index >= len(c.items) {
		return &RangeError{Op: "goto", Index: index, Len: len(c.items)}
	}
	if index == c.index {
		return nil
	}
	c.move(index)
	return nil
}

// Snapshot captures the selection.
func (c *Carousel) Snapshot() models.CarouselSnapshot {
	return models.CarouselSnapshot{Index: c.index}
}

// Restore applies a snapshot after checking it against the item list. It
// does not notify.
func (c *Carousel) Restore(s models.CarouselSnapshot) error {
	if s.Index < 0 || s.Index >= len(c.items) {
		return &RangeError{Op: "restore", Index: s.Index, Len: len(c.items)}
	}
	c.index = s.Index
	return nil
}

func (c *Carousel) move(to int) {
	from := c.index
	c.index = to
	c.notifier.Notify(notify.Event{
		Kind:    notify.CarouselChanged,
		Source:  c.name,
		Payload: notify.IndexChange{From: from, To: to, Item: c.items[to]},
	})
}
