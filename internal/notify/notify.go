// Package notify carries structured events from the timer and carousel to
// whoever wants to display or record them. The components never format
// user-facing text themselves.
package notify

import (
	"sync"
	"time"

	"github.com/akyairhashvil/kitchendeck/internal/models"
	"go.uber.org/zap"
)

// Kind identifies an event.
type Kind string

const (
	TimerStarted    Kind = "timer.started"
	TimerPaused     Kind = "timer.paused"
	TimerReset      Kind = "timer.reset"
	TimerCompleted  Kind = "timer.completed"
	CarouselChanged Kind = "carousel.changed"
)

// Event is a single notification. Payload is a models.TimerSnapshot for timer
// kinds and an IndexChange for carousel kinds.
type Event struct {
	Kind    Kind
	Source  string
	At      time.Time
	Payload any
}

// IndexChange describes a carousel selection move.
type IndexChange struct {
	From int
	To   int
	Item models.Item
}

// Notifier receives events.
//
//go:generate mockgen -source=notify.go -destination=mocknotify/mock_notify.go -package=mocknotify
type Notifier interface {
	Notify(ev Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(ev Event) { f(ev) }

// Discard drops every event.
var Discard Notifier = NotifierFunc(func(Event) {})

// Hub fans events out to listeners registered per kind. Listeners registered
// with an empty kind receive everything.
type Hub struct {
	mu        sync.RWMutex
	listeners map[Kind][]Notifier
}

func NewHub() *Hub {
	return &Hub{listeners: map[Kind][]Notifier{}}
}

// Subscribe adds a listener for kind, or for all kinds when kind is empty.
func (h *Hub) Subscribe(kind Kind, n Notifier) {
	if n == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners[kind] = append(h.listeners[kind], n)
}

func (h *Hub) Notify(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	h.mu.RLock()
	targets := make([]Notifier, 0, len(h.listeners[ev.Kind])+len(h.listeners[""]))
	targets = append(targets, h.listeners[ev.Kind]...)
	targets = append(targets, h.listeners[""]...)
	h.mu.RUnlock()
	for _, n := range targets {
		n.Notify(ev)
	}
}

// LogNotifier writes every event to a zap logger.
type LogNotifier struct {
	Logger *zap.Logger
}

func (l LogNotifier) Notify(ev Event) {
	if l.Logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("kind", string(ev.Kind)),
		zap.String("source", ev.Source),
	}
	switch p := ev.Payload.(type) {
	case models.TimerSnapshot:
		fields = append(fields,
			zap.String("state", string(p.State)),
			zap.Int("remaining", p.Remaining),
			zap.Int("total", p.Total))
	case IndexChange:
		fields = append(fields,
			zap.Int("from", p.From),
			zap.Int("to", p.To),
			zap.String("item", p.Item.ID))
	}
	l.Logger.Info("event", fields...)
}

// Recorder keeps every event it receives in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent event, if any.
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}
