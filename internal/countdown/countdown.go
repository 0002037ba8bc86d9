// Package countdown implements a pausable, resettable countdown with
// second granularity. A Timer is driven from a single goroutine: commands and
// ticks must never run concurrently.
package countdown

import (
	"fmt"

	"github.com/akyairhashvil/kitchendeck/internal/clock"
	"github.com/akyairhashvil/kitchendeck/internal/models"
	"github.com/akyairhashvil/kitchendeck/internal/notify"
)

// Timer counts down from a fixed total while running.
type Timer struct {
	name      string
	total     int
	remaining int
	state     models.TimerState

	ticker   clock.Ticker
	notifier notify.Notifier
	stop     func()
	// gen identifies the live tick registration; ticks carrying an older
	// generation were already in flight when the timer stopped listening.
	gen uint64
}

// Option customizes a Timer.
type Option func(*Timer)

// WithName sets the event source name. Defaults to "timer".
func WithName(name string) Option {
	return func(t *Timer) { t.name = name }
}

// New returns an idle timer of total seconds.
func New(total int, ticker clock.Ticker, n notify.Notifier, opts ...Option) (*Timer, error) {
	if total < 0 {
		return nil, ErrInvalidDuration
	}
	if n == nil {
		n = notify.Discard
	}
	t := &Timer{
		name:      "timer",
		total:     total,
		remaining: total,
		state:     models.TimerIdle,
		ticker:    ticker,
		notifier:  n,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Name is the source name carried by the timer's events.
func (t *Timer) Name() string { return t.name }

// Total is the configured duration in seconds.
func (t *Timer) Total() int { return t.total }

// Remaining is the number of seconds left.
func (t *Timer) Remaining() int { return t.remaining }

// State reports the current lifecycle state.
func (t *Timer) State() models.TimerState { return t.state }

// Start begins or resumes the countdown.
func (t *Timer) Start() error {
	if t.state != models.TimerIdle && t.state != models.TimerPaused {
		return &StateError{Op: "start", State: t.state}
	}
	t.state = models.TimerRunning
	t.subscribe()
	t.emit(notify.TimerStarted)
	if t.remaining == 0 {
		t.complete()
	}
	return nil
}

// Pause suspends a running countdown, keeping the remaining time.
func (t *Timer) Pause() error {
	if t.state != models.TimerRunning {
		return &StateError{Op: "pause", State: t.state}
	}
	t.unsubscribe()
	t.state = models.TimerPaused
	t.emit(notify.TimerPaused)
	return nil
}

// Reset returns the timer to Idle with the full duration from any state.
func (t *Timer) Reset() {
	t.unsubscribe()
	t.remaining = t.total
	t.state = models.TimerIdle
	t.emit(notify.TimerReset)
}

// ResetTo replaces the duration and resets.
func (t *Timer) ResetTo(total int) error {
	if total < 0 {
		return ErrInvalidDuration
	}
	t.total = total
	t.Reset()
	return nil
}

// Tick advances the countdown by one second. It does nothing unless running.
func (t *Timer) Tick() {
	if t.state != models.TimerRunning {
		return
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.complete()
	}
}

// RemainingFormatted renders the remaining time as MM:SS. Minutes are not
// folded into hours.
func (t *Timer) RemainingFormatted() string {
	return FormatClock(t.remaining)
}

// Progress is the elapsed fraction of the total, in [0, 1].
func (t *Timer) Progress() float64 {
	if t.total == 0 {
		if t.state == models.TimerCompleted {
			return 1
		}
		return 0
	}
	return float64(t.total-t.remaining) / float64(t.total)
}

// Snapshot captures the timer for persistence.
func (t *Timer) Snapshot() models.TimerSnapshot {
	return models.TimerSnapshot{Total: t.total, Remaining: t.remaining, State: t.state}
}

// Restore validates s and applies it. A running snapshot resumes ticking.
// On error the timer is left untouched.
func (t *Timer) Restore(s models.TimerSnapshot) error {
	if err := ValidateSnapshot(s); err != nil {
		return err
	}
	t.unsubscribe()
	t.total = s.Total
	t.remaining = s.Remaining
	t.state = s.State
	if t.state == models.TimerRunning {
		t.subscribe()
	}
	return nil
}

// ValidateSnapshot checks the invariants a restored timer must satisfy.
func ValidateSnapshot(s models.TimerSnapshot) error {
	if !s.State.Valid() {
		return snapshotErr("unknown state %q", s.State)
	}
	if s.Total < 0 {
		return snapshotErr("negative total %d", s.Total)
	}
	if s.Remaining < 0 || s.Remaining > s.Total {
		return snapshotErr("remaining %d outside [0, %d]", s.Remaining, s.Total)
	}
	switch s.State {
	case models.TimerCompleted:
		if s.Remaining != 0 {
			return snapshotErr("completed with %d remaining", s.Remaining)
		}
	case models.TimerIdle:
		if s.Remaining != s.Total {
			return snapshotErr("idle with %d of %d remaining", s.Remaining, s.Total)
		}
	default:
		if s.Remaining == 0 {
			return snapshotErr("%s with nothing remaining", s.State)
		}
	}
	return nil
}

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (t *Timer) complete() {
	t.unsubscribe()
	t.state = models.TimerCompleted
	t.emit(notify.TimerCompleted)
}

func (t *Timer) subscribe() {
	t.unsubscribe()
	if t.ticker == nil {
		return
	}
	t.gen++
	gen := t.gen
	t.stop = t.ticker.Start(func() {
		if gen != t.gen {
			return
		}
		t.Tick()
	})
}

func (t *Timer) unsubscribe() {
	if t.stop != nil {
		t.stop()
		t.stop = nil
	}
	t.gen++
}

func (t *Timer) emit(kind notify.Kind) {
	t.notifier.Notify(notify.Event{Kind: kind, Source: t.name, Payload: t.Snapshot()})
}
