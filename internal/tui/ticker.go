package tui

import (
	"time"

	"github.com/akyairhashvil/kitchendeck/internal/clock"
	tea "github.com/charmbracelet/bubbletea"
)

var _ clock.Ticker = (*Ticker)(nil)

// TickMsg is produced when a Ticker's interval elapses.
type TickMsg struct {
	Source string
	Gen    uint64
	At     time.Time
}

// Ticker adapts tea.Tick to clock.Ticker. Start and the returned stop only
// record the subscription; the model turns a live subscription into a tea
// command with Cmd and routes the resulting TickMsg back through Deliver, so
// every tick runs inside Update.
type Ticker struct {
	id       string
	interval time.Duration
	onTick   func()
	gen      uint64
	// pending is set while a tick for generation pendingGen is scheduled.
	pending    bool
	pendingGen uint64
}

func NewTicker(id string, interval time.Duration) *Ticker {
	return &Ticker{id: id, interval: interval}
}

func (t *Ticker) Start(onTick func()) func() {
	t.gen++
	gen := t.gen
	t.onTick = onTick
	return func() {
		if t.gen != gen {
			return
		}
		t.onTick = nil
		t.gen++
	}
}

func (t *Ticker) Active() bool { return t.onTick != nil }

// Cmd schedules the next tick if a subscription is live and no tick is
// already pending for it. A tick still in flight for a cancelled subscription
// does not hold back the new one.
func (t *Ticker) Cmd() tea.Cmd {
	if t.onTick == nil || (t.pending && t.pendingGen == t.gen) {
		return nil
	}
	t.pending = true
	t.pendingGen = t.gen
	id, gen := t.id, t.gen
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return TickMsg{Source: id, Gen: gen, At: at}
	})
}

// Deliver runs the subscriber for msg if it belongs to this ticker and to
// the live subscription. It reports whether msg was addressed here.
func (t *Ticker) Deliver(msg TickMsg) bool {
	if msg.Source != t.id {
		return false
	}
	if msg.Gen == t.pendingGen {
		t.pending = false
	}
	if msg.Gen == t.gen && t.onTick != nil {
		t.onTick()
	}
	return true
}
