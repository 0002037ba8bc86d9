// Package clock supplies tick sources for the countdown and the carousel
// autoplay. Components only see the Ticker interface, so tests drive them with
// Manual while the CLI uses a Loop backed by time.Ticker.
package clock

import (
	"context"
	"sync"
	"time"
)

// Ticker delivers one callback per unit of time until the returned stop
// function is called. Stop is idempotent.
type Ticker interface {
	Start(onTick func()) (stop func())
}

// TickerFunc adapts a function to the Ticker interface.
type TickerFunc func(onTick func()) func()

func (f TickerFunc) Start(onTick func()) func() { return f(onTick) }

type manualSub struct {
	fn     func()
	active bool
}

// Manual is a deterministic tick source. Ticks are only delivered by Advance.
type Manual struct {
	subs []*manualSub
}

// NewManual returns a source that ticks only on Advance.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Start(onTick func()) func() {
	sub := &manualSub{fn: onTick, active: true}
	m.subs = append(m.subs, sub)
	return func() { sub.active = false }
}

// Advance delivers n ticks to every active subscriber in registration order.
// A subscriber stopped during delivery receives no further ticks.
func (m *Manual) Advance(n int) {
	for i := 0; i < n; i++ {
		subs := append([]*manualSub(nil), m.subs...)
		for _, sub := range subs {
			if sub.active {
				sub.fn()
			}
		}
		m.compact()
	}
}

// Active returns the number of live subscriptions.
func (m *Manual) Active() int {
	n := 0
	for _, sub := range m.subs {
		if sub.active {
			n++
		}
	}
	return n
}

func (m *Manual) compact() {
	live := m.subs[:0]
	for _, sub := range m.subs {
		if sub.active {
			live = append(live, sub)
		}
	}
	m.subs = live
}

// Loop is a single-goroutine host scheduler. Commands posted to it and ticks
// from its tickers run one at a time on the goroutine calling Run.
type Loop struct {
	cmds chan func()
	done chan struct{}
	once sync.Once
}

// NewLoop returns a loop that is idle until Run is called.
func NewLoop() *Loop {
	return &Loop{
		cmds: make(chan func(), 64),
		done: make(chan struct{}),
	}
}

// Run executes posted commands until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.cmds:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fn()
		}
	}
}

// Post queues fn for execution on the loop. It reports false once the loop
// has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.cmds <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Every returns a Ticker firing every interval on the loop goroutine.
func (l *Loop) Every(interval time.Duration) Ticker {
	return TickerFunc(func(onTick func()) func() {
		stopCh := make(chan struct{})
		var once sync.Once
		go func() {
			t := time.NewTicker(interval)
			defer t.Stop()
			for {
				select {
				case <-stopCh:
					return
				case <-l.done:
					return
				case <-t.C:
					select {
					case l.cmds <- onTick:
					case <-stopCh:
						return
					case <-l.done:
						return
					}
				}
			}
		}()
		return func() { once.Do(func() { close(stopCh) }) }
	})
}
