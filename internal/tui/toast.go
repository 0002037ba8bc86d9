package tui

import (
	"time"

	"github.com/akyairhashvil/kitchendeck/internal/notify"
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastError
)

type toast struct {
	text  string
	level toastLevel
	at    time.Time
}

// toastBoard turns component events into the short messages shown in the
// footer. It is the only place event kinds become user-facing text.
type toastBoard struct {
	current toast
	ttl     time.Duration
	now     func() time.Time
}

func newToastBoard(ttl time.Duration) *toastBoard {
	return &toastBoard{ttl: ttl, now: time.Now}
}

func (b *toastBoard) Notify(ev notify.Event) {
	switch ev.Kind {
	case notify.TimerStarted:
		b.show("Timer started!", toastInfo)
	case notify.TimerPaused:
		b.show("Timer paused", toastInfo)
	case notify.TimerReset:
		b.show("Timer reset", toastInfo)
	case notify.TimerCompleted:
		b.show("Cooking time complete! Your coffee is ready!", toastSuccess)
	}
}

func (b *toastBoard) error(err error) {
	if err != nil {
		b.show(err.Error(), toastError)
	}
}

func (b *toastBoard) show(text string, level toastLevel) {
	b.current = toast{text: text, level: level, at: b.now()}
}

// visible returns the current toast while it is younger than the ttl.
func (b *toastBoard) visible() (toast, bool) {
	if b.current.text == "" {
		return toast{}, false
	}
	if b.now().Sub(b.current.at) > b.ttl {
		return toast{}, false
	}
	return b.current, true
}
