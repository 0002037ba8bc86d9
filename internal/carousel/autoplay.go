package carousel

import "github.com/akyairhashvil/kitchendeck/internal/clock"

// Autoplay advances a carousel on every tick of its ticker until stopped.
type Autoplay struct {
	carousel *Carousel
	ticker   clock.Ticker
	stop     func()
	gen      uint64
}

// NewAutoplay returns a stopped autoplay for c. A nil ticker makes Start a
// no-op.
func NewAutoplay(c *Carousel, ticker clock.Ticker) *Autoplay {
	return &Autoplay{carousel: c, ticker: ticker}
}

// Running reports whether autoplay is subscribed to its ticker.
func (a *Autoplay) Running() bool { return a.stop != nil }

// Start is a no-op when already running.
func (a *Autoplay) Start() {
	if a.stop != nil || a.ticker == nil {
		return
	}
	a.gen++
	gen := a.gen
	a.stop = a.ticker.Start(func() {
		if gen != a.gen {
			return
		}
		a.carousel.Next()
	})
}

// Stop cancels the subscription; ticks already queued are ignored.
func (a *Autoplay) Stop() {
	if a.stop == nil {
		return
	}
	a.stop()
	a.stop = nil
	a.gen++
}

// Toggle flips autoplay and reports whether it is now running.
func (a *Autoplay) Toggle() bool {
	if a.Running() {
		a.Stop()
	} else {
		a.Start()
	}
	return a.Running()
}
