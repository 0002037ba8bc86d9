package tui

import (
	"context"

	"github.com/akyairhashvil/kitchendeck/internal/carousel"
	"github.com/akyairhashvil/kitchendeck/internal/config"
	"github.com/akyairhashvil/kitchendeck/internal/session"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Pane identifies the focused half of the screen.
type Pane int

const (
	PaneTimer Pane = iota
	PaneCarousel
)

// Model is the root bubbletea model. It renders the session's components and
// translates input into their commands; it holds no timer or carousel state
// of its own.
type Model struct {
	ctx        context.Context
	session    *session.Session
	cfg        *config.Config
	timerTicks *Ticker
	autoTicks  *Ticker
	input      *carousel.Input
	keys       *HandlerRegistry
	toasts     *toastBoard
	progress   progress.Model
	theme      Theme
	focus      Pane
	width      int
	height     int
	quitting   bool
}

// NewModel builds the UI for sess. timerTicks and autoTicks must be the
// tickers sess was created with.
func NewModel(ctx context.Context, sess *session.Session, cfg *config.Config, timerTicks, autoTicks *Ticker) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := Model{
		ctx:        ctx,
		session:    sess,
		cfg:        cfg,
		timerTicks: timerTicks,
		autoTicks:  autoTicks,
		keys:       defaultKeys(),
		toasts:     newToastBoard(config.ToastDuration),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(config.ProgressWidth)),
		theme:      ThemeNamed(cfg.Theme),
	}
	cells := cfg.Carousel.SwipeThreshold / config.PixelsPerCell
	if cells < 1 {
		cells = 1
	}
	m.input = carousel.NewInput(sess.Carousel, cells)
	m.input.OnNavigate(sess.Autoplay.Stop)
	sess.Hub.Subscribe("", m.toasts)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.scheduleTicks()
}

// scheduleTicks arms tea ticks for every live subscription.
func (m Model) scheduleTicks() tea.Cmd {
	var cmds []tea.Cmd
	if m.timerTicks != nil {
		cmds = append(cmds, m.timerTicks.Cmd())
	}
	if m.autoTicks != nil {
		cmds = append(cmds, m.autoTicks.Cmd())
	}
	return tea.Batch(cmds...)
}

func defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Priority: 100})
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 100})
	r.Register(KeyBinding{Key: "tab", Handler: handleFocus, Description: "switch", Priority: 90})
	r.Register(KeyBinding{Key: "s", Handler: handleTimerStart, Description: "start", Priority: 50})
	r.Register(KeyBinding{Key: "p", Handler: handleTimerPause, Description: "pause", Priority: 50})
	r.Register(KeyBinding{Key: "r", Handler: handleTimerReset, Description: "reset", Priority: 50})
	r.Register(KeyBinding{Key: " ", Handler: handleTimerToggle, Description: "start/pause", Panes: []Pane{PaneTimer}, Priority: 40})
	r.Register(KeyBinding{Key: "a", Handler: handleAutoplay, Description: "autoplay", Panes: []Pane{PaneCarousel}, Priority: 40})
	r.Register(KeyBinding{Key: "left", Description: "prev", Panes: []Pane{PaneCarousel}, Handler: passToInput})
	r.Register(KeyBinding{Key: "right", Description: "next", Panes: []Pane{PaneCarousel}, Handler: passToInput})
	r.Register(KeyBinding{Key: "home", Description: "first", Panes: []Pane{PaneCarousel}, Handler: passToInput})
	r.Register(KeyBinding{Key: "end", Description: "last", Panes: []Pane{PaneCarousel}, Handler: passToInput})
	return r
}
