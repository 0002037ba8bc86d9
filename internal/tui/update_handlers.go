package tui

import (
	"github.com/akyairhashvil/kitchendeck/internal/config"
	"github.com/akyairhashvil/kitchendeck/internal/models"
	"github.com/akyairhashvil/kitchendeck/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
	case TickMsg:
		m = m.handleTick(msg)
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	}
	if m.quitting {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.scheduleTicks())
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	target := config.ProgressWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		target = m.width / 2
	}
	if target < config.MinProgressWidth {
		target = config.MinProgressWidth
	}
	m.progress.Width = target
	return m
}

func (m Model) handleTick(msg TickMsg) Model {
	if m.timerTicks != nil && m.timerTicks.Deliver(msg) {
		return m
	}
	if m.autoTicks != nil {
		m.autoTicks.Deliver(msg)
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	if m.focus == PaneCarousel {
		if _, err := m.input.Key(key); err != nil {
			m.toasts.error(err)
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.input.Wheel(1)
	case msg.Button == tea.MouseButtonWheelUp:
		m.input.Wheel(-1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.input.PointerDown(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		m.input.PointerUp(msg.X, msg.Y)
	}
	return m
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	util.LogError("save session", m.session.Suspend(m.ctx))
	m.quitting = true
	return m, tea.Quit, true
}

func handleFocus(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.focus == PaneTimer {
		m.focus = PaneCarousel
	} else {
		m.focus = PaneTimer
	}
	return m, nil, true
}

func handleTimerStart(m Model, _ string) (Model, tea.Cmd, bool) {
	m.toasts.error(m.session.Timer.Start())
	return m, nil, true
}

func handleTimerPause(m Model, _ string) (Model, tea.Cmd, bool) {
	m.toasts.error(m.session.Timer.Pause())
	return m, nil, true
}

func handleTimerReset(m Model, _ string) (Model, tea.Cmd, bool) {
	m.session.Timer.Reset()
	return m, nil, true
}

// handleTimerToggle mirrors the single Start/Resume/Pause button.
func handleTimerToggle(m Model, key string) (Model, tea.Cmd, bool) {
	switch m.session.Timer.State() {
	case models.TimerRunning:
		return handleTimerPause(m, key)
	case models.TimerCompleted:
		m.session.Timer.Reset()
		return m, nil, true
	default:
		return handleTimerStart(m, key)
	}
}

func handleAutoplay(m Model, _ string) (Model, tea.Cmd, bool) {
	m.session.Autoplay.Toggle()
	return m, nil, true
}

func passToInput(m Model, key string) (Model, tea.Cmd, bool) {
	handled, err := m.input.Key(key)
	m.toasts.error(err)
	return m, nil, handled
}
