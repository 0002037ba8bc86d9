package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/kitchendeck/internal/config"
	"github.com/akyairhashvil/kitchendeck/internal/models"
	"github.com/akyairhashvil/kitchendeck/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	timerPane := m.renderTimerPane()
	galleryPane := m.renderCarouselPane()

	var body string
	if m.compact() {
		body = lipgloss.JoinVertical(lipgloss.Left, timerPane, galleryPane)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, timerPane, galleryPane)
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter()))
}

func (m Model) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m Model) paneWidth() int {
	if m.width <= 0 {
		return config.MaxCaptionWidth + 4
	}
	w := m.width - 8
	if !m.compact() {
		w = w / 2
	}
	return util.Clamp(w, config.MinPaneWidth, config.MaxCaptionWidth+4)
}

func (m Model) paneFrame(p Pane) lipgloss.Style {
	border := m.theme.Border
	if m.focus == p {
		border = m.theme.FocusRing
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(m.paneWidth())
}

func (m Model) renderTimerPane() string {
	t := m.session.Timer
	state := t.State()

	clockStyle := m.theme.Clock
	if state == models.TimerCompleted {
		clockStyle = m.theme.Done
	}
	lines := []string{
		m.theme.Header.Render(m.cfg.Timer.Label),
		clockStyle.Render(t.RemainingFormatted()),
		m.progress.ViewAs(t.Progress()),
		m.theme.Dim.Render(fmt.Sprintf("%s  [%s]", FormatTimerStatus(state), FormatToggleLabel(state))),
	}
	return m.paneFrame(PaneTimer).Render(strings.Join(lines, "\n"))
}

func (m Model) renderCarouselPane() string {
	c := m.session.Carousel
	item := c.Current()

	caption := item.Alt
	if caption == "" {
		caption = item.Src
	}
	caption = ansi.Truncate(caption, m.paneWidth()-4, config.TruncationSuffix)

	autoplay := "autoplay off"
	if m.session.Autoplay.Running() {
		autoplay = "autoplay on"
	}
	lines := []string{
		m.theme.Header.Render("Gallery") + "  " + m.theme.Dim.Render(FormatCounter(c.Index(), c.Len())),
		m.theme.Caption.Render(caption),
		m.theme.Highlight.Render(FormatThumbnails(c.Index(), c.Len(), config.MaxThumbnails)),
		m.theme.Dim.Render(autoplay),
	}
	return m.paneFrame(PaneCarousel).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	var b strings.Builder
	if t, ok := m.toasts.visible(); ok {
		style := m.theme.Toast
		switch t.level {
		case toastSuccess:
			style = m.theme.Success
		case toastError:
			style = m.theme.Error
		}
		b.WriteString(style.Render(t.text))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render(m.keys.HelpFor(m.focus) + "  v" + AppVersion))
	return b.String()
}
