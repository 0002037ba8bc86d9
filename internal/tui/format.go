package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/kitchendeck/internal/models"
)

// FormatTimerStatus returns the label shown under the clock.
func FormatTimerStatus(state models.TimerState) string {
	switch state {
	case models.TimerRunning:
		return "Cooking..."
	case models.TimerPaused:
		return "Paused"
	case models.TimerCompleted:
		return "Done!"
	default:
		return "Ready"
	}
}

// FormatToggleLabel mirrors the label of the single start/pause button.
func FormatToggleLabel(state models.TimerState) string {
	switch state {
	case models.TimerRunning:
		return "Pause"
	case models.TimerPaused:
		return "Resume"
	case models.TimerCompleted:
		return "Reset"
	default:
		return "Start"
	}
}

// FormatCounter formats a zero-based index as "n / total".
func FormatCounter(index, total int) string {
	return fmt.Sprintf("%d / %d", index+1, total)
}

// FormatThumbnails renders one marker per item, highlighting the active one.
// Collections wider than max are windowed around the active item.
func FormatThumbnails(index, total, max int) string {
	if total <= 0 {
		return ""
	}
	start, end := 0, total
	if max > 0 && total > max {
		start = index - max/2
		if start < 0 {
			start = 0
		}
		end = start + max
		if end > total {
			end = total
			start = end - max
		}
	}
	var b strings.Builder
	if start > 0 {
		b.WriteString("‹ ")
	}
	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte(' ')
		}
		if i == index {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	if end < total {
		b.WriteString(" ›")
	}
	return b.String()
}
