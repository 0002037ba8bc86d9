package models

import "fmt"

// TimerState enumerates the lifecycle of a countdown.
type TimerState string

const (
	TimerIdle      TimerState = "idle"
	TimerRunning   TimerState = "running"
	TimerPaused    TimerState = "paused"
	TimerCompleted TimerState = "completed"
)

// Valid reports whether s is one of the known timer states.
func (s TimerState) Valid() bool {
	switch s {
	case TimerIdle, TimerRunning, TimerPaused, TimerCompleted:
		return true
	}
	return false
}

// ParseTimerState converts a stored state name back into a TimerState.
func ParseTimerState(v string) (TimerState, error) {
	s := TimerState(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown timer state %q", v)
	}
	return s, nil
}

// Item is one entry of a carousel. Src and Thumbnail are display references
// the presentation layer resolves; the core never dereferences them.
type Item struct {
	ID        string `json:"id" yaml:"id"`
	Src       string `json:"src" yaml:"src"`
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Alt       string `json:"alt" yaml:"alt"`
}

// TimerSnapshot captures everything needed to rebuild a countdown.
type TimerSnapshot struct {
	Total     int        `json:"duration_total"`
	Remaining int        `json:"remaining"`
	State     TimerState `json:"state"`
}

// CarouselSnapshot captures the selection of a carousel.
type CarouselSnapshot struct {
	Index int `json:"current_index"`
}
