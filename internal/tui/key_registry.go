package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Panes       []Pane
	Priority    int
}

// AppliesTo reports whether the binding is active while pane has focus.
// Bindings without panes apply everywhere.
func (b KeyBinding) AppliesTo(pane Pane) bool {
	if len(b.Panes) == 0 {
		return true
	}
	for _, p := range b.Panes {
		if p == pane {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.focus) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(pane Pane) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(pane) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(pane Pane) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(pane) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+keyLabel(b.Key)+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
