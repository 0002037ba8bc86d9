package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	FocusRing lipgloss.Color
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Done      lipgloss.Style
	Caption   lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Toast     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		FocusRing: lipgloss.Color("205"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Caption:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Toast:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		FocusRing: lipgloss.Color("212"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true),
		Caption:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Toast:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
	},
}

// ThemeNamed falls back to the default theme for unknown names.
func ThemeNamed(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
