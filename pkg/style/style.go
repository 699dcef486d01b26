// Package style defines the visual styling for docsweep's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes.
package style

import "github.com/charmbracelet/lipgloss"

var registry = map[string]lipgloss.Style{
	"Error": lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#C00000", Dark: "#FF5555"}),

	"Success": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#007700", Dark: "#55FF55"}),

	"Warning": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#A05A00", Dark: "#FFB86C"}),

	"Summary": lipgloss.NewStyle().Bold(true),

	"Path": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#444444", Dark: "#AAAAAA"}),
}

// GetStyle returns the style registered under the given semantic name.
// Unknown names return a zero style so callers can render unconditionally.
func GetStyle(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
