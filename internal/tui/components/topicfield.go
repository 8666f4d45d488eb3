package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const minFieldWidth = 20

// TopicField renders the labelled topic input. Input is the editor's own view
// (value plus cursor); the placeholder is drawn after it only when
// ShowPlaceholder is set, so it never stands in for typed text.
type TopicField struct {
	Label           string
	Input           string
	Placeholder     string
	ShowPlaceholder bool
	Focused         bool
	Width           int
}

// View renders the label, the input line and the underline.
func (f TopicField) View(theme Theme) string {
	line := f.Input
	if f.ShowPlaceholder {
		line += lipgloss.NewStyle().Bold(true).Foreground(theme.Faint).Render(f.Placeholder)
	}

	width := f.Width
	if width < minFieldWidth {
		width = minFieldWidth
	}
	underline := theme.Line
	if f.Focused {
		underline = theme.AccentDeep
	}
	rule := lipgloss.NewStyle().Foreground(underline).Render(strings.Repeat("─", width))

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.heading().Render(f.Label),
		line,
		rule,
	)
}
