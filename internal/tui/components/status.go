package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusLine echoes the most recent submission.
type StatusLine struct {
	Message string
	Count   int
}

// View returns "" until something was submitted.
func (s StatusLine) View(theme Theme) string {
	if strings.TrimSpace(s.Message) == "" {
		return ""
	}
	line := lipgloss.NewStyle().Foreground(theme.Accent).Render("› ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(s.Message)
	if s.Count > 1 {
		line += theme.subtle().Render(fmt.Sprintf(" (×%d)", s.Count))
	}
	return line
}
