package components

import "github.com/charmbracelet/lipgloss"

// Button renders the call to action.
type Button struct {
	Label   string
	Focused bool
}

// View renders the button centred within width (when width > 0).
func (b Button) View(theme Theme, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 6).
		Bold(true)

	if b.Focused {
		style = style.
			BorderForeground(theme.Accent).
			Background(theme.AccentDeep).
			Foreground(theme.Text)
	} else {
		style = style.
			BorderForeground(theme.AccentDeep).
			Foreground(theme.Accent)
	}

	rendered := style.Render(b.Label)
	if width > 0 {
		rendered = lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered)
	}
	return rendered
}
