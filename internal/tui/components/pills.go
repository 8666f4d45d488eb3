package components

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	pillWidth       = 11
	selectedMarker  = "●"
	availableMarker = "○"
)

// PillGroup renders a row of mutually exclusive choices. Exactly one option,
// Selected, is highlighted.
type PillGroup struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// View renders the label and the pill row.
func (g PillGroup) View(theme Theme) string {
	labelStyle := theme.subtle().Bold(true)
	if g.Focused {
		labelStyle = theme.heading()
	}

	pills := make([]string, 0, len(g.Options)*2)
	for i, option := range g.Options {
		if i > 0 {
			pills = append(pills, " ")
		}
		pills = append(pills, g.pill(theme, option, i == g.Selected))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(g.Label),
		lipgloss.JoinHorizontal(lipgloss.Center, pills...),
	)
}

func (g PillGroup) pill(theme Theme, option string, selected bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(pillWidth).
		Align(lipgloss.Center)

	if selected {
		border := theme.AccentDeep
		if g.Focused {
			border = theme.Accent
		}
		return style.
			BorderForeground(border).
			Foreground(theme.Text).
			Background(theme.AccentDeep).
			Bold(true).
			Render(selectedMarker + " " + option)
	}
	return style.
		BorderForeground(theme.PillStroke).
		Foreground(theme.Subtle).
		Render(availableMarker + " " + option)
}
