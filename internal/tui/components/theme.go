package components

import "github.com/charmbracelet/lipgloss"

// Theme is the palette every onboarding component draws with: a black screen,
// white type and an orange accent.
type Theme struct {
	Accent     lipgloss.Color
	AccentDeep lipgloss.Color
	Glow       lipgloss.Color
	Text       lipgloss.Color
	Subtle     lipgloss.Color
	Faint      lipgloss.Color
	Line       lipgloss.Color
	PillStroke lipgloss.Color
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:     lipgloss.Color("#FC8C33"),
		AccentDeep: lipgloss.Color("#E35C1F"),
		Glow:       lipgloss.Color("#F21F1A"),
		Text:       lipgloss.Color("#FFFFFF"),
		Subtle:     lipgloss.Color("#B8B8B8"),
		Faint:      lipgloss.Color("#4A4A4A"),
		Line:       lipgloss.Color("#2A2A2A"),
		PillStroke: lipgloss.Color("#444444"),
	}
}

func (t Theme) heading() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Text)
}

func (t Theme) subtle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Subtle)
}

// badge is the flame logo: an accent glyph inside a glowing ring.
func (t Theme) badge() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Glow).
		Foreground(t.Accent).
		Padding(0, 2)
}
