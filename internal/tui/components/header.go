package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const flame = "🔥"

// Header renders the decorative logo badge and the greeting lines.
type Header struct {
	Title    string
	Subtitle string
}

// NewHeader returns the onboarding greeting.
func NewHeader() Header {
	return Header{
		Title:    "Hello Learner",
		Subtitle: "This app will help you learn everyday!",
	}
}

// View renders the header; the badge is centred within width when width > 0.
func (h Header) View(theme Theme, width int) string {
	badge := theme.badge().Render(flame)
	if width > 0 {
		badge = lipgloss.PlaceHorizontal(width, lipgloss.Center, badge)
	}

	lines := []string{badge, ""}
	if strings.TrimSpace(h.Title) != "" {
		lines = append(lines, theme.heading().Render(h.Title))
	}
	if strings.TrimSpace(h.Subtitle) != "" {
		lines = append(lines, theme.subtle().Render(h.Subtitle))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
