package onboarding

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	domain "github.com/alexisbeaulieu97/learner/internal/domain/onboarding"
	"github.com/alexisbeaulieu97/learner/internal/tui/components"
)

const (
	topicLabel    = "I want to learn"
	durationLabel = "I want to learn it in a"
	submitLabel   = "Start learning"
)

// Frame is everything a render needs. It is built fresh from the model for
// each View call.
type Frame struct {
	State       domain.State
	Defaults    domain.Defaults
	Focus       Focus
	Input       string
	LastMessage string
	Repeats     int
	Help        string
	Width       int
	Theme       components.Theme
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return Render(Frame{
		State:       m.screen.State(),
		Defaults:    m.screen.Defaults(),
		Focus:       m.focus,
		Input:       m.input.View(),
		LastMessage: m.lastMessage,
		Repeats:     m.repeats,
		Help:        m.help.View(m.keys),
		Width:       m.width,
		Theme:       m.theme,
	})
}

// Render projects a frame onto the terminal. It has no side effects.
func Render(f Frame) string {
	width := f.Width - 4
	if width <= 0 {
		width = defaultWidth
	}

	options := make([]string, 0, 3)
	for _, d := range domain.Durations() {
		options = append(options, d.String())
	}

	sections := []string{
		components.NewHeader().View(f.Theme, width),
		"",
		components.TopicField{
			Label:           topicLabel,
			Input:           f.Input,
			Placeholder:     f.Defaults.Placeholder,
			ShowPlaceholder: f.State.PlaceholderVisible(),
			Focused:         f.Focus == FocusTopic,
			Width:           width,
		}.View(f.Theme),
		"",
		components.PillGroup{
			Label:    durationLabel,
			Options:  options,
			Selected: f.State.Duration.Index(),
			Focused:  f.Focus == FocusDurations,
		}.View(f.Theme),
		"",
		components.Button{Label: submitLabel, Focused: f.Focus == FocusSubmit}.View(f.Theme, width),
	}

	if status := (components.StatusLine{Message: f.LastMessage, Count: f.Repeats}).View(f.Theme); status != "" {
		sections = append(sections, "", status)
	}
	if strings.TrimSpace(f.Help) != "" {
		sections = append(sections, "", f.Help)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
