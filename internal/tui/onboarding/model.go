// Package onboarding is the terminal rendition of the onboarding screen. The
// Bubble Tea model translates key presses into Screen operations and renders
// a pure projection of the resulting state.
package onboarding

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	app "github.com/alexisbeaulieu97/learner/internal/application/onboarding"
	"github.com/alexisbeaulieu97/learner/internal/tui/components"
)

// Focus identifies which element receives key presses.
type Focus int

const (
	FocusTopic Focus = iota
	FocusDurations
	FocusSubmit
)

const focusCount = 3

const defaultWidth = 60

// Model contains the Bubble Tea state for the onboarding screen. Screen state
// lives in screen; the model only keeps presentation state.
type Model struct {
	ctx    context.Context
	screen *app.Screen

	input textinput.Model
	keys  KeyMap
	help  help.Model
	theme components.Theme

	focus       Focus
	lastMessage string
	repeats     int
	submissions int
	width       int
	quitting    bool
}

// NewModel wraps screen in a Bubble Tea model. ctx is passed to every screen
// operation so log entries carry the command's correlation ID.
func NewModel(ctx context.Context, screen *app.Screen) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = ""
	input.CharLimit = 0
	input.SetValue(screen.State().Topic)
	input.Focus()

	return Model{
		ctx:    ctx,
		screen: screen,
		input:  input,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  components.DefaultTheme(),
		focus:  FocusTopic,
		width:  defaultWidth,
	}
}

// Init starts the cursor blinking in the topic field.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focus returns the focused element.
func (m Model) Focus() Focus {
	return m.focus
}

// LastMessage returns the message emitted by the most recent submission.
func (m Model) LastMessage() string {
	return m.lastMessage
}

// Submissions returns how many times the start button was activated.
func (m Model) Submissions() int {
	return m.submissions
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	if f == m.focus {
		return nil
	}
	m.focus = f
	if f == FocusTopic {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) cycleFocus(step int) tea.Cmd {
	next := (int(m.focus) + step + focusCount) % focusCount
	return m.setFocus(Focus(next))
}
