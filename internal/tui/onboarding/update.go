package onboarding

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	domain "github.com/alexisbeaulieu97/learner/internal/domain/onboarding"
)

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == FocusTopic {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.cycleFocus(-1)
	}

	if m.focus == FocusTopic {
		return m.handleTopicKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.focus == FocusDurations {
		return m.handleDurationKey(msg)
	}
	return m.handleSubmitKey(msg)
}

// handleTopicKey forwards every key to the text editor and mirrors the
// edited value into the screen state.
func (m Model) handleTopicKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m, m.setFocus(FocusDurations)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.screen.SetTopic(m.ctx, m.input.Value())
	return m, cmd
}

func (m Model) handleDurationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.screen.State().Duration
	switch {
	case key.Matches(msg, m.keys.Left):
		m.screen.SelectDuration(m.ctx, current.Prev())
	case key.Matches(msg, m.keys.Right):
		m.screen.SelectDuration(m.ctx, current.Next())
	case key.Matches(msg, m.keys.Pick):
		if d, ok := durationForKey(msg.String()); ok {
			m.screen.SelectDuration(m.ctx, d)
		}
	case msg.Type == tea.KeyEnter:
		return m, m.setFocus(FocusSubmit)
	}
	return m, nil
}

func (m Model) handleSubmitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Submit) {
		return m, nil
	}
	intent := m.screen.Submit(m.ctx)
	message := intent.Message()
	if message == m.lastMessage {
		m.repeats++
	} else {
		m.repeats = 1
	}
	m.lastMessage = message
	m.submissions++
	return m, tea.Println(message)
}

func durationForKey(k string) (domain.Duration, bool) {
	all := domain.Durations()
	if len(k) != 1 || k[0] < '1' || int(k[0]-'1') >= len(all) {
		return domain.Week, false
	}
	return all[k[0]-'1'], true
}
