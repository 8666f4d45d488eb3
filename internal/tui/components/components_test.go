package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestHeaderView(t *testing.T) {
	t.Parallel()

	t.Run("renders greeting", func(t *testing.T) {
		t.Parallel()
		view := NewHeader().View(DefaultTheme(), 0)
		require.Contains(t, view, "Hello Learner")
		require.Contains(t, view, "This app will help you learn everyday!")
		require.Contains(t, view, flame)
	})

	t.Run("centres badge within width", func(t *testing.T) {
		t.Parallel()
		view := NewHeader().View(DefaultTheme(), 60)
		first := strings.Split(view, "\n")[0]
		require.Equal(t, 60, lipgloss.Width(first))
		require.True(t, strings.HasPrefix(first, " "))
	})

	t.Run("skips blank lines", func(t *testing.T) {
		t.Parallel()
		view := Header{}.View(DefaultTheme(), 0)
		require.NotContains(t, view, "Hello")
	})
}

func TestHeaderBadgeUsesGlow(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	badge := theme.badge()
	require.Equal(t, lipgloss.TerminalColor(theme.Glow), badge.GetBorderTopForeground())
	require.Equal(t, lipgloss.TerminalColor(theme.Accent), badge.GetForeground())
	require.NotEqual(t, theme.Glow, theme.AccentDeep)
}

func TestTopicFieldPlaceholder(t *testing.T) {
	t.Parallel()

	t.Run("shows placeholder when requested", func(t *testing.T) {
		t.Parallel()
		view := TopicField{Label: "I want to learn", Placeholder: "Swift", ShowPlaceholder: true}.View(DefaultTheme())
		require.Contains(t, view, "I want to learn")
		require.Contains(t, view, "Swift")
	})

	t.Run("hides placeholder once typed", func(t *testing.T) {
		t.Parallel()
		view := TopicField{Label: "I want to learn", Input: "Go", Placeholder: "Swift"}.View(DefaultTheme())
		require.Contains(t, view, "Go")
		require.NotContains(t, view, "Swift")
	})

	t.Run("underline spans width", func(t *testing.T) {
		t.Parallel()
		view := TopicField{Label: "x", Width: 32}.View(DefaultTheme())
		require.Contains(t, view, strings.Repeat("─", 32))

		narrow := TopicField{Label: "x", Width: 3}.View(DefaultTheme())
		require.Contains(t, narrow, strings.Repeat("─", minFieldWidth))
	})
}

func TestPillGroupMarksExactlyOneSelection(t *testing.T) {
	t.Parallel()

	options := []string{"Week", "Month", "Year"}
	for selected := range options {
		view := PillGroup{Label: "I want to learn it in a", Options: options, Selected: selected}.View(DefaultTheme())
		require.Contains(t, view, "I want to learn it in a")
		require.Equal(t, 1, strings.Count(view, selectedMarker))
		require.Equal(t, 2, strings.Count(view, availableMarker))
		require.Contains(t, view, selectedMarker+" "+options[selected])
		for i, option := range options {
			if i != selected {
				require.Contains(t, view, availableMarker+" "+option)
			}
		}
	}
}

func TestPillGroupKeepsOrder(t *testing.T) {
	t.Parallel()

	view := PillGroup{Options: []string{"Week", "Month", "Year"}, Focused: true}.View(DefaultTheme())
	week := strings.Index(view, "Week")
	month := strings.Index(view, "Month")
	year := strings.Index(view, "Year")
	require.True(t, week < month && month < year)
}

func TestButtonView(t *testing.T) {
	t.Parallel()

	plain := Button{Label: "Start learning"}.View(DefaultTheme(), 0)
	require.Contains(t, plain, "Start learning")

	centred := Button{Label: "Start learning", Focused: true}.View(DefaultTheme(), 70)
	for _, line := range strings.Split(centred, "\n") {
		require.Equal(t, 70, lipgloss.Width(line))
	}
}

func TestStatusLineView(t *testing.T) {
	t.Parallel()

	require.Empty(t, StatusLine{}.View(DefaultTheme()))

	once := StatusLine{Message: "Start learning Go for a Month", Count: 1}.View(DefaultTheme())
	require.Contains(t, once, "Start learning Go for a Month")
	require.NotContains(t, once, "×")

	repeated := StatusLine{Message: "Start learning Go for a Month", Count: 3}.View(DefaultTheme())
	require.Contains(t, repeated, "(×3)")
}
