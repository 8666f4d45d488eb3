package onboarding

import "fmt"

// DefaultExample is the sample topic shown as placeholder and used as the
// submit fallback unless configured otherwise.
const DefaultExample = "Swift"

// State is the complete local state of the onboarding screen. The empty topic
// is the "unset" sentinel.
type State struct {
	Topic    string
	Duration Duration
}

// NewState returns the state a freshly mounted screen starts with.
func NewState() State {
	return State{Topic: "", Duration: Week}
}

// PlaceholderVisible reports whether the topic placeholder should be drawn.
func (s State) PlaceholderVisible() bool {
	return s.Topic == ""
}

// Defaults holds the example values the screen falls back on. Placeholder and
// FallbackTopic are configured separately even though both default to the
// same literal.
type Defaults struct {
	Placeholder   string
	FallbackTopic string
}

// DefaultDefaults returns the stock example values.
func DefaultDefaults() Defaults {
	return Defaults{Placeholder: DefaultExample, FallbackTopic: DefaultExample}
}

// EffectiveTopic returns the topic used for submission: the typed topic, or the
// fallback when nothing was typed.
func EffectiveTopic(s State, d Defaults) string {
	if s.Topic == "" {
		return d.FallbackTopic
	}
	return s.Topic
}

// Intent is the payload emitted when the learner activates the start button.
type Intent struct {
	EffectiveTopic string
	Duration       Duration
}

// NewIntent derives the submission payload from the current state.
func NewIntent(s State, d Defaults) Intent {
	return Intent{EffectiveTopic: EffectiveTopic(s, d), Duration: s.Duration}
}

// Message renders the human-readable form of the intent.
func (i Intent) Message() string {
	return fmt.Sprintf("Start learning %s for a %s", i.EffectiveTopic, i.Duration)
}
