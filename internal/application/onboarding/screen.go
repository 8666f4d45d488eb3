// Package onboarding hosts the onboarding screen's application service: the
// single owner of the screen state and the only place it is mutated.
package onboarding

import (
	"context"
	"sync"

	domain "github.com/alexisbeaulieu97/learner/internal/domain/onboarding"
	"github.com/alexisbeaulieu97/learner/internal/ports"
)

// Options wires the screen's collaborators. Nil ports are replaced by no-ops.
type Options struct {
	Defaults domain.Defaults
	Feedback ports.Feedback
	Events   ports.EventPublisher
	Logger   ports.Logger
}

// Screen owns the onboarding state. Mutations happen only through SetTopic and
// SelectDuration; observers are notified synchronously after each one.
type Screen struct {
	state    domain.State
	defaults domain.Defaults
	feedback ports.Feedback
	events   ports.EventPublisher
	logger   ports.Logger

	mu        sync.Mutex
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(domain.State)
}

// NewScreen mounts a screen with the initial state (empty topic, Week).
func NewScreen(opts Options) *Screen {
	defaults := domain.DefaultDefaults()
	if opts.Defaults.Placeholder != "" {
		defaults.Placeholder = opts.Defaults.Placeholder
	}
	if opts.Defaults.FallbackTopic != "" {
		defaults.FallbackTopic = opts.Defaults.FallbackTopic
	}

	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	feedback := opts.Feedback
	if feedback == nil {
		feedback = noFeedback{}
	}

	return &Screen{
		state:    domain.NewState(),
		defaults: defaults,
		feedback: feedback,
		events:   opts.Events,
		logger:   logger.With("component", "screen"),
	}
}

// State returns a snapshot of the current state.
func (s *Screen) State() domain.State {
	return s.state
}

// Defaults returns the placeholder and fallback values in effect.
func (s *Screen) Defaults() domain.Defaults {
	return s.defaults
}

// SetTopic stores the topic exactly as typed and reports whether it changed.
func (s *Screen) SetTopic(ctx context.Context, topic string) bool {
	if s.state.Topic == topic {
		return false
	}
	s.state.Topic = topic
	s.logger.Debug(ctx, "topic edited", "length", len(topic), "placeholder_visible", s.state.PlaceholderVisible())
	s.notify()
	return true
}

// SelectDuration handles a tap on the pill for d. Reselecting the current
// duration changes nothing and fires no feedback.
func (s *Screen) SelectDuration(ctx context.Context, d domain.Duration) bool {
	if !d.Valid() || s.state.Duration == d {
		return false
	}
	previous := s.state.Duration
	s.state.Duration = d
	s.impact(ctx, ports.ImpactLight)
	s.logger.Debug(ctx, "duration selected", "from", previous, "to", d)
	publishEvent(ctx, s.events, s.logger, ports.EventDurationSelected, map[string]interface{}{
		"from": previous.String(),
		"to":   d.String(),
	})
	s.notify()
	return true
}

// Submit emits the learner's intent. The stored state is never modified; an
// empty topic is replaced by the fallback only in the emitted payload.
func (s *Screen) Submit(ctx context.Context) domain.Intent {
	intent := domain.NewIntent(s.state, s.defaults)
	s.impact(ctx, ports.ImpactMedium)
	s.logger.Info(ctx, "learning started", "topic", intent.EffectiveTopic, "duration", intent.Duration, "fallback", s.state.Topic == "")
	publishEvent(ctx, s.events, s.logger, ports.EventLearningStarted, learningStartedPayload(intent))
	return intent
}

// Subscribe registers fn to receive the state after every mutation.
func (s *Screen) Subscribe(fn func(domain.State)) ports.Subscription {
	if fn == nil {
		return noSubscription{}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer{id: id, fn: fn})
	s.mu.Unlock()

	return unsubscribeFunc(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	})
}

func (s *Screen) notify() {
	s.mu.Lock()
	observers := append([]observer(nil), s.observers...)
	s.mu.Unlock()

	snapshot := s.state
	for _, o := range observers {
		o.fn(snapshot)
	}
}

func (s *Screen) impact(ctx context.Context, strength ports.ImpactStrength) {
	if err := s.feedback.Impact(ctx, strength); err != nil {
		s.logger.Warn(ctx, "feedback failed", "strength", strength, "error", err)
	}
}

type unsubscribeFunc func()

func (f unsubscribeFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}

type noSubscription struct{}

func (noSubscription) Unsubscribe() {}

type noFeedback struct{}

func (noFeedback) Impact(context.Context, ports.ImpactStrength) error { return nil }

type noopLogger struct{}

func (noopLogger) Debug(context.Context, string, ...interface{}) {}
func (noopLogger) Info(context.Context, string, ...interface{})  {}
func (noopLogger) Warn(context.Context, string, ...interface{})  {}
func (noopLogger) Error(context.Context, string, ...interface{}) {}
func (n noopLogger) With(...interface{}) ports.Logger            { return n }
