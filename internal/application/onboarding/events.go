package onboarding

import (
	"context"

	domain "github.com/alexisbeaulieu97/learner/internal/domain/onboarding"
	"github.com/alexisbeaulieu97/learner/internal/ports"
)

type screenEvent struct {
	eventType string
	payload   map[string]interface{}
}

func (e screenEvent) EventType() string {
	return e.eventType
}

func (e screenEvent) Payload() interface{} {
	return e.payload
}

func publishEvent(ctx context.Context, publisher ports.EventPublisher, logger ports.Logger, eventType string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, screenEvent{eventType: eventType, payload: payload}); err != nil {
		logger.Warn(ctx, "failed to publish screen event", "event_type", eventType, "error", err)
	}
}

func learningStartedPayload(intent domain.Intent) map[string]interface{} {
	return map[string]interface{}{
		"topic":    intent.EffectiveTopic,
		"duration": intent.Duration.String(),
		"message":  intent.Message(),
	}
}

// IntentFromEvent recovers the submitted intent from a learning.started event.
func IntentFromEvent(event ports.DomainEvent) (domain.Intent, bool) {
	if event == nil || event.EventType() != ports.EventLearningStarted {
		return domain.Intent{}, false
	}
	payload, ok := event.Payload().(map[string]interface{})
	if !ok {
		return domain.Intent{}, false
	}
	topic, ok := payload["topic"].(string)
	if !ok {
		return domain.Intent{}, false
	}
	name, _ := payload["duration"].(string)
	duration, err := domain.ParseDuration(name)
	if err != nil {
		return domain.Intent{}, false
	}
	return domain.Intent{EffectiveTopic: topic, Duration: duration}, true
}
