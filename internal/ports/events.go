package ports

import "context"

const (
	// EventDurationSelected is emitted when the learner picks a different duration pill.
	EventDurationSelected = "duration.selected"
	// EventLearningStarted is emitted every time the start button is activated.
	EventLearningStarted = "learning.started"
)

// DomainEvent represents a significant occurrence on the screen. Events carry
// structured payloads that subscribers use for logging, UI updates or output.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after every handler ran, so output appears
// before the process exits.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned so
// publishers can log them and keep delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}
