package events

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/learner/internal/ports"
)

// Collector keeps the events it receives, in delivery order. The CLI uses it
// to echo submitted messages once the interactive screen has closed.
type Collector struct {
	mu     sync.Mutex
	events []ports.DomainEvent
}

// Handle implements ports.EventHandler.
func (c *Collector) Handle(_ context.Context, event ports.DomainEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

// Events returns a copy of the collected events.
func (c *Collector) Events() []ports.DomainEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ports.DomainEvent(nil), c.events...)
}
