package logging

import (
	"context"

	"github.com/alexisbeaulieu97/learner/internal/ports"
)

// WithCorrelationID stores the correlation identifier inside the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return ports.WithCorrelationID(ctx, id)
}

// NewCommandContext derives a context carrying a fresh correlation ID.
func NewCommandContext(parent context.Context) (context.Context, string) {
	id := ports.GenerateCorrelationID()
	return ports.WithCorrelationID(parent, id), id
}
