package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	logginginfra "github.com/alexisbeaulieu97/learner/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/learner/internal/ports"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer) ports.Logger {
	t.Helper()
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    buf,
		Level:     "debug",
		Layer:     "test",
		Component: "publisher",
	})
	require.NoError(t, err)
	return logger
}

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newTestLogger(t, buf))

	ctx := logginginfra.WithCorrelationID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, sampleEvent{
		eventType: ports.EventLearningStarted,
		payload:   map[string]interface{}{"topic": "Go", "duration": "Month"},
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "domain event", entry["message"])
	require.Equal(t, ports.EventLearningStarted, entry["event_type"])
	require.Equal(t, "abc-123", entry["correlation_id"])
	require.Equal(t, "Go", entry["topic"])
	require.Equal(t, "Month", entry["duration"])
}

func TestLoggingPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(newTestLogger(t, &bytes.Buffer{}))

	var handled int
	_, err := publisher.Subscribe(ports.EventLearningStarted, func(context.Context, ports.DomainEvent) error {
		handled++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventLearningStarted}))
	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventDurationSelected}))
	require.Equal(t, 1, handled, "only matching subscribers run")
}

func TestLoggingPublisherContinuesAfterHandlerError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newTestLogger(t, buf))

	var second bool
	_, _ = publisher.Subscribe(ports.EventDurationSelected, func(context.Context, ports.DomainEvent) error {
		return errors.New("boom")
	})
	_, _ = publisher.Subscribe(ports.EventDurationSelected, func(context.Context, ports.DomainEvent) error {
		second = true
		return nil
	})

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventDurationSelected, payload: "Week->Month"}))
	require.True(t, second)
	require.Contains(t, buf.String(), "event handler failed")
	require.Contains(t, buf.String(), "Week->Month")
}

func TestLoggingPublisherUnsubscribe(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)
	var calls int
	sub, err := publisher.Subscribe(ports.EventLearningStarted, func(context.Context, ports.DomainEvent) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventLearningStarted}))
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventLearningStarted}))
	require.Equal(t, 1, calls)

	noop, err := publisher.Subscribe(ports.EventLearningStarted, nil)
	require.NoError(t, err)
	noop.Unsubscribe()
}

func TestCollectorKeepsOrder(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)
	collector := &Collector{}
	_, err := publisher.Subscribe(ports.EventLearningStarted, collector.Handle)
	require.NoError(t, err)

	for _, topic := range []string{"Go", "Rust", "Zig"} {
		require.NoError(t, publisher.Publish(context.Background(), sampleEvent{
			eventType: ports.EventLearningStarted,
			payload:   map[string]interface{}{"topic": topic},
		}))
	}

	collected := collector.Events()
	require.Len(t, collected, 3)
	var topics []string
	for _, ev := range collected {
		topics = append(topics, ev.Payload().(map[string]interface{})["topic"].(string))
	}
	require.Equal(t, "Go,Rust,Zig", strings.Join(topics, ","))
}

type sampleEvent struct {
	eventType string
	payload   interface{}
}

func (e sampleEvent) EventType() string    { return e.eventType }
func (e sampleEvent) Payload() interface{} { return e.payload }
