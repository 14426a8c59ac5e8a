package pubsub_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/meditrack/internal/infra/pubsub"
)

func newTestEvent() *pubsub.NotificationsGeneratedEvent {
	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return &pubsub.NotificationsGeneratedEvent{
		RunID:           "run-1",
		UserIDs:         []string{"user-a"},
		NotificationIDs: []string{"n-1", "n-2"},
		Count:           2,
		WindowStart:     windowStart,
		WindowEnd:       windowStart.Add(24 * time.Hour),
		GeneratedAt:     windowStart,
	}
}

func TestNewNotificationsGeneratedMessage(t *testing.T) {
	event := newTestEvent()

	msg, err := pubsub.NewNotificationsGeneratedMessage(context.Background(), event)
	require.NoError(t, err)

	assert.NotEmpty(t, msg.UUID)
	assert.Equal(t, pubsub.EventTypeNotificationsGenerated, msg.Metadata.Get("event_type"))
	assert.Equal(t, "run-1", msg.Metadata.Get("run_id"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))

	assert.Equal(t, "run-1", payload["run_id"])
	assert.Equal(t, float64(2), payload["count"])
	assert.Equal(t, "2024-01-01T00:00:00Z", payload["window_start"])
	assert.Equal(t, "2024-01-02T00:00:00Z", payload["window_end"])
	assert.Len(t, payload["notification_ids"], 2)
}

func TestEventPublisherPublishNotificationsGenerated(t *testing.T) {
	logger := watermill.NopLogger{}
	channel := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 1}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := channel.Subscribe(ctx, pubsub.TopicNotificationsGenerated)
	require.NoError(t, err)

	publisher := pubsub.NewEventPublisher(channel, logger)
	defer publisher.Close()

	require.NoError(t, publisher.PublishNotificationsGenerated(ctx, newTestEvent()))

	select {
	case msg := <-messages:
		msg.Ack()

		var got pubsub.NotificationsGeneratedEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &got))

		assert.Equal(t, "run-1", got.RunID)
		assert.Equal(t, 2, got.Count)
		assert.Equal(t, []string{"n-1", "n-2"}, got.NotificationIDs)
	case <-ctx.Done():
		t.Fatal("event was not delivered")
	}
}

func TestEventPublisherPublishAfterClose(t *testing.T) {
	logger := watermill.NopLogger{}
	channel := gochannel.NewGoChannel(gochannel.Config{}, logger)

	publisher := pubsub.NewEventPublisher(channel, logger)
	require.NoError(t, publisher.Close())

	err := publisher.PublishNotificationsGenerated(context.Background(), newTestEvent())

	assert.Error(t, err)
}
