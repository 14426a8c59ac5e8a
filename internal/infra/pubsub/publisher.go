package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/meditrack/internal/observability/tracing"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

const (
	TopicNotificationsGenerated = "notification.generated"

	EventTypeNotificationsGenerated = "notification.generated"
)

type Publisher interface {
	PublishNotificationsGenerated(ctx context.Context, event *NotificationsGeneratedEvent) error
	io.Closer
}

// NotificationsGeneratedEvent is emitted once per generation run that
// persisted at least one notification.
type NotificationsGeneratedEvent struct {
	RunID           string    `json:"run_id"`
	UserIDs         []string  `json:"user_ids"`
	NotificationIDs []string  `json:"notification_ids"`
	Count           int       `json:"count"`
	WindowStart     time.Time `json:"window_start"`
	WindowEnd       time.Time `json:"window_end"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// EventPublisher publishes domain events over any watermill publisher.
type EventPublisher struct {
	publisher message.Publisher
	logger    watermill.LoggerAdapter
}

func NewEventPublisher(publisher message.Publisher, logger watermill.LoggerAdapter) *EventPublisher {
	return &EventPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func NewNotificationsGeneratedMessage(ctx context.Context, event *NotificationsGeneratedEvent) (*message.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", EventTypeNotificationsGenerated)
	msg.Metadata.Set("run_id", event.RunID)

	carrier := make(map[string]string)
	tracing.InjectToMap(ctx, carrier)

	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	return msg, nil
}

func (p *EventPublisher) PublishNotificationsGenerated(ctx context.Context, event *NotificationsGeneratedEvent) error {
	msg, err := NewNotificationsGeneratedMessage(ctx, event)
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(TopicNotificationsGenerated, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish notifications generated event",
			slog.String("run_id", event.RunID),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "published notifications generated event",
		slog.String("run_id", event.RunID),
		slog.Int("count", event.Count),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (p *EventPublisher) Close() error {
	return p.publisher.Close()
}
