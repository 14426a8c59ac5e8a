package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/meditrack/internal/domain"
	"github.com/KasumiMercury/meditrack/internal/infra/pubsub"
	"github.com/KasumiMercury/meditrack/internal/observability/metrics"
)

type notificationGeneratorImpl struct {
	schedules     domain.ScheduleRepository
	notifications domain.NotificationRepository
	clock         domain.Clock
	publisher     pubsub.Publisher
	metrics       *metrics.GenerationMetrics
}

// NewNotificationGenerator wires the generator. publisher and m may be nil.
func NewNotificationGenerator(
	schedules domain.ScheduleRepository,
	notifications domain.NotificationRepository,
	clock domain.Clock,
	publisher pubsub.Publisher,
	m *metrics.GenerationMetrics,
) NotificationGenerator {
	return &notificationGeneratorImpl{
		schedules:     schedules,
		notifications: notifications,
		clock:         clock,
		publisher:     publisher,
		metrics:       m,
	}
}

func (g *notificationGeneratorImpl) Generate(ctx context.Context, lookAhead time.Duration) (GenerateOutput, error) {
	started := time.Now()

	if lookAhead <= 0 {
		return GenerateOutput{}, NewValidationError("look_ahead", "must be positive")
	}

	now := g.clock.Now().UTC()
	until := now.Add(lookAhead)

	out := GenerateOutput{
		RunID:       uuid.Must(uuid.NewV7()).String(),
		WindowStart: now,
		WindowEnd:   until,
	}

	slog.DebugContext(ctx, "generating notifications",
		"run_id", out.RunID,
		"window_start", now,
		"window_end", until,
	)

	pending, err := g.collect(ctx, &out)
	if err != nil {
		g.metrics.RecordRun(ctx, metrics.OutcomeFailed, 0, time.Since(started))

		return GenerateOutput{}, err
	}

	if len(pending) > 0 {
		created, err := g.notifications.InsertMany(ctx, pending)
		if err != nil {
			slog.ErrorContext(ctx, "failed to persist notifications",
				"error", err,
				"run_id", out.RunID,
				"pending", len(pending),
			)

			g.metrics.RecordRun(ctx, metrics.OutcomeFailed, 0, time.Since(started))

			return GenerateOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		out.Created = created
		out.Skipped += len(pending) - created

		if created > 0 {
			g.publish(ctx, out, pending)
		}
	}

	g.metrics.RecordRun(ctx, metrics.OutcomeSucceeded, out.Created, time.Since(started))

	slog.InfoContext(ctx, "notification generation finished",
		"run_id", out.RunID,
		"schedules_scanned", out.SchedulesScanned,
		"schedules_skipped", out.SchedulesSkipped,
		"candidates", out.Candidates,
		"skipped", out.Skipped,
		"created", out.Created,
	)

	return out, nil
}

func (g *notificationGeneratorImpl) collect(ctx context.Context, out *GenerateOutput) ([]*domain.Notification, error) {
	schedules, err := g.schedules.FindActive(ctx, out.WindowStart, out.WindowEnd)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load active schedules",
			"error", err,
			"run_id", out.RunID,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	out.SchedulesScanned = len(schedules)

	seen := make(map[domain.NotificationKey]struct{})

	var pending []*domain.Notification

	for _, schedule := range schedules {
		found, err := g.collectSchedule(ctx, schedule, out, seen)
		if err != nil {
			return nil, err
		}

		pending = append(pending, found...)
	}

	return pending, nil
}

func (g *notificationGeneratorImpl) collectSchedule(
	ctx context.Context,
	schedule *domain.Schedule,
	out *GenerateOutput,
	seen map[domain.NotificationKey]struct{},
) ([]*domain.Notification, error) {
	if !schedule.IsActiveBetween(out.WindowStart, out.WindowEnd) {
		slog.DebugContext(ctx, "skipping schedule outside window",
			"run_id", out.RunID,
			"schedule_id", schedule.ID().String(),
		)

		return nil, nil
	}

	if schedule.Medicine() == nil {
		slog.WarnContext(ctx, "skipping schedule without medicine",
			"run_id", out.RunID,
			"schedule_id", schedule.ID().String(),
		)

		out.SchedulesSkipped++

		return nil, nil
	}

	var pending []*domain.Notification

	for _, st := range schedule.Times() {
		instants, err := domain.Expand(schedule, st, out.WindowStart, out.WindowEnd)
		if err != nil {
			if errors.Is(err, domain.ErrUnsupportedFrequency) {
				slog.WarnContext(ctx, "skipping schedule with unsupported frequency",
					"run_id", out.RunID,
					"schedule_id", schedule.ID().String(),
					"frequency", schedule.Frequency().String(),
				)

				out.SchedulesSkipped++

				return nil, nil
			}

			return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		for _, at := range instants {
			out.Candidates++

			key := domain.NewNotificationKey(schedule.UserID(), st.ID(), at)
			if _, dup := seen[key]; dup {
				out.Skipped++

				continue
			}

			seen[key] = struct{}{}

			exists, err := g.notifications.ExistsExact(ctx, key)
			if err != nil {
				slog.ErrorContext(ctx, "failed to check existing notification",
					"error", err,
					"run_id", out.RunID,
					"schedule_time_id", st.ID().String(),
					"scheduled_time", at,
				)

				return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
			}

			if exists {
				out.Skipped++

				continue
			}

			pending = append(pending, domain.NewNotification(
				key,
				domain.DoseMessage(schedule.Medicine(), st.Quantity()),
				out.WindowStart,
			))
		}
	}

	return pending, nil
}

func (g *notificationGeneratorImpl) publish(ctx context.Context, out GenerateOutput, batch []*domain.Notification) {
	if g.publisher == nil {
		return
	}

	users := make(map[string]struct{})
	userIDs := make([]string, 0)

	for _, n := range batch {
		id := n.UserID().String()
		if _, ok := users[id]; ok {
			continue
		}

		users[id] = struct{}{}
		userIDs = append(userIDs, id)
	}

	event := &pubsub.NotificationsGeneratedEvent{
		RunID:       out.RunID,
		UserIDs:     userIDs,
		Count:       out.Created,
		WindowStart: out.WindowStart,
		WindowEnd:   out.WindowEnd,
		GeneratedAt: out.WindowStart,
	}

	// Row ids are only known exactly when no row lost a unique-index conflict.
	if out.Created == len(batch) {
		event.NotificationIDs = make([]string, len(batch))
		for i, n := range batch {
			event.NotificationIDs[i] = n.ID().String()
		}
	}

	if err := g.publisher.PublishNotificationsGenerated(ctx, event); err != nil {
		slog.ErrorContext(ctx, "failed to publish notifications generated event",
			"run_id", out.RunID,
			"error", err.Error(),
		)
	}
}
