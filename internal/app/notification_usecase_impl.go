package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type notificationUseCaseImpl struct {
	repo  domain.NotificationRepository
	clock domain.Clock
}

func NewNotificationUseCase(repo domain.NotificationRepository, clock domain.Clock) NotificationUseCase {
	return &notificationUseCaseImpl{
		repo:  repo,
		clock: clock,
	}
}

func (uc *notificationUseCaseImpl) ListNotifications(ctx context.Context, input ListNotificationsInput) (NotificationsOutput, error) {
	slog.DebugContext(ctx, "listing notifications",
		"user_id", input.UserID,
		"include_read", input.IncludeRead,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return NotificationsOutput{}, NewFieldError("user_id", err)
	}

	notifications, err := uc.repo.ListByUser(ctx, userID, input.IncludeRead)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list notifications",
			"error", err,
			"user_id", input.UserID,
		)

		return NotificationsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "notifications listed",
		"user_id", input.UserID,
		"count", len(notifications),
	)

	return FromNotifications(notifications), nil
}

func (uc *notificationUseCaseImpl) MarkNotificationRead(ctx context.Context, input MarkNotificationReadInput) error {
	slog.DebugContext(ctx, "marking notification read",
		"user_id", input.UserID,
		"notification_id", input.ID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return NewFieldError("user_id", err)
	}

	id, err := domain.NotificationIDFromString(input.ID)
	if err != nil {
		return NewFieldError("id", err)
	}

	notification, err := uc.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to get notification",
			"error", err,
			"notification_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	now := uc.clock.Now().UTC()

	if err := notification.MarkAsRead(now); err != nil {
		slog.InfoContext(ctx, "notification already read",
			"user_id", input.UserID,
			"notification_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	// The conditional update loses to a concurrent reader that got there first.
	updated, err := uc.repo.MarkRead(ctx, userID, id, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to mark notification read",
			"error", err,
			"notification_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !updated {
		slog.InfoContext(ctx, "notification was read concurrently",
			"user_id", input.UserID,
			"notification_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrNotFound, domain.ErrNotificationNotFound)
	}

	slog.DebugContext(ctx, "notification marked read",
		"notification_id", input.ID,
	)

	return nil
}

func (uc *notificationUseCaseImpl) DeleteNotification(ctx context.Context, input DeleteNotificationInput) error {
	slog.DebugContext(ctx, "deleting notification",
		"user_id", input.UserID,
		"notification_id", input.ID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return NewFieldError("user_id", err)
	}

	id, err := domain.NotificationIDFromString(input.ID)
	if err != nil {
		return NewFieldError("id", err)
	}

	deleted, err := uc.repo.Delete(ctx, userID, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete notification",
			"error", err,
			"notification_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !deleted {
		return fmt.Errorf("%w: %v", ErrNotFound, domain.ErrNotificationNotFound)
	}

	slog.DebugContext(ctx, "notification deleted",
		"notification_id", input.ID,
	)

	return nil
}
