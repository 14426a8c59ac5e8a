package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

const insertBatchSize = 500

type notificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &notificationRepositoryImpl{
		db: db,
	}
}

func (r *notificationRepositoryImpl) ExistsExact(ctx context.Context, key domain.NotificationKey) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("user_id = ? AND schedule_time_id = ? AND scheduled_time = ?",
			key.UserID.String(),
			key.ScheduleTimeID.String(),
			key.ScheduledTime.UTC(),
		).
		Limit(1).
		Count(&count)
	if result.Error != nil {
		slog.Error("failed to check notification existence",
			"user_id", key.UserID.String(),
			"schedule_time_id", key.ScheduleTimeID.String(),
			"scheduled_time", key.ScheduledTime,
			"error", result.Error,
		)

		return false, result.Error
	}

	return count > 0, nil
}

func (r *notificationRepositoryImpl) InsertMany(ctx context.Context, notifications []*domain.Notification) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	slog.Debug("inserting notifications",
		"count", len(notifications),
	)

	models := make([]*NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		models = append(models, NotificationFromEntity(n))
	}

	var inserted int

	// The unique key backstops concurrent runs; conflicting rows are dropped.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(models, insertBatchSize)
		if result.Error != nil {
			return result.Error
		}

		inserted = int(result.RowsAffected)

		return nil
	})
	if err != nil {
		slog.Error("failed to insert notifications",
			"count", len(notifications),
			"error", err,
		)

		return 0, err
	}

	slog.Debug("notifications inserted",
		"requested", len(notifications),
		"inserted", inserted,
	)

	return inserted, nil
}

func (r *notificationRepositoryImpl) FindByID(ctx context.Context, userID domain.UserID, id domain.NotificationID) (*domain.Notification, error) {
	slog.Debug("finding notification by ID",
		"notification_id", id.String(),
	)

	var m NotificationModel

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("notification not found",
				"notification_id", id.String(),
			)

			return nil, domain.ErrNotificationNotFound
		}

		slog.Error("failed to find notification by ID",
			"notification_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *notificationRepositoryImpl) ListByUser(ctx context.Context, userID domain.UserID, includeRead bool) ([]*domain.Notification, error) {
	slog.Debug("listing notifications by user",
		"user_id", userID.String(),
		"include_read", includeRead,
	)

	var models []NotificationModel

	query := r.db.WithContext(ctx).Where("user_id = ?", userID.String())
	if !includeRead {
		query = query.Where("is_read = ?", false)
	}

	result := query.Order("scheduled_time DESC").Find(&models)
	if result.Error != nil {
		slog.Error("failed to list notifications by user",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	notifications := make([]*domain.Notification, 0, len(models))
	for _, m := range models {
		n, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"notification_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		notifications = append(notifications, n)
	}

	slog.Debug("notifications listed",
		"user_id", userID.String(),
		"count", len(notifications),
	)

	return notifications, nil
}

func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, userID domain.UserID, id domain.NotificationID, at time.Time) (bool, error) {
	slog.Debug("marking notification as read",
		"notification_id", id.String(),
	)

	result := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("id = ? AND user_id = ? AND is_read = ?", id.String(), userID.String(), false).
		Updates(map[string]any{
			"is_read":    true,
			"updated_at": at.UTC(),
		})
	if result.Error != nil {
		slog.Error("failed to mark notification as read",
			"notification_id", id.String(),
			"error", result.Error,
		)

		return false, result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("no unread notification to mark",
			"notification_id", id.String(),
		)

		return false, nil
	}

	return true, nil
}

func (r *notificationRepositoryImpl) Delete(ctx context.Context, userID domain.UserID, id domain.NotificationID) (bool, error) {
	slog.Debug("deleting notification from database",
		"notification_id", id.String(),
	)

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		Delete(&NotificationModel{})
	if result.Error != nil {
		slog.Error("failed to delete notification from database",
			"notification_id", id.String(),
			"error", result.Error,
		)

		return false, result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("notification not found for deletion",
			"notification_id", id.String(),
		)

		return false, nil
	}

	slog.Debug("notification deleted from database",
		"notification_id", id.String(),
	)

	return true, nil
}

func (r *notificationRepositoryImpl) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	slog.Debug("deleting read notifications",
		"before", before,
	)

	result := r.db.WithContext(ctx).
		Where("is_read = ? AND scheduled_time < ?", true, before.UTC()).
		Delete(&NotificationModel{})
	if result.Error != nil {
		slog.Error("failed to delete read notifications",
			"before", before,
			"error", result.Error,
		)

		return 0, result.Error
	}

	slog.Debug("read notifications deleted",
		"before", before,
		"count", result.RowsAffected,
	)

	return result.RowsAffected, nil
}
