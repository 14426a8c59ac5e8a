package app

import (
	"time"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

type NotificationOutput struct {
	ID             string
	UserID         string
	ScheduleTimeID string
	ScheduledTime  time.Time
	Message        string
	IsRead         bool
	SentTime       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type NotificationsOutput struct {
	Notifications []NotificationOutput
	Count         int32
}

func FromNotification(n *domain.Notification) NotificationOutput {
	return NotificationOutput{
		ID:             n.ID().String(),
		UserID:         n.UserID().String(),
		ScheduleTimeID: n.ScheduleTimeID().String(),
		ScheduledTime:  n.ScheduledTime(),
		Message:        n.Message(),
		IsRead:         n.IsRead(),
		SentTime:       n.SentTime(),
		CreatedAt:      n.CreatedAt(),
		UpdatedAt:      n.UpdatedAt(),
	}
}

func FromNotifications(notifications []*domain.Notification) NotificationsOutput {
	outputs := make([]NotificationOutput, 0, len(notifications))
	for _, n := range notifications {
		outputs = append(outputs, FromNotification(n))
	}

	return NotificationsOutput{
		Notifications: outputs,
		Count:         int32(len(outputs)), //nolint:gosec
	}
}
