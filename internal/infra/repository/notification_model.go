package repository

import (
	"time"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

// NotificationModel has no foreign key on schedule_time_id: notifications
// outlive the schedule times that produced them.
type NotificationModel struct {
	ID             string     `gorm:"column:id;type:uuid;primaryKey"`
	UserID         string     `gorm:"column:user_id;type:uuid;not null;index:idx_notifications_user_id;uniqueIndex:idx_notifications_key"`
	ScheduleTimeID string     `gorm:"column:schedule_time_id;type:uuid;not null;uniqueIndex:idx_notifications_key"`
	ScheduledTime  time.Time  `gorm:"column:scheduled_time;type:timestamptz;not null;index:idx_notifications_scheduled_time;uniqueIndex:idx_notifications_key"`
	Message        string     `gorm:"column:message;type:text;not null"`
	IsRead         bool       `gorm:"column:is_read;type:boolean;not null;default:false;index:idx_notifications_is_read"`
	SentTime       *time.Time `gorm:"column:sent_time;type:timestamptz"`
	CreatedAt      time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) ToEntity() (*domain.Notification, error) {
	id, err := domain.NotificationIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	scheduleTimeID, err := domain.ScheduleTimeIDFromString(m.ScheduleTimeID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteNotification(
		id,
		userID,
		scheduleTimeID,
		m.ScheduledTime.UTC(),
		m.Message,
		m.IsRead,
		m.SentTime,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func NotificationFromEntity(e *domain.Notification) *NotificationModel {
	return &NotificationModel{
		ID:             e.ID().String(),
		UserID:         e.UserID().String(),
		ScheduleTimeID: e.ScheduleTimeID().String(),
		ScheduledTime:  e.ScheduledTime().UTC(),
		Message:        e.Message(),
		IsRead:         e.IsRead(),
		SentTime:       e.SentTime(),
		CreatedAt:      e.CreatedAt(),
		UpdatedAt:      e.UpdatedAt(),
	}
}

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{
		&MedicineModel{},
		&ScheduleModel{},
		&ScheduleTimeModel{},
		&NotificationModel{},
	}
}
