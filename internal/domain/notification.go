package domain

import (
	"fmt"
	"time"
)

// NotificationKey identifies a dose occurrence. At most one notification
// exists per key.
type NotificationKey struct {
	UserID         UserID
	ScheduleTimeID ScheduleTimeID
	ScheduledTime  time.Time
}

func NewNotificationKey(userID UserID, scheduleTimeID ScheduleTimeID, scheduledTime time.Time) NotificationKey {
	return NotificationKey{
		UserID:         userID,
		ScheduleTimeID: scheduleTimeID,
		ScheduledTime:  scheduledTime.UTC(),
	}
}

type Notification struct {
	id             NotificationID
	userID         UserID
	scheduleTimeID ScheduleTimeID
	scheduledTime  time.Time
	message        string
	isRead         bool
	sentTime       *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewNotification(
	key NotificationKey,
	message string,
	now time.Time,
) *Notification {
	return &Notification{
		id:             NewNotificationID(),
		userID:         key.UserID,
		scheduleTimeID: key.ScheduleTimeID,
		scheduledTime:  key.ScheduledTime.UTC(),
		message:        message,
		isRead:         false,
		createdAt:      now,
		updatedAt:      now,
	}
}

func ReconstituteNotification(
	id NotificationID,
	userID UserID,
	scheduleTimeID ScheduleTimeID,
	scheduledTime time.Time,
	message string,
	isRead bool,
	sentTime *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Notification {
	return &Notification{
		id:             id,
		userID:         userID,
		scheduleTimeID: scheduleTimeID,
		scheduledTime:  scheduledTime,
		message:        message,
		isRead:         isRead,
		sentTime:       sentTime,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// DoseMessage renders the reminder text, e.g. "Aspirin (2 100mg)".
func DoseMessage(medicine *Medicine, quantity int) string {
	return fmt.Sprintf("%s (%d %s)", medicine.Name(), quantity, medicine.Dosage())
}

func (n *Notification) MarkAsRead(now time.Time) error {
	if n.isRead {
		return ErrAlreadyRead
	}

	n.isRead = true
	n.updatedAt = now

	return nil
}

func (n *Notification) Key() NotificationKey {
	return NotificationKey{
		UserID:         n.userID,
		ScheduleTimeID: n.scheduleTimeID,
		ScheduledTime:  n.scheduledTime,
	}
}

func (n *Notification) ID() NotificationID {
	return n.id
}

func (n *Notification) UserID() UserID {
	return n.userID
}

func (n *Notification) ScheduleTimeID() ScheduleTimeID {
	return n.scheduleTimeID
}

func (n *Notification) ScheduledTime() time.Time {
	return n.scheduledTime
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) SentTime() *time.Time {
	return n.sentTime
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) UpdatedAt() time.Time {
	return n.updatedAt
}
