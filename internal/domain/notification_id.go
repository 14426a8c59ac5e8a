package domain

import (
	"github.com/google/uuid"
)

type NotificationID struct {
	value uuid.UUID
}

func NewNotificationID() NotificationID {
	return NotificationID{value: uuid.Must(uuid.NewV7())}
}

func NotificationIDFromString(s string) (NotificationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NotificationID{}, ErrInvalidNotificationID
	}

	return NotificationID{value: id}, nil
}

func NotificationIDFromUUID(id uuid.UUID) NotificationID {
	return NotificationID{value: id}
}

func (n NotificationID) String() string {
	return n.value.String()
}

func (n NotificationID) UUID() uuid.UUID {
	return n.value
}

func (n NotificationID) IsZero() bool {
	return n.value == uuid.Nil
}

func (n NotificationID) Equals(other NotificationID) bool {
	return n.value == other.value
}
