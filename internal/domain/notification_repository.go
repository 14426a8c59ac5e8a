package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=notification_repository.go -destination=notification_repository_mock.go -package=domain

type NotificationRepository interface {
	// ExistsExact reports whether a notification with exactly this key exists.
	ExistsExact(ctx context.Context, key NotificationKey) (bool, error)
	// InsertMany stores all notifications atomically, ignoring rows whose key
	// already exists, and returns the number of rows actually inserted.
	InsertMany(ctx context.Context, notifications []*Notification) (int, error)
	FindByID(ctx context.Context, userID UserID, id NotificationID) (*Notification, error)
	ListByUser(ctx context.Context, userID UserID, includeRead bool) ([]*Notification, error)
	// MarkRead returns false when the notification is missing, belongs to
	// another user or is already read.
	MarkRead(ctx context.Context, userID UserID, id NotificationID, at time.Time) (bool, error)
	Delete(ctx context.Context, userID UserID, id NotificationID) (bool, error)
	DeleteReadBefore(ctx context.Context, before time.Time) (int64, error)
}
