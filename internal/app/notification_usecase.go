package app

import "context"

//go:generate mockgen -source=notification_usecase.go -destination=notification_usecase_mock.go -package=app

type NotificationUseCase interface {
	ListNotifications(ctx context.Context, input ListNotificationsInput) (NotificationsOutput, error)
	MarkNotificationRead(ctx context.Context, input MarkNotificationReadInput) error
	DeleteNotification(ctx context.Context, input DeleteNotificationInput) error
}
