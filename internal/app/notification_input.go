package app

type ListNotificationsInput struct {
	UserID      string
	IncludeRead bool
}

type MarkNotificationReadInput struct {
	UserID string
	ID     string
}

type DeleteNotificationInput struct {
	UserID string
	ID     string
}
