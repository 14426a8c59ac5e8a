package app

import (
	"context"
	"time"
)

//go:generate mockgen -source=notification_generator.go -destination=notification_generator_mock.go -package=app

type NotificationGenerator interface {
	// Generate materializes notifications for every dose of every active
	// schedule falling in [now, now+lookAhead). Repeated calls never create a
	// second notification for the same user, schedule time and instant.
	Generate(ctx context.Context, lookAhead time.Duration) (GenerateOutput, error)
}

type GenerateOutput struct {
	RunID            string
	WindowStart      time.Time
	WindowEnd        time.Time
	SchedulesScanned int
	SchedulesSkipped int
	Candidates       int
	Skipped          int
	Created          int
}
