package app

import "context"

//go:generate mockgen -source=schedule_usecase.go -destination=schedule_usecase_mock.go -package=app

type ScheduleUseCase interface {
	CreateSchedule(ctx context.Context, input CreateScheduleInput) (ScheduleOutput, error)
	GetSchedule(ctx context.Context, input GetScheduleInput) (ScheduleOutput, error)
	ListSchedules(ctx context.Context, input ListSchedulesInput) (SchedulesOutput, error)
	UpdateSchedule(ctx context.Context, input UpdateScheduleInput) (ScheduleOutput, error)
	DeleteSchedule(ctx context.Context, input DeleteScheduleInput) error
}
