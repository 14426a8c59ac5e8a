package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/meditrack/internal/app"
	"github.com/KasumiMercury/meditrack/internal/domain"
)

func newOwnedMedicine(t *testing.T) (*domain.Medicine, domain.UserID) {
	t.Helper()

	userID, err := domain.UserIDFromUUID(uuid.New())
	require.NoError(t, err)

	medicine, err := domain.NewMedicine(userID, "Metformin", "500mg", nil, "")
	require.NoError(t, err)

	return medicine, userID
}

func validCreateInput(userID domain.UserID, medicine *domain.Medicine) app.CreateScheduleInput {
	return app.CreateScheduleInput{
		UserID:        userID.String(),
		MedicineID:    medicine.ID().String(),
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		FrequencyType: "SpecificDays",
		DaysOfWeek:    []string{"monday", "Thu"},
		Notes:         "after meals",
		Times: []app.ScheduleTimeInput{
			{TimeOfDay: "08:00", Quantity: 1},
			{TimeOfDay: "20:30:00", Quantity: 2},
		},
	}
}

func TestCreateScheduleSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	schedules := domain.NewMockScheduleRepository(ctrl)
	medicines := domain.NewMockMedicineRepository(ctrl)
	medicine, userID := newOwnedMedicine(t)

	medicines.EXPECT().FindByID(gomock.Any(), medicine.ID()).Return(medicine, nil)
	schedules.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	uc := app.NewScheduleUseCase(schedules, medicines)

	out, err := uc.CreateSchedule(context.Background(), validCreateInput(userID, medicine))

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Metformin", out.MedicineName)
	assert.Equal(t, "SpecificDays", out.FrequencyType)
	assert.Equal(t, []string{"Monday", "Thursday"}, out.DaysOfWeek)
	require.Len(t, out.Times, 2)
	assert.Equal(t, "08:00:00", out.Times[0].TimeOfDay)
	assert.Equal(t, "20:30:00", out.Times[1].TimeOfDay)
	assert.Equal(t, 2, out.Times[1].Quantity)
}

func TestCreateScheduleValidationError(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(input *app.CreateScheduleInput)
		lookup    bool
		wantField string
	}{
		{
			name:      "unsupported frequency",
			modify:    func(input *app.CreateScheduleInput) { input.FrequencyType = "Monthly" },
			wantField: "frequency_type",
		},
		{
			name:      "unknown weekday",
			modify:    func(input *app.CreateScheduleInput) { input.DaysOfWeek = []string{"Funday"} },
			wantField: "days_of_week",
		},
		{
			name:      "malformed time of day",
			modify:    func(input *app.CreateScheduleInput) { input.Times[1].TimeOfDay = "25:00" },
			wantField: "times[1].time_of_day",
		},
		{
			name:      "invalid medicine id",
			modify:    func(input *app.CreateScheduleInput) { input.MedicineID = "nope" },
			wantField: "medicine_id",
		},
		{
			name:      "weekly without days",
			modify:    func(input *app.CreateScheduleInput) { input.FrequencyType = "Weekly"; input.DaysOfWeek = nil },
			lookup:    true,
			wantField: "days_of_week",
		},
		{
			name: "end before start",
			modify: func(input *app.CreateScheduleInput) {
				end := input.StartDate.Add(-time.Hour)
				input.EndDate = &end
			},
			lookup:    true,
			wantField: "end_date",
		},
		{
			name:      "no times",
			modify:    func(input *app.CreateScheduleInput) { input.Times = nil },
			lookup:    true,
			wantField: "times",
		},
		{
			name:      "zero quantity",
			modify:    func(input *app.CreateScheduleInput) { input.Times[0].Quantity = 0 },
			lookup:    true,
			wantField: "times",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			schedules := domain.NewMockScheduleRepository(ctrl)
			medicines := domain.NewMockMedicineRepository(ctrl)
			medicine, userID := newOwnedMedicine(t)

			if tt.lookup {
				medicines.EXPECT().FindByID(gomock.Any(), medicine.ID()).Return(medicine, nil)
			}

			input := validCreateInput(userID, medicine)
			tt.modify(&input)

			uc := app.NewScheduleUseCase(schedules, medicines)

			_, err := uc.CreateSchedule(context.Background(), input)

			var validationErr *app.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestCreateScheduleRejectsForeignMedicine(t *testing.T) {
	ctrl := gomock.NewController(t)
	schedules := domain.NewMockScheduleRepository(ctrl)
	medicines := domain.NewMockMedicineRepository(ctrl)
	medicine, _ := newOwnedMedicine(t)

	otherUser, err := domain.UserIDFromUUID(uuid.New())
	require.NoError(t, err)

	medicines.EXPECT().FindByID(gomock.Any(), medicine.ID()).Return(medicine, nil)

	uc := app.NewScheduleUseCase(schedules, medicines)

	_, err = uc.CreateSchedule(context.Background(), validCreateInput(otherUser, medicine))

	var validationErr *app.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "medicine_id", validationErr.Field)
}

func TestUpdateScheduleReplacesTimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	schedules := domain.NewMockScheduleRepository(ctrl)
	medicines := domain.NewMockMedicineRepository(ctrl)
	medicine, userID := newOwnedMedicine(t)

	existing, err := domain.NewSchedule(
		userID, medicine, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil, domain.FrequencyDaily, 0, "",
		[]domain.ScheduleTimeSpec{{TimeOfDay: domain.MustTimeOfDay(8, 0, 0), Quantity: 1}},
	)
	require.NoError(t, err)

	oldTimeID := existing.Times()[0].ID().String()

	schedules.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(domain.ScheduleRepository) error) error {
			return fn(schedules)
		})
	schedules.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
	schedules.EXPECT().Update(gomock.Any(), existing).Return(nil)

	uc := app.NewScheduleUseCase(schedules, medicines)

	out, err := uc.UpdateSchedule(context.Background(), app.UpdateScheduleInput{
		UserID:        userID.String(),
		ID:            existing.ID().String(),
		StartDate:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		FrequencyType: "weekly",
		DaysOfWeek:    []string{"Sunday"},
		Times: []app.ScheduleTimeInput{
			{TimeOfDay: "07:15", Quantity: 1},
			{TimeOfDay: "19:15", Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Weekly", out.FrequencyType)
	assert.Equal(t, []string{"Sunday"}, out.DaysOfWeek)
	require.Len(t, out.Times, 2)

	for _, st := range out.Times {
		assert.NotEqual(t, oldTimeID, st.ID)
	}
}

func TestScheduleNotFoundForOtherUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	schedules := domain.NewMockScheduleRepository(ctrl)
	medicines := domain.NewMockMedicineRepository(ctrl)
	medicine, owner := newOwnedMedicine(t)

	existing, err := domain.NewSchedule(
		owner, medicine, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil, domain.FrequencyDaily, 0, "",
		[]domain.ScheduleTimeSpec{{TimeOfDay: domain.MustTimeOfDay(8, 0, 0), Quantity: 1}},
	)
	require.NoError(t, err)

	schedules.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil).Times(2)

	uc := app.NewScheduleUseCase(schedules, medicines)
	stranger := uuid.New().String()

	_, err = uc.GetSchedule(context.Background(), app.GetScheduleInput{UserID: stranger, ID: existing.ID().String()})
	assert.ErrorIs(t, err, app.ErrNotFound)

	err = uc.DeleteSchedule(context.Background(), app.DeleteScheduleInput{UserID: stranger, ID: existing.ID().String()})
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestDeleteSchedule(t *testing.T) {
	tests := []struct {
		name    string
		findErr error
		delErr  error
		wantErr error
	}{
		{
			name: "deleted",
		},
		{
			name:    "missing",
			findErr: domain.ErrScheduleNotFound,
			wantErr: app.ErrNotFound,
		},
		{
			name:    "repository failure",
			delErr:  errors.New("boom"),
			wantErr: app.ErrInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			schedules := domain.NewMockScheduleRepository(ctrl)
			medicines := domain.NewMockMedicineRepository(ctrl)
			medicine, userID := newOwnedMedicine(t)

			existing, err := domain.NewSchedule(
				userID, medicine, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil, domain.FrequencyDaily, 0, "",
				[]domain.ScheduleTimeSpec{{TimeOfDay: domain.MustTimeOfDay(8, 0, 0), Quantity: 1}},
			)
			require.NoError(t, err)

			if tt.findErr != nil {
				schedules.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(nil, tt.findErr)
			} else {
				schedules.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
				schedules.EXPECT().Delete(gomock.Any(), existing.ID()).Return(tt.delErr)
			}

			uc := app.NewScheduleUseCase(schedules, medicines)

			err = uc.DeleteSchedule(context.Background(), app.DeleteScheduleInput{
				UserID: userID.String(),
				ID:     existing.ID().String(),
			})

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListSchedulesFiltersByMedicine(t *testing.T) {
	ctrl := gomock.NewController(t)
	schedules := domain.NewMockScheduleRepository(ctrl)
	medicines := domain.NewMockMedicineRepository(ctrl)
	medicine, userID := newOwnedMedicine(t)

	other, err := domain.NewMedicine(userID, "Ibuprofen", "200mg", nil, "")
	require.NoError(t, err)

	spec := []domain.ScheduleTimeSpec{{TimeOfDay: domain.MustTimeOfDay(8, 0, 0), Quantity: 1}}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first, err := domain.NewSchedule(userID, medicine, start, nil, domain.FrequencyDaily, 0, "", spec)
	require.NoError(t, err)

	second, err := domain.NewSchedule(userID, other, start, nil, domain.FrequencyDaily, 0, "", spec)
	require.NoError(t, err)

	schedules.EXPECT().
		FindByUserID(gomock.Any(), userID).
		Return([]*domain.Schedule{first, second}, nil).
		Times(2)

	uc := app.NewScheduleUseCase(schedules, medicines)

	all, err := uc.ListSchedules(context.Background(), app.ListSchedulesInput{UserID: userID.String()})
	require.NoError(t, err)
	assert.Equal(t, int32(2), all.Count)

	filtered, err := uc.ListSchedules(context.Background(), app.ListSchedulesInput{
		UserID:     userID.String(),
		MedicineID: other.ID().String(),
	})
	require.NoError(t, err)
	require.Equal(t, int32(1), filtered.Count)
	assert.Equal(t, second.ID().String(), filtered.Schedules[0].ID)
}
