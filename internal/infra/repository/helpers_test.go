package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/meditrack/internal/domain"
	"github.com/KasumiMercury/meditrack/internal/infra/repository"
	"github.com/KasumiMercury/meditrack/internal/testutil"
)

func createValidUserID(t *testing.T) domain.UserID {
	t.Helper()

	id, err := domain.UserIDFromUUID(uuid.Must(uuid.NewV7()))
	require.NoError(t, err)

	return id
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func saveMedicine(t *testing.T, testDB *testutil.TestDB, userID domain.UserID, name string) *domain.Medicine {
	t.Helper()

	medicine, err := domain.NewMedicine(userID, name, "100mg", nil, "")
	require.NoError(t, err)

	err = repository.NewMedicineRepository(testDB.DB).Save(context.Background(), medicine)
	require.NoError(t, err)

	return medicine
}

func newSchedule(
	t *testing.T,
	medicine *domain.Medicine,
	start time.Time,
	end *time.Time,
	times ...domain.ScheduleTimeSpec,
) *domain.Schedule {
	t.Helper()

	if len(times) == 0 {
		times = []domain.ScheduleTimeSpec{{TimeOfDay: domain.MustTimeOfDay(8, 0, 0), Quantity: 1}}
	}

	schedule, err := domain.NewSchedule(
		medicine.UserID(),
		medicine,
		start,
		end,
		domain.FrequencyDaily,
		0,
		"",
		times,
	)
	require.NoError(t, err)

	return schedule
}

func newNotification(userID domain.UserID, at time.Time) *domain.Notification {
	key := domain.NewNotificationKey(userID, domain.NewScheduleTimeID(), at)

	return domain.NewNotification(key, "Aspirin (1 100mg)", time.Now().UTC())
}
