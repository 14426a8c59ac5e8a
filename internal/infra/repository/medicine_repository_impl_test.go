package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/meditrack/internal/domain"
	"github.com/KasumiMercury/meditrack/internal/infra/repository"
	"github.com/KasumiMercury/meditrack/internal/testutil"
)

func TestMedicineRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewMedicineRepository(testDB.DB)
	ctx := context.Background()

	t.Run("save and find by id", func(t *testing.T) {
		testDB.CleanTables(t)

		unitID := uuid.Must(uuid.NewV7())
		medicine, err := domain.NewMedicine(createValidUserID(t), "Aspirin", "100mg", &unitID, "with water")
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, medicine))

		found, err := repo.FindByID(ctx, medicine.ID())
		require.NoError(t, err)

		assert.Equal(t, "Aspirin", found.Name())
		assert.Equal(t, "100mg", found.Dosage())
		assert.Equal(t, "with water", found.Notes())
		require.NotNil(t, found.UnitID())
		assert.Equal(t, unitID, *found.UnitID())
	})

	t.Run("find missing medicine", func(t *testing.T) {
		_, err := repo.FindByID(ctx, domain.NewMedicineID())
		assert.ErrorIs(t, err, domain.ErrMedicineNotFound)
	})

	t.Run("find by user id orders by name", func(t *testing.T) {
		testDB.CleanTables(t)

		userID := createValidUserID(t)
		saveMedicine(t, testDB, userID, "Zinc")
		saveMedicine(t, testDB, userID, "Aspirin")
		saveMedicine(t, testDB, createValidUserID(t), "Iron")

		medicines, err := repo.FindByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, medicines, 2)
		assert.Equal(t, "Aspirin", medicines[0].Name())
		assert.Equal(t, "Zinc", medicines[1].Name())
	})

	t.Run("update replaces editable fields", func(t *testing.T) {
		testDB.CleanTables(t)

		medicine := saveMedicine(t, testDB, createValidUserID(t), "Aspirin")
		require.NoError(t, medicine.Update("Ibuprofen", "200mg", nil, "after meals", time.Now().UTC()))

		require.NoError(t, repo.Update(ctx, medicine))

		found, err := repo.FindByID(ctx, medicine.ID())
		require.NoError(t, err)
		assert.Equal(t, "Ibuprofen", found.Name())
		assert.Equal(t, "200mg", found.Dosage())
		assert.Equal(t, "after meals", found.Notes())
		assert.Nil(t, found.UnitID())
	})

	t.Run("update missing medicine", func(t *testing.T) {
		medicine, err := domain.NewMedicine(createValidUserID(t), "Aspirin", "100mg", nil, "")
		require.NoError(t, err)

		assert.ErrorIs(t, repo.Update(ctx, medicine), domain.ErrMedicineNotFound)
	})

	t.Run("delete cascades to schedules and keeps notifications", func(t *testing.T) {
		testDB.CleanTables(t)

		userID := createValidUserID(t)
		medicine := saveMedicine(t, testDB, userID, "Aspirin")
		other := saveMedicine(t, testDB, userID, "Zinc")

		schedules := repository.NewScheduleRepository(testDB.DB)
		schedule := newSchedule(t, medicine, date(2024, 1, 1), nil)
		kept := newSchedule(t, other, date(2024, 1, 1), nil)
		require.NoError(t, schedules.Save(ctx, schedule))
		require.NoError(t, schedules.Save(ctx, kept))

		notifications := repository.NewNotificationRepository(testDB.DB)
		n := domain.NewNotification(
			domain.NewNotificationKey(userID, schedule.Times()[0].ID(), date(2024, 1, 1).Add(8*time.Hour)),
			"Aspirin (1 100mg)",
			time.Now().UTC(),
		)
		_, err := notifications.InsertMany(ctx, []*domain.Notification{n})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, medicine.ID()))

		_, err = repo.FindByID(ctx, medicine.ID())
		assert.ErrorIs(t, err, domain.ErrMedicineNotFound)

		_, err = schedules.FindByID(ctx, schedule.ID())
		assert.ErrorIs(t, err, domain.ErrScheduleNotFound)

		var orphanTimes int64
		require.NoError(t, testDB.DB.Model(&repository.ScheduleTimeModel{}).
			Where("schedule_id = ?", schedule.ID().String()).
			Count(&orphanTimes).Error)
		assert.Zero(t, orphanTimes)

		remaining, err := schedules.FindByID(ctx, kept.ID())
		require.NoError(t, err)
		assert.Len(t, remaining.Times(), 1)

		_, err = notifications.FindByID(ctx, userID, n.ID())
		assert.NoError(t, err)
	})

	t.Run("delete missing medicine", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, domain.NewMedicineID()), domain.ErrMedicineNotFound)
	})
}
