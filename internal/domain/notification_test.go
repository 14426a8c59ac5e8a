package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

func TestNewNotification(t *testing.T) {
	userID, err := domain.UserIDFromUUID(uuid.New())
	require.NoError(t, err)

	scheduledAt := time.Date(2024, 1, 1, 17, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	key := domain.NewNotificationKey(userID, domain.NewScheduleTimeID(), scheduledAt)

	n := domain.NewNotification(key, "Aspirin (1 100mg)", now)

	assert.False(t, n.ID().IsZero())
	assert.Equal(t, key, n.Key())
	assert.Equal(t, time.UTC, n.ScheduledTime().Location())
	assert.True(t, scheduledAt.Equal(n.ScheduledTime()))
	assert.False(t, n.IsRead())
	assert.Nil(t, n.SentTime())
	assert.Equal(t, now, n.CreatedAt())
	assert.Equal(t, now, n.UpdatedAt())
}

func TestNotificationMarkAsRead(t *testing.T) {
	userID, err := domain.UserIDFromUUID(uuid.New())
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := domain.NewNotification(domain.NewNotificationKey(userID, domain.NewScheduleTimeID(), now), "msg", now)

	readAt := now.Add(time.Hour)
	require.NoError(t, n.MarkAsRead(readAt))
	assert.True(t, n.IsRead())
	assert.Equal(t, readAt, n.UpdatedAt())

	assert.ErrorIs(t, n.MarkAsRead(readAt.Add(time.Hour)), domain.ErrAlreadyRead)
	assert.Equal(t, readAt, n.UpdatedAt())
}

func TestDoseMessage(t *testing.T) {
	tests := []struct {
		name     string
		medicine string
		dosage   string
		quantity int
		want     string
	}{
		{
			name:     "single tablet",
			medicine: "Aspirin",
			dosage:   "100mg",
			quantity: 1,
			want:     "Aspirin (1 100mg)",
		},
		{
			name:     "multiple units",
			medicine: "Vitamin D",
			dosage:   "drops",
			quantity: 3,
			want:     "Vitamin D (3 drops)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := domain.UserIDFromUUID(uuid.New())
			require.NoError(t, err)

			medicine, err := domain.NewMedicine(userID, tt.medicine, tt.dosage, nil, "")
			require.NoError(t, err)

			assert.Equal(t, tt.want, domain.DoseMessage(medicine, tt.quantity))
		})
	}
}

func TestNewMedicineError(t *testing.T) {
	userID, err := domain.UserIDFromUUID(uuid.New())
	require.NoError(t, err)

	_, err = domain.NewMedicine(userID, "  ", "100mg", nil, "")
	assert.ErrorIs(t, err, domain.ErrEmptyMedicineName)

	_, err = domain.NewMedicine(userID, "Aspirin", "", nil, "")
	assert.ErrorIs(t, err, domain.ErrEmptyMedicineDosage)
}
