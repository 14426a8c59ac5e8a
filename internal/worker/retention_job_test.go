package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/meditrack/internal/domain"
	"github.com/KasumiMercury/meditrack/internal/worker"
)

func TestNewRetentionJob(t *testing.T) {
	tests := []struct {
		name          string
		retention     time.Duration
		spec          string
		expectEnabled bool
		expectErr     bool
	}{
		{
			name:          "disabled by zero retention",
			retention:     0,
			spec:          "not a cron spec",
			expectEnabled: false,
		},
		{
			name:          "default spec",
			retention:     30 * 24 * time.Hour,
			spec:          "",
			expectEnabled: true,
		},
		{
			name:          "standard cron spec",
			retention:     time.Hour,
			spec:          "0 3 * * *",
			expectEnabled: true,
		},
		{
			name:      "malformed spec",
			retention: time.Hour,
			spec:      "every day",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockNotificationRepository(ctrl)

			job, err := worker.NewRetentionJob(repo, domain.SystemClock{}, tt.retention, tt.spec)

			if tt.expectErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectEnabled, job.Enabled())

			job.Start()
			job.Stop()
		})
	}
}

func TestRetentionJobRunOnce(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("deletes before cutoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := domain.NewMockNotificationRepository(ctrl)
		repo.EXPECT().
			DeleteReadBefore(gomock.Any(), now.Add(-7*24*time.Hour)).
			Return(int64(4), nil)

		job, err := worker.NewRetentionJob(repo, domain.FixedClock{At: now}, 7*24*time.Hour, "")
		require.NoError(t, err)

		deleted, err := job.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(4), deleted)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := domain.NewMockNotificationRepository(ctrl)

		dbErr := errors.New("db down")
		repo.EXPECT().DeleteReadBefore(gomock.Any(), gomock.Any()).Return(int64(0), dbErr)

		job, err := worker.NewRetentionJob(repo, domain.FixedClock{At: now}, time.Hour, "")
		require.NoError(t, err)

		_, err = job.RunOnce(context.Background())
		assert.ErrorIs(t, err, dbErr)
	})
}
