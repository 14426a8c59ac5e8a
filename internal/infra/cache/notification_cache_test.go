package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/meditrack/internal/domain"
	"github.com/KasumiMercury/meditrack/internal/infra/cache"
	"github.com/KasumiMercury/meditrack/internal/testutil"
)

func newUserID(t *testing.T) domain.UserID {
	t.Helper()

	id, err := domain.UserIDFromString("0190a5b2-7c3d-7e4f-8a9b-0c1d2e3f4a5b")
	require.NoError(t, err)

	return id
}

func newNotification(userID domain.UserID, at time.Time) *domain.Notification {
	key := domain.NewNotificationKey(userID, domain.NewScheduleTimeID(), at)

	return domain.NewNotification(key, "Aspirin (1 100mg)", at.Add(-time.Hour))
}

func TestNotificationCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testRedis := testutil.SetupTestRedis(t)
	defer testRedis.TeardownTestRedis(t)

	ctx := context.Background()
	userID := newUserID(t)
	at := time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC)
	stored := []*domain.Notification{newNotification(userID, at)}

	t.Run("second listing is served from cache", func(t *testing.T) {
		testRedis.Flush(t)

		ctrl := gomock.NewController(t)
		next := domain.NewMockNotificationRepository(ctrl)
		next.EXPECT().ListByUser(gomock.Any(), userID, false).Return(stored, nil).Times(1)

		repo := cache.NewNotificationCache(next, testRedis.Client, time.Minute)

		first, err := repo.ListByUser(ctx, userID, false)
		require.NoError(t, err)

		second, err := repo.ListByUser(ctx, userID, false)
		require.NoError(t, err)

		require.Len(t, second, 1)
		assert.True(t, first[0].ID().Equals(second[0].ID()))
		assert.Equal(t, first[0].Key(), second[0].Key())
		assert.Equal(t, first[0].Message(), second[0].Message())
	})

	t.Run("include read is cached separately", func(t *testing.T) {
		testRedis.Flush(t)

		ctrl := gomock.NewController(t)
		next := domain.NewMockNotificationRepository(ctrl)
		next.EXPECT().ListByUser(gomock.Any(), userID, false).Return(stored, nil).Times(1)
		next.EXPECT().ListByUser(gomock.Any(), userID, true).Return(nil, nil).Times(1)

		repo := cache.NewNotificationCache(next, testRedis.Client, time.Minute)

		_, err := repo.ListByUser(ctx, userID, false)
		require.NoError(t, err)

		all, err := repo.ListByUser(ctx, userID, true)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	tests := []struct {
		name  string
		write func(repo domain.NotificationRepository, next *domain.MockNotificationRepository) error
	}{
		{
			name: "mark read invalidates",
			write: func(repo domain.NotificationRepository, next *domain.MockNotificationRepository) error {
				next.EXPECT().MarkRead(gomock.Any(), userID, stored[0].ID(), gomock.Any()).Return(true, nil)
				_, err := repo.MarkRead(ctx, userID, stored[0].ID(), at)

				return err
			},
		},
		{
			name: "delete invalidates",
			write: func(repo domain.NotificationRepository, next *domain.MockNotificationRepository) error {
				next.EXPECT().Delete(gomock.Any(), userID, stored[0].ID()).Return(true, nil)
				_, err := repo.Delete(ctx, userID, stored[0].ID())

				return err
			},
		},
		{
			name: "insert many invalidates",
			write: func(repo domain.NotificationRepository, next *domain.MockNotificationRepository) error {
				fresh := []*domain.Notification{newNotification(userID, at.Add(time.Hour))}
				next.EXPECT().InsertMany(gomock.Any(), fresh).Return(1, nil)
				_, err := repo.InsertMany(ctx, fresh)

				return err
			},
		},
		{
			name: "delete read before invalidates every user",
			write: func(repo domain.NotificationRepository, next *domain.MockNotificationRepository) error {
				next.EXPECT().DeleteReadBefore(gomock.Any(), at).Return(int64(3), nil)
				_, err := repo.DeleteReadBefore(ctx, at)

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testRedis.Flush(t)

			ctrl := gomock.NewController(t)
			next := domain.NewMockNotificationRepository(ctrl)
			next.EXPECT().ListByUser(gomock.Any(), userID, false).Return(stored, nil).Times(2)

			repo := cache.NewNotificationCache(next, testRedis.Client, time.Minute)

			_, err := repo.ListByUser(ctx, userID, false)
			require.NoError(t, err)

			require.NoError(t, tt.write(repo, next))

			_, err = repo.ListByUser(ctx, userID, false)
			require.NoError(t, err)
		})
	}

	t.Run("no-op write keeps cache", func(t *testing.T) {
		testRedis.Flush(t)

		ctrl := gomock.NewController(t)
		next := domain.NewMockNotificationRepository(ctrl)
		next.EXPECT().ListByUser(gomock.Any(), userID, false).Return(stored, nil).Times(1)
		next.EXPECT().MarkRead(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(false, nil)

		repo := cache.NewNotificationCache(next, testRedis.Client, time.Minute)

		_, err := repo.ListByUser(ctx, userID, false)
		require.NoError(t, err)

		ok, err := repo.MarkRead(ctx, userID, domain.NewNotificationID(), at)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = repo.ListByUser(ctx, userID, false)
		require.NoError(t, err)
	})
}

func TestNotificationCacheFallsBackWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	ctrl := gomock.NewController(t)
	next := domain.NewMockNotificationRepository(ctrl)

	userID := newUserID(t)
	stored := []*domain.Notification{newNotification(userID, time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC))}

	next.EXPECT().ListByUser(gomock.Any(), userID, true).Return(stored, nil).Times(2)

	repo := cache.NewNotificationCache(next, client, time.Minute)
	ctx := context.Background()

	for range 2 {
		got, err := repo.ListByUser(ctx, userID, true)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
}

func TestNotificationCachePropagatesRepositoryErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	ctrl := gomock.NewController(t)
	next := domain.NewMockNotificationRepository(ctrl)

	dbErr := errors.New("connection reset")
	userID := newUserID(t)

	next.EXPECT().ListByUser(gomock.Any(), userID, false).Return(nil, dbErr)
	next.EXPECT().MarkRead(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(false, dbErr)

	repo := cache.NewNotificationCache(next, client, time.Minute)
	ctx := context.Background()

	_, err := repo.ListByUser(ctx, userID, false)
	assert.ErrorIs(t, err, dbErr)

	_, err = repo.MarkRead(ctx, userID, domain.NewNotificationID(), time.Now())
	assert.ErrorIs(t, err, dbErr)
}
