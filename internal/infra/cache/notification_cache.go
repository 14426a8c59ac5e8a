package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

const (
	keyPrefix = "meditrack:notifications:"
	scanCount = 100
)

type cachedNotification struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	ScheduleTimeID string     `json:"schedule_time_id"`
	ScheduledTime  time.Time  `json:"scheduled_time"`
	Message        string     `json:"message"`
	IsRead         bool       `json:"is_read"`
	SentTime       *time.Time `json:"sent_time,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// notificationCache caches per-user notification listings in redis and
// delegates everything else to the wrapped repository. Every write drops the
// affected user's listings.
type notificationCache struct {
	next   domain.NotificationRepository
	client redis.UniversalClient
	ttl    time.Duration
}

func NewNotificationCache(next domain.NotificationRepository, client redis.UniversalClient, ttl time.Duration) domain.NotificationRepository {
	return &notificationCache{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func listKey(userID domain.UserID, includeRead bool) string {
	return fmt.Sprintf("%suser:%s:include_read:%t", keyPrefix, userID.String(), includeRead)
}

func (c *notificationCache) ExistsExact(ctx context.Context, key domain.NotificationKey) (bool, error) {
	return c.next.ExistsExact(ctx, key)
}

func (c *notificationCache) FindByID(ctx context.Context, userID domain.UserID, id domain.NotificationID) (*domain.Notification, error) {
	return c.next.FindByID(ctx, userID, id)
}

func (c *notificationCache) ListByUser(ctx context.Context, userID domain.UserID, includeRead bool) ([]*domain.Notification, error) {
	key := listKey(userID, includeRead)

	cached, err := c.get(ctx, key)
	if err == nil {
		slog.Debug("notification list served from cache",
			"user_id", userID.String(),
			"count", len(cached),
		)

		return cached, nil
	}

	if !errors.Is(err, redis.Nil) {
		slog.Warn("failed to read notification list from cache",
			"user_id", userID.String(),
			"error", err,
		)
	}

	notifications, err := c.next.ListByUser(ctx, userID, includeRead)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, notifications)

	return notifications, nil
}

func (c *notificationCache) InsertMany(ctx context.Context, notifications []*domain.Notification) (int, error) {
	inserted, err := c.next.InsertMany(ctx, notifications)
	if err != nil {
		return inserted, err
	}

	if inserted > 0 {
		seen := make(map[domain.UserID]struct{})
		for _, n := range notifications {
			if _, ok := seen[n.UserID()]; ok {
				continue
			}

			seen[n.UserID()] = struct{}{}
			c.invalidateUser(ctx, n.UserID())
		}
	}

	return inserted, nil
}

func (c *notificationCache) MarkRead(ctx context.Context, userID domain.UserID, id domain.NotificationID, at time.Time) (bool, error) {
	ok, err := c.next.MarkRead(ctx, userID, id, at)
	if err != nil {
		return false, err
	}

	if ok {
		c.invalidateUser(ctx, userID)
	}

	return ok, nil
}

func (c *notificationCache) Delete(ctx context.Context, userID domain.UserID, id domain.NotificationID) (bool, error) {
	ok, err := c.next.Delete(ctx, userID, id)
	if err != nil {
		return false, err
	}

	if ok {
		c.invalidateUser(ctx, userID)
	}

	return ok, nil
}

// DeleteReadBefore cannot tell which users were affected, so it drops every
// cached listing.
func (c *notificationCache) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	deleted, err := c.next.DeleteReadBefore(ctx, before)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		c.invalidateAll(ctx)
	}

	return deleted, nil
}

func (c *notificationCache) get(ctx context.Context, key string) ([]*domain.Notification, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var entries []cachedNotification
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cached notifications: %w", err)
	}

	notifications := make([]*domain.Notification, 0, len(entries))
	for _, e := range entries {
		n, err := e.toEntity()
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, nil
}

func (c *notificationCache) set(ctx context.Context, key string, notifications []*domain.Notification) {
	entries := make([]cachedNotification, 0, len(notifications))
	for _, n := range notifications {
		entries = append(entries, fromEntity(n))
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		slog.Warn("failed to encode notifications for cache",
			"key", key,
			"error", err,
		)

		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("failed to write notification list to cache",
			"key", key,
			"error", err,
		)
	}
}

func (c *notificationCache) invalidateUser(ctx context.Context, userID domain.UserID) {
	keys := []string{listKey(userID, true), listKey(userID, false)}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("failed to invalidate cached notification lists",
			"user_id", userID.String(),
			"error", err,
		)
	}
}

func (c *notificationCache) invalidateAll(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", scanCount).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		slog.Warn("failed to scan cached notification lists",
			"error", err,
		)

		return
	}

	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("failed to invalidate cached notification lists",
			"count", len(keys),
			"error", err,
		)
	}
}

func fromEntity(n *domain.Notification) cachedNotification {
	return cachedNotification{
		ID:             n.ID().String(),
		UserID:         n.UserID().String(),
		ScheduleTimeID: n.ScheduleTimeID().String(),
		ScheduledTime:  n.ScheduledTime(),
		Message:        n.Message(),
		IsRead:         n.IsRead(),
		SentTime:       n.SentTime(),
		CreatedAt:      n.CreatedAt(),
		UpdatedAt:      n.UpdatedAt(),
	}
}

func (e cachedNotification) toEntity() (*domain.Notification, error) {
	id, err := domain.NotificationIDFromString(e.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(e.UserID)
	if err != nil {
		return nil, err
	}

	scheduleTimeID, err := domain.ScheduleTimeIDFromString(e.ScheduleTimeID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteNotification(
		id,
		userID,
		scheduleTimeID,
		e.ScheduledTime.UTC(),
		e.Message,
		e.IsRead,
		e.SentTime,
		e.CreatedAt,
		e.UpdatedAt,
	), nil
}
