package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/meditrack/internal/domain"
	"github.com/KasumiMercury/meditrack/internal/observability/logging"
)

const DefaultRetentionSpec = "@daily"

// RetentionJob periodically purges read notifications whose scheduled time
// is older than the retention period. A zero retention disables it.
type RetentionJob struct {
	cron          *cron.Cron
	notifications domain.NotificationRepository
	clock         domain.Clock
	retention     time.Duration
}

func NewRetentionJob(
	notifications domain.NotificationRepository,
	clock domain.Clock,
	retention time.Duration,
	spec string,
) (*RetentionJob, error) {
	j := &RetentionJob{
		notifications: notifications,
		clock:         clock,
		retention:     retention,
	}

	if !j.Enabled() {
		return j, nil
	}

	if spec == "" {
		spec = DefaultRetentionSpec
	}

	logger := cronLogger{}
	j.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := j.cron.AddFunc(spec, j.tick); err != nil {
		return nil, fmt.Errorf("invalid retention schedule %q: %w", spec, err)
	}

	return j, nil
}

func (j *RetentionJob) Enabled() bool {
	return j.retention > 0
}

func (j *RetentionJob) Start() {
	if j.cron == nil {
		slog.Info("retention job disabled")

		return
	}

	slog.Info("retention job started",
		"retention", j.retention.String(),
	)
	j.cron.Start()
}

// Stop halts the schedule and waits for a running purge to return.
func (j *RetentionJob) Stop() {
	if j.cron == nil {
		return
	}

	<-j.cron.Stop().Done()
}

// RunOnce deletes read notifications older than the retention period.
func (j *RetentionJob) RunOnce(ctx context.Context) (int64, error) {
	cutoff := j.clock.Now().UTC().Add(-j.retention)

	deleted, err := j.notifications.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "purged read notifications",
		"cutoff", cutoff,
		"deleted", deleted,
	)

	return deleted, nil
}

func (j *RetentionJob) tick() {
	ctx := logging.WithModule(context.Background(), logging.ModuleRetention)

	if _, err := j.RunOnce(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to purge read notifications",
			"error", err,
		)
	}
}

// cronLogger routes cron's internal logging through slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error(msg, append(keysAndValues, "error", err)...)
}
