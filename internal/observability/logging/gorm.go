package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes gorm's logger through slog so SQL logs carry the same
// request and trace attributes as the rest of the service.
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormlogger.LogLevel
	logger        *slog.Logger
}

func NewGormLogger(logger *slog.Logger, slowThreshold time.Duration, level slog.Level) *GormLogger {
	return &GormLogger{
		SlowThreshold: slowThreshold,
		LogLevel:      GormLevel(level),
		logger:        logger,
	}
}

// GormLevel picks the gorm level matching the service log level. Query traces
// are only produced when debug logging is on.
func GormLevel(level slog.Level) gormlogger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return gormlogger.Info
	case level <= slog.LevelWarn:
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.LogLevel = level

	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *GormLogger) log(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.LogLevel < threshold {
		return
	}

	l.logger.Log(ctx, level, fmt.Sprintf(msg, args...), slog.String("event", "db.log"))
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.SlowThreshold > 0 && elapsed > l.SlowThreshold
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	var (
		level slog.Level
		msg   string
		event string
	)

	switch {
	case failed && l.LogLevel >= gormlogger.Error:
		level, msg, event = slog.LevelError, "query error", "db.query.fail"
	case slow && l.LogLevel >= gormlogger.Warn:
		level, msg, event = slog.LevelWarn, "slow query", "db.query.slow"
	case l.LogLevel >= gormlogger.Info:
		level, msg, event = slog.LevelDebug, "query executed", "db.query"
	default:
		return
	}

	sql, rows := fc()

	attrs := []slog.Attr{
		slog.String("event", event),
		slog.Duration("duration", elapsed),
		slog.String("sql", sql),
		slog.Int64("rows", rows),
	}
	if failed {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	if slow {
		attrs = append(attrs, slog.Duration("threshold", l.SlowThreshold))
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
