package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Log          LogConfig
	Service      ServiceConfig
	Notification NotificationConfig
	Retention    RetentionConfig
	PubSub       PubSubConfig
	Cache        CacheConfig
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type ServiceConfig struct {
	Name        string `envconfig:"SERVICE_NAME" default:"meditrack"`
	Environment string `envconfig:"ENV" default:"local"`
}

type ServerConfig struct {
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port         int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

type DatabaseConfig struct {
	DSN             string        `envconfig:"POSTGRES_DSN" required:"true"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	SlowThreshold   time.Duration `envconfig:"DB_SLOW_THRESHOLD" default:"200ms"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type NotificationConfig struct {
	CheckIntervalMinutes int `envconfig:"NOTIFICATION_CHECK_INTERVAL_MINUTES" default:"5"`
	LookAheadHours       int `envconfig:"NOTIFICATION_LOOK_AHEAD_HOURS" default:"24"`
	// RunTimeout bounds a single generation run; zero disables the bound.
	RunTimeout time.Duration `envconfig:"NOTIFICATION_RUN_TIMEOUT" default:"0s"`
}

type RetentionConfig struct {
	// ReadNotifications is how long read notifications are kept; zero keeps them forever.
	ReadNotifications time.Duration `envconfig:"RETENTION_READ_NOTIFICATIONS" default:"0s"`
	CronSpec          string        `envconfig:"RETENTION_CRON_SPEC" default:"@daily"`
}

type PubSubConfig struct {
	NatsURL         string `envconfig:"NATS_URL"`
	GCloudProjectID string `envconfig:"GCLOUD_PROJECT_ID"`
}

type CacheConfig struct {
	RedisURL        string        `envconfig:"REDIS_URL"`
	NotificationTTL time.Duration `envconfig:"CACHE_NOTIFICATION_TTL" default:"1m"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config

	sections := []struct {
		name string
		spec any
	}{
		{"server", &cfg.Server},
		{"database", &cfg.Database},
		{"log", &cfg.Log},
		{"service", &cfg.Service},
		{"notification", &cfg.Notification},
		{"retention", &cfg.Retention},
		{"pubsub", &cfg.PubSub},
		{"cache", &cfg.Cache},
	}

	for _, s := range sections {
		if err := envconfig.Process("", s.spec); err != nil {
			return nil, fmt.Errorf("invalid %s configuration: %w", s.name, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Database.DSN == "" {
		return errors.New("POSTGRES_DSN environment variable is required")
	}

	if c.Notification.CheckIntervalMinutes <= 0 {
		return fmt.Errorf("invalid NOTIFICATION_CHECK_INTERVAL_MINUTES: must be positive, got %d", c.Notification.CheckIntervalMinutes)
	}

	if c.Notification.LookAheadHours <= 0 {
		return fmt.Errorf("invalid NOTIFICATION_LOOK_AHEAD_HOURS: must be positive, got %d", c.Notification.LookAheadHours)
	}

	if c.Notification.RunTimeout < 0 {
		return fmt.Errorf("invalid NOTIFICATION_RUN_TIMEOUT: must not be negative, got %s", c.Notification.RunTimeout)
	}

	if c.Retention.ReadNotifications < 0 {
		return fmt.Errorf("invalid RETENTION_READ_NOTIFICATIONS: must not be negative, got %s", c.Retention.ReadNotifications)
	}

	if c.Retention.ReadNotifications > 0 {
		if _, err := cron.ParseStandard(c.Retention.CronSpec); err != nil {
			return fmt.Errorf("invalid RETENTION_CRON_SPEC: %w", err)
		}
	}

	if c.Cache.RedisURL != "" && c.Cache.NotificationTTL <= 0 {
		return fmt.Errorf("invalid CACHE_NOTIFICATION_TTL: must be positive, got %s", c.Cache.NotificationTTL)
	}

	return nil
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *NotificationConfig) CheckInterval() time.Duration {
	return time.Duration(c.CheckIntervalMinutes) * time.Minute
}

func (c *NotificationConfig) LookAhead() time.Duration {
	return time.Duration(c.LookAheadHours) * time.Hour
}
