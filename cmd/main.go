package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/meditrack/internal/app"
	"github.com/KasumiMercury/meditrack/internal/config"
	"github.com/KasumiMercury/meditrack/internal/domain"
	"github.com/KasumiMercury/meditrack/internal/infra/cache"
	"github.com/KasumiMercury/meditrack/internal/infra/handler"
	"github.com/KasumiMercury/meditrack/internal/infra/repository"
	"github.com/KasumiMercury/meditrack/internal/observability/logging"
	"github.com/KasumiMercury/meditrack/internal/observability/metrics"
	"github.com/KasumiMercury/meditrack/internal/observability/middleware"
	"github.com/KasumiMercury/meditrack/internal/worker"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const shutdownTimeout = 30 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)

		return 1
	}

	if err := cfg.PubSub.Validate(); err != nil {
		slog.Error("pubsub configuration error", "error", err)

		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", "error", err)

		return 1
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shutdown observability", "error", err)
		}
	}()

	db, err := initDatabase(cfg.Database, obs.Logger, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		slog.Error("failed to initialize database", "error", err)

		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)

		return 1
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	medicineRepo := repository.NewMedicineRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	if redisClient := initCache(ctx, cfg.Cache); redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", "error", err)
			}
		}()

		notificationRepo = cache.NewNotificationCache(notificationRepo, redisClient, cfg.Cache.NotificationTTL)
	}

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to create event publisher", "error", err)

		return 1
	}

	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	generationMetrics, err := metrics.NewGenerationMetrics(obs.Metrics.Meter())
	if err != nil {
		slog.Error("failed to create generation metrics", "error", err)

		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics(obs.Metrics.Meter())
	if err != nil {
		slog.Error("failed to create http metrics", "error", err)

		return 1
	}

	clock := domain.SystemClock{}

	generator := app.NewNotificationGenerator(scheduleRepo, notificationRepo, clock, publisher, generationMetrics)
	generationWorker := worker.NewGenerationWorker(generator, worker.GenerationWorkerConfig{
		CheckInterval: cfg.Notification.CheckInterval(),
		LookAhead:     cfg.Notification.LookAhead(),
		RunTimeout:    cfg.Notification.RunTimeout,
	})

	retentionJob, err := worker.NewRetentionJob(notificationRepo, clock, cfg.Retention.ReadNotifications, cfg.Retention.CronSpec)
	if err != nil {
		slog.Error("failed to create retention job", "error", err)

		return 1
	}

	router := setupRouter(httpMetrics,
		handler.NewNotificationHandler(app.NewNotificationUseCase(notificationRepo, clock)),
		handler.NewScheduleHandler(app.NewScheduleUseCase(scheduleRepo, medicineRepo)),
		handler.NewMedicineHandler(app.NewMedicineUseCase(medicineRepo)),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	workerDone := make(chan struct{})

	go func() {
		defer close(workerDone)
		generationWorker.Run(ctx)
	}()

	retentionJob.Start()

	serverErr := make(chan error, 1)

	go func() {
		slog.Info("starting server", "address", cfg.Server.Address())
		serverErr <- srv.ListenAndServe()
	}()

	exitCode := 0

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited with error", "error", err)

			exitCode = 1
		}
	}

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)

		exitCode = 1
	}

	retentionJob.Stop()

	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		slog.Error("generation worker did not stop before shutdown timeout")

		exitCode = 1
	}

	slog.Info("server exited", "exit_code", exitCode)

	return exitCode
}

func initDatabase(cfg config.DatabaseConfig, logger *slog.Logger, level slog.Level) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(logger, cfg.SlowThreshold, level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(repository.Models()...); err != nil {
			return nil, err
		}

		slog.Info("database migrated")
	}

	return db, nil
}

// initCache returns nil when caching is disabled or redis is unreachable;
// the service then reads straight from postgres.
func initCache(ctx context.Context, cfg config.CacheConfig) *redis.Client {
	if cfg.RedisURL == "" {
		slog.Info("REDIS_URL not set, notification cache disabled")

		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Warn("invalid REDIS_URL, notification cache disabled", "error", err)

		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unreachable, notification cache disabled", "error", err)

		_ = client.Close()

		return nil
	}

	slog.Info("notification cache enabled",
		"ttl", cfg.NotificationTTL.String(),
	)

	return client
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func setupRouter(httpMetrics *metrics.HTTPMetrics, handlers ...routeRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.PanicRecoveryGin(),
		middleware.Gin(middleware.GinConfig{
			SkipPaths:   []string{"/ping"},
			TracerName:  "meditrack/http",
			HTTPMetrics: httpMetrics,
		}),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(v1)
	}

	return router
}
