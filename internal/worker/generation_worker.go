package worker

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/KasumiMercury/meditrack/internal/app"
	"github.com/KasumiMercury/meditrack/internal/observability/logging"
)

const (
	DefaultCheckInterval = 5 * time.Minute
	DefaultLookAhead     = 24 * time.Hour
)

type GenerationWorkerConfig struct {
	CheckInterval time.Duration
	LookAhead     time.Duration
	// RunTimeout bounds a single run. Zero means unbounded.
	RunTimeout time.Duration
}

// GenerationWorker runs the notification generator immediately and then
// every CheckInterval until its context is cancelled. Runs never overlap.
type GenerationWorker struct {
	generator app.NotificationGenerator
	cfg       GenerationWorkerConfig
}

func NewGenerationWorker(generator app.NotificationGenerator, cfg GenerationWorkerConfig) *GenerationWorker {
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = DefaultCheckInterval
	}

	if cfg.LookAhead <= 0 {
		cfg.LookAhead = DefaultLookAhead
	}

	return &GenerationWorker{
		generator: generator,
		cfg:       cfg,
	}
}

// Run blocks until ctx is cancelled. Cancellation is observed between runs
// only; a run in progress is allowed to finish.
func (w *GenerationWorker) Run(ctx context.Context) {
	ctx = logging.WithModule(ctx, logging.ModuleGenerator)

	slog.InfoContext(ctx, "generation worker started",
		"check_interval", w.cfg.CheckInterval.String(),
		"look_ahead", w.cfg.LookAhead.String(),
		"run_timeout", w.cfg.RunTimeout.String(),
	)

	for {
		w.runOnce(ctx)

		timer := time.NewTimer(w.cfg.CheckInterval)

		select {
		case <-ctx.Done():
			timer.Stop()
			slog.InfoContext(ctx, "generation worker stopped")

			return
		case <-timer.C:
			// Both cases may be ready at once; select does not prefer Done.
			if ctx.Err() != nil {
				slog.InfoContext(ctx, "generation worker stopped")

				return
			}
		}
	}
}

func (w *GenerationWorker) runOnce(ctx context.Context) {
	runCtx := context.WithoutCancel(ctx)

	if w.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(runCtx, w.cfg.RunTimeout)
		defer cancel()
	}

	defer func() {
		if rec := recover(); rec != nil {
			slog.ErrorContext(runCtx, "notification generation panicked",
				slog.String("event", "generator.panic"),
				slog.Any("error", rec),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	out, err := w.generator.Generate(runCtx, w.cfg.LookAhead)
	if err != nil {
		slog.ErrorContext(runCtx, "notification generation failed",
			"run_id", out.RunID,
			"error", err,
		)

		return
	}

	slog.DebugContext(runCtx, "notification generation run finished",
		"run_id", out.RunID,
		"created", out.Created,
	)
}
