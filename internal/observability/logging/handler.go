package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type Environment string

const (
	EnvLocal Environment = "local"
	EnvDev   Environment = "dev"
	EnvProd  Environment = "prod"
)

type ServiceInfo struct {
	Name    string
	Version string
}

type Config struct {
	Level       slog.Level
	Service     ServiceInfo
	Environment Environment
	// ProjectID enables Cloud Logging trace correlation in gcloud builds.
	ProjectID string
}

// ParseLevel maps LOG_LEVEL values onto slog levels, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the JSON logger used by the whole service.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.Environment == EnvProd,
	}

	base := slog.NewJSONHandler(w, opts).WithAttrs([]slog.Attr{
		slog.String("service", cfg.Service.Name),
		slog.String("version", cfg.Service.Version),
		slog.String("env", string(cfg.Environment)),
	})

	return slog.New(&ContextHandler{next: base, projectID: cfg.ProjectID})
}

// ContextHandler copies request scoped values from the context onto every
// record.
type ContextHandler struct {
	next      slog.Handler
	projectID string
}

func NewContextHandler(next slog.Handler, projectID string) *ContextHandler {
	return &ContextHandler{next: next, projectID: projectID}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}

	if m := ModuleFromContext(ctx); m != "" {
		r.AddAttrs(slog.String("module", string(m)))
	}

	r.AddAttrs(traceAttrs(ctx, h.projectID)...)

	return h.next.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs), projectID: h.projectID}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name), projectID: h.projectID}
}
