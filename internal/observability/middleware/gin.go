package middleware

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/KasumiMercury/meditrack/internal/observability/logging"
	"github.com/KasumiMercury/meditrack/internal/observability/metrics"
	"github.com/KasumiMercury/meditrack/internal/observability/tracing"
)

const requestIDHeader = "x-request-id"

type GinConfig struct {
	// SkipPaths bypass logging, tracing and metrics.
	SkipPaths  []string
	TracerName string
	// HTTPMetrics may be nil.
	HTTPMetrics *metrics.HTTPMetrics
}

// ModuleForPath maps an API path onto the module attached to its logs.
func ModuleForPath(path string) logging.Module {
	switch {
	case strings.Contains(path, "/notifications"):
		return logging.ModuleNotification
	case strings.Contains(path, "/schedules"):
		return logging.ModuleSchedule
	case strings.Contains(path, "/medicines"):
		return logging.ModuleMedicine
	default:
		return logging.ModuleSystem
	}
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	tracer := otel.Tracer(cfg.TracerName)

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()

			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.GetHeader(requestIDHeader))

		ctx := logging.WithRequestID(c.Request.Context(), requestID)
		ctx = logging.WithModule(ctx, ModuleForPath(c.Request.URL.Path))
		ctx = tracing.ExtractFromHTTPRequest(ctx, c.Request)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := tracer.Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, route))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, requestID)

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", status),
		)

		if status >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
		}

		cfg.HTTPMetrics.Record(ctx, c.Request.Method, route, status, elapsed)

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}

		slog.LogAttrs(ctx, level, "request completed",
			slog.String("event", "http.request.finish"),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("remote_addr", c.ClientIP()),
			slog.Int("status", status),
			slog.Duration("duration", elapsed),
		)
	}
}
