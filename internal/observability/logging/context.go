package logging

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Module string

const (
	ModuleNotification Module = "notification"
	ModuleSchedule     Module = "schedule"
	ModuleMedicine     Module = "medicine"
	ModuleGenerator    Module = "generator"
	ModuleRetention    Module = "retention"
	ModuleSystem       Module = "system"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	moduleKey
)

const maxRequestIDLength = 128

// ValidateAndExtractRequestID returns the incoming request ID when it is
// safe to echo back, otherwise a freshly generated one.
func ValidateAndExtractRequestID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxRequestIDLength {
		return uuid.Must(uuid.NewV7()).String()
	}

	for _, r := range raw {
		if r < 0x21 || r > 0x7e {
			return uuid.Must(uuid.NewV7()).String()
		}
	}

	return raw
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	m, _ := ctx.Value(moduleKey).(Module)

	return m
}
