package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithPanelID creates a child logger with a panel_id field
func WithPanelID(ctx context.Context, panelID string) context.Context {
	return withStr(ctx, "panel_id", panelID)
}

// WithAreaID creates a child logger with an area_id field
func WithAreaID(ctx context.Context, areaID string) context.Context {
	return withStr(ctx, "area_id", areaID)
}

func withStr(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx)
	child := logger.With().Str(key, value).Logger()
	return WithContext(ctx, child)
}
