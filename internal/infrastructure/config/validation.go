package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateDrag(config)...)
	validationErrors = append(validationErrors, validateHotZone(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTracing(config)...)
	validationErrors = append(validationErrors, validateSnapshot(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if config.Layout.Padding < 0 {
		validationErrors = append(validationErrors, "layout.padding must be non-negative")
	}
	if config.Layout.HorizontalSpacing < 0 {
		validationErrors = append(validationErrors, "layout.horizontal_spacing must be non-negative")
	}
	if config.Layout.VerticalSpacing < 0 {
		validationErrors = append(validationErrors, "layout.vertical_spacing must be non-negative")
	}
	return validationErrors
}

func validateDrag(config *Config) []string {
	var validationErrors []string
	if config.Drag.Opacity <= 0 || config.Drag.Opacity > 1 {
		validationErrors = append(validationErrors, "drag.opacity must be greater than 0 and at most 1")
	}
	if config.Drag.NewAreaExtent < 0 {
		validationErrors = append(validationErrors, "drag.new_area_extent must be non-negative")
	}
	edge, err := entity.ParseEdge(config.Drag.InitialEdge)
	if err != nil || edge == entity.EdgeNone {
		validationErrors = append(validationErrors,
			fmt.Sprintf("drag.initial_edge must be one of: left, top, right, bottom, fill (got %q)", config.Drag.InitialEdge))
	}
	return validationErrors
}

func validateHotZone(config *Config) []string {
	var validationErrors []string
	if config.HotZone.Width <= 0 {
		validationErrors = append(validationErrors, "hot_zone.width must be positive")
	}
	if config.HotZone.Height <= 0 {
		validationErrors = append(validationErrors, "hot_zone.height must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	if config.Logging.MaxSize < 0 {
		validationErrors = append(validationErrors, "logging.max_size must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateTracing(config *Config) []string {
	if config.Tracing.Enabled && strings.Contains(config.Tracing.Endpoint, "://") {
		return []string{"tracing.endpoint must be host:port without a scheme"}
	}
	return nil
}

func validateSnapshot(config *Config) []string {
	var validationErrors []string
	if config.Snapshot.Width <= 0 {
		validationErrors = append(validationErrors, "snapshot.width must be positive")
	}
	if config.Snapshot.Height <= 0 {
		validationErrors = append(validationErrors, "snapshot.height must be positive")
	}
	if config.Snapshot.DebounceMs < 0 {
		validationErrors = append(validationErrors, "snapshot.debounce_ms must be non-negative")
	}
	return validationErrors
}
