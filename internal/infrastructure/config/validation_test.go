package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"negative padding", func(c *Config) { c.Layout.Padding = -1 }, "layout.padding"},
		{"negative spacing", func(c *Config) { c.Layout.VerticalSpacing = -2 }, "layout.vertical_spacing"},
		{"zero opacity", func(c *Config) { c.Drag.Opacity = 0 }, "drag.opacity"},
		{"full opacity allowed", func(c *Config) { c.Drag.Opacity = 1 }, ""},
		{"negative extent", func(c *Config) { c.Drag.NewAreaExtent = -10 }, "drag.new_area_extent"},
		{"none edge", func(c *Config) { c.Drag.InitialEdge = "none" }, "drag.initial_edge"},
		{"fill edge allowed", func(c *Config) { c.Drag.InitialEdge = "fill" }, ""},
		{"hot zone height", func(c *Config) { c.HotZone.Height = 0 }, "hot_zone.height"},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
		{"endpoint with scheme", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Endpoint = "http://localhost:4318"
		}, "tracing.endpoint"},
		{"snapshot size", func(c *Config) { c.Snapshot.Width = 0 }, "snapshot.width"},
		{"snapshot debounce", func(c *Config) { c.Snapshot.DebounceMs = -1 }, "snapshot.debounce_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: " ", Format: "JSON"},
		Drag:    DragConfig{InitialEdge: "  Bottom"},
		Tracing: TracingConfig{Endpoint: " collector:4318 "},
	}

	normalizeConfig(cfg)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "bottom", cfg.Drag.InitialEdge)
	assert.Equal(t, "collector:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, "dockyard", cfg.Tracing.ServiceName)
}
