package config

// Config represents the complete configuration for dockyard.
type Config struct {
	Layout   LayoutConfig   `mapstructure:"layout" toml:"layout"`
	Drag     DragConfig     `mapstructure:"drag" toml:"drag"`
	HotZone  HotZoneConfig  `mapstructure:"hot_zone" toml:"hot_zone"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	Tracing  TracingConfig  `mapstructure:"tracing" toml:"tracing"`
	Snapshot SnapshotConfig `mapstructure:"snapshot" toml:"snapshot"`
}

// LayoutConfig holds the options of the root dock layout.
type LayoutConfig struct {
	// Padding is a uniform inset around the whole layout.
	Padding           float64 `mapstructure:"padding" toml:"padding"`
	HorizontalSpacing float64 `mapstructure:"horizontal_spacing" toml:"horizontal_spacing"`
	VerticalSpacing   float64 `mapstructure:"vertical_spacing" toml:"vertical_spacing"`
	// LastChildFills makes the last area fill the remaining space.
	LastChildFills bool `mapstructure:"last_child_fills" toml:"last_child_fills"`
}

// DragConfig controls drag gestures.
type DragConfig struct {
	// Opacity of a panel while it is dragged (0 < opacity <= 1).
	Opacity float64 `mapstructure:"opacity" toml:"opacity"`
	// NewAreaExtent is the recommended size of areas created from hot-zones.
	NewAreaExtent float64 `mapstructure:"new_area_extent" toml:"new_area_extent"`
	// InitialEdge is the edge of the area the workspace starts with.
	InitialEdge string `mapstructure:"initial_edge" toml:"initial_edge"`
}

// HotZoneConfig sizes a single hot-zone of the drop cross.
type HotZoneConfig struct {
	Width  float64 `mapstructure:"width" toml:"width"`
	Height float64 `mapstructure:"height" toml:"height"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level"`
	Format        string `mapstructure:"format" toml:"format"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSize       int    `mapstructure:"max_size" toml:"max_size"`       // MB
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"` // files
	MaxAge        int    `mapstructure:"max_age" toml:"max_age"`         // days
	Compress      bool   `mapstructure:"compress" toml:"compress"`
}

// TracingConfig controls OpenTelemetry export of drag spans.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
	// Endpoint is an OTLP/HTTP host:port. Empty uses the exporter's environment defaults.
	Endpoint    string `mapstructure:"endpoint" toml:"endpoint"`
	ServiceName string `mapstructure:"service_name" toml:"service_name"`
}

// SnapshotConfig sizes images produced by the render command and controls
// the live snapshot written by the demo.
type SnapshotConfig struct {
	Width  int `mapstructure:"width" toml:"width"`
	Height int `mapstructure:"height" toml:"height"`
	// LivePath, when set, receives a PNG of the demo workspace after every change.
	LivePath   string `mapstructure:"live_path" toml:"live_path"`
	DebounceMs int    `mapstructure:"debounce_ms" toml:"debounce_ms"`
}
