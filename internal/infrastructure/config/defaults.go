package config

// Default configuration constants
const (
	// Drag defaults
	defaultDragOpacity   = 0.4
	defaultNewAreaExtent = 350 // px
	defaultInitialEdge   = "top"

	// Hot-zone defaults
	defaultHotZoneSize = 32 // px

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7

	// Tracing defaults
	defaultServiceName = "dockyard"

	// Snapshot defaults
	defaultSnapshotWidth    = 800
	defaultSnapshotHeight   = 600
	defaultSnapshotDebounce = 500 // ms
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for dockyard.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			LastChildFills: true,
		},
		Drag: DragConfig{
			Opacity:       defaultDragOpacity,
			NewAreaExtent: defaultNewAreaExtent,
			InitialEdge:   defaultInitialEdge,
		},
		HotZone: HotZoneConfig{
			Width:  defaultHotZoneSize,
			Height: defaultHotZoneSize,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
			MaxSize:       defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
		Tracing: TracingConfig{
			ServiceName: defaultServiceName,
		},
		Snapshot: SnapshotConfig{
			Width:      defaultSnapshotWidth,
			Height:     defaultSnapshotHeight,
			DebounceMs: defaultSnapshotDebounce,
		},
	}
}
