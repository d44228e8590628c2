package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/dockyard/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager for the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForDir(configDir)
}

// NewManagerForDir creates a configuration manager reading config.toml from configDir.
func NewManagerForDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// Nested keys map to DOCKYARD_<SECTION>_<KEY>, e.g. DOCKYARD_DRAG_OPACITY.
	v.SetEnvPrefix("DOCKYARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DOCKYARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKYARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Drag.InitialEdge = strings.ToLower(strings.TrimSpace(config.Drag.InitialEdge))
	if config.Drag.InitialEdge == "" {
		config.Drag.InitialEdge = defaultInitialEdge
	}

	config.Tracing.Endpoint = strings.TrimSpace(config.Tracing.Endpoint)
	if strings.TrimSpace(config.Tracing.ServiceName) == "" {
		config.Tracing.ServiceName = defaultServiceName
	}

	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}

// createDefaultConfig writes the defaults to a new configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configFileName)

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logger := logging.NewFromEnv()
	logger.Info().Str("path", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLayoutDefaults(defaults)
	m.setDragDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setTracingDefaults(defaults)
	m.setSnapshotDefaults(defaults)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.padding", defaults.Layout.Padding)
	m.viper.SetDefault("layout.horizontal_spacing", defaults.Layout.HorizontalSpacing)
	m.viper.SetDefault("layout.vertical_spacing", defaults.Layout.VerticalSpacing)
	m.viper.SetDefault("layout.last_child_fills", defaults.Layout.LastChildFills)
}

func (m *Manager) setDragDefaults(defaults *Config) {
	m.viper.SetDefault("drag.opacity", defaults.Drag.Opacity)
	m.viper.SetDefault("drag.new_area_extent", defaults.Drag.NewAreaExtent)
	m.viper.SetDefault("drag.initial_edge", defaults.Drag.InitialEdge)
	m.viper.SetDefault("hot_zone.width", defaults.HotZone.Width)
	m.viper.SetDefault("hot_zone.height", defaults.HotZone.Height)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setTracingDefaults(defaults *Config) {
	m.viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	m.viper.SetDefault("tracing.endpoint", defaults.Tracing.Endpoint)
	m.viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)
}

func (m *Manager) setSnapshotDefaults(defaults *Config) {
	m.viper.SetDefault("snapshot.width", defaults.Snapshot.Width)
	m.viper.SetDefault("snapshot.height", defaults.Snapshot.Height)
	m.viper.SetDefault("snapshot.live_path", defaults.Snapshot.LivePath)
	m.viper.SetDefault("snapshot.debounce_ms", defaults.Snapshot.DebounceMs)
}
