// Package cli provides the dockyard command-line application.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager // nil when the configuration could not be loaded
	Theme     *styles.Theme
	BuildInfo build.Info

	// LoadErr is the configuration error, if defaults are in use because of one.
	LoadErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	// Commands log to stderr; the interactive demo swaps in a file logger.
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	ctx := logging.WithContext(context.Background(), logger)

	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		LoadErr: loadErr,
		ctx:     ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// UseFileLogging redirects logs to a rotated file under the configured log
// directory, or discards them when file logging is disabled. It returns the
// log file path, empty when discarding.
func (a *App) UseFileLogging() (string, error) {
	logCfg := a.Config.Logging
	if !logCfg.EnableFileLog || logCfg.LogDir == "" {
		a.ctx = logging.WithContext(a.ctx, logging.NewFromConfigValues(logCfg.Level, logCfg.Format, io.Discard))
		return "", nil
	}

	rotator, err := logging.NewLogRotator(logging.RotatorConfig{
		Dir:        logCfg.LogDir,
		BaseName:   "dockyard.log",
		MaxSizeMB:  logCfg.MaxSize,
		MaxBackups: logCfg.MaxBackups,
		MaxAgeDays: logCfg.MaxAge,
		Compress:   logCfg.Compress,
	})
	if err != nil {
		return "", err
	}

	// Files never get console colours.
	a.ctx = logging.WithContext(a.ctx, logging.NewFromConfigValues(logCfg.Level, "json", rotator))
	previous := a.logCleanup
	a.logCleanup = func() {
		_ = rotator.Close()
		if previous != nil {
			previous()
		}
	}
	return rotator.Path(), nil
}

// loadConfig loads configuration from standard locations, falling back to defaults.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
