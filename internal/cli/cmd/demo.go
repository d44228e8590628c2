package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/snapshot"
	"github.com/bnema/dockyard/internal/infrastructure/tracing"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/tui"
)

const shutdownTimeout = 5 * time.Second

var demoSnapshotPath string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive dock workspace",
	Long: `Open a dock workspace in the terminal.

The left side of the screen is the workspace, the dotted strip on the right
is the desktop. Press 'a' to add a panel, then drag it with the mouse:

  - over an area to move it there
  - onto an arm of a drop cross to open a new area on that side
  - onto the desktop to detach it into a floating window

Drag a floating window back over the workspace to dock its panel again.

Examples:
  dockyard demo                          # Interactive workspace
  dockyard demo --snapshot ./live.png    # Also keep a PNG of it up to date`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&demoSnapshotPath, "snapshot", "", "write a live PNG of the workspace to this path")
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// The terminal belongs to the UI from here on.
	logPath, err := app.UseFileLogging()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "demo")
	log := logging.FromContext(ctx)
	log.Info().Str("log_file", logPath).Str("version", app.BuildInfo.Version).Msg("starting demo")

	tracer, err := newDragTracer(ctx, app.Config.Tracing)
	if err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
		tracer = tracing.NewNoopDragTracer()
	}
	defer shutdownTracer(ctx, tracer)

	snapshots := newLiveSnapshots(app.Config.Snapshot, demoSnapshotPath)
	if snapshots != nil {
		snapshots.Start(ctx)
		defer stopSnapshots(ctx, snapshots)
		log.Info().Str("path", snapshots.Path()).Msg("live snapshot enabled")
	}

	model, err := tui.NewModel(ctx, tui.ModelConfig{
		Config:    app.Config,
		Theme:     app.Theme,
		Tracer:    tracer,
		Snapshots: snapshots,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	watchConfig(ctx, app, program)

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run demo: %w", err)
	}
	log.Info().Msg("demo closed")
	return nil
}

// newDragTracer returns an OTLP tracer when tracing is enabled, a no-op one otherwise.
func newDragTracer(ctx context.Context, cfg config.TracingConfig) (*tracing.DragTracer, error) {
	if !cfg.Enabled {
		return tracing.NewNoopDragTracer(), nil
	}
	return tracing.NewOTLPDragTracer(ctx, tracing.Config{
		Endpoint:    cfg.Endpoint,
		ServiceName: cfg.ServiceName,
	})
}

func shutdownTracer(ctx context.Context, tracer *tracing.DragTracer) {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := tracer.Shutdown(shutdownCtx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to flush drag traces")
	}
}

// newLiveSnapshots returns the snapshot service for the flag or configured
// path, or nil when neither is set.
func newLiveSnapshots(cfg config.SnapshotConfig, flagPath string) *snapshot.Service {
	path := flagPath
	if path == "" {
		path = cfg.LivePath
	}
	if path == "" {
		return nil
	}
	return snapshot.NewService(snapshot.NewRenderer(), path, cfg.DebounceMs)
}

func stopSnapshots(ctx context.Context, snapshots *snapshot.Service) {
	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := snapshots.Stop(stopCtx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to write final snapshot")
	}
}

// watchConfig forwards config file edits to the running program.
func watchConfig(ctx context.Context, app *cli.App, program *tea.Program) {
	if app.Manager == nil {
		return
	}
	app.Manager.OnConfigChange(func(cfg *config.Config) {
		program.Send(tui.ConfigChangedMsg{Config: cfg})
	})
	if err := app.Manager.Watch(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config hot reload disabled")
	}
}
