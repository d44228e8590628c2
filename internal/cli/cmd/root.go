// Package cmd provides Cobra CLI commands for dockyard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "dockyard",
		Short: "A panel docking engine for the terminal",
		Long: `Dockyard - drag panels between dock areas, out into floating windows and back.

Panels live in dock areas stacked against the edges of the workspace.
Dragging a panel shows a drop cross on every area: release on one of its
arms to open a new area on that side, release over an area to move the
panel there, or release on the desktop to the right to detach it.

Features:
  - Directional dock layout (top, right, bottom, left, fill)
  - Drag and drop with live drop highlights and hot-zones
  - Detached windows that can be dragged back into the workspace
  - PNG rendering of workspaces, optionally live while you drag
  - OpenTelemetry traces of drag gestures

Use 'dockyard demo' to open the interactive workspace, or 'dockyard render'
to produce an image of a scripted one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info.WithDefaults()
}
