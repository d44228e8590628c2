package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Display the config file path and every effective setting.

A default config file is created on first use. Edits to it are picked up
live by 'dockyard demo'.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)

	if app.LoadErr != nil {
		fmt.Println(renderer.RenderError(app.LoadErr))
	}
	if app.Manager != nil {
		fmt.Print(renderer.RenderConfigInfo(app.Manager.ConfigFile()))
	}
	fmt.Println(renderer.RenderSections(configSections(app.Config)))
	return nil
}

// configSections flattens the configuration into display sections, in file order.
func configSections(cfg *config.Config) []styles.ConfigSection {
	return []styles.ConfigSection{
		{Name: "layout", Entries: []styles.ConfigEntry{
			{Key: "padding", Value: formatFloat(cfg.Layout.Padding)},
			{Key: "horizontal_spacing", Value: formatFloat(cfg.Layout.HorizontalSpacing)},
			{Key: "vertical_spacing", Value: formatFloat(cfg.Layout.VerticalSpacing)},
			{Key: "last_child_fills", Value: strconv.FormatBool(cfg.Layout.LastChildFills)},
		}},
		{Name: "drag", Entries: []styles.ConfigEntry{
			{Key: "opacity", Value: formatFloat(cfg.Drag.Opacity)},
			{Key: "new_area_extent", Value: formatFloat(cfg.Drag.NewAreaExtent)},
			{Key: "initial_edge", Value: cfg.Drag.InitialEdge},
		}},
		{Name: "hot_zone", Entries: []styles.ConfigEntry{
			{Key: "width", Value: formatFloat(cfg.HotZone.Width)},
			{Key: "height", Value: formatFloat(cfg.HotZone.Height)},
		}},
		{Name: "logging", Entries: []styles.ConfigEntry{
			{Key: "level", Value: cfg.Logging.Level},
			{Key: "format", Value: cfg.Logging.Format},
			{Key: "enable_file_log", Value: strconv.FormatBool(cfg.Logging.EnableFileLog)},
			{Key: "log_dir", Value: orUnset(cfg.Logging.LogDir)},
			{Key: "max_size", Value: strconv.Itoa(cfg.Logging.MaxSize)},
			{Key: "max_backups", Value: strconv.Itoa(cfg.Logging.MaxBackups)},
			{Key: "max_age", Value: strconv.Itoa(cfg.Logging.MaxAge)},
			{Key: "compress", Value: strconv.FormatBool(cfg.Logging.Compress)},
		}},
		{Name: "tracing", Entries: []styles.ConfigEntry{
			{Key: "enabled", Value: strconv.FormatBool(cfg.Tracing.Enabled)},
			{Key: "endpoint", Value: orUnset(cfg.Tracing.Endpoint)},
			{Key: "service_name", Value: cfg.Tracing.ServiceName},
		}},
		{Name: "snapshot", Entries: []styles.ConfigEntry{
			{Key: "width", Value: strconv.Itoa(cfg.Snapshot.Width)},
			{Key: "height", Value: strconv.Itoa(cfg.Snapshot.Height)},
			{Key: "live_path", Value: orUnset(cfg.Snapshot.LivePath)},
			{Key: "debounce_ms", Value: strconv.Itoa(cfg.Snapshot.DebounceMs)},
		}},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
