package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/snapshot"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/component"
	"github.com/bnema/dockyard/internal/ui/coordinator"
	"github.com/bnema/dockyard/internal/ui/tui"
)

var (
	renderOutput string
	renderWidth  int
	renderHeight int
	renderAreas  []string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a scripted workspace to a PNG image",
	Long: `Build a workspace from --area flags, lay it out and write it as a PNG.

Each --area is edge[:panels[:extent]] where edge is one of left, top,
right, bottom or fill. Areas are docked in flag order. Without --area the
workspace has a single area on the configured initial edge with one panel.

Examples:
  dockyard render -o dock.png
  dockyard render -o dock.png --area left:1:200 --area fill:3
  dockyard render -o dock.png -W 1024 -H 768 --area top:2:150 --area bottom:1`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "dockyard.png", "output PNG path")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "W", 0, "image width (default from config)")
	renderCmd.Flags().IntVarP(&renderHeight, "height", "H", 0, "image height (default from config)")
	renderCmd.Flags().StringArrayVarP(&renderAreas, "area", "a", nil, "area as edge[:panels[:extent]] (repeatable)")
}

func runRender(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "render")

	specs := make([]areaSpec, 0, len(renderAreas))
	for _, raw := range renderAreas {
		spec, err := parseAreaSpec(raw)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	width, height := renderWidth, renderHeight
	if width <= 0 {
		width = app.Config.Snapshot.Width
	}
	if height <= 0 {
		height = app.Config.Snapshot.Height
	}

	scene, err := buildRenderScene(ctx, app.Config, specs, width, height)
	if err != nil {
		return err
	}
	if err := snapshot.NewRenderer().RenderFile(scene, renderOutput); err != nil {
		return fmt.Errorf("render %s: %w", renderOutput, err)
	}

	fmt.Printf("Rendered %d areas and %d panels to %s\n", len(scene.Areas), len(scene.Panels), renderOutput)
	return nil
}

// areaSpec is one --area flag.
type areaSpec struct {
	Edge   entity.Edge
	Panels int
	Extent float64
}

var errEmptyAreaSpec = errors.New("empty area spec")

// parseAreaSpec parses edge[:panels[:extent]]. Panels defaults to 1.
func parseAreaSpec(raw string) (areaSpec, error) {
	if strings.TrimSpace(raw) == "" {
		return areaSpec{}, errEmptyAreaSpec
	}
	parts := strings.Split(raw, ":")
	if len(parts) > 3 {
		return areaSpec{}, fmt.Errorf("area %q: expected edge[:panels[:extent]]", raw)
	}

	edge, err := entity.ParseEdge(parts[0])
	if err != nil {
		return areaSpec{}, fmt.Errorf("area %q: %w", raw, err)
	}
	spec := areaSpec{Edge: edge, Panels: 1}

	if len(parts) > 1 && parts[1] != "" {
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 0 {
			return areaSpec{}, fmt.Errorf("area %q: invalid panel count %q", raw, parts[1])
		}
		spec.Panels = n
	}
	if len(parts) > 2 && parts[2] != "" {
		extent, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || extent < 0 {
			return areaSpec{}, fmt.Errorf("area %q: invalid extent %q", raw, parts[2])
		}
		spec.Extent = extent
	}
	return spec, nil
}

// buildRenderScene docks the requested areas and panels and lays them out in
// a width x height surface.
func buildRenderScene(
	ctx context.Context,
	cfg *config.Config,
	specs []areaSpec,
	width, height int,
) (snapshot.Scene, error) {
	if width <= 0 || height <= 0 {
		return snapshot.Scene{}, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(specs) == 0 {
		edge, err := entity.ParseEdge(cfg.Drag.InitialEdge)
		if err != nil {
			return snapshot.Scene{}, fmt.Errorf("invalid initial edge: %w", err)
		}
		specs = []areaSpec{{Edge: edge, Panels: 1}}
	}

	workspace, err := coordinator.NewWorkspaceCoordinator(ctx, coordinator.WorkspaceCoordinatorConfig{
		ManageUC:    usecase.NewManageDockAreasUseCase(uuid.NewString, nil),
		Layout:      tui.LayoutOptions(cfg),
		AreaStyle:   component.DefaultAreaStyle(),
		HotZoneSize: tui.HotZoneSize(cfg),
		InitialEdge: specs[0].Edge,
	})
	if err != nil {
		return snapshot.Scene{}, err
	}
	ws := workspace.Workspace()
	manageUC := workspace.ManageUC()

	first := ws.Areas()[0]
	first.RecommendedExtent = specs[0].Extent

	panelCount := 0
	for i, spec := range specs {
		area := first
		if i > 0 {
			area, err = manageUC.CreateArea(ctx, ws, spec.Edge, spec.Extent)
			if err != nil {
				return snapshot.Scene{}, err
			}
		}
		for range spec.Panels {
			panelCount++
			panel := manageUC.NewPanel(fmt.Sprintf("Panel %d", panelCount))
			if err := manageUC.AddPanel(ctx, ws, panel, area); err != nil {
				return snapshot.Scene{}, err
			}
		}
	}

	surface := entity.Rect{W: float64(width), H: float64(height)}
	workspace.Resize(surface)
	return snapshot.NewScene(ws, surface, entity.Point{}), nil
}
