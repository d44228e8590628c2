package coordinator

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/component"
	"github.com/bnema/dockyard/internal/ui/layout"
)

const rootElementID layout.ElementID = "workspace"

// WorkspaceCoordinator owns the dock workspace and the root layout its areas
// are arranged in. It is the layout host of ManageDockAreasUseCase, so every
// area created or removed by the use case gets a view in the root layout.
type WorkspaceCoordinator struct {
	workspace *entity.DockWorkspace
	manageUC  *usecase.ManageDockAreasUseCase
	detectUC  *usecase.DetectDockZoneUseCase

	root      *layout.DockLayout
	views     map[entity.AreaID]*component.DockAreaView
	areaStyle component.AreaStyle
	hotZone   entity.Size

	viewport   entity.Rect
	panelCount int
	onChanged  func()
}

// WorkspaceCoordinatorConfig holds configuration for WorkspaceCoordinator.
type WorkspaceCoordinatorConfig struct {
	ManageUC    *usecase.ManageDockAreasUseCase
	DetectUC    *usecase.DetectDockZoneUseCase
	Layout      layout.Options
	AreaStyle   component.AreaStyle
	HotZoneSize entity.Size
	InitialEdge entity.Edge
	// OnChanged is called after membership or layout changes (optional).
	OnChanged func()
}

// NewWorkspaceCoordinator creates the workspace with its initial area.
func NewWorkspaceCoordinator(ctx context.Context, cfg WorkspaceCoordinatorConfig) (*WorkspaceCoordinator, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating workspace coordinator")

	detectUC := cfg.DetectUC
	if detectUC == nil {
		detectUC = usecase.NewDetectDockZoneUseCase()
	}

	wc := &WorkspaceCoordinator{
		workspace: entity.NewDockWorkspace(),
		manageUC:  cfg.ManageUC,
		detectUC:  detectUC,
		root:      layout.NewDockLayout(rootElementID, cfg.Layout),
		views:     make(map[entity.AreaID]*component.DockAreaView),
		areaStyle: cfg.AreaStyle,
		hotZone:   cfg.HotZoneSize,
		onChanged: cfg.OnChanged,
	}
	wc.manageUC.SetLayoutHost(wc)

	edge := cfg.InitialEdge
	if edge == entity.EdgeNone {
		edge = entity.EdgeTop
	}
	if _, err := wc.manageUC.CreateArea(ctx, wc.workspace, edge, 0); err != nil {
		return nil, fmt.Errorf("failed to create initial dock area: %w", err)
	}

	return wc, nil
}

// Workspace returns the dock workspace.
func (wc *WorkspaceCoordinator) Workspace() *entity.DockWorkspace {
	return wc.workspace
}

// ManageUC returns the dock area use case bound to this workspace.
func (wc *WorkspaceCoordinator) ManageUC() *usecase.ManageDockAreasUseCase {
	return wc.manageUC
}

// Layout returns the root layout.
func (wc *WorkspaceCoordinator) Layout() *layout.DockLayout {
	return wc.root
}

// View returns the view of an area.
func (wc *WorkspaceCoordinator) View(id entity.AreaID) *component.DockAreaView {
	return wc.views[id]
}

// HotZoneSize returns the size of a single hot-zone.
func (wc *WorkspaceCoordinator) HotZoneSize() entity.Size {
	return wc.hotZone
}

// Viewport returns the rectangle of the last layout pass.
func (wc *WorkspaceCoordinator) Viewport() entity.Rect {
	return wc.viewport
}

// AttachArea implements port.LayoutHost.
func (wc *WorkspaceCoordinator) AttachArea(area *entity.DockArea) {
	view := component.NewDockAreaView(area, wc.areaStyle)
	view.SetInvalidator(wc.root)
	wc.views[area.ID] = view
	wc.root.Add(view, area.Edge)
}

// DetachArea implements port.LayoutHost.
func (wc *WorkspaceCoordinator) DetachArea(id entity.AreaID) {
	wc.root.Remove(component.AreaElementID(id))
	delete(wc.views, id)
}

// Resize lays the workspace out in a new viewport.
func (wc *WorkspaceCoordinator) Resize(viewport entity.Rect) {
	wc.viewport = viewport
	wc.Relayout()
}

// Relayout measures and arranges every area against the current viewport and
// rebuilds the hot-zone registry from the arranged bounds.
func (wc *WorkspaceCoordinator) Relayout() {
	for _, view := range wc.views {
		view.Sync()
	}
	wc.root.Layout(wc.viewport)
	wc.workspace.RefreshHotZones(wc.hotZone)

	if wc.onChanged != nil {
		wc.onChanged()
	}
}

// ApplyOptions replaces the layout options and hot-zone size, e.g. after a
// configuration reload.
func (wc *WorkspaceCoordinator) ApplyOptions(opts layout.Options, hotZone entity.Size) {
	wc.root.SetOptions(opts)
	wc.hotZone = hotZone
	wc.Relayout()
}

// AddPanel creates a new panel in the area closest to the layout origin.
func (wc *WorkspaceCoordinator) AddPanel(ctx context.Context) (*entity.Panel, error) {
	target := wc.detectUC.FindLandingArea(wc.workspace.Areas(), entity.Point{}, entity.Point{})
	if target == nil {
		return nil, usecase.ErrAreaNotFound
	}

	wc.panelCount++
	panel := wc.manageUC.NewPanel(fmt.Sprintf("DraggablePanel_%d", wc.panelCount))
	if err := wc.manageUC.AddPanel(ctx, wc.workspace, panel, target); err != nil {
		return nil, fmt.Errorf("failed to add panel: %w", err)
	}

	wc.Relayout()
	return panel, nil
}
