package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// IDGenerator produces unique identifiers for areas, panels and windows.
type IDGenerator func() string

var (
	ErrWorkspaceRequired = errors.New("workspace is required")
	ErrPanelRequired     = errors.New("panel is required")
	ErrAreaNotFound      = errors.New("dock area not found")
	ErrPanelNotOwned     = errors.New("panel is not owned by the source")
)

// accentPalette is cycled through as areas are created.
var accentPalette = []string{
	"#e06c75", "#98c379", "#e5c07b", "#61afef", "#c678dd", "#56b6c2", "#d19a66",
}

// ManageDockAreasUseCase mediates every membership change of a DockWorkspace
// so that panels always have exactly one owner and at least one area remains.
type ManageDockAreasUseCase struct {
	idGenerator IDGenerator
	layout      port.LayoutHost
}

// NewManageDockAreasUseCase creates the dock area use case.
// layout may be nil when no layout container is attached (e.g. in tests).
func NewManageDockAreasUseCase(idGenerator IDGenerator, layout port.LayoutHost) *ManageDockAreasUseCase {
	return &ManageDockAreasUseCase{
		idGenerator: idGenerator,
		layout:      layout,
	}
}

// SetLayoutHost replaces the layout container areas are registered with.
func (uc *ManageDockAreasUseCase) SetLayoutHost(layout port.LayoutHost) {
	uc.layout = layout
}

// CreateArea appends a new area docked to edge and registers it with the layout host.
// extent fixes the area's size along its docking axis; zero keeps the natural size.
func (uc *ManageDockAreasUseCase) CreateArea(
	ctx context.Context,
	ws *entity.DockWorkspace,
	edge entity.Edge,
	extent float64,
) (*entity.DockArea, error) {
	if ws == nil {
		return nil, ErrWorkspaceRequired
	}

	name := ws.NextAreaName()
	area := entity.NewDockArea(entity.AreaID(uc.idGenerator()), name, edge, extent)
	area.Accent = accentPalette[(ws.AreaCount())%len(accentPalette)]

	ws.AppendArea(area)
	if uc.layout != nil {
		uc.layout.AttachArea(area)
	}

	logging.FromContext(logging.WithAreaID(ctx, string(area.ID))).Info().
		Str("name", area.Name).
		Str("edge", edge.String()).
		Float64("extent", area.RecommendedExtent).
		Int("area_count", ws.AreaCount()).
		Msg("dock area created")

	return area, nil
}

// RemoveAreaIfEmpty removes the area when it has no panels and at least one
// other area remains. Reports whether the area was removed.
func (uc *ManageDockAreasUseCase) RemoveAreaIfEmpty(
	ctx context.Context,
	ws *entity.DockWorkspace,
	area *entity.DockArea,
) bool {
	if ws == nil || area == nil {
		return false
	}
	if !area.IsEmpty() || ws.AreaCount() <= 1 {
		return false
	}
	if !ws.DropArea(area) {
		return false
	}
	if uc.layout != nil {
		uc.layout.DetachArea(area.ID)
	}

	logging.FromContext(logging.WithAreaID(ctx, string(area.ID))).Info().
		Str("name", area.Name).
		Int("area_count", ws.AreaCount()).
		Msg("empty dock area removed")

	return true
}

// NewPanel creates a panel with a fresh identity.
func (uc *ManageDockAreasUseCase) NewPanel(title string) *entity.Panel {
	return entity.NewPanel(entity.PanelID(uc.idGenerator()), title)
}

// AddPanel places a panel that has no owner yet into area.
func (uc *ManageDockAreasUseCase) AddPanel(
	ctx context.Context,
	ws *entity.DockWorkspace,
	panel *entity.Panel,
	area *entity.DockArea,
) error {
	if ws == nil {
		return ErrWorkspaceRequired
	}
	if panel == nil {
		return ErrPanelRequired
	}
	if area == nil || ws.FindArea(area.ID) != area {
		return ErrAreaNotFound
	}
	if owner := ws.FindOwner(panel); owner != nil {
		return fmt.Errorf("panel %s already docked in %s", panel.ID, owner.Name)
	}
	if ws.FindDetached(panel) != nil {
		return fmt.Errorf("panel %s is detached", panel.ID)
	}

	area.AddPanel(panel)

	logging.FromContext(logging.WithAreaID(ctx, string(area.ID))).Debug().
		Str("panel_id", string(panel.ID)).
		Msg("panel added")
	return nil
}

// MovePanelInput contains parameters for moving a panel between areas.
type MovePanelInput struct {
	Workspace *entity.DockWorkspace
	Panel     *entity.Panel
	From      *entity.DockArea
	To        *entity.DockArea
}

// MovePanelOutput describes what the move changed.
type MovePanelOutput struct {
	Moved       bool // False when From == To
	SourceFreed bool // Source area was removed because it became empty
}

// MovePanel transfers a panel between two areas. Moving to the same area is a
// no-op. The source area is removed when it becomes empty and other areas remain.
func (uc *ManageDockAreasUseCase) MovePanel(ctx context.Context, input MovePanelInput) (*MovePanelOutput, error) {
	ws := input.Workspace
	if ws == nil {
		return nil, ErrWorkspaceRequired
	}
	if input.Panel == nil {
		return nil, ErrPanelRequired
	}
	if input.To == nil || ws.FindArea(input.To.ID) != input.To {
		return nil, ErrAreaNotFound
	}
	if input.From == input.To {
		return &MovePanelOutput{}, nil
	}
	if input.From == nil || !input.From.ContainsPanel(input.Panel) {
		return nil, ErrPanelNotOwned
	}

	input.From.RemovePanel(input.Panel)
	input.To.AddPanel(input.Panel)
	freed := uc.RemoveAreaIfEmpty(ctx, ws, input.From)

	logging.FromContext(ctx).Info().
		Str("panel_id", string(input.Panel.ID)).
		Str("from", input.From.Name).
		Str("to", input.To.Name).
		Bool("source_freed", freed).
		Msg("panel moved")

	return &MovePanelOutput{Moved: true, SourceFreed: freed}, nil
}

// DetachPanelInput contains parameters for detaching a panel into its own window.
type DetachPanelInput struct {
	Workspace *entity.DockWorkspace
	Panel     *entity.Panel
	WindowID  entity.WindowID
	Bounds    entity.Rect
}

// DetachPanel removes the panel from its current owner (area or detached
// window) and records a new detached window hosting it. A previous window is
// returned so the caller can close its host surface.
func (uc *ManageDockAreasUseCase) DetachPanel(
	ctx context.Context,
	input DetachPanelInput,
) (created, replaced *entity.DetachedWindow, err error) {
	ws := input.Workspace
	if ws == nil {
		return nil, nil, ErrWorkspaceRequired
	}
	if input.Panel == nil {
		return nil, nil, ErrPanelRequired
	}

	owner := ws.FindOwner(input.Panel)
	replaced = ws.FindDetached(input.Panel)
	if owner == nil && replaced == nil {
		return nil, nil, ErrPanelNotOwned
	}

	if owner != nil {
		owner.RemovePanel(input.Panel)
		uc.RemoveAreaIfEmpty(ctx, ws, owner)
	}
	if replaced != nil {
		ws.DropDetached(replaced)
	}

	windowID := input.WindowID
	if windowID == "" {
		windowID = entity.WindowID(uc.idGenerator())
	}
	created = &entity.DetachedWindow{
		ID:     windowID,
		Panel:  input.Panel,
		Bounds: input.Bounds,
	}
	ws.AppendDetached(created)

	ev := logging.FromContext(ctx).Info().
		Str("panel_id", string(input.Panel.ID)).
		Str("window_id", string(created.ID))
	if owner != nil {
		ev = ev.Str("from", owner.Name)
	}
	ev.Msg("panel detached")

	return created, replaced, nil
}

// ReclaimPanel moves a detached panel into area and forgets its window.
// The window record is returned so the caller can close the host surface.
func (uc *ManageDockAreasUseCase) ReclaimPanel(
	ctx context.Context,
	ws *entity.DockWorkspace,
	panel *entity.Panel,
	area *entity.DockArea,
) (*entity.DetachedWindow, error) {
	if ws == nil {
		return nil, ErrWorkspaceRequired
	}
	if panel == nil {
		return nil, ErrPanelRequired
	}
	if area == nil || ws.FindArea(area.ID) != area {
		return nil, ErrAreaNotFound
	}
	window := ws.FindDetached(panel)
	if window == nil {
		return nil, ErrPanelNotOwned
	}

	ws.DropDetached(window)
	area.AddPanel(panel)

	logging.FromContext(ctx).Info().
		Str("panel_id", string(panel.ID)).
		Str("window_id", string(window.ID)).
		Str("to", area.Name).
		Msg("detached panel reclaimed")

	return window, nil
}
