package coordinator

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	defaultDragOpacity   = 0.4
	defaultNewAreaExtent = 350
)

// Landing is the outcome of a completed drag.
type Landing int

const (
	LandingNone      Landing = iota // No session, or the drop was rejected
	LandingSameArea                 // Dropped back onto its owner
	LandingMoved                    // Moved to another area
	LandingNewArea                  // Dropped on a hot-zone; a new area was created
	LandingDetached                 // Released outside the surface
	LandingReclaimed                // Dragged from a detached window back into an area
)

func (l Landing) String() string {
	switch l {
	case LandingSameArea:
		return "same_area"
	case LandingMoved:
		return "moved"
	case LandingNewArea:
		return "new_area"
	case LandingDetached:
		return "detached"
	case LandingReclaimed:
		return "reclaimed"
	default:
		return "none"
	}
}

// DragOptions tunes the drag gesture.
type DragOptions struct {
	Opacity       float64 // Panel opacity while dragging
	NewAreaExtent float64 // Recommended extent of areas created from hot-zones
}

// DefaultDragOptions returns the stock drag options.
func DefaultDragOptions() DragOptions {
	return DragOptions{
		Opacity:       defaultDragOpacity,
		NewAreaExtent: defaultNewAreaExtent,
	}
}

// DragCoordinatorConfig holds configuration for DragCoordinator.
type DragCoordinatorConfig struct {
	Surface   port.Surface
	Windows   port.WindowFactory
	Workspace *WorkspaceCoordinator
	Tracer    port.DragTracer // Optional
	Options   DragOptions
	// GenerateID names detached windows.
	GenerateID usecase.IDGenerator
}

// DragCoordinator is the drag state machine of the docking engine. It is the
// pointer handler of the main surface and of every detached window it opens.
// At most one drag session exists at a time; events arriving without one are
// ignored.
type DragCoordinator struct {
	surface    port.Surface
	windows    port.WindowFactory
	workspace  *WorkspaceCoordinator
	detectUC   *usecase.DetectDockZoneUseCase
	tracer     port.DragTracer
	opts       DragOptions
	generateID usecase.IDGenerator

	session *entity.DragSession
	span    port.DragSpan
	hosts   map[entity.WindowID]port.SecondaryWindow
}

var _ port.PointerHandler = (*DragCoordinator)(nil)

// NewDragCoordinator creates a drag coordinator governing one surface.
func NewDragCoordinator(ctx context.Context, cfg DragCoordinatorConfig) *DragCoordinator {
	logging.FromContext(ctx).Debug().Msg("creating drag coordinator")

	opts := cfg.Options
	defaults := DefaultDragOptions()
	if opts.Opacity <= 0 || opts.Opacity > 1 {
		opts.Opacity = defaults.Opacity
	}
	if opts.NewAreaExtent < 0 {
		opts.NewAreaExtent = defaults.NewAreaExtent
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noopTracer{}
	}

	return &DragCoordinator{
		surface:    cfg.Surface,
		windows:    cfg.Windows,
		workspace:  cfg.Workspace,
		detectUC:   cfg.Workspace.detectUC,
		tracer:     tracer,
		opts:       opts,
		generateID: cfg.GenerateID,
		hosts:      make(map[entity.WindowID]port.SecondaryWindow),
	}
}

// SetOptions replaces the drag options; the active gesture keeps its opacity.
func (dc *DragCoordinator) SetOptions(opts DragOptions) {
	if opts.Opacity > 0 && opts.Opacity <= 1 {
		dc.opts.Opacity = opts.Opacity
	}
	if opts.NewAreaExtent >= 0 {
		dc.opts.NewAreaExtent = opts.NewAreaExtent
	}
}

// IsDragging reports whether a drag session is active.
func (dc *DragCoordinator) IsDragging() bool {
	return dc.session != nil && dc.session.Active
}

// Session returns the active drag session, or nil.
func (dc *DragCoordinator) Session() *entity.DragSession {
	if !dc.IsDragging() {
		return nil
	}
	return dc.session
}

// Window returns the host window of a detached panel.
func (dc *DragCoordinator) Window(id entity.WindowID) port.SecondaryWindow {
	return dc.hosts[id]
}

// Press starts a drag of the panel at pos. It returns false when the press was
// ignored: another drag is active, the panel already holds the capture, the
// panel is unknown or the host refused the capture.
func (dc *DragCoordinator) Press(ctx context.Context, panelID entity.PanelID, pos entity.Point) bool {
	log := logging.FromContext(ctx)

	if dc.IsDragging() {
		log.Debug().Str("panel_id", string(panelID)).Msg("press ignored: drag already active")
		return false
	}
	if dc.surface.HasCapture(panelID) {
		log.Debug().Str("panel_id", string(panelID)).Msg("press ignored: panel already captured")
		return false
	}

	ws := dc.workspace.Workspace()
	panel := ws.FindPanel(panelID)
	if panel == nil {
		log.Debug().Str("panel_id", string(panelID)).Msg("press ignored: unknown panel")
		return false
	}
	if !dc.surface.CapturePointer(panelID) {
		log.Warn().Str("panel_id", string(panelID)).Msg("pointer capture refused")
		return false
	}

	var source entity.WindowID
	if window := ws.FindDetached(panel); window != nil {
		source = window.ID
	}

	panel.Translation.Attached = true
	panel.Opacity = dc.opts.Opacity
	dc.session = entity.NewDragSession(panel, pos, source)
	ctx, dc.span = dc.tracer.StartDrag(ctx, panelID, pos)

	logging.FromContext(ctx).Debug().
		Str("panel_id", string(panelID)).
		Str("source_window", string(source)).
		Float64("x", pos.X).
		Float64("y", pos.Y).
		Msg("drag started")

	return true
}

// Move follows the pointer: the panel is translated by the delta and the
// landing area under the pointer is highlighted along with its hot-zones.
func (dc *DragCoordinator) Move(ctx context.Context, pos entity.Point) {
	if !dc.IsDragging() {
		logging.FromContext(ctx).Trace().Msg("move ignored: no drag session")
		return
	}

	delta := dc.session.Advance(pos)
	dc.session.Panel.Translate(delta)
	dc.span.AddMove(pos)

	dc.updateFeedback(ctx, pos)
}

func (dc *DragCoordinator) updateFeedback(ctx context.Context, pos entity.Point) {
	ws := dc.workspace.Workspace()
	// Off the surface the nearest area stays highlighted; only the release decides on detaching.
	result := dc.detectUC.Detect(ctx, ws, dc.surface.LayoutOrigin(), pos)
	for _, area := range ws.Areas() {
		view := dc.workspace.View(area.ID)
		switch {
		case view == nil && area == result.Area:
			area.ShowDropIndicator()
		case view == nil:
			area.HideDropIndicator()
		case area == result.Area:
			view.ShowDropIndicator()
		default:
			view.HideDropIndicator()
		}
	}

	var hovered *entity.HotZoneKey
	if result.HotZone != nil {
		key := result.HotZone.Key()
		hovered = &key
	}
	ws.SetHotZoneFeedback(hovered)
}

// Release implements port.PointerHandler.
func (dc *DragCoordinator) Release(ctx context.Context, pos entity.Point) {
	dc.Complete(ctx, pos)
}

// CaptureLost completes an active drag at the last known pointer position.
func (dc *DragCoordinator) CaptureLost(ctx context.Context) Landing {
	if !dc.IsDragging() {
		return LandingNone
	}
	last := dc.session.Last
	logging.FromContext(ctx).Warn().
		Str("panel_id", string(dc.session.Panel.ID)).
		Msg("pointer capture lost, completing drag")
	return dc.Complete(ctx, last)
}

// Complete ends the active drag at pos and lands the panel:
//   - outside the surface it is detached into a new window;
//   - over a hot-zone a new area is created at the zone's edge;
//   - otherwise it moves to the area under, or nearest to, the pointer.
//
// The panel's translation is reset whatever the outcome.
func (dc *DragCoordinator) Complete(ctx context.Context, pos entity.Point) Landing {
	if !dc.IsDragging() {
		logging.FromContext(ctx).Debug().Msg("release ignored: no drag session")
		return LandingNone
	}

	session := dc.session
	session.Advance(pos)
	session.Active = false
	panel := session.Panel
	span := dc.span
	dc.session = nil
	dc.span = nil

	ctx = logging.WithPanelID(span.Context(ctx), string(panel.ID))

	dc.surface.ReleasePointer(panel.ID)
	panel.RestoreOpacity()
	dc.workspace.Workspace().ClearHighlights()

	landing, err := dc.land(ctx, panel, pos)
	panel.ResetTranslation()
	dc.workspace.Relayout()

	log := logging.FromContext(ctx)
	if err != nil {
		log.Error().Err(err).Str("landing", landing.String()).Msg("drag completed with error")
	} else {
		log.Debug().
			Str("landing", landing.String()).
			Float64("dx", session.Accumulated.X).
			Float64("dy", session.Accumulated.Y).
			Msg("drag completed")
	}
	span.End(landing.String(), err)

	return landing
}

func (dc *DragCoordinator) land(ctx context.Context, panel *entity.Panel, pos entity.Point) (Landing, error) {
	if !dc.surface.Bounds().Contains(pos) {
		return dc.detach(ctx, panel, pos)
	}

	ws := dc.workspace.Workspace()
	result := dc.detectUC.Detect(ctx, ws, dc.surface.LayoutOrigin(), pos)

	if zone := result.HotZone; zone != nil {
		area, err := dc.workspace.ManageUC().CreateArea(ctx, ws, zone.Edge, dc.opts.NewAreaExtent)
		if err != nil {
			return LandingNone, fmt.Errorf("failed to create dock area: %w", err)
		}
		landing, err := dc.dockInto(ctx, panel, area)
		if err != nil {
			dc.workspace.ManageUC().RemoveAreaIfEmpty(ctx, ws, area)
			return landing, err
		}
		return LandingNewArea, nil
	}

	if result.Area == nil {
		return LandingNone, nil
	}
	return dc.dockInto(ctx, panel, result.Area)
}

// dockInto makes area the owner of panel, from another area or from a detached window.
func (dc *DragCoordinator) dockInto(ctx context.Context, panel *entity.Panel, area *entity.DockArea) (Landing, error) {
	ws := dc.workspace.Workspace()
	manageUC := dc.workspace.ManageUC()

	if owner := ws.FindOwner(panel); owner != nil {
		if owner == area {
			return LandingSameArea, nil
		}
		if _, err := manageUC.MovePanel(ctx, usecase.MovePanelInput{
			Workspace: ws,
			Panel:     panel,
			From:      owner,
			To:        area,
		}); err != nil {
			return LandingNone, fmt.Errorf("failed to move panel: %w", err)
		}
		return LandingMoved, nil
	}

	window, err := manageUC.ReclaimPanel(ctx, ws, panel, area)
	if err != nil {
		return LandingNone, fmt.Errorf("failed to reclaim panel: %w", err)
	}
	dc.closeHost(ctx, window.ID)
	return LandingReclaimed, nil
}

// detach opens a window at pos and moves the panel into it. When the host
// cannot open a window the panel stays with its current owner.
func (dc *DragCoordinator) detach(ctx context.Context, panel *entity.Panel, pos entity.Point) (Landing, error) {
	if dc.windows == nil {
		return LandingNone, fmt.Errorf("no window factory to detach panel %s", panel.ID)
	}

	var id entity.WindowID
	if dc.generateID != nil {
		id = entity.WindowID(dc.generateID())
	}

	host, err := dc.windows.OpenWindow(ctx, port.WindowRequest{
		ID:    id,
		Title: panel.Title,
		Panel: panel,
		Bounds: entity.Rect{
			X: pos.X,
			Y: pos.Y,
			W: panel.DesiredSize.Width,
			H: panel.DesiredSize.Height,
		},
	})
	if err != nil {
		return LandingNone, fmt.Errorf("failed to open window: %w", err)
	}

	_, replaced, err := dc.workspace.ManageUC().DetachPanel(ctx, usecase.DetachPanelInput{
		Workspace: dc.workspace.Workspace(),
		Panel:     panel,
		WindowID:  host.ID(),
		Bounds:    host.Bounds(),
	})
	if err != nil {
		if cerr := host.Close(); cerr != nil {
			logging.FromContext(ctx).Warn().Err(cerr).Msg("failed to close unused window")
		}
		return LandingNone, fmt.Errorf("failed to detach panel: %w", err)
	}

	host.SetPointerHandler(dc)
	dc.hosts[host.ID()] = host
	if replaced != nil {
		dc.closeHost(ctx, replaced.ID)
	}
	return LandingDetached, nil
}

func (dc *DragCoordinator) closeHost(ctx context.Context, id entity.WindowID) {
	host, ok := dc.hosts[id]
	if !ok {
		return
	}
	delete(dc.hosts, id)
	if err := host.Close(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("window_id", string(id)).Msg("failed to close window")
	}
}

type noopTracer struct{}

func (noopTracer) StartDrag(ctx context.Context, _ entity.PanelID, _ entity.Point) (context.Context, port.DragSpan) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) Context(ctx context.Context) context.Context { return ctx }

func (noopSpan) AddMove(entity.Point) {}

func (noopSpan) End(string, error) {}
