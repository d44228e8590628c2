package port

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Surface is the main top-level surface governed by a drag coordinator.
// All pointer positions handed to the docking engine are in this surface's
// coordinate space; hosts map window-local positions before delivering them.
type Surface interface {
	// Bounds returns the surface rectangle. Releases outside it detach the panel.
	Bounds() entity.Rect

	// LayoutOrigin maps the dock layout's origin into surface coordinates.
	// Area and hot-zone bounds are layout-space and are offset by this point
	// before hit-testing.
	LayoutOrigin() entity.Point

	// CapturePointer requests exclusive pointer capture for a panel.
	// Returns false when the host refused the capture.
	CapturePointer(id entity.PanelID) bool
	// ReleasePointer releases a capture previously granted to the panel.
	ReleasePointer(id entity.PanelID)
	// HasCapture reports whether the panel currently holds the capture.
	HasCapture(id entity.PanelID) bool
}

// PointerHandler receives pointer events for draggable panels.
// Positions are in main-surface coordinates.
type PointerHandler interface {
	Press(ctx context.Context, panelID entity.PanelID, pos entity.Point) bool
	Move(ctx context.Context, pos entity.Point)
	Release(ctx context.Context, pos entity.Point)
}

// WindowRequest describes a secondary window to open for a detached panel.
type WindowRequest struct {
	ID     entity.WindowID
	Title  string
	Panel  *entity.Panel
	Bounds entity.Rect // Main-surface coordinates
}

// WindowFactory creates secondary top-level surfaces.
type WindowFactory interface {
	OpenWindow(ctx context.Context, req WindowRequest) (SecondaryWindow, error)
}

// SecondaryWindow is a host window created for a detached panel.
type SecondaryWindow interface {
	ID() entity.WindowID
	Bounds() entity.Rect
	// SetPointerHandler routes the window's pointer events to h so its panel
	// can be dragged back into the main surface.
	SetPointerHandler(h PointerHandler)
	Close() error
}

// LayoutHost is the layout container dock areas are registered with.
type LayoutHost interface {
	AttachArea(area *entity.DockArea)
	DetachArea(id entity.AreaID)
}
