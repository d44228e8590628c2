package entity

import "slices"

// AreaID uniquely identifies a dock area.
type AreaID string

// DockArea is a named container docked to one edge of the workspace layout.
// Its edge is fixed at creation.
type DockArea struct {
	ID     AreaID
	Name   string
	Edge   Edge
	Bounds Rect // Layout-space rectangle from the last arrange pass

	// RecommendedExtent fixes the width (left/right) or height (top/bottom)
	// of the area. Zero means natural size.
	RecommendedExtent float64

	// Accent is a "#rrggbb" colour used for the border and drop highlight.
	Accent string

	panels      []*Panel
	highlighted bool
}

// NewDockArea creates an empty, unhighlighted area.
func NewDockArea(id AreaID, name string, edge Edge, extent float64) *DockArea {
	return &DockArea{
		ID:                id,
		Name:              name,
		Edge:              edge,
		RecommendedExtent: PositiveOrZero(extent),
	}
}

// AddPanel appends a panel. Adding a panel already present is a no-op.
func (a *DockArea) AddPanel(p *Panel) {
	if p == nil || a.ContainsPanel(p) {
		return
	}
	a.panels = append(a.panels, p)
}

// RemovePanel removes a panel and reports whether it was a member.
func (a *DockArea) RemovePanel(p *Panel) bool {
	idx := slices.Index(a.panels, p)
	if idx < 0 {
		return false
	}
	a.panels = slices.Delete(a.panels, idx, idx+1)
	return true
}

// ContainsPanel reports whether the panel is a member of this area.
func (a *DockArea) ContainsPanel(p *Panel) bool {
	return slices.Contains(a.panels, p)
}

// FindPanel returns the member panel with the given ID.
func (a *DockArea) FindPanel(id PanelID) *Panel {
	for _, p := range a.panels {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Panels returns the member panels in insertion order.
// The returned slice must not be modified.
func (a *DockArea) Panels() []*Panel {
	return a.panels
}

// PanelCount returns the number of member panels.
func (a *DockArea) PanelCount() int {
	return len(a.panels)
}

// IsEmpty reports whether the area holds no panels.
func (a *DockArea) IsEmpty() bool {
	return len(a.panels) == 0
}

// ShowDropIndicator turns the "drop here" highlight on.
func (a *DockArea) ShowDropIndicator() {
	a.highlighted = true
}

// HideDropIndicator turns the "drop here" highlight off.
func (a *DockArea) HideDropIndicator() {
	a.highlighted = false
}

// IsHighlighted reports whether the drop indicator is shown.
func (a *DockArea) IsHighlighted() bool {
	return a.highlighted
}
