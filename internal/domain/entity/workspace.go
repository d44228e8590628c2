package entity

import (
	"fmt"
	"slices"
)

// DockWorkspace holds the authoritative set of dock areas, the hot-zone
// registry and the detached windows. Mutations go through
// usecase.ManageDockAreasUseCase so a panel always has exactly one owner.
type DockWorkspace struct {
	areas    []*DockArea
	hotZones []HotZone
	detached []*DetachedWindow

	// areaSeq numbers area names; it never decreases so names stay unique.
	areaSeq int
}

// NewDockWorkspace creates an empty workspace. Callers create the first area
// through the use case so it is registered with the layout host.
func NewDockWorkspace() *DockWorkspace {
	return &DockWorkspace{}
}

// Areas returns the areas in creation order. The slice must not be modified.
func (w *DockWorkspace) Areas() []*DockArea {
	return w.areas
}

// AreaCount returns the number of live areas.
func (w *DockWorkspace) AreaCount() int {
	return len(w.areas)
}

// FindArea returns the area with the given ID.
func (w *DockWorkspace) FindArea(id AreaID) *DockArea {
	for _, a := range w.areas {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// FindOwner returns the area containing the panel, or nil when the panel
// lives in a detached window (or is unknown).
func (w *DockWorkspace) FindOwner(p *Panel) *DockArea {
	for _, a := range w.areas {
		if a.ContainsPanel(p) {
			return a
		}
	}
	return nil
}

// FindDetached returns the detached window hosting the panel.
func (w *DockWorkspace) FindDetached(p *Panel) *DetachedWindow {
	for _, d := range w.detached {
		if d.Panel == p {
			return d
		}
	}
	return nil
}

// FindWindow returns the detached window with the given ID.
func (w *DockWorkspace) FindWindow(id WindowID) *DetachedWindow {
	for _, d := range w.detached {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// FindPanel looks a panel up by ID across areas and detached windows.
func (w *DockWorkspace) FindPanel(id PanelID) *Panel {
	for _, a := range w.areas {
		if p := a.FindPanel(id); p != nil {
			return p
		}
	}
	for _, d := range w.detached {
		if d.Panel != nil && d.Panel.ID == id {
			return d.Panel
		}
	}
	return nil
}

// AllPanels returns every panel, docked ones first in area order.
func (w *DockWorkspace) AllPanels() []*Panel {
	var panels []*Panel
	for _, a := range w.areas {
		panels = append(panels, a.Panels()...)
	}
	for _, d := range w.detached {
		panels = append(panels, d.Panel)
	}
	return panels
}

// DetachedWindows returns the detached windows. The slice must not be modified.
func (w *DockWorkspace) DetachedWindows() []*DetachedWindow {
	return w.detached
}

// HotZones returns the hot-zone registry. The slice must not be modified.
func (w *DockWorkspace) HotZones() []HotZone {
	return w.hotZones
}

// HighlightedArea returns the area currently showing its drop indicator.
func (w *DockWorkspace) HighlightedArea() *DockArea {
	for _, a := range w.areas {
		if a.IsHighlighted() {
			return a
		}
	}
	return nil
}

// NextAreaName returns the name for the next created area.
func (w *DockWorkspace) NextAreaName() string {
	w.areaSeq++
	return fmt.Sprintf("DockArea_%d", w.areaSeq)
}

// AppendArea adds an area to the collection.
func (w *DockWorkspace) AppendArea(a *DockArea) {
	w.areas = append(w.areas, a)
}

// DropArea removes an area from the collection and its hot-zones from the registry.
func (w *DockWorkspace) DropArea(a *DockArea) bool {
	idx := slices.Index(w.areas, a)
	if idx < 0 {
		return false
	}
	w.areas = slices.Delete(w.areas, idx, idx+1)
	w.hotZones = slices.DeleteFunc(w.hotZones, func(z HotZone) bool {
		return z.AreaID == a.ID
	})
	return true
}

// AppendDetached registers a detached window.
func (w *DockWorkspace) AppendDetached(d *DetachedWindow) {
	w.detached = append(w.detached, d)
}

// DropDetached removes a detached window.
func (w *DockWorkspace) DropDetached(d *DetachedWindow) bool {
	idx := slices.Index(w.detached, d)
	if idx < 0 {
		return false
	}
	w.detached = slices.Delete(w.detached, idx, idx+1)
	return true
}

// RefreshHotZones rebuilds the registry from the current area bounds.
// Called after every arrange since zone positions follow their areas.
func (w *DockWorkspace) RefreshHotZones(zone Size) {
	hovered := make(map[HotZoneKey]bool)
	for _, z := range w.hotZones {
		if z.Hovered {
			hovered[z.Key()] = true
		}
	}

	w.hotZones = w.hotZones[:0]
	for _, a := range w.areas {
		for _, z := range HotZonesFor(a, zone) {
			z.Hovered = hovered[z.Key()]
			w.hotZones = append(w.hotZones, z)
		}
	}
}

// SetHotZoneFeedback shows the zones of the highlighted area and marks the hovered one.
// A nil hovered key clears hover state.
func (w *DockWorkspace) SetHotZoneFeedback(hovered *HotZoneKey) {
	for i := range w.hotZones {
		z := &w.hotZones[i]
		area := w.FindArea(z.AreaID)
		z.Visible = area != nil && area.IsHighlighted()
		z.Hovered = hovered != nil && z.Key() == *hovered
	}
}

// ClearHighlights hides every drop indicator and hot-zone affordance.
func (w *DockWorkspace) ClearHighlights() {
	for _, a := range w.areas {
		a.HideDropIndicator()
	}
	w.SetHotZoneFeedback(nil)
}

// HotZoneKey identifies a zone across registry rebuilds.
type HotZoneKey struct {
	AreaID AreaID
	Edge   Edge
}

// Key returns the zone's identity.
func (z HotZone) Key() HotZoneKey {
	return HotZoneKey{AreaID: z.AreaID, Edge: z.Edge}
}
