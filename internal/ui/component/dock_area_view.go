// Package component provides the layout elements of the docking workspace.
package component

import (
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/layout"
)

const areaElementPrefix = "area:"

// AreaStyle sizes the chrome around the panels of a dock area.
type AreaStyle struct {
	// Padding separates the border from the tab strip; Top includes the header.
	Padding      entity.Thickness
	PanelSpacing float64
	// MinSize keeps empty areas visible and droppable.
	MinSize entity.Size
}

// DefaultAreaStyle returns the chrome used by the demo and the snapshot renderer.
func DefaultAreaStyle() AreaStyle {
	return AreaStyle{
		Padding:      entity.Thickness{Left: 8, Top: 24, Right: 8, Bottom: 8},
		PanelSpacing: 8,
		MinSize: entity.Size{
			Width:  entity.DefaultPanelWidth + 16,
			Height: entity.DefaultPanelHeight + 32,
		},
	}
}

// DockAreaView is the layout element of a dock area. Its panels form a tab
// strip laid out left to right by an inner DockLayout.
type DockAreaView struct {
	area   *entity.DockArea
	style  AreaStyle
	strip  *layout.DockLayout
	panels map[entity.PanelID]*PanelView

	desired entity.Size
}

// NewDockAreaView creates the view for an area.
func NewDockAreaView(area *entity.DockArea, style AreaStyle) *DockAreaView {
	v := &DockAreaView{
		area:   area,
		style:  style,
		panels: make(map[entity.PanelID]*PanelView),
	}
	v.strip = layout.NewDockLayout(v.ElementID()+"/strip", layout.Options{
		Padding:           style.Padding,
		HorizontalSpacing: style.PanelSpacing,
	})
	v.Sync()
	return v
}

// AreaElementID returns the element identity used for an area.
func AreaElementID(id entity.AreaID) layout.ElementID {
	return layout.ElementID(areaElementPrefix + string(id))
}

// Area returns the wrapped area.
func (v *DockAreaView) Area() *entity.DockArea {
	return v.area
}

// SetInvalidator forwards strip invalidation to the parent layout.
func (v *DockAreaView) SetInvalidator(parent layout.Invalidator) {
	v.strip.SetInvalidator(parent)
}

// AddPanel adds a panel to the area and its tab strip.
func (v *DockAreaView) AddPanel(p *entity.Panel) {
	v.area.AddPanel(p)
	v.Sync()
}

// RemovePanel removes a panel from the area and its tab strip.
func (v *DockAreaView) RemovePanel(p *entity.Panel) bool {
	removed := v.area.RemovePanel(p)
	v.Sync()
	return removed
}

// ContainsPanel reports whether the area holds the panel.
func (v *DockAreaView) ContainsPanel(p *entity.Panel) bool {
	return v.area.ContainsPanel(p)
}

// IsEmpty reports whether the area holds no panels.
func (v *DockAreaView) IsEmpty() bool {
	return v.area.IsEmpty()
}

// ShowDropIndicator highlights the area as the drop target.
func (v *DockAreaView) ShowDropIndicator() {
	v.area.ShowDropIndicator()
}

// HideDropIndicator removes the drop target highlight.
func (v *DockAreaView) HideDropIndicator() {
	v.area.HideDropIndicator()
}

// Sync reconciles the tab strip with the area's membership. Membership is
// changed by the use case directly on the entity, so the strip follows it here.
func (v *DockAreaView) Sync() {
	members := make(map[entity.PanelID]bool, v.area.PanelCount())
	for _, p := range v.area.Panels() {
		members[p.ID] = true
	}

	for id := range v.panels {
		if !members[id] {
			v.strip.Remove(PanelElementID(id))
			delete(v.panels, id)
		}
	}

	// Rebuild when order differs so the strip mirrors insertion order.
	children := v.strip.Children()
	inOrder := len(children) == v.area.PanelCount()
	for i, p := range v.area.Panels() {
		if !inOrder {
			break
		}
		inOrder = children[i].ElementID() == PanelElementID(p.ID)
	}
	if inOrder {
		return
	}

	v.strip.Clear()
	for _, p := range v.area.Panels() {
		pv, ok := v.panels[p.ID]
		if !ok {
			pv = NewPanelView(p)
			v.panels[p.ID] = pv
		}
		v.strip.Add(pv, entity.EdgeLeft)
	}
}

// PanelViews returns the tab strip elements in order.
func (v *DockAreaView) PanelViews() []*PanelView {
	views := make([]*PanelView, 0, len(v.panels))
	for _, p := range v.area.Panels() {
		if pv, ok := v.panels[p.ID]; ok {
			views = append(views, pv)
		}
	}
	return views
}

// ElementID implements layout.Element.
func (v *DockAreaView) ElementID() layout.ElementID {
	return AreaElementID(v.area.ID)
}

// Measure implements layout.Element. A recommended extent fixes the size
// along the docking axis, clamped to what is available.
func (v *DockAreaView) Measure(available entity.Size) entity.Size {
	constraint := available
	extent := v.area.RecommendedExtent
	if extent > 0 {
		if v.area.Edge.IsVertical() {
			constraint.Height = math.Min(extent, available.Height)
		} else {
			constraint.Width = math.Min(extent, available.Width)
		}
	}

	desired := v.strip.Measure(constraint)
	desired.Width = math.Min(math.Max(desired.Width, v.style.MinSize.Width), available.Width)
	desired.Height = math.Min(math.Max(desired.Height, v.style.MinSize.Height), available.Height)
	if extent > 0 {
		if v.area.Edge.IsVertical() {
			desired.Height = constraint.Height
		} else {
			desired.Width = constraint.Width
		}
	}

	v.desired = desired
	return desired
}

// DesiredSize implements layout.Element.
func (v *DockAreaView) DesiredSize() entity.Size {
	return v.desired
}

// Arrange implements layout.Element. The strip is remeasured against the
// final rectangle so a filling area lays its tabs out in the space it got.
func (v *DockAreaView) Arrange(rect entity.Rect) {
	v.area.Bounds = rect
	v.strip.Layout(rect)
}

// HeaderBounds returns the title row above the tab strip.
func (v *DockAreaView) HeaderBounds() entity.Rect {
	b := v.area.Bounds
	return entity.Rect{
		X: b.X,
		Y: b.Y,
		W: b.W,
		H: math.Min(v.style.Padding.Top, b.H),
	}
}
