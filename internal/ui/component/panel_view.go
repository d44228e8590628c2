package component

import (
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/layout"
)

const panelElementPrefix = "panel:"

// PanelView is the layout element of a docked panel. Arranging it writes the
// panel's bounds; the drag translation is applied on top at render time.
type PanelView struct {
	panel   *entity.Panel
	desired entity.Size
}

// NewPanelView wraps a panel for layout.
func NewPanelView(panel *entity.Panel) *PanelView {
	return &PanelView{panel: panel}
}

// PanelElementID returns the element identity used for a panel.
func PanelElementID(id entity.PanelID) layout.ElementID {
	return layout.ElementID(panelElementPrefix + string(id))
}

// Panel returns the wrapped panel.
func (pv *PanelView) Panel() *entity.Panel {
	return pv.panel
}

// ElementID implements layout.Element.
func (pv *PanelView) ElementID() layout.ElementID {
	return PanelElementID(pv.panel.ID)
}

// Measure implements layout.Element.
func (pv *PanelView) Measure(available entity.Size) entity.Size {
	pv.desired = entity.Size{
		Width:  min(pv.panel.DesiredSize.Width, available.Width),
		Height: min(pv.panel.DesiredSize.Height, available.Height),
	}
	return pv.desired
}

// DesiredSize implements layout.Element.
func (pv *PanelView) DesiredSize() entity.Size {
	return pv.desired
}

// Arrange implements layout.Element. The panel keeps its desired size when
// the slot it is given is larger.
func (pv *PanelView) Arrange(rect entity.Rect) {
	rect.W = min(rect.W, pv.desired.Width)
	rect.H = min(rect.H, pv.desired.Height)
	pv.panel.Bounds = rect
}
