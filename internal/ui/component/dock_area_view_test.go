package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/component"
	"github.com/bnema/dockyard/internal/ui/layout"
)

func newAreaWithPanels(edge entity.Edge, extent float64, ids ...string) *entity.DockArea {
	area := entity.NewDockArea("a1", "DockArea_1", edge, extent)
	for _, id := range ids {
		area.AddPanel(entity.NewPanel(entity.PanelID(id), id))
	}
	return area
}

func TestDockAreaView_MeasureRecommendedExtent(t *testing.T) {
	tests := []struct {
		name     string
		edge     entity.Edge
		extent   float64
		expected entity.Size
	}{
		{"top area fixes height", entity.EdgeTop, 350, entity.Size{Width: 166, Height: 350}},
		{"left area fixes width", entity.EdgeLeft, 350, entity.Size{Width: 350, Height: 132}},
		{"extent clamped to available", entity.EdgeBottom, 900, entity.Size{Width: 166, Height: 600}},
		{"natural size", entity.EdgeRight, 0, entity.Size{Width: 166, Height: 132}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := component.NewDockAreaView(newAreaWithPanels(tt.edge, tt.extent, "p1"), component.DefaultAreaStyle())
			got := view.Measure(entity.Size{Width: 800, Height: 600})
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, view.DesiredSize())
		})
	}
}

func TestDockAreaView_EmptyAreaKeepsMinimumSize(t *testing.T) {
	view := component.NewDockAreaView(newAreaWithPanels(entity.EdgeTop, 0), component.DefaultAreaStyle())
	got := view.Measure(entity.Size{Width: 800, Height: 600})

	assert.Equal(t, component.DefaultAreaStyle().MinSize, got)
	assert.True(t, view.IsEmpty())
}

func TestDockAreaView_ArrangeLaysOutTabStrip(t *testing.T) {
	area := newAreaWithPanels(entity.EdgeTop, 0, "p1", "p2")
	view := component.NewDockAreaView(area, component.DefaultAreaStyle())

	rect := entity.Rect{X: 10, Y: 20, W: 800, H: 300}
	view.Measure(rect.Size())
	view.Arrange(rect)

	assert.Equal(t, rect, area.Bounds)
	panels := area.Panels()
	require.Len(t, panels, 2)
	assert.Equal(t, entity.Rect{X: 18, Y: 44, W: 150, H: 100}, panels[0].Bounds)
	assert.Equal(t, entity.Rect{X: 176, Y: 44, W: 150, H: 100}, panels[1].Bounds)
	assert.Equal(t, entity.Rect{X: 10, Y: 20, W: 800, H: 24}, view.HeaderBounds())
}

func TestDockAreaView_SyncFollowsMembership(t *testing.T) {
	area := newAreaWithPanels(entity.EdgeTop, 0, "p1", "p2")
	view := component.NewDockAreaView(area, component.DefaultAreaStyle())
	require.Len(t, view.PanelViews(), 2)

	moved := area.FindPanel("p1")
	area.RemovePanel(moved)
	area.AddPanel(entity.NewPanel("p3", "p3"))
	area.AddPanel(moved)
	view.Sync()

	var ids []entity.PanelID
	for _, pv := range view.PanelViews() {
		ids = append(ids, pv.Panel().ID)
	}
	assert.Equal(t, []entity.PanelID{"p2", "p3", "p1"}, ids)
}

func TestDockAreaView_MembershipHelpers(t *testing.T) {
	invalidated := 0
	area := newAreaWithPanels(entity.EdgeLeft, 0)
	view := component.NewDockAreaView(area, component.DefaultAreaStyle())
	view.SetInvalidator(layout.InvalidatorFunc(func() { invalidated++ }))

	p := entity.NewPanel("p1", "")
	view.AddPanel(p)
	assert.True(t, view.ContainsPanel(p))
	assert.False(t, view.IsEmpty())
	assert.Positive(t, invalidated)

	view.ShowDropIndicator()
	assert.True(t, area.IsHighlighted())
	view.HideDropIndicator()
	assert.False(t, area.IsHighlighted())

	assert.True(t, view.RemovePanel(p))
	assert.False(t, view.RemovePanel(p))
	assert.Empty(t, view.PanelViews())
}

func TestPanelView_ArrangeKeepsDesiredSize(t *testing.T) {
	p := entity.NewPanel("p1", "")
	pv := component.NewPanelView(p)

	assert.Equal(t, entity.Size{Width: 150, Height: 100}, pv.Measure(entity.Size{Width: 400, Height: 400}))
	pv.Arrange(entity.Rect{X: 5, Y: 5, W: 400, H: 400})
	assert.Equal(t, entity.Rect{X: 5, Y: 5, W: 150, H: 100}, p.Bounds)

	assert.Equal(t, entity.Size{Width: 80, Height: 100}, pv.Measure(entity.Size{Width: 80, Height: 400}))
	assert.Equal(t, component.PanelElementID("p1"), pv.ElementID())
}
