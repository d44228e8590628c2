package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/component"
	"github.com/bnema/dockyard/internal/ui/coordinator"
	"github.com/bnema/dockyard/internal/ui/layout"
)

func newWorkspace(t *testing.T, opts layout.Options, onChanged func()) *coordinator.WorkspaceCoordinator {
	t.Helper()
	wc, err := coordinator.NewWorkspaceCoordinator(testContext(), coordinator.WorkspaceCoordinatorConfig{
		ManageUC:    usecase.NewManageDockAreasUseCase(newTestIDGen("id"), nil),
		Layout:      opts,
		AreaStyle:   component.DefaultAreaStyle(),
		HotZoneSize: entity.Size{Width: 32, Height: 32},
		OnChanged:   onChanged,
	})
	require.NoError(t, err)
	return wc
}

func TestWorkspaceCoordinator_StartsWithTopArea(t *testing.T) {
	wc := newWorkspace(t, layout.Options{LastChildFills: true}, nil)
	ws := wc.Workspace()

	require.Equal(t, 1, ws.AreaCount())
	area := ws.Areas()[0]
	assert.Equal(t, entity.EdgeTop, area.Edge)
	assert.Equal(t, "DockArea_1", area.Name)
	assert.NotNil(t, wc.View(area.ID))
	assert.Equal(t, 1, wc.Layout().Len())
	assert.Equal(t, entity.EdgeTop, wc.Layout().EdgeOf(component.AreaElementID(area.ID)))
}

func TestWorkspaceCoordinator_AddPanelUsesAreaClosestToOrigin(t *testing.T) {
	changes := 0
	wc := newWorkspace(t, layout.Options{}, func() { changes++ })
	ctx := testContext()
	ws := wc.Workspace()

	// The right-docked area never covers the origin.
	right, err := wc.ManageUC().CreateArea(ctx, ws, entity.EdgeRight, 200)
	require.NoError(t, err)
	wc.Resize(entity.Rect{W: 800, H: 600})
	top := ws.Areas()[0]
	require.Equal(t, 0.0, top.Bounds.X)

	p1, err := wc.AddPanel(ctx)
	require.NoError(t, err)
	p2, err := wc.AddPanel(ctx)
	require.NoError(t, err)

	assert.Equal(t, "DraggablePanel_1", p1.Title)
	assert.Equal(t, "DraggablePanel_2", p2.Title)
	assert.Same(t, top, ws.FindOwner(p1))
	assert.Same(t, top, ws.FindOwner(p2))
	assert.True(t, right.IsEmpty())
	assert.Equal(t, entity.Size{Width: 150, Height: 100}, p1.Bounds.Size())
	assert.Greater(t, p2.Bounds.X, p1.Bounds.X)
	assert.Positive(t, changes)
}

func TestWorkspaceCoordinator_RelayoutRefreshesHotZones(t *testing.T) {
	wc := newWorkspace(t, layout.Options{LastChildFills: true}, nil)
	ws := wc.Workspace()

	assert.Empty(t, ws.HotZones(), "no zones before the first layout")

	wc.Resize(entity.Rect{W: 400, H: 300})
	require.Len(t, ws.HotZones(), 4)
	assert.Equal(t, entity.Point{X: 200, Y: 150}, ws.Areas()[0].Bounds.Center())

	wc.ApplyOptions(layout.Options{LastChildFills: true}, entity.Size{Width: 200, Height: 200})
	assert.Empty(t, ws.HotZones(), "zones larger than a third of the area are dropped")
	assert.Equal(t, entity.Size{Width: 200, Height: 200}, wc.HotZoneSize())
}

func TestWorkspaceCoordinator_DetachAreaRemovesView(t *testing.T) {
	wc := newWorkspace(t, layout.Options{}, nil)
	ctx := testContext()
	ws := wc.Workspace()

	extra, err := wc.ManageUC().CreateArea(ctx, ws, entity.EdgeBottom, 0)
	require.NoError(t, err)
	require.Equal(t, 2, wc.Layout().Len())

	require.True(t, wc.ManageUC().RemoveAreaIfEmpty(ctx, ws, extra))
	assert.Nil(t, wc.View(extra.ID))
	assert.Equal(t, 1, wc.Layout().Len())
}
