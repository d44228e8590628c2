package coordinator_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/component"
	"github.com/bnema/dockyard/internal/ui/coordinator"
	"github.com/bnema/dockyard/internal/ui/layout"
)

var testViewport = entity.Rect{W: 800, H: 600}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console", nil)
	return logging.WithContext(context.Background(), logger)
}

func newTestIDGen(prefix string) usecase.IDGenerator {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("%s%d", prefix, counter)
	}
}

func newSurface(t *testing.T) *mocks.MockSurface {
	surface := mocks.NewMockSurface(t)
	surface.EXPECT().Bounds().Return(testViewport).Maybe()
	surface.EXPECT().LayoutOrigin().Return(entity.Point{}).Maybe()
	surface.EXPECT().HasCapture(mock.Anything).Return(false).Maybe()
	surface.EXPECT().CapturePointer(mock.Anything).Return(true).Maybe()
	surface.EXPECT().ReleasePointer(mock.Anything).Maybe()
	return surface
}

type fixture struct {
	ctx       context.Context
	workspace *coordinator.WorkspaceCoordinator
	drag      *coordinator.DragCoordinator
	windows   *mocks.MockWindowFactory
}

func newFixture(t *testing.T, surface port.Surface, lastChildFills bool) *fixture {
	t.Helper()
	ctx := testContext()

	wc, err := coordinator.NewWorkspaceCoordinator(ctx, coordinator.WorkspaceCoordinatorConfig{
		ManageUC:    usecase.NewManageDockAreasUseCase(newTestIDGen("id"), nil),
		Layout:      layout.Options{LastChildFills: lastChildFills},
		AreaStyle:   component.DefaultAreaStyle(),
		HotZoneSize: entity.Size{Width: 32, Height: 32},
		InitialEdge: entity.EdgeTop,
	})
	require.NoError(t, err)
	wc.Resize(testViewport)

	windows := mocks.NewMockWindowFactory(t)
	dc := coordinator.NewDragCoordinator(ctx, coordinator.DragCoordinatorConfig{
		Surface:    surface,
		Windows:    windows,
		Workspace:  wc,
		Options:    coordinator.DefaultDragOptions(),
		GenerateID: newTestIDGen("w"),
	})

	return &fixture{ctx: ctx, workspace: wc, drag: dc, windows: windows}
}

func (f *fixture) addPanel(t *testing.T) *entity.Panel {
	t.Helper()
	p, err := f.workspace.AddPanel(f.ctx)
	require.NoError(t, err)
	return p
}

func (f *fixture) expectWindow(t *testing.T, id entity.WindowID) *mocks.MockSecondaryWindow {
	win := mocks.NewMockSecondaryWindow(t)
	win.EXPECT().ID().Return(id).Maybe()
	f.windows.EXPECT().OpenWindow(mock.Anything, mock.AnythingOfType("port.WindowRequest")).
		RunAndReturn(func(_ context.Context, req port.WindowRequest) (port.SecondaryWindow, error) {
			win.EXPECT().Bounds().Return(req.Bounds).Maybe()
			return win, nil
		}).Once()
	win.EXPECT().SetPointerHandler(f.drag).Once()
	return win
}

func TestDragCoordinator_TranslationFollowsPointer(t *testing.T) {
	f := newFixture(t, newSurface(t), true)
	p := f.addPanel(t)

	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 50, Y: 50}))
	assert.True(t, f.drag.IsDragging())
	assert.Equal(t, 0.4, p.Opacity)
	assert.True(t, p.Translation.Attached)

	f.drag.Move(f.ctx, entity.Point{X: 60, Y: 70})
	assert.Equal(t, entity.Translation{X: 10, Y: 20, Attached: true}, p.Translation)

	f.drag.Move(f.ctx, entity.Point{X: 40, Y: 75})
	assert.Equal(t, entity.Translation{X: -10, Y: 25, Attached: true}, p.Translation)
	assert.Equal(t, entity.Point{X: -10, Y: 25}, f.drag.Session().Accumulated)

	landing := f.drag.Complete(f.ctx, entity.Point{X: 40, Y: 75})

	assert.Equal(t, coordinator.LandingSameArea, landing)
	assert.False(t, f.drag.IsDragging())
	assert.Nil(t, f.drag.Session())
	assert.Equal(t, entity.Translation{Attached: true}, p.Translation)
	assert.True(t, p.IsOpaque())
}

func TestDragCoordinator_SingleSession(t *testing.T) {
	f := newFixture(t, newSurface(t), true)
	p1 := f.addPanel(t)
	p2 := f.addPanel(t)

	require.True(t, f.drag.Press(f.ctx, p1.ID, entity.Point{X: 10, Y: 10}))
	assert.False(t, f.drag.Press(f.ctx, p2.ID, entity.Point{X: 200, Y: 10}))
	assert.Same(t, p1, f.drag.Session().Panel)
	assert.True(t, p2.IsOpaque())
}

func TestDragCoordinator_PressIgnored(t *testing.T) {
	t.Run("unknown panel", func(t *testing.T) {
		f := newFixture(t, newSurface(t), true)
		assert.False(t, f.drag.Press(f.ctx, "missing", entity.Point{}))
	})

	t.Run("panel already captured", func(t *testing.T) {
		surface := mocks.NewMockSurface(t)
		surface.EXPECT().HasCapture(mock.Anything).Return(true)
		f := newFixture(t, surface, true)
		p := f.addPanel(t)

		assert.False(t, f.drag.Press(f.ctx, p.ID, entity.Point{}))
		assert.False(t, p.Translation.Attached)
	})

	t.Run("capture refused", func(t *testing.T) {
		surface := mocks.NewMockSurface(t)
		surface.EXPECT().HasCapture(mock.Anything).Return(false)
		surface.EXPECT().CapturePointer(mock.Anything).Return(false)
		f := newFixture(t, surface, true)
		p := f.addPanel(t)

		assert.False(t, f.drag.Press(f.ctx, p.ID, entity.Point{}))
		assert.False(t, f.drag.IsDragging())
		assert.True(t, p.IsOpaque())
	})
}

func TestDragCoordinator_StaleEventsAreIgnored(t *testing.T) {
	f := newFixture(t, newSurface(t), true)
	p := f.addPanel(t)
	before := p.Translation

	f.drag.Move(f.ctx, entity.Point{X: 100, Y: 100})
	f.drag.Release(f.ctx, entity.Point{X: 100, Y: 100})

	assert.Equal(t, coordinator.LandingNone, f.drag.Complete(f.ctx, entity.Point{}))
	assert.Equal(t, coordinator.LandingNone, f.drag.CaptureLost(f.ctx))
	assert.Equal(t, before, p.Translation)
}

func TestDragCoordinator_MoveHighlightsLandingArea(t *testing.T) {
	f := newFixture(t, newSurface(t), true)
	p := f.addPanel(t)
	ws := f.workspace.Workspace()
	area := ws.Areas()[0]
	center := area.Bounds.Center()

	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 20, Y: 30}))
	f.drag.Move(f.ctx, entity.Point{X: 100, Y: 200})

	assert.Same(t, area, ws.HighlightedArea())
	require.Len(t, ws.HotZones(), 4)
	for _, z := range ws.HotZones() {
		assert.True(t, z.Visible)
		assert.False(t, z.Hovered)
	}

	// Over the right zone of the cross.
	f.drag.Move(f.ctx, entity.Point{X: center.X + 32, Y: center.Y})
	var hovered []entity.Edge
	for _, z := range ws.HotZones() {
		if z.Hovered {
			hovered = append(hovered, z.Edge)
		}
	}
	assert.Equal(t, []entity.Edge{entity.EdgeRight}, hovered)

	// Leaving the surface keeps the nearest area highlighted, with no hovered zone.
	f.drag.Move(f.ctx, entity.Point{X: -10, Y: 200})
	assert.Same(t, area, ws.HighlightedArea())
	for _, z := range ws.HotZones() {
		assert.True(t, z.Visible)
		assert.False(t, z.Hovered)
	}
}

func TestDragCoordinator_MoveOffSurfaceHighlightsNearestArea(t *testing.T) {
	f := newFixture(t, newSurface(t), false)
	ws := f.workspace.Workspace()
	manageUC := f.workspace.ManageUC()

	top := ws.Areas()[0]
	p := f.addPanel(t)
	left, err := manageUC.CreateArea(f.ctx, ws, entity.EdgeLeft, 200)
	require.NoError(t, err)
	right, err := manageUC.CreateArea(f.ctx, ws, entity.EdgeRight, 200)
	require.NoError(t, err)
	f.workspace.Relayout()

	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 20, Y: 30}))
	f.drag.Move(f.ctx, entity.Point{X: 700, Y: 400})
	require.Same(t, right, ws.HighlightedArea())

	// (-40, 400) is outside the surface and closest to the left area's centre.
	f.drag.Move(f.ctx, entity.Point{X: -40, Y: 400})

	assert.Same(t, left, ws.HighlightedArea())
	assert.False(t, top.IsHighlighted())
	assert.False(t, right.IsHighlighted())
	for _, z := range ws.HotZones() {
		assert.Equal(t, z.AreaID == left.ID, z.Visible, "zone %s/%s", z.AreaID, z.Edge)
		assert.False(t, z.Hovered)
	}
}

func TestDragCoordinator_ReleaseOnHotZoneCreatesArea(t *testing.T) {
	f := newFixture(t, newSurface(t), true)
	p := f.addPanel(t)
	ws := f.workspace.Workspace()
	source := ws.Areas()[0]
	center := source.Bounds.Center()

	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 20, Y: 30}))
	f.drag.Move(f.ctx, entity.Point{X: center.X + 32, Y: center.Y})
	landing := f.drag.Complete(f.ctx, entity.Point{X: center.X + 32, Y: center.Y})

	require.Equal(t, coordinator.LandingNewArea, landing)
	require.Equal(t, 1, ws.AreaCount(), "emptied source area is removed")
	created := ws.Areas()[0]
	assert.NotSame(t, source, created)
	assert.Equal(t, entity.EdgeRight, created.Edge)
	assert.Equal(t, 350.0, created.RecommendedExtent)
	assert.Same(t, created, ws.FindOwner(p))
	assert.Nil(t, f.workspace.View(source.ID))
	assert.NotNil(t, f.workspace.View(created.ID))
	assert.Nil(t, ws.HighlightedArea())
}

func TestDragCoordinator_ReleaseNearestOfThreeAreas(t *testing.T) {
	f := newFixture(t, newSurface(t), false)
	ws := f.workspace.Workspace()
	manageUC := f.workspace.ManageUC()

	area1 := ws.Areas()[0]
	p := f.addPanel(t)
	area2, err := manageUC.CreateArea(f.ctx, ws, entity.EdgeLeft, 200)
	require.NoError(t, err)
	area3, err := manageUC.CreateArea(f.ctx, ws, entity.EdgeRight, 200)
	require.NoError(t, err)
	f.workspace.Relayout()

	require.Equal(t, entity.Rect{X: 0, Y: 0, W: 800, H: 132}, area1.Bounds)
	require.Equal(t, entity.Rect{X: 0, Y: 132, W: 200, H: 468}, area2.Bounds)
	require.Equal(t, entity.Rect{X: 600, Y: 132, W: 200, H: 468}, area3.Bounds)

	// (550, 400) lies in no area and is closest to area3's centre.
	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 20, Y: 30}))
	f.drag.Move(f.ctx, entity.Point{X: 550, Y: 400})
	assert.Same(t, area3, ws.HighlightedArea())

	landing := f.drag.Complete(f.ctx, entity.Point{X: 550, Y: 400})

	assert.Equal(t, coordinator.LandingMoved, landing)
	assert.Same(t, area3, ws.FindOwner(p))
	assert.False(t, area1.ContainsPanel(p))
	assert.Equal(t, []*entity.DockArea{area2, area3}, ws.Areas())
}

func TestDragCoordinator_DetachAndReclaim(t *testing.T) {
	f := newFixture(t, newSurface(t), true)
	p := f.addPanel(t)
	ws := f.workspace.Workspace()
	area := ws.Areas()[0]
	win := f.expectWindow(t, "w1")

	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 20, Y: 30}))
	f.drag.Move(f.ctx, entity.Point{X: -40, Y: 50})
	landing := f.drag.Complete(f.ctx, entity.Point{X: -40, Y: 50})

	require.Equal(t, coordinator.LandingDetached, landing)
	assert.Nil(t, ws.FindOwner(p))
	assert.False(t, area.ContainsPanel(p))
	detached := ws.FindDetached(p)
	require.NotNil(t, detached)
	assert.Equal(t, entity.WindowID("w1"), detached.ID)
	assert.Equal(t, entity.Rect{X: -40, Y: 50, W: 150, H: 100}, detached.Bounds)
	assert.Equal(t, 1, ws.AreaCount(), "last area survives")
	assert.Same(t, win, f.drag.Window("w1"))
	assert.Equal(t, entity.Translation{Attached: true}, p.Translation)

	// Drag it back from its window into the main surface.
	win.EXPECT().Close().Return(nil).Once()
	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: -30, Y: 60}))
	assert.Equal(t, entity.WindowID("w1"), f.drag.Session().Source)
	f.drag.Move(f.ctx, entity.Point{X: 100, Y: 100})
	landing = f.drag.Complete(f.ctx, entity.Point{X: 100, Y: 100})

	assert.Equal(t, coordinator.LandingReclaimed, landing)
	assert.Same(t, area, ws.FindOwner(p))
	assert.Empty(t, ws.DetachedWindows())
	assert.Nil(t, f.drag.Window("w1"))
}

type gestureKey struct{}

// recordingTracer tags the contexts of its spans so tests can see where they flow.
type recordingTracer struct {
	spans []*recordingSpan
}

type recordingSpan struct {
	panelID entity.PanelID
	moves   int
	outcome string
	ended   bool
}

func (r *recordingTracer) StartDrag(ctx context.Context, panelID entity.PanelID, _ entity.Point) (context.Context, port.DragSpan) {
	span := &recordingSpan{panelID: panelID}
	r.spans = append(r.spans, span)
	return span.Context(ctx), span
}

func (s *recordingSpan) Context(ctx context.Context) context.Context {
	return context.WithValue(ctx, gestureKey{}, s)
}

func (s *recordingSpan) AddMove(entity.Point) { s.moves++ }

func (s *recordingSpan) End(outcome string, _ error) {
	s.outcome = outcome
	s.ended = true
}

func TestDragCoordinator_LandingRunsUnderGestureSpan(t *testing.T) {
	f := newFixture(t, newSurface(t), true)
	tracer := &recordingTracer{}
	f.drag = coordinator.NewDragCoordinator(f.ctx, coordinator.DragCoordinatorConfig{
		Surface:    newSurface(t),
		Windows:    f.windows,
		Workspace:  f.workspace,
		Tracer:     tracer,
		Options:    coordinator.DefaultDragOptions(),
		GenerateID: newTestIDGen("w"),
	})
	p := f.addPanel(t)

	win := mocks.NewMockSecondaryWindow(t)
	win.EXPECT().ID().Return("w1").Maybe()
	win.EXPECT().Bounds().Return(entity.Rect{X: -40, Y: 50, W: 150, H: 100}).Maybe()
	win.EXPECT().SetPointerHandler(f.drag).Once()
	var openedUnder any
	f.windows.EXPECT().OpenWindow(mock.Anything, mock.AnythingOfType("port.WindowRequest")).
		RunAndReturn(func(ctx context.Context, _ port.WindowRequest) (port.SecondaryWindow, error) {
			openedUnder = ctx.Value(gestureKey{})
			return win, nil
		}).Once()

	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 20, Y: 30}))
	f.drag.Move(f.ctx, entity.Point{X: -40, Y: 50})
	landing := f.drag.Complete(f.ctx, entity.Point{X: -40, Y: 50})

	require.Equal(t, coordinator.LandingDetached, landing)
	require.Len(t, tracer.spans, 1)
	span := tracer.spans[0]
	assert.Same(t, span, openedUnder)
	assert.Equal(t, p.ID, span.panelID)
	assert.Equal(t, 1, span.moves)
	assert.True(t, span.ended)
	assert.Equal(t, "detached", span.outcome)
}

func TestDragCoordinator_DetachFromDetachedReplacesWindow(t *testing.T) {
	f := newFixture(t, newSurface(t), true)
	p := f.addPanel(t)
	ws := f.workspace.Workspace()

	first := f.expectWindow(t, "w1")
	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 20, Y: 30}))
	require.Equal(t, coordinator.LandingDetached, f.drag.Complete(f.ctx, entity.Point{X: 900, Y: 30}))

	second := f.expectWindow(t, "w2")
	first.EXPECT().Close().Return(nil).Once()
	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 910, Y: 40}))
	require.Equal(t, coordinator.LandingDetached, f.drag.Complete(f.ctx, entity.Point{X: 1000, Y: 40}))

	require.Len(t, ws.DetachedWindows(), 1)
	assert.Equal(t, entity.WindowID("w2"), ws.FindDetached(p).ID)
	assert.Same(t, second, f.drag.Window("w2"))
	assert.Nil(t, f.drag.Window("w1"))
}

func TestDragCoordinator_WindowFailureKeepsOwner(t *testing.T) {
	f := newFixture(t, newSurface(t), true)
	p := f.addPanel(t)
	ws := f.workspace.Workspace()
	area := ws.Areas()[0]

	f.windows.EXPECT().OpenWindow(mock.Anything, mock.Anything).Return(nil, errors.New("no display")).Once()

	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 20, Y: 30}))
	f.drag.Move(f.ctx, entity.Point{X: 10, Y: -50})
	landing := f.drag.Complete(f.ctx, entity.Point{X: 10, Y: -50})

	assert.Equal(t, coordinator.LandingNone, landing)
	assert.Same(t, area, ws.FindOwner(p))
	assert.Empty(t, ws.DetachedWindows())
	assert.Equal(t, entity.Translation{Attached: true}, p.Translation)
	assert.True(t, p.IsOpaque())
}

func TestDragCoordinator_CaptureLostCompletesAtLastPosition(t *testing.T) {
	f := newFixture(t, newSurface(t), true)
	p := f.addPanel(t)
	win := f.expectWindow(t, "w1")

	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 20, Y: 30}))
	f.drag.Move(f.ctx, entity.Point{X: 850, Y: 30})

	landing := f.drag.CaptureLost(f.ctx)

	assert.Equal(t, coordinator.LandingDetached, landing)
	assert.False(t, f.drag.IsDragging())
	assert.Equal(t, entity.Rect{X: 850, Y: 30, W: 150, H: 100}, f.workspace.Workspace().FindDetached(p).Bounds)
	assert.Same(t, win, f.drag.Window("w1"))
}

func TestDragCoordinator_ReleasesCapture(t *testing.T) {
	surface := mocks.NewMockSurface(t)
	surface.EXPECT().Bounds().Return(testViewport).Maybe()
	surface.EXPECT().LayoutOrigin().Return(entity.Point{}).Maybe()
	surface.EXPECT().HasCapture(mock.Anything).Return(false).Maybe()

	f := newFixture(t, surface, true)
	p := f.addPanel(t)
	surface.EXPECT().CapturePointer(p.ID).Return(true).Once()
	surface.EXPECT().ReleasePointer(p.ID).Once()

	require.True(t, f.drag.Press(f.ctx, p.ID, entity.Point{X: 20, Y: 30}))
	f.drag.Release(f.ctx, entity.Point{X: 25, Y: 35})
	assert.False(t, f.drag.IsDragging())
}

func TestLanding_String(t *testing.T) {
	assert.Equal(t, "none", coordinator.LandingNone.String())
	assert.Equal(t, "moved", coordinator.LandingMoved.String())
	assert.Equal(t, "new_area", coordinator.LandingNewArea.String())
	assert.Equal(t, "detached", coordinator.LandingDetached.String())
	assert.Equal(t, "reclaimed", coordinator.LandingReclaimed.String())
}
