package tui_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/tui"
)

func TestHost_Resize(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantMain   int
		wantBounds entity.Rect
	}{
		{"wide", 120, 40, 90, entity.Rect{W: 720, H: 624}},
		{"narrow keeps minimum desktop", 40, 10, 24, entity.Rect{W: 192, H: 144}},
		{"tiny halves", 20, 5, 10, entity.Rect{W: 80, H: 64}},
		{"empty", 0, 0, 0, entity.Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := tui.NewHost()
			host.Resize(tt.cols, tt.rows)

			assert.Equal(t, tt.wantMain, host.MainColumns())
			assert.Equal(t, tt.wantBounds, host.Bounds())
			assert.Equal(t, entity.Point{}, host.LayoutOrigin())
		})
	}
}

func TestHost_Capture(t *testing.T) {
	host := tui.NewHost()

	assert.False(t, host.HasCapture("p1"))
	require.True(t, host.CapturePointer("p1"))
	assert.True(t, host.HasCapture("p1"))
	assert.True(t, host.CapturePointer("p1"), "re-capture by the holder")
	assert.False(t, host.CapturePointer("p2"), "capture is exclusive")

	host.ReleasePointer("p2")
	assert.True(t, host.HasCapture("p1"), "only the holder releases")

	host.ReleasePointer("p1")
	assert.False(t, host.HasCapture("p1"))
	assert.True(t, host.CapturePointer("p2"))
}

func TestHost_OpenWindow(t *testing.T) {
	ctx := context.Background()
	panel := entity.NewPanel("p1", "Panel")

	t.Run("requires a terminal size", func(t *testing.T) {
		host := tui.NewHost()
		_, err := host.OpenWindow(ctx, port.WindowRequest{ID: "w1", Panel: panel})
		assert.ErrorIs(t, err, tui.ErrNoTerminal)
	})

	t.Run("generates an id", func(t *testing.T) {
		host := tui.NewHost()
		host.Resize(120, 40)

		win, err := host.OpenWindow(ctx, port.WindowRequest{Panel: panel, Bounds: entity.Rect{X: 800, Y: 100, W: 150, H: 100}})
		require.NoError(t, err)

		_, parseErr := uuid.Parse(string(win.ID()))
		assert.NoError(t, parseErr)
		assert.Equal(t, entity.Rect{X: 800, Y: 100, W: 150, H: 100}, win.Bounds())
	})

	t.Run("keeps the window on screen", func(t *testing.T) {
		host := tui.NewHost()
		host.Resize(120, 40)

		win, err := host.OpenWindow(ctx, port.WindowRequest{ID: "w1", Bounds: entity.Rect{X: 2000, Y: -50, W: 150, H: 100}})
		require.NoError(t, err)

		assert.Equal(t, entity.Rect{X: 810, Y: 0, W: 150, H: 100}, win.Bounds())
	})
}

func TestHost_WindowStacking(t *testing.T) {
	ctx := context.Background()
	host := tui.NewHost()
	host.Resize(120, 40)

	bottom, err := host.OpenWindow(ctx, port.WindowRequest{ID: "w1", Panel: entity.NewPanel("p1", ""), Bounds: entity.Rect{X: 740, Y: 100, W: 150, H: 100}})
	require.NoError(t, err)
	top, err := host.OpenWindow(ctx, port.WindowRequest{ID: "w2", Panel: entity.NewPanel("p2", ""), Bounds: entity.Rect{X: 800, Y: 150, W: 150, H: 100}})
	require.NoError(t, err)

	assert.Equal(t, entity.WindowID("w2"), host.WindowAt(entity.Point{X: 820, Y: 180}).ID())
	assert.Equal(t, entity.WindowID("w1"), host.WindowAt(entity.Point{X: 750, Y: 110}).ID())
	assert.Nil(t, host.WindowAt(entity.Point{X: 10, Y: 10}))
	assert.Equal(t, entity.PanelID("p2"), host.WindowAt(entity.Point{X: 820, Y: 180}).PanelID())

	require.NoError(t, top.Close())
	require.NoError(t, top.Close())
	assert.Len(t, host.Windows(), 1)
	assert.Equal(t, entity.WindowID("w1"), host.WindowAt(entity.Point{X: 820, Y: 180}).ID())

	require.NoError(t, bottom.Close())
	assert.Empty(t, host.Windows())
}

func TestCellMapping(t *testing.T) {
	assert.Equal(t, entity.Point{X: 44, Y: 56}, tui.ToSurface(5, 3))
	assert.Equal(t, tui.CellRect{X: 1, Y: 2, W: 19, H: 6}, tui.ToCells(entity.Rect{X: 8, Y: 24, W: 150, H: 100}))
	assert.Equal(t, tui.CellRect{X: 0, Y: 0, W: 90, H: 39}, tui.ToCells(entity.Rect{W: 720, H: 624}))
}
