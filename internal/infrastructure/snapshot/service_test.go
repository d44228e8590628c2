package snapshot_test

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/snapshot"
)

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestService_MarkDirtyWritesAfterDebounce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "live", "workspace.png")
	ws, _, _ := newWorkspace(t)

	svc := snapshot.NewService(nil, path, 10)
	svc.Start(ctx)
	t.Cleanup(func() { _ = svc.Stop(ctx) })

	svc.MarkDirty(snapshot.NewScene(ws, surface, entity.Point{}))

	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	w, h := decodeSize(t, path)
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
}

func TestService_StopFlushesPendingScene(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "workspace.png")
	ws, _, _ := newWorkspace(t)

	svc := snapshot.NewService(nil, path, int(time.Hour/time.Millisecond))
	svc.Start(ctx)
	svc.MarkDirty(snapshot.NewScene(ws, entity.Rect{W: 640, H: 480}, entity.Point{}))

	require.NoError(t, svc.Stop(ctx))

	w, h := decodeSize(t, path)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestService_NothingPending(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "workspace.png")

	svc := snapshot.NewService(nil, path, 0)
	svc.Start(ctx)

	require.NoError(t, svc.Stop(ctx))
	assert.NoFileExists(t, path)
	assert.Equal(t, path, svc.Path())
}

func TestService_LatestSceneWins(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "workspace.png")
	ws, _, _ := newWorkspace(t)

	svc := snapshot.NewService(nil, path, int(time.Hour/time.Millisecond))
	svc.Start(ctx)
	svc.MarkDirty(snapshot.NewScene(ws, entity.Rect{W: 400, H: 300}, entity.Point{}))
	svc.MarkDirty(snapshot.NewScene(ws, entity.Rect{W: 500, H: 300}, entity.Point{}))

	require.NoError(t, svc.SaveNow(ctx))

	w, _ := decodeSize(t, path)
	assert.Equal(t, 500, w)
}
