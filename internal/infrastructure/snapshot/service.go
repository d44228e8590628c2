package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/dockyard/internal/logging"
)

const defaultDebounce = 500 * time.Millisecond

// Service rewrites a live PNG snapshot after workspace changes, debounced.
type Service struct {
	renderer *Renderer
	path     string
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *Scene
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewService creates a snapshot service writing to path.
func NewService(renderer *Renderer, path string, intervalMs int) *Service {
	interval := time.Duration(intervalMs) * time.Millisecond
	if intervalMs <= 0 {
		interval = defaultDebounce
	}
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &Service{
		renderer: renderer,
		path:     path,
		interval: interval,
	}
}

// Path returns the snapshot file path.
func (s *Service) Path() string {
	return s.path
}

// Start enables debounced writes.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().
		Str("path", s.path).
		Dur("interval", s.interval).
		Msg("snapshot service started")
}

// Stop stops the service and writes any pending scene.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty records the latest scene and schedules a write.
// The scene is cloned, so the caller may keep mutating its workspace.
func (s *Service) MarkDirty(scene Scene) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cloned := scene.Clone()
	s.pending = &cloned

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.save(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to write workspace snapshot")
		}
	})
}

// SaveNow writes the pending scene immediately.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.save(ctx)
}

func (s *Service) save(ctx context.Context) error {
	s.mu.Lock()
	scene := s.pending
	s.pending = nil
	s.mu.Unlock()

	if scene == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	// Write beside the target and rename so readers never see a partial PNG.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*.png")
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := s.renderer.Render(*scene, tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", s.path).Msg("workspace snapshot written")
	return nil
}
