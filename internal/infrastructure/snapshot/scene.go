// Package snapshot renders dock workspaces to PNG images.
package snapshot

import (
	"math"
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// AreaShape is the drawable state of a dock area.
type AreaShape struct {
	Name        string
	Accent      string
	Bounds      entity.Rect
	Highlighted bool
}

// PanelShape is the drawable state of a panel, at its render position.
type PanelShape struct {
	ID      entity.PanelID
	Title   string
	Accent  string
	Bounds  entity.Rect
	Opacity float64
}

// ZoneShape is a visible hot-zone.
type ZoneShape struct {
	Edge    entity.Edge
	Bounds  entity.Rect
	Hovered bool
}

// WindowShape is a detached window and the panel it hosts.
type WindowShape struct {
	ID     entity.WindowID
	Bounds entity.Rect
	Panel  PanelShape
}

// Scene is an immutable copy of a workspace, in main-surface coordinates.
type Scene struct {
	Surface  entity.Rect
	Areas    []AreaShape
	Panels   []PanelShape
	HotZones []ZoneShape
	Windows  []WindowShape
}

// NewScene copies the drawable state of ws. origin is the layout origin on
// the surface; layout-space bounds are shifted by it.
func NewScene(ws *entity.DockWorkspace, surface entity.Rect, origin entity.Point) Scene {
	scene := Scene{Surface: surface}
	if ws == nil {
		return scene
	}

	var dragged []PanelShape
	for _, area := range ws.Areas() {
		scene.Areas = append(scene.Areas, AreaShape{
			Name:        area.Name,
			Accent:      area.Accent,
			Bounds:      area.Bounds.Offset(origin),
			Highlighted: area.IsHighlighted(),
		})
		for _, p := range area.Panels() {
			shape := PanelShape{
				ID:      p.ID,
				Title:   p.Title,
				Accent:  area.Accent,
				Bounds:  p.RenderBounds().Offset(origin),
				Opacity: p.Opacity,
			}
			if p.IsOpaque() {
				scene.Panels = append(scene.Panels, shape)
			} else {
				dragged = append(dragged, shape)
			}
		}
	}
	// Dragged panels go on top.
	scene.Panels = append(scene.Panels, dragged...)

	for _, z := range ws.HotZones() {
		if !z.Visible {
			continue
		}
		scene.HotZones = append(scene.HotZones, ZoneShape{
			Edge:    z.Edge,
			Bounds:  z.Bounds.Offset(origin),
			Hovered: z.Hovered,
		})
	}

	for _, w := range ws.DetachedWindows() {
		scene.Windows = append(scene.Windows, WindowShape{
			ID:     w.ID,
			Bounds: w.Bounds,
			Panel: PanelShape{
				ID:      w.Panel.ID,
				Title:   w.Panel.Title,
				Bounds:  w.Bounds.Offset(entity.Point{X: w.Panel.Translation.X, Y: w.Panel.Translation.Y}),
				Opacity: w.Panel.Opacity,
			},
		})
	}
	return scene
}

// Canvas returns the smallest rectangle holding the surface and every window.
func (s Scene) Canvas() entity.Rect {
	minX, minY := s.Surface.X, s.Surface.Y
	maxX, maxY := s.Surface.X+s.Surface.W, s.Surface.Y+s.Surface.H
	for _, w := range s.Windows {
		minX = math.Min(minX, w.Bounds.X)
		minY = math.Min(minY, w.Bounds.Y)
		maxX = math.Max(maxX, w.Bounds.X+w.Bounds.W)
		maxY = math.Max(maxY, w.Bounds.Y+w.Bounds.H)
	}
	return entity.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Clone returns a deep copy of the scene.
func (s Scene) Clone() Scene {
	return Scene{
		Surface:  s.Surface,
		Areas:    slices.Clone(s.Areas),
		Panels:   slices.Clone(s.Panels),
		HotZones: slices.Clone(s.HotZones),
		Windows:  slices.Clone(s.Windows),
	}
}
