// Package tui hosts the docking workspace in a terminal. The terminal is
// split into the main surface on the left and a desktop strip on the right
// where detached panels float as secondary windows.
package tui

import (
	"context"
	"errors"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// One terminal cell in surface units.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

const (
	statusRows     = 1
	minDesktopCols = 16
)

// ErrNoTerminal is returned when a window is requested before the first resize.
var ErrNoTerminal = errors.New("terminal size unknown")

// CellRect is a rectangle in terminal cells.
type CellRect struct {
	X, Y, W, H int
}

// ToCells maps a rectangle in surface units to the cells it covers.
func ToCells(r entity.Rect) CellRect {
	x0 := int(math.Round(r.X / CellWidth))
	y0 := int(math.Round(r.Y / CellHeight))
	x1 := int(math.Round((r.X + r.W) / CellWidth))
	y1 := int(math.Round((r.Y + r.H) / CellHeight))
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ToSurface maps a cell to the surface point at its centre.
func ToSurface(col, row int) entity.Point {
	return entity.Point{
		X: float64(col)*CellWidth + CellWidth/2,
		Y: float64(row)*CellHeight + CellHeight/2,
	}
}

// Host is the terminal implementation of the surface and window ports.
type Host struct {
	cols, rows int
	mainCols   int

	capture entity.PanelID
	windows []*Window // z-order, topmost last
}

var (
	_ port.Surface       = (*Host)(nil)
	_ port.WindowFactory = (*Host)(nil)
)

// NewHost creates a host with no terminal size yet.
func NewHost() *Host {
	return &Host{}
}

// Resize records the terminal size in cells.
func (h *Host) Resize(cols, rows int) {
	h.cols = max(cols, 0)
	h.rows = max(rows, 0)
	h.mainCols = h.cols - desktopColumns(h.cols)
}

func desktopColumns(cols int) int {
	d := cols / 4
	if d < minDesktopCols {
		d = min(minDesktopCols, cols/2)
	}
	return d
}

// Size returns the terminal size in cells.
func (h *Host) Size() (cols, rows int) {
	return h.cols, h.rows
}

// MainColumns returns the width of the main surface in cells.
func (h *Host) MainColumns() int {
	return h.mainCols
}

// Bounds implements port.Surface.
func (h *Host) Bounds() entity.Rect {
	return entity.Rect{
		W: float64(h.mainCols) * CellWidth,
		H: float64(max(h.rows-statusRows, 0)) * CellHeight,
	}
}

// Desktop returns the area windows may occupy: the whole terminal minus the status bar.
func (h *Host) Desktop() entity.Rect {
	return entity.Rect{
		W: float64(h.cols) * CellWidth,
		H: float64(max(h.rows-statusRows, 0)) * CellHeight,
	}
}

// LayoutOrigin implements port.Surface. The layout fills the main surface.
func (h *Host) LayoutOrigin() entity.Point {
	return entity.Point{}
}

// CapturePointer implements port.Surface. Only one panel holds the capture.
func (h *Host) CapturePointer(id entity.PanelID) bool {
	if h.capture != "" && h.capture != id {
		return false
	}
	h.capture = id
	return true
}

// ReleasePointer implements port.Surface.
func (h *Host) ReleasePointer(id entity.PanelID) {
	if h.capture == id {
		h.capture = ""
	}
}

// HasCapture implements port.Surface.
func (h *Host) HasCapture(id entity.PanelID) bool {
	return id != "" && h.capture == id
}

// OpenWindow implements port.WindowFactory. The window is kept on screen.
func (h *Host) OpenWindow(ctx context.Context, req port.WindowRequest) (port.SecondaryWindow, error) {
	if h.cols == 0 || h.rows <= statusRows {
		return nil, ErrNoTerminal
	}

	id := req.ID
	if id == "" {
		id = entity.WindowID(uuid.NewString())
	}

	w := &Window{
		id:     id,
		title:  req.Title,
		panel:  req.Panel,
		bounds: clampInto(req.Bounds, h.Desktop()),
		host:   h,
	}
	h.windows = append(h.windows, w)

	logging.FromContext(ctx).Debug().
		Str("window_id", string(id)).
		Float64("x", w.bounds.X).
		Float64("y", w.bounds.Y).
		Msg("terminal window opened")
	return w, nil
}

// Windows returns the open windows, bottom to top.
func (h *Host) Windows() []*Window {
	return h.windows
}

// WindowAt returns the topmost window containing pos.
func (h *Host) WindowAt(pos entity.Point) *Window {
	for i := len(h.windows) - 1; i >= 0; i-- {
		if h.windows[i].bounds.Contains(pos) {
			return h.windows[i]
		}
	}
	return nil
}

func (h *Host) removeWindow(w *Window) bool {
	idx := slices.Index(h.windows, w)
	if idx < 0 {
		return false
	}
	h.windows = slices.Delete(h.windows, idx, idx+1)
	return true
}

func clampInto(r, area entity.Rect) entity.Rect {
	r.W = math.Min(r.W, area.W)
	r.H = math.Min(r.H, area.H)
	r.X = math.Max(area.X, math.Min(r.X, area.X+area.W-r.W))
	r.Y = math.Max(area.Y, math.Min(r.Y, area.Y+area.H-r.H))
	return r
}

// Window is a detached panel floating over the terminal.
type Window struct {
	id      entity.WindowID
	title   string
	panel   *entity.Panel
	bounds  entity.Rect
	handler port.PointerHandler
	host    *Host
}

var _ port.SecondaryWindow = (*Window)(nil)

// ID implements port.SecondaryWindow.
func (w *Window) ID() entity.WindowID {
	return w.id
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// PanelID returns the hosted panel's ID.
func (w *Window) PanelID() entity.PanelID {
	if w.panel == nil {
		return ""
	}
	return w.panel.ID
}

// Bounds implements port.SecondaryWindow.
func (w *Window) Bounds() entity.Rect {
	return w.bounds
}

// SetPointerHandler implements port.SecondaryWindow.
func (w *Window) SetPointerHandler(h port.PointerHandler) {
	w.handler = h
}

// PointerHandler returns the handler pointer events are routed to.
func (w *Window) PointerHandler() port.PointerHandler {
	return w.handler
}

// Close implements port.SecondaryWindow. Closing twice is a no-op.
func (w *Window) Close() error {
	w.host.removeWindow(w)
	w.handler = nil
	return nil
}
