package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/snapshot"
)

const (
	styleDesktop      = "desktop"
	styleDivider      = "divider"
	stylePanel        = "panel"
	stylePanelDragged = "panel-dragged"
	styleWindow       = "window"
	styleHotZone      = "hot-zone"
	styleHotZoneHover = "hot-zone-hover"
	accentStylePrefix = "accent:"
	highlightPrefix   = "highlight:"
)

var zoneGlyphs = map[entity.Edge]rune{
	entity.EdgeLeft:   '←',
	entity.EdgeTop:    '↑',
	entity.EdgeRight:  '→',
	entity.EdgeBottom: '↓',
}

// sceneRenderer paints a workspace scene onto a canvas.
type sceneRenderer struct {
	theme  *styles.Theme
	canvas *Canvas
}

func newSceneRenderer(theme *styles.Theme, width, height int) *sceneRenderer {
	c := NewCanvas(width, height)
	c.DefineStyle(styleDesktop, theme.Desktop)
	c.DefineStyle(styleDivider, theme.Divider)
	c.DefineStyle(stylePanel, theme.PanelBody)
	c.DefineStyle(stylePanelDragged, theme.PanelDragged)
	c.DefineStyle(styleWindow, theme.WindowFrame)
	c.DefineStyle(styleHotZone, theme.HotZone)
	c.DefineStyle(styleHotZoneHover, theme.HotZoneHover)
	return &sceneRenderer{theme: theme, canvas: c}
}

// draw paints the desktop strip starting at column mainCols, then the scene.
func (r *sceneRenderer) draw(scene snapshot.Scene, mainCols int) *Canvas {
	width, height := r.canvas.Size()
	if mainCols < width {
		r.canvas.Fill(CellRect{X: mainCols, W: width - mainCols, H: height}, '·', styleDesktop)
		r.canvas.Fill(CellRect{X: mainCols, W: 1, H: height}, '│', styleDivider)
	}

	for _, area := range scene.Areas {
		r.drawArea(area)
	}
	for _, zone := range scene.HotZones {
		r.drawZone(zone)
	}
	for _, panel := range scene.Panels {
		r.drawPanel(panel)
	}
	for _, window := range scene.Windows {
		r.drawWindow(window)
	}
	return r.canvas
}

func (r *sceneRenderer) accent(hex string) string {
	name := accentStylePrefix + hex
	if !r.canvas.HasStyle(name) {
		r.canvas.DefineStyle(name, r.theme.AccentStyle(hex))
	}
	return name
}

func (r *sceneRenderer) highlight(hex string) string {
	name := highlightPrefix + hex
	if !r.canvas.HasStyle(name) {
		r.canvas.DefineStyle(name, r.theme.AccentStyle(hex).Faint(true))
	}
	return name
}

func (r *sceneRenderer) drawArea(area snapshot.AreaShape) {
	rect := ToCells(area.Bounds)
	if area.Highlighted {
		r.canvas.Fill(CellRect{X: rect.X + 1, Y: rect.Y + 1, W: rect.W - 2, H: rect.H - 2}, '░', r.highlight(area.Accent))
	}
	style := r.accent(area.Accent)
	border := lipgloss.RoundedBorder()
	if area.Highlighted {
		border = lipgloss.ThickBorder()
	}
	r.canvas.Box(rect, border, style)
	r.canvas.Text(rect.X+2, rect.Y, " "+area.Name+" ", rect.W-4, style)
}

func (r *sceneRenderer) drawZone(zone snapshot.ZoneShape) {
	style := styleHotZone
	if zone.Hovered {
		style = styleHotZoneHover
	}
	r.canvas.Fill(ToCells(zone.Bounds), zoneGlyphs[zone.Edge], style)
}

func (r *sceneRenderer) drawPanel(panel snapshot.PanelShape) {
	rect := ToCells(panel.Bounds)
	frame, body := r.accent(panel.Accent), stylePanel
	if panel.Opacity > 0 && panel.Opacity < 1 {
		frame, body = stylePanelDragged, stylePanelDragged
	}
	r.canvas.Fill(CellRect{X: rect.X + 1, Y: rect.Y + 1, W: rect.W - 2, H: rect.H - 2}, ' ', body)
	r.canvas.Box(rect, lipgloss.NormalBorder(), frame)
	r.canvas.Text(rect.X+1, rect.Y+1, panel.Title, rect.W-2, body)
}

func (r *sceneRenderer) drawWindow(window snapshot.WindowShape) {
	rect := ToCells(window.Bounds)
	r.canvas.Fill(CellRect{X: rect.X + 1, Y: rect.Y + 1, W: rect.W - 2, H: rect.H - 2}, ' ', stylePanel)
	r.canvas.Box(rect, lipgloss.DoubleBorder(), styleWindow)
	r.canvas.Text(rect.X+1, rect.Y+1, window.Panel.Title, rect.W-2, stylePanel)

	// A panel being dragged out of its window follows the pointer.
	if window.Panel.Bounds != window.Bounds {
		r.drawPanel(window.Panel)
	}
}
