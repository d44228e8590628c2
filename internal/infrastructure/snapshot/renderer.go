package snapshot

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Palette colours.
const (
	backgroundColor  = "#1e2127"
	areaFillColor    = "#282c34"
	panelFillColor   = "#3e4451"
	hotZoneColor     = "#abb2bf"
	windowFrameColor = "#5c6370"
	defaultAccent    = "#61afef"
)

const (
	areaBorderWidth   = 2
	areaHeaderHeight  = 16
	highlightAlpha    = 0.25
	hotZoneHoverAlpha = 0.6
	windowFrameWidth  = 4
)

// ErrEmptyCanvas is returned when a scene has nothing to paint on.
var ErrEmptyCanvas = errors.New("snapshot: empty canvas")

// Renderer paints scenes with the gg software rasterizer.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw paints the scene and returns the image. The image origin is the
// top-left corner of Scene.Canvas.
func (r *Renderer) Draw(scene Scene) (image.Image, error) {
	dc, err := r.paint(scene)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// Render paints the scene and encodes it as PNG to w.
func (r *Renderer) Render(scene Scene, w io.Writer) error {
	dc, err := r.paint(scene)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// RenderFile writes the scene as a PNG file at path.
func (r *Renderer) RenderFile(scene Scene, path string) error {
	dc, err := r.paint(scene)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (r *Renderer) paint(scene Scene) (*gg.Context, error) {
	canvas := scene.Canvas()
	width, height := int(math.Ceil(canvas.W)), int(math.Ceil(canvas.H))
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyCanvas
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.Hex(backgroundColor))
	dc.Translate(-canvas.X, -canvas.Y)

	var errs []error
	for _, area := range scene.Areas {
		errs = append(errs, drawArea(dc, area))
	}
	for _, zone := range scene.HotZones {
		errs = append(errs, drawHotZone(dc, zone))
	}
	for _, panel := range scene.Panels {
		errs = append(errs, drawPanel(dc, panel))
	}
	for _, window := range scene.Windows {
		errs = append(errs, drawWindow(dc, window))
	}
	errs = append(errs, dc.FlushGPU())
	if err := errors.Join(errs...); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("failed to paint snapshot: %w", err)
	}
	return dc, nil
}

func drawArea(dc *gg.Context, area AreaShape) error {
	accent := accentOf(area.Accent)
	b := area.Bounds
	if b.IsEmpty() {
		return nil
	}

	if err := fillRect(dc, b, gg.Hex(areaFillColor)); err != nil {
		return err
	}
	header := entity.Rect{X: b.X, Y: b.Y, W: b.W, H: math.Min(areaHeaderHeight, b.H)}
	if err := fillRect(dc, header, withAlpha(accent, 0.5)); err != nil {
		return err
	}
	if area.Highlighted {
		if err := fillRect(dc, b, withAlpha(accent, highlightAlpha)); err != nil {
			return err
		}
	}

	half := areaBorderWidth / 2.0
	dc.SetLineWidth(areaBorderWidth)
	dc.SetColor(accent.Color())
	dc.DrawRectangle(b.X+half, b.Y+half, b.W-areaBorderWidth, b.H-areaBorderWidth)
	return dc.Stroke()
}

func drawHotZone(dc *gg.Context, zone ZoneShape) error {
	col := gg.Hex(hotZoneColor)
	if zone.Hovered {
		if err := fillRect(dc, zone.Bounds, withAlpha(col, hotZoneHoverAlpha)); err != nil {
			return err
		}
	}
	dc.SetLineWidth(1)
	dc.SetColor(col.Color())
	dc.DrawRectangle(zone.Bounds.X+0.5, zone.Bounds.Y+0.5, zone.Bounds.W-1, zone.Bounds.H-1)
	return dc.Stroke()
}

func drawPanel(dc *gg.Context, panel PanelShape) error {
	if panel.Bounds.IsEmpty() {
		return nil
	}
	opacity := panel.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	if err := fillRect(dc, panel.Bounds, withAlpha(gg.Hex(panelFillColor), opacity)); err != nil {
		return err
	}
	dc.SetLineWidth(1)
	dc.SetColor(withAlpha(accentOf(panel.Accent), opacity).Color())
	dc.DrawRectangle(panel.Bounds.X+0.5, panel.Bounds.Y+0.5, panel.Bounds.W-1, panel.Bounds.H-1)
	return dc.Stroke()
}

func drawWindow(dc *gg.Context, window WindowShape) error {
	if err := fillRect(dc, window.Bounds, gg.Hex(windowFrameColor)); err != nil {
		return err
	}
	inner := window.Bounds.Inset(entity.UniformThickness(windowFrameWidth))
	panel := window.Panel
	panel.Bounds = inner.Offset(entity.Point{
		X: panel.Bounds.X - window.Bounds.X,
		Y: panel.Bounds.Y - window.Bounds.Y,
	})
	return drawPanel(dc, panel)
}

func fillRect(dc *gg.Context, r entity.Rect, col gg.RGBA) error {
	dc.SetColor(col.Color())
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	return dc.Fill()
}

func accentOf(hex string) gg.RGBA {
	if hex == "" {
		hex = defaultAccent
	}
	return gg.Hex(hex)
}

func withAlpha(c gg.RGBA, alpha float64) gg.RGBA {
	c.A *= alpha
	return c
}
