package entity

// PanelID uniquely identifies a draggable panel.
type PanelID string

const (
	// DefaultPanelWidth and DefaultPanelHeight size panels created by the add action.
	DefaultPanelWidth  = 150
	DefaultPanelHeight = 100

	opaque = 1.0
)

// Translation is a render-time offset applied on top of the laid-out position.
// Attached mirrors whether a translate transform has ever been set on the panel,
// so drags reuse the existing transform instead of replacing it.
type Translation struct {
	X, Y     float64
	Attached bool
}

// Panel is an opaque unit of content that can be dragged between owners.
// Ownership lives on DockWorkspace; a panel never points back at its owner.
type Panel struct {
	ID          PanelID
	Title       string
	DesiredSize Size
	Bounds      Rect // Arranged rectangle, relative to the owner's coordinate space
	Translation Translation
	Opacity     float64
}

// NewPanel creates a fully opaque panel with the default size.
func NewPanel(id PanelID, title string) *Panel {
	if title == "" {
		title = string(id)
	}
	return &Panel{
		ID:          id,
		Title:       title,
		DesiredSize: Size{Width: DefaultPanelWidth, Height: DefaultPanelHeight},
		Opacity:     opaque,
	}
}

// Translate adds a delta to the panel's render offset.
func (p *Panel) Translate(delta Point) {
	p.Translation.X += delta.X
	p.Translation.Y += delta.Y
	p.Translation.Attached = true
}

// ResetTranslation snaps the panel back to its natural layout position.
// The transform stays attached (identity), matching a freshly assigned transform.
func (p *Panel) ResetTranslation() {
	p.Translation = Translation{Attached: true}
}

// RenderBounds returns the arranged bounds shifted by the current translation.
func (p *Panel) RenderBounds() Rect {
	return p.Bounds.Offset(Point{X: p.Translation.X, Y: p.Translation.Y})
}

// IsOpaque reports whether the panel is drawn at full opacity.
func (p *Panel) IsOpaque() bool {
	return p.Opacity >= opaque
}

// RestoreOpacity resets the panel to full opacity.
func (p *Panel) RestoreOpacity() {
	p.Opacity = opaque
}
