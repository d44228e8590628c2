package entity

// WindowID identifies a secondary top-level surface.
type WindowID string

// DetachedWindow is a secondary surface holding exactly one panel.
// It is destroyed when its panel is reclaimed into the main layout.
type DetachedWindow struct {
	ID     WindowID
	Panel  *Panel
	Bounds Rect // Main-surface coordinates; may lie outside the main surface
}
