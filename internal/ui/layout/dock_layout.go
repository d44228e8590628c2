package layout

import (
	"math"
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Options configures a DockLayout.
type Options struct {
	Padding           entity.Thickness
	HorizontalSpacing float64
	VerticalSpacing   float64
	// LastChildFills makes the last child fill the remaining space when no
	// child is explicitly assigned entity.EdgeFill.
	LastChildFills bool
}

// DockLayout arranges children against the edges of its rectangle, in
// insertion order, each child shrinking the space left for the next. A single
// fill child is measured and arranged last and receives the remainder.
//
// Fill resolution: the last child assigned EdgeFill wins; earlier EdgeFill
// children are laid out as EdgeLeft, like unassigned children. Without an
// explicit fill child, LastChildFills promotes the last child.
type DockLayout struct {
	id       ElementID
	opts     Options
	children []Element
	edgeOf   map[ElementID]entity.Edge

	desired      entity.Size
	bounds       entity.Rect
	measureValid bool
	parent       Invalidator
}

// NewDockLayout creates an empty layout container.
func NewDockLayout(id ElementID, opts Options) *DockLayout {
	return &DockLayout{
		id:     id,
		opts:   opts,
		edgeOf: make(map[ElementID]entity.Edge),
	}
}

// ElementID implements Element.
func (l *DockLayout) ElementID() ElementID {
	return l.id
}

// SetInvalidator registers the parent notified when this layout goes stale.
func (l *DockLayout) SetInvalidator(parent Invalidator) {
	l.parent = parent
}

// Options returns the current configuration.
func (l *DockLayout) Options() Options {
	return l.opts
}

// SetOptions replaces the configuration and invalidates measure.
func (l *DockLayout) SetOptions(opts Options) {
	l.opts = opts
	l.InvalidateMeasure()
}

// Add appends a child docked to edge. Adding an existing child only updates its edge.
func (l *DockLayout) Add(child Element, edge entity.Edge) {
	if child == nil {
		return
	}
	if l.indexOf(child.ElementID()) < 0 {
		l.children = append(l.children, child)
	}
	l.SetEdge(child.ElementID(), edge)
}

// Remove drops a child and its edge assignment.
func (l *DockLayout) Remove(id ElementID) bool {
	idx := l.indexOf(id)
	if idx < 0 {
		return false
	}
	l.children = slices.Delete(l.children, idx, idx+1)
	delete(l.edgeOf, id)
	l.InvalidateMeasure()
	return true
}

// Clear removes every child.
func (l *DockLayout) Clear() {
	l.children = nil
	clear(l.edgeOf)
	l.InvalidateMeasure()
}

// SetEdge assigns an edge to a child and triggers re-layout.
func (l *DockLayout) SetEdge(id ElementID, edge entity.Edge) {
	l.edgeOf[id] = edge
	l.InvalidateMeasure()
}

// EdgeOf returns the edge assigned to a child (EdgeNone when unknown).
func (l *DockLayout) EdgeOf(id ElementID) entity.Edge {
	return l.edgeOf[id]
}

// Children returns the children in insertion order. The slice must not be modified.
func (l *DockLayout) Children() []Element {
	return l.children
}

// Len returns the number of children.
func (l *DockLayout) Len() int {
	return len(l.children)
}

// InvalidateMeasure marks the layout stale and propagates to the parent.
func (l *DockLayout) InvalidateMeasure() {
	l.measureValid = false
	if l.parent != nil {
		l.parent.InvalidateMeasure()
	}
}

// IsMeasureValid reports whether the cached desired size is current.
func (l *DockLayout) IsMeasureValid() bool {
	return l.measureValid
}

// DesiredSize implements Element.
func (l *DockLayout) DesiredSize() entity.Size {
	return l.desired
}

// Bounds returns the rectangle from the last Arrange.
func (l *DockLayout) Bounds() entity.Rect {
	return l.bounds
}

// FillChild returns the child that receives the remaining space, if any.
func (l *DockLayout) FillChild() Element {
	if idx := l.fillIndex(); idx >= 0 {
		return l.children[idx]
	}
	return nil
}

// Layout runs both passes against rect.
func (l *DockLayout) Layout(rect entity.Rect) entity.Size {
	desired := l.Measure(rect.Size())
	l.Arrange(rect)
	return desired
}

// Measure implements Element.
func (l *DockLayout) Measure(available entity.Size) entity.Size {
	var parentWidth, parentHeight float64
	accumulatedWidth := l.opts.Padding.Horizontal()
	accumulatedHeight := l.opts.Padding.Vertical()

	var horizontalUsed, verticalUsed bool
	fill := l.fillIndex()

	for i, child := range l.children {
		if i == fill {
			continue
		}
		constraint := entity.Size{
			Width:  entity.PositiveOrZero(available.Width - accumulatedWidth),
			Height: entity.PositiveOrZero(available.Height - accumulatedHeight),
		}
		desired := child.Measure(constraint)

		if l.effectiveEdge(i, fill).IsVertical() {
			verticalUsed = true
			parentWidth = math.Max(parentWidth, accumulatedWidth+desired.Width)
			if constraint.Height != 0 {
				accumulatedHeight += l.opts.VerticalSpacing
			}
			accumulatedHeight += desired.Height
		} else {
			horizontalUsed = true
			parentHeight = math.Max(parentHeight, accumulatedHeight+desired.Height)
			if constraint.Width != 0 {
				accumulatedWidth += l.opts.HorizontalSpacing
			}
			accumulatedWidth += desired.Width
		}
	}

	if fill >= 0 {
		constraint := entity.Size{
			Width:  entity.PositiveOrZero(available.Width - accumulatedWidth),
			Height: entity.PositiveOrZero(available.Height - accumulatedHeight),
		}
		desired := l.children[fill].Measure(constraint)
		parentHeight = math.Max(parentHeight, accumulatedHeight+desired.Height)
		parentWidth = math.Max(parentWidth, accumulatedWidth+desired.Width)
		accumulatedHeight += desired.Height
		accumulatedWidth += desired.Width
	} else {
		if horizontalUsed {
			accumulatedWidth -= l.opts.HorizontalSpacing
		}
		if verticalUsed {
			accumulatedHeight -= l.opts.VerticalSpacing
		}
	}

	l.desired = entity.Size{
		Width:  entity.PositiveOrZero(math.Min(available.Width, math.Max(parentWidth, accumulatedWidth))),
		Height: entity.PositiveOrZero(math.Min(available.Height, math.Max(parentHeight, accumulatedHeight))),
	}
	l.measureValid = true
	return l.desired
}

// Arrange implements Element.
func (l *DockLayout) Arrange(rect entity.Rect) {
	l.bounds = rect
	if len(l.children) == 0 {
		return
	}

	current := rect.Inset(l.opts.Padding)
	fill := l.fillIndex()

	for i, child := range l.children {
		if i == fill {
			continue
		}
		desired := child.DesiredSize()

		switch l.effectiveEdge(i, fill) {
		case entity.EdgeTop:
			height := math.Min(desired.Height, current.H)
			child.Arrange(entity.Rect{X: current.X, Y: current.Y, W: current.W, H: height})
			height += l.opts.VerticalSpacing
			current.Y += height
			current.H = entity.PositiveOrZero(current.H - height)
		case entity.EdgeRight:
			width := math.Min(desired.Width, current.W)
			child.Arrange(entity.Rect{X: current.X + current.W - width, Y: current.Y, W: width, H: current.H})
			width += l.opts.HorizontalSpacing
			current.W = entity.PositiveOrZero(current.W - width)
		case entity.EdgeBottom:
			height := math.Min(desired.Height, current.H)
			child.Arrange(entity.Rect{X: current.X, Y: current.Y + current.H - height, W: current.W, H: height})
			height += l.opts.VerticalSpacing
			current.H = entity.PositiveOrZero(current.H - height)
		default:
			width := math.Min(desired.Width, current.W)
			child.Arrange(entity.Rect{X: current.X, Y: current.Y, W: width, H: current.H})
			width += l.opts.HorizontalSpacing
			current.X += width
			current.W = entity.PositiveOrZero(current.W - width)
		}
	}

	if fill >= 0 {
		l.children[fill].Arrange(current)
	}
}

// fillIndex resolves which child fills, or -1.
func (l *DockLayout) fillIndex() int {
	for i := len(l.children) - 1; i >= 0; i-- {
		if l.edgeOf[l.children[i].ElementID()] == entity.EdgeFill {
			return i
		}
	}
	if l.opts.LastChildFills && len(l.children) > 0 {
		return len(l.children) - 1
	}
	return -1
}

// effectiveEdge maps the stored edge to the edge used for carving.
func (l *DockLayout) effectiveEdge(i, fill int) entity.Edge {
	if i == fill {
		return entity.EdgeFill
	}
	switch edge := l.edgeOf[l.children[i].ElementID()]; edge {
	case entity.EdgeTop, entity.EdgeRight, entity.EdgeBottom:
		return edge
	default:
		return entity.EdgeLeft
	}
}

func (l *DockLayout) indexOf(id ElementID) int {
	return slices.IndexFunc(l.children, func(e Element) bool {
		return e.ElementID() == id
	})
}
