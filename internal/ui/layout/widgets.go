// Package layout provides the directional dock layout and the element
// abstraction it measures and arranges. Elements wrap host widgets, which
// keeps the layout algorithm testable without a UI runtime.
package layout

import "github.com/bnema/dockyard/internal/domain/entity"

// ElementID identifies a child within a layout container.
type ElementID string

// Element is a child that can take part in a two-pass layout.
type Element interface {
	// ElementID returns a stable identity for edge assignment.
	ElementID() ElementID
	// Measure computes the desired size within the available size and caches it.
	Measure(available entity.Size) entity.Size
	// DesiredSize returns the result of the last Measure call.
	DesiredSize() entity.Size
	// Arrange places the element in its final rectangle.
	Arrange(rect entity.Rect)
}

// Invalidator is notified when a container's layout becomes stale.
type Invalidator interface {
	InvalidateMeasure()
}

// InvalidatorFunc adapts a function to Invalidator.
type InvalidatorFunc func()

// InvalidateMeasure calls f.
func (f InvalidatorFunc) InvalidateMeasure() {
	f()
}
