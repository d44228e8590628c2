package port

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// DragTracer records one span per drag gesture.
type DragTracer interface {
	StartDrag(ctx context.Context, panelID entity.PanelID, origin entity.Point) (context.Context, DragSpan)
}

// DragSpan is the span of a single gesture, ended on landing.
type DragSpan interface {
	// Context returns ctx carrying the span, so landing work is recorded under it.
	Context(ctx context.Context) context.Context
	// AddMove records a processed move event.
	AddMove(pos entity.Point)
	// End closes the span with the landing outcome (e.g. "moved", "detached").
	End(outcome string, err error)
}
