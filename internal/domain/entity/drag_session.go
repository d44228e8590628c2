package entity

// DragSession is the transient state of one drag gesture.
// It is created on press, mutated on move and cleared on release.
type DragSession struct {
	Panel *Panel
	Start Point // Press position
	Last  Point // Last processed pointer position

	// Source is the detached window the drag started in, empty for the main surface.
	Source WindowID

	// Accumulated is the sum of move deltas for this gesture.
	Accumulated Point
	Active      bool
}

// NewDragSession starts an active session for the panel at pos.
func NewDragSession(p *Panel, pos Point, source WindowID) *DragSession {
	return &DragSession{
		Panel:  p,
		Start:  pos,
		Last:   pos,
		Source: source,
		Active: true,
	}
}

// Advance records a new pointer position and returns the delta from the previous one.
func (s *DragSession) Advance(pos Point) Point {
	delta := pos.Sub(s.Last)
	s.Last = pos
	s.Accumulated = s.Accumulated.Add(delta)
	return delta
}
