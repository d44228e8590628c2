package entity

// HotZone is a reserved region that creates a new dock area at Edge when a
// drag is released over it. Zones belong to an area and are laid out as a
// cross around the area's centre.
type HotZone struct {
	AreaID  AreaID
	Edge    Edge
	Bounds  Rect // Layout-space rectangle
	Visible bool // Shown while the owning area is the drop target
	Hovered bool // Pointer currently over the zone
}

// hotZoneEdges is the order zones are registered in, and therefore the order
// they are hit-tested in.
var hotZoneEdges = [...]Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom}

// HotZonesFor computes the cross of hot-zones centred in an area's bounds.
// Areas too small to hold the full cross get no zones.
func HotZonesFor(area *DockArea, zone Size) []HotZone {
	if area == nil || zone.Width <= 0 || zone.Height <= 0 {
		return nil
	}
	b := area.Bounds
	if b.W < 3*zone.Width || b.H < 3*zone.Height {
		return nil
	}

	c := b.Center()
	left := c.X - zone.Width/2
	top := c.Y - zone.Height/2

	zones := make([]HotZone, 0, len(hotZoneEdges))
	for _, edge := range hotZoneEdges {
		r := Rect{X: left, Y: top, W: zone.Width, H: zone.Height}
		switch edge {
		case EdgeLeft:
			r.X -= zone.Width
		case EdgeRight:
			r.X += zone.Width
		case EdgeTop:
			r.Y -= zone.Height
		case EdgeBottom:
			r.Y += zone.Height
		}
		zones = append(zones, HotZone{
			AreaID:  area.ID,
			Edge:    edge,
			Bounds:  r,
			Visible: area.IsHighlighted(),
		})
	}
	return zones
}
