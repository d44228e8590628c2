package entity

import (
	"fmt"
	"strings"
)

// Edge is the side of a directional layout a child is docked to.
type Edge int

const (
	EdgeNone   Edge = iota // Unassigned (floating); laid out as EdgeLeft
	EdgeLeft               // Leading edge
	EdgeTop                // Top edge
	EdgeRight              // Trailing edge
	EdgeBottom             // Bottom edge
	EdgeFill               // Receives the space left by all other children
)

var edgeNames = map[Edge]string{
	EdgeNone:   "none",
	EdgeLeft:   "left",
	EdgeTop:    "top",
	EdgeRight:  "right",
	EdgeBottom: "bottom",
	EdgeFill:   "fill",
}

func (e Edge) String() string {
	if name, ok := edgeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("edge(%d)", int(e))
}

// ParseEdge converts a config or CLI value into an Edge.
func ParseEdge(s string) (Edge, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for edge, name := range edgeNames {
		if name == needle {
			return edge, nil
		}
	}
	return EdgeNone, fmt.Errorf("unknown edge %q", s)
}

// IsHorizontal reports whether the edge consumes width (left/right).
func (e Edge) IsHorizontal() bool {
	return e == EdgeLeft || e == EdgeRight || e == EdgeNone
}

// IsVertical reports whether the edge consumes height (top/bottom).
func (e Edge) IsVertical() bool {
	return e == EdgeTop || e == EdgeBottom
}
