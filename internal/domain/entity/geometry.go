// Package entity defines domain entities for the docking workspace.
package entity

import "math"

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is a width/height pair. Layout code never produces negative sizes.
type Size struct {
	Width, Height float64
}

// Thickness is an inset on each side of a rectangle.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// UniformThickness returns a thickness with the same inset on every side.
func UniformThickness(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns the sum of the left and right insets.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns the sum of the top and bottom insets.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Rect is an axis-aligned rectangle.
// X, Y is the top-left corner; W and H are never negative when produced by layout.
type Rect struct {
	X, Y float64
	W, H float64
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{Width: r.W, Height: r.H}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// Offset returns r translated by p.
func (r Rect) Offset(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

// Inset shrinks r by t. The resulting extent is clamped at zero.
func (r Rect) Inset(t Thickness) Rect {
	return Rect{
		X: r.X + t.Left,
		Y: r.Y + t.Top,
		W: PositiveOrZero(r.W - t.Horizontal()),
		H: PositiveOrZero(r.H - t.Vertical()),
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// PositiveOrZero clamps negative values to zero.
func PositiveOrZero(v float64) float64 {
	return math.Max(v, 0)
}
