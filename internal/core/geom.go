// Package core provides fundamental types and utilities for the flappy platform.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div divides component-wise. Division by a zero component follows IEEE rules.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// AddScaled returns v + o*s, the usual integration step.
func (v Vec2) AddScaled(o Vec2, s float64) Vec2 {
	return Vec2{X: v.X + o.X*s, Y: v.Y + o.Y*s}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downwards, matching screen rows.
type Rect struct {
	Pos  Vec2 // Top-left corner
	Size Vec2 // Width and height, never negative
}

// R creates a rectangle from position and size components.
func R(x, y, w, h float64) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Pos.X + r.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Pos.Y + r.Size.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return r.Pos.AddScaled(r.Size, 0.5)
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Pos: r.Pos.Add(d), Size: r.Size}
}

// Overlaps returns true if the two rectangles intersect.
// Edges are half-open: rectangles that only touch do not overlap.
// The result does not depend on argument order.
func (r Rect) Overlaps(other Rect) bool {
	return r.Pos.X < other.Right() &&
		r.Right() > other.Pos.X &&
		r.Pos.Y < other.Bottom() &&
		r.Bottom() > other.Pos.Y
}

// ContainsPoint returns true if p lies inside the rectangle.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Pos.X && p.X < r.Right() && p.Y >= r.Pos.Y && p.Y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
