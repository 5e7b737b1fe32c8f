// Package core provides fundamental types and utilities for the invasion arcade.
// It contains no external dependencies (especially no Bubble Tea or ebiten) to
// keep game logic pure and testable.
package core

import "fmt"

// Box is an axis-aligned bounding box in arena (pixel) coordinates.
// X and Y are the top-left corner; Y grows downward.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
// A non-positive width or height is a programming error and panics.
func NewBox(x, y, w, h float64) Box {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid box size %gx%g", w, h))
	}
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// Intersects returns true if this box overlaps with another.
// Boxes that only touch along an edge do not overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// ClampX keeps the box horizontally within [0, width].
func (b Box) ClampX(width float64) Box {
	b.X = ClampF(b.X, 0, width-b.W)
	return b
}

// ClampY keeps the box vertically within [0, height].
func (b Box) ClampY(height float64) Box {
	b.Y = ClampF(b.Y, 0, height-b.H)
	return b
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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
