// Package core provides fundamental types and utilities for the Fuel Drift
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Vec2 is a 2D vector used for positions and velocities in world units.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new vector with the given components.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// AABB represents an axis-aligned bounding box in world units.
type AABB struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewAABB creates a new bounding box with the given position and dimensions.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{X: x, Y: y, W: w, H: h}
}

// Right is the x-coordinate of the right edge.
func (a AABB) Right() float64 {
	return a.X + a.W
}

// Bottom is the y-coordinate of the lower edge.
func (a AABB) Bottom() float64 {
	return a.Y + a.H
}

// Overlaps returns true if this box overlaps with another.
// Touching edges (equal coordinates) count as non-overlapping; every
// collision check in the game relies on this strict-inequality convention.
func (a AABB) Overlaps(b AABB) bool {
	if a.Right() <= b.X || b.Right() <= a.X {
		return false
	}
	if a.Bottom() <= b.Y || b.Bottom() <= a.Y {
		return false
	}
	return true
}

// Overlap reports whether two position/size rectangles overlap.
// Convenience wrapper for callers that carry positions and sizes separately.
func Overlap(aPos, aSize, bPos, bSize Vec2) bool {
	a := NewAABB(aPos.X, aPos.Y, aSize.X, aSize.Y)
	b := NewAABB(bPos.X, bPos.Y, bSize.X, bSize.Y)
	return a.Overlaps(b)
}

// ClampF clamps v into [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min of two ints.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max of two ints.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
