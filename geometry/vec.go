// Package geometry contains the 2D math used by the skill tree editor:
// vectors, point/segment distance, and circular-arc construction, hit
// distance and sampling. Everything here is pure and stateless.
package geometry

import "math"

// Vec2 represents a 2D coordinate in world space.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Angle returns the angle of v relative to p, in radians.
func (v Vec2) Angle(p Vec2) float64 {
	return math.Atan2(v.Y-p.Y, v.X-p.X)
}

// Snap rounds v to the nearest multiple of grid in each axis.
// A grid of zero or less leaves v unchanged.
func (v Vec2) Snap(grid float64) Vec2 {
	if grid <= 0 {
		return v
	}
	return Vec2{
		X: math.Round(v.X/grid) * grid,
		Y: math.Round(v.Y/grid) * grid,
	}
}
