package core

import "math"

// Point is a position or displacement on the simulation plane
type Point struct {
	X, Y float64
}

// Add returns p + o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both components by factor
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Dot returns x1*x2 + y1*y2
func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Length returns Euclidean magnitude
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo returns Euclidean distance between two points
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Normalize returns unit vector, zero-safe
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// IsZero reports whether both components are exactly zero
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}
