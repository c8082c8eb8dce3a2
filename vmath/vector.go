package vmath

import "github.com/lixenwraith/ant-colony/core"

// VelocityTowards returns a vector of magnitude strength pointing from -> to
// Coincident points give the zero vector
func VelocityTowards(from, to core.Point, strength float64) core.Point {
	return to.Sub(from).Normalize().Scale(strength)
}

// CirclesOverlap reports whether two circles intersect (distance < sum of radii)
// Touching circles do not overlap
func CirclesOverlap(a core.Point, ra float64, b core.Point, rb float64) bool {
	return a.DistanceTo(b) < ra+rb
}

// BoundaryPointFacing returns the point on the circle (center, radius) that faces target
func BoundaryPointFacing(center core.Point, radius float64, target core.Point) core.Point {
	return center.Add(VelocityTowards(center, target, radius))
}
