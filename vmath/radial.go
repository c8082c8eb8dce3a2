package vmath

import (
	"math"

	"github.com/lixenwraith/ant-colony/core"
)

// RayToViewportEdge returns distance from origin along the unit direction (cos, sin) to the nearest viewport edge
// Origin is expected inside the viewport; returns 0 otherwise
func RayToViewportEdge(origin core.Point, angle float64, vp core.ViewPort) float64 {
	if !vp.Contains(origin) {
		return 0
	}

	dx, dy := math.Cos(angle), math.Sin(angle)
	dist := math.Inf(1)

	// Per-quadrant edge selection: only the edges the ray is heading toward can be hit
	if dx > 0 {
		dist = min(dist, (vp.MaxX-origin.X)/dx)
	} else if dx < 0 {
		dist = min(dist, (vp.MinX-origin.X)/dx)
	}
	if dy > 0 {
		dist = min(dist, (vp.MaxY-origin.Y)/dy)
	} else if dy < 0 {
		dist = min(dist, (vp.MinY-origin.Y)/dy)
	}

	if math.IsInf(dist, 1) {
		return 0
	}
	return dist
}

// AnnulusRadius maps u in [0,1) to a radius in [inner, outer] with uniform areal density
// Sampling r² uniformly avoids the center bias of sampling r directly
func AnnulusRadius(inner, outer, u float64) float64 {
	inner2 := inner * inner
	outer2 := outer * outer
	return math.Sqrt(inner2 + u*(outer2-inner2))
}

// PolarOffset returns center + radius*(cos, sin)
func PolarOffset(center core.Point, angle, radius float64) core.Point {
	return core.Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}
