package vmath

import (
	"math"

	"github.com/lixenwraith/ant-colony/core"
)

var sqrt3 = math.Sqrt(3)

// HexCoord is an axial hex grid coordinate; cube s = -q - r is implicit
type HexCoord struct {
	Q, R int
}

// HexSideForInradius returns the side length of a hexagon whose inradius is r
// Inradius = (√3 / 2) * side
func HexSideForInradius(r float64) float64 {
	return (2 * r) / sqrt3
}

// HexToPoint converts axial coordinate to pointy-top cartesian offset for the given side
// Horizontal neighbor spacing is √3*side, row spacing is 1.5*side
func HexToPoint(h HexCoord, side float64) core.Point {
	return core.Point{
		X: side * sqrt3 * (float64(h.Q) + float64(h.R)/2),
		Y: side * 1.5 * float64(h.R),
	}
}

// HexGridInCircle returns centers of hexagons with inradius cellSize that lie entirely inside the disk
// Adjacent centers are 2*cellSize apart, so circles of radius cellSize at the returned points do not overlap
func HexGridInCircle(center core.Point, radius, cellSize float64) []core.Point {
	if radius <= 0 || cellSize <= 0 {
		return nil
	}

	side := HexSideForInradius(cellSize)
	if side > radius {
		return nil
	}

	qRange := int(math.Ceil((radius - side) / (side * sqrt3)))
	rRange := int(math.Ceil((radius - side) / (side * 1.5)))

	positions := make([]core.Point, 0, (2*qRange+1)*(2*rRange+1))
	for q := -qRange; q <= qRange; q++ {
		for r := -rRange; r <= rRange; r++ {
			offset := HexToPoint(HexCoord{Q: q, R: r}, side)
			// Vertex distance (side) plus center distance must stay inside the disk
			if offset.Length()+side <= radius {
				positions = append(positions, center.Add(offset))
			}
		}
	}
	return positions
}

// Shuffle permutes points in place with Fisher-Yates using rng
func Shuffle(points []core.Point, rng interface{ IntRange(lo, hi int) int }) {
	for i := len(points) - 1; i > 0; i-- {
		j := rng.IntRange(0, i)
		points[i], points[j] = points[j], points[i]
	}
}
