package core

import "fmt"

// ViewPort is the axis-aligned rectangle that bounds the simulation
// Immutable after construction
type ViewPort struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewViewPort validates bounds and returns the viewport
func NewViewPort(minX, minY, maxX, maxY float64) (ViewPort, error) {
	if minX >= maxX || minY >= maxY {
		return ViewPort{}, fmt.Errorf("invalid viewport bounds [%g,%g]x[%g,%g]", minX, maxX, minY, maxY)
	}
	return ViewPort{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// Contains checks if point lies strictly inside the viewport
func (v ViewPort) Contains(p Point) bool {
	return v.MinX < p.X && p.X < v.MaxX && v.MinY < p.Y && p.Y < v.MaxY
}

// Width returns horizontal span
func (v ViewPort) Width() float64 { return v.MaxX - v.MinX }

// Height returns vertical span
func (v ViewPort) Height() float64 { return v.MaxY - v.MinY }

// MinSpan returns the smaller of width and height
func (v ViewPort) MinSpan() float64 {
	return min(v.Width(), v.Height())
}

// Center returns the midpoint of the rectangle
func (v ViewPort) Center() Point {
	return Point{X: (v.MinX + v.MaxX) / 2, Y: (v.MinY + v.MaxY) / 2}
}
