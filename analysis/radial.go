// Package analysis measures how evenly food sources cover the plane around the colony.
package analysis

import (
	"fmt"
	"math"

	"github.com/lixenwraith/ant-colony/core"
)

// RadialAnalyzer buckets points into concentric rings of equal area
type RadialAnalyzer struct {
	center core.Point

	// boundaries[i] and boundaries[i+1] delimit ring i
	boundaries []float64
	counts     []int
	points     []core.Point
	outside    int
}

// NewRadialAnalyzer splits the annulus [inner, outer) around center into rings of equal area
func NewRadialAnalyzer(center core.Point, inner, outer float64, rings int) (*RadialAnalyzer, error) {
	if rings <= 0 {
		return nil, fmt.Errorf("ring count must be positive, got %d", rings)
	}
	if inner < 0 || outer <= inner {
		return nil, fmt.Errorf("invalid annulus [%g, %g)", inner, outer)
	}

	boundaries := make([]float64, rings+1)
	boundaries[0] = inner
	boundaries[rings] = outer
	span := outer*outer - inner*inner
	for i := 1; i < rings; i++ {
		boundaries[i] = math.Sqrt(inner*inner + float64(i)*span/float64(rings))
	}

	return &RadialAnalyzer{
		center:     center,
		boundaries: boundaries,
		counts:     make([]int, rings),
	}, nil
}

// Add records p; returns false when p falls outside the annulus
func (a *RadialAnalyzer) Add(p core.Point) bool {
	a.points = append(a.points, p)

	distance := a.center.DistanceTo(p)
	for i := range a.counts {
		if distance >= a.boundaries[i] && distance < a.boundaries[i+1] {
			a.counts[i]++
			return true
		}
	}
	a.outside++
	return false
}

// Rings returns the number of rings
func (a *RadialAnalyzer) Rings() int { return len(a.counts) }

// Ring returns the radial bounds of ring i
func (a *RadialAnalyzer) Ring(i int) (inner, outer float64) {
	return a.boundaries[i], a.boundaries[i+1]
}

// Counts returns a copy of per-ring counts
func (a *RadialAnalyzer) Counts() []int {
	out := make([]int, len(a.counts))
	copy(out, a.counts)
	return out
}

// Points returns every recorded point, including those outside the annulus
func (a *RadialAnalyzer) Points() []core.Point { return a.points }

// Outside returns the number of points that missed every ring
func (a *RadialAnalyzer) Outside() int { return a.outside }

// Density returns ring i count per unit area
func (a *RadialAnalyzer) Density(i int) float64 {
	inner, outer := a.Ring(i)
	area := math.Pi * (outer*outer - inner*inner)
	return float64(a.counts[i]) / area
}

// CoefficientOfVariation returns population stddev / mean of ring counts, 0 when empty
func (a *RadialAnalyzer) CoefficientOfVariation() float64 {
	total := 0
	for _, c := range a.counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	mean := float64(total) / float64(len(a.counts))

	variance := 0.0
	for _, c := range a.counts {
		d := float64(c) - mean
		variance += d * d
	}
	variance /= float64(len(a.counts))

	return math.Sqrt(variance) / mean
}
