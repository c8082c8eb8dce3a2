package component

import "github.com/lixenwraith/ant-colony/core"

// PheromoneSignal is an emission event produced by an ant and consumed within the same tick
type PheromoneSignal struct {
	Position   core.Point
	Excitement int
}

// Pheromone is a decaying marker materialized from a signal
type Pheromone struct {
	core.Entity

	Strength int
	Initial  int // Strength at deposit, used for fade rendering
}

// NewPheromone materializes a signal with strength = depositStrength * excitement
func NewPheromone(signal PheromoneSignal, size float64, depositStrength int) *Pheromone {
	strength := max(depositStrength*signal.Excitement, 0)
	return &Pheromone{
		Entity:   core.Entity{Position: signal.Position, Size: size, Color: core.ColorPheromone},
		Strength: strength,
		Initial:  strength,
	}
}

// Evaporate decrements strength by one, never below zero
func (p *Pheromone) Evaporate() {
	if p.Strength > 0 {
		p.Strength--
	}
}

// Evaporated reports whether the marker should be removed
func (p *Pheromone) Evaporated() bool {
	return p.Strength <= 0
}

// Signal returns the sensed view of the marker; excitement is the current strength
func (p *Pheromone) Signal() PheromoneSignal {
	return PheromoneSignal{Position: p.Position, Excitement: p.Strength}
}
