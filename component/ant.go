package component

import (
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Ant is a foraging agent
// All fields are mutated only by the ant system during the pass for this ant's index
type Ant struct {
	core.Entity

	Velocity     core.Point
	CarryingFood bool

	// Emission state machine
	PheromoneExcitement      int        // Remaining signals to emit for the current load
	PheromoneCharge          int        // Eligible ticks accumulated since the last emission
	PheromoneChargeThreshold int        // Charge required before emitting
	PendingSignalPosition    core.Point // Where the next signal is emitted
}

// NewAnt creates an idle ant at position
func NewAnt(position core.Point, size float64, chargeThreshold int) Ant {
	return Ant{
		Entity:                   core.Entity{Position: position, Size: size, Color: core.ColorAnt},
		PheromoneChargeThreshold: chargeThreshold,
		PendingSignalPosition:    position,
	}
}

// IsMoving reports a non-zero velocity
func (a *Ant) IsMoving() bool {
	return !a.Velocity.IsZero()
}

// BiteFood takes one unit from food and starts carrying
// Excitement is loaded from the pre-take capacity and charge is primed for an immediate emission
func (a *Ant) BiteFood(food *Food) TakeResult {
	capacity := food.Capacity
	result := food.Take()
	if result == TakeEmpty {
		return result
	}

	a.CarryingFood = true
	a.Velocity = core.Point{}
	a.PheromoneExcitement = capacity
	a.PheromoneCharge = a.PheromoneChargeThreshold
	a.PendingSignalPosition = vmath.BoundaryPointFacing(a.Position, a.Size, food.Position)
	return result
}

// DropFood resets the carrying state; returns true if food was actually carried
func (a *Ant) DropFood() bool {
	carried := a.CarryingFood
	a.CarryingFood = false
	a.Velocity = core.Point{}
	a.PheromoneExcitement = 0
	a.PheromoneCharge = 0
	return carried
}

// TrySpawnPheromone advances the charge and reports whether a signal is ready this tick
func (a *Ant) TrySpawnPheromone() bool {
	if !a.CarryingFood || a.PheromoneExcitement <= 0 {
		return false
	}
	if a.PheromoneCharge < a.PheromoneChargeThreshold {
		a.PheromoneCharge++
	}
	return a.PheromoneCharge >= a.PheromoneChargeThreshold
}

// ConsumePheromoneCharge emits the pending signal and re-arms at the current position
func (a *Ant) ConsumePheromoneCharge() PheromoneSignal {
	signal := PheromoneSignal{Position: a.PendingSignalPosition, Excitement: a.PheromoneExcitement}
	a.PheromoneExcitement--
	a.PheromoneCharge = 0
	a.PendingSignalPosition = a.Position
	return signal
}
