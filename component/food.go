package component

import "github.com/lixenwraith/ant-colony/core"

// TakeResult reports the outcome of a single bite on a food source
type TakeResult uint8

const (
	TakeEmpty     TakeResult = iota // Source was already depleted, nothing taken
	TakeRemaining                   // One unit taken, capacity left
	TakeDepleted                    // One unit taken, source now empty
)

// Food is a depletable resource; effective radius shrinks with capacity
type Food struct {
	core.Entity

	ID         uint64
	UnitRadius float64
	Capacity   int
}

// NewFood creates a food source, negative capacity is clamped to zero
func NewFood(id uint64, position core.Point, unitRadius float64, capacity int) *Food {
	f := &Food{
		Entity:     core.Entity{Position: position, Color: core.ColorFood},
		ID:         id,
		UnitRadius: unitRadius,
		Capacity:   max(capacity, 0),
	}
	f.Size = f.Radius()
	return f
}

// Radius returns unit radius scaled by remaining capacity
func (f *Food) Radius() float64 {
	return f.UnitRadius * float64(f.Capacity)
}

// Depleted reports whether no units remain
func (f *Food) Depleted() bool {
	return f.Capacity <= 0
}

// Take removes one unit; the owner inspects the result to decide removal
func (f *Food) Take() TakeResult {
	if f.Capacity <= 0 {
		return TakeEmpty
	}
	f.Capacity--
	f.Size = f.Radius()
	if f.Capacity == 0 {
		return TakeDepleted
	}
	return TakeRemaining
}
