package core

// Entity holds the attributes shared by everything placed on the plane
// Size is the radius for circular entities and the font size for text
type Entity struct {
	Position Point
	Size     float64
	Color    Color
}

// GetPosition returns entity position
func (e *Entity) GetPosition() Point { return e.Position }

// GetSize returns entity size
func (e *Entity) GetSize() float64 { return e.Size }

// GetColor returns entity color tag
func (e *Entity) GetColor() Color { return e.Color }
