package component

import "github.com/lixenwraith/ant-colony/core"

// Colony is the fixed circular target where food is delivered
type Colony struct {
	core.Entity
}

// NewColony creates a colony; radius is stored as entity size
func NewColony(position core.Point, radius float64) *Colony {
	return &Colony{
		Entity: core.Entity{Position: position, Size: radius, Color: core.ColorColony},
	}
}

// Radius returns colony radius
func (c *Colony) Radius() float64 { return c.Size }
