package component

import (
	"strconv"

	"github.com/lixenwraith/ant-colony/core"
)

// Counter is the HUD tally of delivered food
type Counter struct {
	core.Entity

	Value int
}

// NewCounter creates a counter anchored at position with font size
func NewCounter(position core.Point, fontSize float64) *Counter {
	return &Counter{
		Entity: core.Entity{Position: position, Size: fontSize, Color: core.ColorCounter},
	}
}

// Increment adds n to the tally
func (c *Counter) Increment(n int) {
	c.Value += n
}

// Text returns the HUD label
func (c *Counter) Text() string {
	return "Food: " + strconv.Itoa(c.Value)
}
