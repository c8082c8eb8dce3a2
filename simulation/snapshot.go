package simulation

import (
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
)

// Snapshot is a value copy of the drawable state
type Snapshot struct {
	Tick       uint64
	ViewPort   core.ViewPort
	Colony     component.Colony
	Counter    component.Counter
	Food       []component.Food
	Pheromones []component.Pheromone
	Ants       []component.Ant
}

// Snapshot copies state under the world update lock
func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	s.world.RunSafe(func() {
		snap = s.snapshotLocked()
	})
	return snap
}

func (s *Simulation) snapshotLocked() Snapshot {
	sources := s.food.Sources()
	food := make([]component.Food, len(sources))
	for i, f := range sources {
		food[i] = *f
	}

	markers := s.pheromones.Markers()
	pheromones := make([]component.Pheromone, len(markers))
	for i, m := range markers {
		pheromones[i] = *m
	}

	ants := make([]component.Ant, s.ants.Count())
	copy(ants, s.ants.Ants())

	return Snapshot{
		Tick:       s.tick,
		ViewPort:   s.world.Resources.ViewPort,
		Colony:     *s.colony,
		Counter:    *s.counter,
		Food:       food,
		Pheromones: pheromones,
		Ants:       ants,
	}
}
