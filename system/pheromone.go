package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/status"
)

// PheromoneSystem owns the decaying marker field
type PheromoneSystem struct {
	size            float64
	depositStrength int

	// Deposit order is kept so sensing is deterministic
	markers []*component.Pheromone

	statLive     *atomic.Int64
	statEmitted  *atomic.Int64
	statStrength *atomic.Int64
}

// NewPheromoneSystem creates an empty field
func NewPheromoneSystem(world *engine.World) *PheromoneSystem {
	res := world.Resources
	s := &PheromoneSystem{
		size:            res.Config.Pheromone.Size,
		depositStrength: res.Config.Pheromone.DepositStrength,
		statLive:        res.Status.Ints.Get(status.KeyPheromoneLive),
		statEmitted:     res.Status.Ints.Get(status.KeyPheromoneEmitted),
		statStrength:    res.Status.Ints.Get(status.KeyPheromoneMaxSeen),
	}
	s.Init()
	return s
}

// Init clears the field
func (s *PheromoneSystem) Init() {
	s.markers = make([]*component.Pheromone, 0, 64)
	s.statLive.Store(0)
	s.statEmitted.Store(0)
	s.statStrength.Store(0)
}

// Name returns system's name
func (s *PheromoneSystem) Name() string {
	return "pheromone"
}

// Priority returns the system's priority
func (s *PheromoneSystem) Priority() int {
	return parameter.PriorityPheromone
}

// Update evaporates existing markers, drops the exhausted ones, then deposits new signals
// Fresh deposits do not evaporate in the tick they are created
func (s *PheromoneSystem) Update(signals []component.PheromoneSignal) {
	kept := s.markers[:0]
	for _, m := range s.markers {
		m.Evaporate()
		if !m.Evaporated() {
			kept = append(kept, m)
		}
	}
	clear(s.markers[len(kept):])
	s.markers = kept

	for _, signal := range signals {
		m := component.NewPheromone(signal, s.size, s.depositStrength)
		if m.Evaporated() {
			continue
		}
		s.markers = append(s.markers, m)
		if int64(m.Strength) > s.statStrength.Load() {
			s.statStrength.Store(int64(m.Strength))
		}
	}

	s.statEmitted.Add(int64(len(signals)))
	s.statLive.Store(int64(len(s.markers)))
}

// Signals returns the sensed view of every live marker
func (s *PheromoneSystem) Signals() []component.PheromoneSignal {
	out := make([]component.PheromoneSignal, len(s.markers))
	for i, m := range s.markers {
		out[i] = m.Signal()
	}
	return out
}

// Markers returns live markers for read-only use
func (s *PheromoneSystem) Markers() []*component.Pheromone {
	return s.markers
}

// Count returns the number of live markers
func (s *PheromoneSystem) Count() int {
	return len(s.markers)
}
