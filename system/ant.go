package system

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/logging"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/status"
	"github.com/lixenwraith/ant-colony/vmath"
)

// SpawnError reports a colony too small to place the requested population
type SpawnError struct {
	Available int
	Required  int
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("not enough spawn positions: %d available, %d required", e.Available, e.Required)
}

// TickResult collects what one ant pass produced for the other owners
type TickResult struct {
	Signals   []component.PheromoneSignal // New emissions in ant index order
	Depleted  []uint64                    // Food IDs emptied by a bite this tick
	Delivered int                         // Loads dropped inside the colony
	Bites     int
	Stuck     int // Ants that exhausted every retry and stayed put
}

// AntSystem owns the fixed ant population and drives its per-tick update
type AntSystem struct {
	rng    Random
	logger logging.Logger

	viewPort        core.ViewPort
	chargeThreshold int

	// Dense arena; an ant is referenced by index and never moves within the slice
	ants []component.Ant

	statCount     *atomic.Int64
	statCarrying  *atomic.Int64
	statStuck     *atomic.Int64
	statAvailable *atomic.Int64
}

// NewAntSystem creates an empty population manager
func NewAntSystem(world *engine.World) *AntSystem {
	res := world.Resources
	s := &AntSystem{
		rng:             res.Rand,
		logger:          res.Logger,
		viewPort:        res.ViewPort,
		chargeThreshold: res.Config.Ant.ChargeThreshold,
		statCount:       res.Status.Ints.Get(status.KeyAntCount),
		statCarrying:    res.Status.Ints.Get(status.KeyAntCarrying),
		statStuck:       res.Status.Ints.Get(status.KeyAntStuck),
		statAvailable:   res.Status.Ints.Get(status.KeySpawnAvailable),
	}
	s.Init()
	return s
}

// Init drops the population
func (s *AntSystem) Init() {
	s.ants = nil
	s.statCount.Store(0)
	s.statCarrying.Store(0)
	s.statStuck.Store(0)
	s.statAvailable.Store(0)
}

// Name returns system's name
func (s *AntSystem) Name() string {
	return "ant"
}

// Priority returns the system's priority
func (s *AntSystem) Priority() int {
	return parameter.PriorityAnt
}

// Ants returns the arena for read-only use
func (s *AntSystem) Ants() []component.Ant {
	return s.ants
}

// Count returns the population size
func (s *AntSystem) Count() int {
	return len(s.ants)
}

// Spawn places floor(radius/size) ants on shuffled hex cells inside the colony
// A grid with too few cells spawns nothing; the population is fixed once placed
func (s *AntSystem) Spawn(colony *component.Colony, size float64) error {
	if len(s.ants) > 0 {
		return nil
	}
	if size <= 0 {
		return fmt.Errorf("invalid ant size %g", size)
	}

	required := int(math.Floor(colony.Radius() / size))

	candidates := vmath.HexGridInCircle(colony.Position, colony.Radius(), size)
	positions := candidates[:0]
	for _, p := range candidates {
		if s.viewPort.Contains(p) {
			positions = append(positions, p)
		}
	}
	s.statAvailable.Store(int64(len(positions)))

	if len(positions) < required {
		err := &SpawnError{Available: len(positions), Required: required}
		s.logger.Error(err.Error())
		return err
	}

	vmath.Shuffle(positions, s.rng)

	s.ants = make([]component.Ant, required)
	for i := range s.ants {
		s.ants[i] = component.NewAnt(positions[i], size, s.chargeThreshold)
	}
	s.statCount.Store(int64(required))
	s.logger.Info(fmt.Sprintf("spawned %d ants from %d hex cells", required, len(positions)))
	return nil
}

// Update advances every ant once, strictly in index order
// Collision checks read the live arena, so ant i sees the positions ants 0..i-1 committed this tick
func (s *AntSystem) Update(colony *component.Colony, food []*component.Food, signals []component.PheromoneSignal) TickResult {
	var result TickResult

	maxDistance := s.viewPort.MinSpan() / 2
	maxExcitement := 0
	for _, signal := range signals {
		maxExcitement = max(maxExcitement, signal.Excitement)
	}

	carrying := 0
	for i := range s.ants {
		if s.updateAnt(i, colony, food, signals, maxDistance, maxExcitement, &result) {
			result.Signals = append(result.Signals, s.ants[i].ConsumePheromoneCharge())
		}
		if s.ants[i].CarryingFood {
			carrying++
		}
	}

	s.statCarrying.Store(int64(carrying))
	s.statStuck.Add(int64(result.Stuck))
	return result
}

// updateAnt runs intent, direct move and repulsion retries; returns the emission decision
func (s *AntSystem) updateAnt(
	index int,
	colony *component.Colony,
	food []*component.Food,
	signals []component.PheromoneSignal,
	maxDistance float64,
	maxExcitement int,
	result *TickResult,
) bool {
	ant := &s.ants[index]

	s.steer(ant, colony, signals, maxDistance, maxExcitement)

	if ant.IsMoving() {
		candidate := ant.Position.Add(ant.Velocity)
		if s.canOccupy(index, candidate) {
			ant.Position = candidate
			s.bite(ant, food, result)
			s.deliver(ant, colony, result)
			return ant.TrySpawnPheromone()
		}
	}

	for range parameter.MaxPositionAttempts {
		repulsion := CalcRepulsion(s.ants, index, s.rng)
		candidate := ant.Position.Add(repulsion)
		if !s.canOccupy(index, candidate) {
			continue
		}

		ant.Position = candidate
		if !s.bite(ant, food, result) {
			ant.Velocity = repulsion
		}
		s.deliver(ant, colony, result)
		return ant.TrySpawnPheromone()
	}

	result.Stuck++
	return false
}

// steer sets the intent velocity: home when loaded, otherwise toward the best scoring signal
func (s *AntSystem) steer(ant *component.Ant, colony *component.Colony, signals []component.PheromoneSignal, maxDistance float64, maxExcitement int) {
	if ant.CarryingFood {
		ant.Velocity = vmath.VelocityTowards(ant.Position, colony.Position, parameter.ColonyAttraction)
		return
	}

	best := 0.0
	var target core.Point
	for _, signal := range signals {
		score := CalcPheromoneAttraction(ant.Position, ant.Velocity, signal, maxDistance, maxExcitement)
		if score > best {
			best = score
			target = signal.Position
		}
	}
	if best > parameter.AttractionThreshold {
		ant.Velocity = vmath.VelocityTowards(ant.Position, target, parameter.ColonyAttraction*best)
	}
}

// canOccupy reports whether ant index may commit to candidate
func (s *AntSystem) canOccupy(index int, candidate core.Point) bool {
	if !s.viewPort.Contains(candidate) {
		return false
	}
	size := s.ants[index].Size
	for i := range s.ants {
		if i == index {
			continue
		}
		if vmath.CirclesOverlap(candidate, size, s.ants[i].Position, s.ants[i].Size) {
			return false
		}
	}
	return true
}

// bite takes from the first touched source when the ant is free; returns true on a take
func (s *AntSystem) bite(ant *component.Ant, food []*component.Food, result *TickResult) bool {
	if ant.CarryingFood {
		return false
	}
	for _, f := range food {
		if f.Depleted() || !vmath.CirclesOverlap(ant.Position, ant.Size, f.Position, f.Radius()) {
			continue
		}
		switch ant.BiteFood(f) {
		case component.TakeDepleted:
			result.Depleted = append(result.Depleted, f.ID)
		case component.TakeEmpty:
			continue
		}
		result.Bites++
		return true
	}
	return false
}

// deliver drops the load when the ant touches the colony
func (s *AntSystem) deliver(ant *component.Ant, colony *component.Colony, result *TickResult) {
	if !vmath.CirclesOverlap(ant.Position, ant.Size, colony.Position, colony.Radius()) {
		return
	}
	if ant.DropFood() {
		result.Delivered++
	}
}
