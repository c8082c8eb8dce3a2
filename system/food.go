package system

import (
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/logging"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/status"
	"github.com/lixenwraith/ant-colony/vmath"
)

// FoodSystem spawns food sources around the colony and owns their lifetime
type FoodSystem struct {
	rng    Random
	logger logging.Logger

	viewPort     core.ViewPort
	colonyCenter core.Point
	colonyRadius float64
	unitRadius   float64
	maxCapacity  int
	spawnChance  float64

	sources []*component.Food
	nextID  uint64

	statLive    *atomic.Int64
	statSpawned *atomic.Int64
}

// NewFoodSystem creates the spawner from world config
func NewFoodSystem(world *engine.World) *FoodSystem {
	res := world.Resources
	cfg := res.Config

	s := &FoodSystem{
		rng:          res.Rand,
		logger:       res.Logger,
		viewPort:     res.ViewPort,
		colonyCenter: cfg.ColonyCenter(),
		colonyRadius: cfg.Colony.Radius,
		unitRadius:   cfg.Food.UnitRadius,
		maxCapacity:  cfg.Food.MaxCapacity,
		spawnChance:  cfg.Food.SpawnChance,
		statLive:     res.Status.Ints.Get(status.KeyFoodLive),
		statSpawned:  res.Status.Ints.Get(status.KeyFoodSpawned),
	}
	s.Init()
	return s
}

// Init clears all sources
func (s *FoodSystem) Init() {
	s.sources = make([]*component.Food, 0, 16)
	s.nextID = 1
	s.statLive.Store(0)
	s.statSpawned.Store(0)
}

// Name returns system's name
func (s *FoodSystem) Name() string {
	return "food"
}

// Priority returns the system's priority
func (s *FoodSystem) Priority() int {
	return parameter.PriorityFood
}

// Update sweeps empty sources and rolls for a spawn
func (s *FoodSystem) Update() {
	s.removeDepleted()

	if s.rng.Chance(s.spawnChance) {
		s.spawn()
	}

	s.statLive.Store(int64(len(s.sources)))
}

// Sources returns live sources; ants may Take from them during their pass
func (s *FoodSystem) Sources() []*component.Food {
	return s.sources
}

// Release removes sources reported depleted during the ant pass
func (s *FoodSystem) Release(ids []uint64) {
	if len(ids) == 0 {
		return
	}
	kept := s.sources[:0]
	for _, f := range s.sources {
		if f.Depleted() && slices.Contains(ids, f.ID) {
			s.logger.Debug(fmt.Sprintf("food %d depleted at (%.3f, %.3f)", f.ID, f.Position.X, f.Position.Y))
			continue
		}
		kept = append(kept, f)
	}
	clear(s.sources[len(kept):])
	s.sources = kept
	s.statLive.Store(int64(len(s.sources)))
}

// Sample draws a spawn position for a source of the given capacity
// ok is false when the sampled direction leaves no room outside the colony
func (s *FoodSystem) Sample(capacity int) (core.Point, bool) {
	footprint := s.unitRadius * float64(capacity)
	inner := s.colonyRadius + footprint

	angle := s.rng.FloatRange(0, 2*math.Pi)
	outer := vmath.RayToViewportEdge(s.colonyCenter, angle, s.viewPort)
	if outer <= inner {
		return core.Point{}, false
	}

	radius := vmath.AnnulusRadius(inner, outer, s.rng.FloatRange(0, 1))
	return vmath.PolarOffset(s.colonyCenter, angle, radius), true
}

func (s *FoodSystem) spawn() {
	capacity := s.rng.IntRange(parameter.FoodMinCapacity, s.maxCapacity)
	position, ok := s.Sample(capacity)
	if !ok || !s.viewPort.Contains(position) {
		return
	}

	food := component.NewFood(s.nextID, position, s.unitRadius, capacity)
	s.nextID++
	s.sources = append(s.sources, food)
	s.statSpawned.Add(1)
}

func (s *FoodSystem) removeDepleted() {
	kept := s.sources[:0]
	for _, f := range s.sources {
		if !f.Depleted() {
			kept = append(kept, f)
		}
	}
	clear(s.sources[len(kept):])
	s.sources = kept
}
