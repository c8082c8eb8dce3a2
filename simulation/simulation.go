// Package simulation wires the colony, food, ant and pheromone stages into one tick.
package simulation

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/logging"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/status"
	"github.com/lixenwraith/ant-colony/system"
)

// Hooks receive per-tick event counts; nil hooks are skipped
// They run inside Step, under the world update lock
type Hooks struct {
	OnBite     func(count int)
	OnDelivery func(count int)
	OnDepleted func(count int)
}

// Simulation owns every entity and advances them one tick at a time
type Simulation struct {
	world *engine.World
	hooks Hooks

	colony  *component.Colony
	counter *component.Counter

	food       *system.FoodSystem
	ants       *system.AntSystem
	pheromones *system.PheromoneSystem

	tick     uint64
	last     system.TickResult
	spawnErr error

	statTicks     *atomic.Int64
	statDelivered *atomic.Int64
}

// New builds the world from cfg and spawns the population
// A colony too small for its ants is not an error here: the run continues empty and SpawnErr reports why
func New(cfg *config.Config, logger logging.Logger, reg *status.Registry) (*Simulation, error) {
	res, err := engine.NewResources(cfg, logger, reg)
	if err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	world := engine.NewWorld(res)

	s := &Simulation{
		world:         world,
		colony:        component.NewColony(cfg.ColonyCenter(), cfg.Colony.Radius),
		food:          system.NewFoodSystem(world),
		ants:          system.NewAntSystem(world),
		pheromones:    system.NewPheromoneSystem(world),
		statTicks:     res.Status.Ints.Get(status.KeySimTicks),
		statDelivered: res.Status.Ints.Get(status.KeyFoodDelivered),
	}
	world.AddSystem(s.food)
	world.AddSystem(s.ants)
	world.AddSystem(s.pheromones)

	s.populate()
	return s, nil
}

// populate places the counter and the ants; shared by New and Reset
func (s *Simulation) populate() {
	res := s.world.Resources
	vp := res.ViewPort
	s.counter = component.NewCounter(
		core.Point{X: vp.MinX + parameter.CounterOffsetX, Y: vp.MaxY - parameter.CounterOffsetY},
		parameter.CounterFontSize,
	)

	s.spawnErr = s.ants.Spawn(s.colony, res.Config.Ant.Size)
	var spawnErr *system.SpawnError
	if s.spawnErr != nil && !errors.As(s.spawnErr, &spawnErr) {
		res.Logger.Error(fmt.Sprintf("spawn failed: %v", s.spawnErr))
	}
}

// SetHooks replaces the event hooks
func (s *Simulation) SetHooks(h Hooks) {
	s.hooks = h
}

// Step advances one tick: food, ants, depletion, pheromones, counter
func (s *Simulation) Step() {
	s.food.Update()
	result := s.ants.Update(s.colony, s.food.Sources(), s.pheromones.Signals())
	s.food.Release(result.Depleted)
	s.pheromones.Update(result.Signals)
	s.counter.Increment(result.Delivered)

	s.tick++
	s.last = result
	s.statTicks.Store(int64(s.tick))
	s.statDelivered.Add(int64(result.Delivered))

	if result.Bites > 0 && s.hooks.OnBite != nil {
		s.hooks.OnBite(result.Bites)
	}
	if result.Delivered > 0 && s.hooks.OnDelivery != nil {
		s.hooks.OnDelivery(result.Delivered)
	}
	if n := len(result.Depleted); n > 0 && s.hooks.OnDepleted != nil {
		s.hooks.OnDepleted(n)
	}
}

// Reset reseeds the generator and rebuilds the run from scratch
// Caller must hold the update lock if the scheduler is running
func (s *Simulation) Reset() {
	res := s.world.Resources
	res.Rand.Seed(res.Config.World.Seed)
	s.world.InitSystems()
	s.statDelivered.Store(0)
	s.statTicks.Store(0)
	s.tick = 0
	s.last = system.TickResult{}
	s.populate()
	res.Logger.Info(fmt.Sprintf("simulation reset with seed %d", res.Config.World.Seed))
}

// Tick returns completed steps
func (s *Simulation) Tick() uint64 { return s.tick }

// World returns the owning world for scheduling and locking
func (s *Simulation) World() *engine.World { return s.world }

// SpawnErr returns the population precondition failure, nil when ants were placed
func (s *Simulation) SpawnErr() error { return s.spawnErr }

// LastResult returns what the most recent step produced
func (s *Simulation) LastResult() system.TickResult { return s.last }

// Delivered returns the counter value
func (s *Simulation) Delivered() int { return s.counter.Value }

// AntCount returns the population size
func (s *Simulation) AntCount() int { return s.ants.Count() }
