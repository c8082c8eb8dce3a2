package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/analysis"
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/status"
)

func TestFoodNoSpawnWithZeroChance(t *testing.T) {
	world, _ := newTestWorld(t, func(c *config.Config) { c.Food.SpawnChance = 0 })
	s := NewFoodSystem(world)

	for range 1000 {
		s.Update()
	}
	assert.Empty(t, s.Sources())
}

func TestFoodSpawnPlacement(t *testing.T) {
	world, _ := newTestWorld(t, func(c *config.Config) { c.Food.SpawnChance = 1 })
	s := NewFoodSystem(world)
	cfg := world.Resources.Config

	for range 500 {
		s.Update()
	}
	sources := s.Sources()
	require.NotEmpty(t, sources)

	var lastID uint64
	for _, f := range sources {
		assert.Greater(t, f.ID, lastID, "ids increase")
		lastID = f.ID

		assert.GreaterOrEqual(t, f.Capacity, 1)
		assert.LessOrEqual(t, f.Capacity, cfg.Food.MaxCapacity)
		assert.True(t, world.Resources.ViewPort.Contains(f.Position), "food %d at %v", f.ID, f.Position)

		clearance := cfg.Colony.Radius + f.Radius()
		assert.GreaterOrEqual(t, f.Position.DistanceTo(cfg.ColonyCenter()), clearance-1e-9)
	}

	assert.Equal(t, int64(len(sources)), world.Resources.Status.Ints.Get(status.KeyFoodLive).Load())
	assert.Equal(t, int64(len(sources)), world.Resources.Status.Ints.Get(status.KeyFoodSpawned).Load())
}

func TestFoodSampleUsesAngleAndArea(t *testing.T) {
	world, _ := newTestWorld(t, nil)
	s := NewFoodSystem(world)

	// Straight up, innermost radius
	s.rng = &scriptedRandom{fractions: []float64{0.25, 0}}
	p, ok := s.Sample(1)
	require.True(t, ok)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 0.32, p.Y, 1e-12)

	// Straight right, outermost reachable radius
	s.rng = &scriptedRandom{fractions: []float64{0, 1}}
	p, ok = s.Sample(3)
	require.True(t, ok)
	assert.InDelta(t, 1.6, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestFoodSampleRejectsNoRoom(t *testing.T) {
	world, _ := newTestWorld(t, func(c *config.Config) { c.Colony.Radius = 0.99 })
	s := NewFoodSystem(world)

	s.rng = &scriptedRandom{fractions: []float64{0.25, 0.5}}
	_, ok := s.Sample(1)
	assert.False(t, ok)
}

func TestFoodReleaseRemovesOnlyDepleted(t *testing.T) {
	world, logger := newTestWorld(t, func(c *config.Config) { c.Food.SpawnChance = 1 })
	s := NewFoodSystem(world)
	for len(s.Sources()) < 2 {
		s.Update()
	}

	first, second := s.Sources()[0], s.Sources()[1]
	for first.Take() != component.TakeDepleted {
	}
	require.True(t, first.Depleted())

	s.Release([]uint64{first.ID, second.ID})

	ids := make([]uint64, 0, len(s.Sources()))
	for _, f := range s.Sources() {
		ids = append(ids, f.ID)
	}
	assert.NotContains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.Len(t, logger.Entries(), 1)
}

func TestFoodUpdateSweepsDepleted(t *testing.T) {
	world, _ := newTestWorld(t, func(c *config.Config) { c.Food.SpawnChance = 1 })
	s := NewFoodSystem(world)
	s.Update()
	require.Len(t, s.Sources(), 1)

	f := s.Sources()[0]
	for !f.Depleted() {
		f.Take()
	}

	s.spawnChance = 0
	s.Update()
	assert.Empty(t, s.Sources())
}

// Mirrors the classic regression: unit square of ±250 around a colony of radius 50,
// ten equal-area rings out to the inscribed radius
func TestFoodDistributionUniformByArea(t *testing.T) {
	world, _ := newTestWorld(t, func(c *config.Config) {
		c.World.MinX, c.World.MinY, c.World.MaxX, c.World.MaxY = -250, -250, 250, 250
		c.Colony.Radius = 50
		c.Food.UnitRadius = 5
		c.Food.SpawnChance = 1
	})
	s := NewFoodSystem(world)

	for range 10000 {
		s.Update()
	}

	vp := world.Resources.ViewPort
	inscribed := math.Min(vp.MaxX, vp.MaxY)
	a, err := analysis.NewRadialAnalyzer(world.Resources.Config.ColonyCenter(), 50, inscribed, 10)
	require.NoError(t, err)

	for _, f := range s.Sources() {
		assert.GreaterOrEqual(t, f.Position.DistanceTo(world.Resources.Config.ColonyCenter()), 50.0)
		a.Add(f.Position)
	}

	cv := a.CoefficientOfVariation()
	t.Logf("coefficient of variation: %.4f over %d sources", cv, len(s.Sources()))
	assert.Less(t, cv, 0.5)
}
