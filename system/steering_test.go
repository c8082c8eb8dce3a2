package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

func TestAttractionAheadBeatsBehind(t *testing.T) {
	heading := core.Point{X: 0.005}
	ahead := component.PheromoneSignal{Position: core.Point{X: 0.2}, Excitement: 50}
	behind := component.PheromoneSignal{Position: core.Point{X: -0.2}, Excitement: 50}

	// 1.5 * 0.8 * 0.5 * 2
	assert.InDelta(t, 1.2, CalcPheromoneAttraction(core.Point{}, heading, ahead, 1, 50), 1e-12)
	// 0.5 * 0.8 * 0.5 * 2
	assert.InDelta(t, 0.4, CalcPheromoneAttraction(core.Point{}, heading, behind, 1, 50), 1e-12)
}

func TestAttractionStationaryAntIsNeutral(t *testing.T) {
	signal := component.PheromoneSignal{Position: core.Point{Y: 0.5}, Excitement: 10}
	// direction 1, proximity 0.5, strength capped at 0.5
	assert.InDelta(t, 0.5, CalcPheromoneAttraction(core.Point{}, core.Point{}, signal, 1, 10), 1e-12)
}

func TestAttractionOutOfRange(t *testing.T) {
	signal := component.PheromoneSignal{Position: core.Point{X: 2}, Excitement: 50}
	assert.Zero(t, CalcPheromoneAttraction(core.Point{}, core.Point{X: 1}, signal, 1, 50))

	edge := component.PheromoneSignal{Position: core.Point{X: 1}, Excitement: 50}
	assert.Zero(t, CalcPheromoneAttraction(core.Point{}, core.Point{X: 1}, edge, 1, 50))
}

func TestAttractionRelativeStrength(t *testing.T) {
	weak := component.PheromoneSignal{Position: core.Point{X: 0.5}, Excitement: 10}
	// 1.5 * 0.5 * 0.1 * 2
	assert.InDelta(t, 0.15, CalcPheromoneAttraction(core.Point{}, core.Point{X: 1}, weak, 1, 100), 1e-12)

	assert.Zero(t, CalcPheromoneAttraction(core.Point{}, core.Point{X: 1}, weak, 1, 0))
}

func TestAttractionBounded(t *testing.T) {
	rng := vmath.NewFastRand(3)
	for range 1000 {
		pos := core.Point{X: rng.FloatRange(-1, 1), Y: rng.FloatRange(-1, 1)}
		vel := core.Point{X: rng.FloatRange(-1, 1), Y: rng.FloatRange(-1, 1)}
		signal := component.PheromoneSignal{
			Position:   core.Point{X: rng.FloatRange(-1, 1), Y: rng.FloatRange(-1, 1)},
			Excitement: rng.IntRange(0, 150),
		}
		score := CalcPheromoneAttraction(pos, vel, signal, 1, 150)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, parameter.AttractionMax)
	}
}

func TestRepulsionIsolatedAntJitters(t *testing.T) {
	ants := []component.Ant{component.NewAnt(core.Point{}, 0.006, 30)}
	rng := vmath.NewFastRand(5)

	limit := parameter.RandomMovement * math.Sqrt2 * parameter.RepulsionScaling
	nonZero := false
	for range 100 {
		r := CalcRepulsion(ants, 0, rng)
		assert.LessOrEqual(t, r.Length(), limit+1e-12)
		nonZero = nonZero || !r.IsZero()
	}
	assert.True(t, nonZero)
}

func TestRepulsionPushesAwayFromClosingNeighbour(t *testing.T) {
	ants := []component.Ant{
		component.NewAnt(core.Point{}, 0.1, 30),
		component.NewAnt(core.Point{X: 0.1}, 0.1, 30),
	}
	// Full speed: jitter weight is zero
	ants[0].Velocity = core.Point{X: 0.1}

	r := CalcRepulsion(ants, 0, vmath.NewFastRand(1))

	// ((0.15 - 0.1) / 0.15)² / 0.1 * 0.1 * 0.25
	assert.InDelta(t, -1.0/36, r.X, 1e-9)
	assert.InDelta(t, 0, r.Y, 1e-12)
}

func TestRepulsionIgnoresSeparatingNeighbour(t *testing.T) {
	ants := []component.Ant{
		component.NewAnt(core.Point{}, 0.1, 30),
		component.NewAnt(core.Point{X: 0.1}, 0.1, 30),
	}
	ants[0].Velocity = core.Point{X: -0.1}

	r := CalcRepulsion(ants, 0, vmath.NewFastRand(1))
	assert.True(t, r.IsZero())
}

func TestRepulsionClampsCrowdedPush(t *testing.T) {
	ants := []component.Ant{
		component.NewAnt(core.Point{}, 0.1, 30),
		component.NewAnt(core.Point{X: 0.06}, 0.1, 30),
		component.NewAnt(core.Point{X: 0.06, Y: 0.001}, 0.1, 30),
		component.NewAnt(core.Point{X: 0.06, Y: -0.001}, 0.1, 30),
	}
	ants[0].Velocity = core.Point{X: 0.1}

	r := CalcRepulsion(ants, 0, vmath.NewFastRand(1))

	assert.InDelta(t, parameter.NormalizedRepulsionStrength*parameter.RepulsionScaling, r.Length(), 1e-9)
	assert.Less(t, r.X, 0.0)
}
