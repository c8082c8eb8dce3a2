package system

import (
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/parameter"
)

// CalcRepulsion returns the avoidance displacement for ants[index]
// Neighbours inside the spacing ring push only while the ant is still closing on them;
// the push is blended with uniform jitter weighted by the ant's own speed
func CalcRepulsion(ants []component.Ant, index int, rng Random) core.Point {
	ant := &ants[index]
	minSpacing := ant.Size * parameter.CollisionCoef
	position := ant.Position
	future := position.Add(ant.Velocity)

	jitter := core.Point{
		X: rng.FloatRange(-parameter.RandomMovement, parameter.RandomMovement),
		Y: rng.FloatRange(-parameter.RandomMovement, parameter.RandomMovement),
	}

	var push core.Point
	for i := range ants {
		if i == index {
			continue
		}
		other := ants[i].Position
		distance := position.DistanceTo(other)
		if distance == 0 || distance >= minSpacing {
			continue
		}
		if future.DistanceTo(other) >= distance {
			continue
		}
		falloff := (minSpacing - distance) / minSpacing
		push = push.Add(position.Sub(other).Scale(falloff * falloff / distance))
	}

	influence := min(1, ant.Velocity.Length()/parameter.VelocityScalingThreshold)
	total := push.Scale(influence).Add(jitter.Scale(1 - influence))

	if mag := total.Length(); mag > parameter.MaxRepulsionMagnitude {
		total = total.Scale(parameter.NormalizedRepulsionStrength / mag)
	}
	return total.Scale(parameter.RepulsionScaling)
}

// CalcPheromoneAttraction scores how compelling signal is to an ant at position heading along velocity
// Result is in [0, AttractionMax]; signals beyond maxDistance score zero
func CalcPheromoneAttraction(position, velocity core.Point, signal component.PheromoneSignal, maxDistance float64, maxExcitement int) float64 {
	if maxExcitement <= 0 || maxDistance <= 0 {
		return 0
	}
	toSignal := signal.Position.Sub(position)
	distance := toSignal.Length()
	if distance > maxDistance {
		return 0
	}

	// Heading alignment remapped from [-1,1] to [0.5,1.5]; a stationary ant scores neutral
	alignment := toSignal.Normalize().Dot(velocity.Normalize())
	direction := parameter.AttractionDirectionBase + alignment*parameter.AttractionDirectionWeight

	proximity := 1 - distance/maxDistance

	strength := min(parameter.AttractionStrengthCap, float64(signal.Excitement)/float64(maxExcitement))

	score := direction * proximity * strength * parameter.AttractionScale
	return max(0, min(parameter.AttractionMax, score))
}
