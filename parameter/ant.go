package parameter

// Ant movement and steering
const (
	// CollisionCoef scales ant radius into the neighbour spacing considered by repulsion
	CollisionCoef = 1.5

	// ColonyAttraction is the per-tick displacement toward a target (colony or pheromone)
	ColonyAttraction = 0.005

	// RandomMovement bounds each axis of the repulsion jitter component
	RandomMovement = 0.025

	// MaxRepulsionMagnitude triggers renormalization of the combined repulsion vector
	MaxRepulsionMagnitude = 0.2

	// NormalizedRepulsionStrength is the magnitude assigned after renormalization
	NormalizedRepulsionStrength = 0.1

	// RepulsionScaling keeps repulsion subtle relative to intentional movement
	RepulsionScaling = 0.25

	// VelocityScalingThreshold is the speed at which directional repulsion fully replaces jitter
	VelocityScalingThreshold = 0.1

	// MaxPositionAttempts bounds repulsion retries per ant per tick
	MaxPositionAttempts = 10

	// AttractionThreshold is the minimum attraction score that steers a foraging ant
	AttractionThreshold = 0.1

	// PheromoneChargeThreshold is the number of eligible ticks between two emissions
	PheromoneChargeThreshold = 30
)

// Attraction score shaping
const (
	AttractionDirectionBase   = 1.0
	AttractionDirectionWeight = 0.5
	AttractionStrengthCap     = 0.5
	AttractionScale           = 2.0
	AttractionMax             = 2.0
)
