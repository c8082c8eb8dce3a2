package parameter

// Default world layout in simulation units
const (
	ViewPortMinX = -1.6
	ViewPortMinY = -1.0
	ViewPortMaxX = 1.6
	ViewPortMaxY = 1.0

	ColonyRadius = 0.3
	AntSize      = 0.006
)

// Food spawning
const (
	// FoodSpawnChance is the per-tick probability of a spawn attempt
	FoodSpawnChance = 1.0 / 250

	FoodUnitRadius  = 0.02
	FoodMinCapacity = 1
	FoodMaxCapacity = 3
)

// Pheromone field
const (
	// PheromoneDepositStrength multiplies signal excitement into marker lifetime in ticks
	PheromoneDepositStrength = 50

	PheromoneSize = 0.004
)

// HUD counter
const (
	CounterFontSize = 0.05
	CounterOffsetX  = 0.05
	CounterOffsetY  = 0.08
)
