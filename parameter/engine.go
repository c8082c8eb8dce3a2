package parameter

import "time"

// Simulation Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval
	GameUpdateInterval = 33 * time.Millisecond

	// SchedulerMaxBehind is the number of tick intervals the scheduler may lag before resyncing
	SchedulerMaxBehind = 2
)

// System priorities, lower runs first within a tick
const (
	PriorityFood      = 10
	PriorityAnt       = 20
	PriorityPheromone = 30
)

// DefaultSeed is used when neither config nor flags provide one
const DefaultSeed = 0x5eed
