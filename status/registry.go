package status

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	KeyEngineTicks      = "engine.ticks"
	KeySimTicks         = "sim.ticks"
	KeyAntCount         = "ant.count"
	KeyAntCarrying      = "ant.carrying"
	KeyAntStuck         = "ant.stuck"
	KeyFoodLive         = "food.live"
	KeyFoodSpawned      = "food.spawned"
	KeyFoodDelivered    = "food.delivered"
	KeyPheromoneLive    = "pheromone.live"
	KeyPheromoneEmitted = "pheromone.emitted"
	KeySpawnAvailable   = "spawn.available"
	KeyPheromoneMaxSeen = "pheromone.max_strength"
	KeyTickDuration     = "engine.tick_ms"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; updates write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// WriteReport prints every metric as "key value" lines in sorted order
func (r *Registry) WriteReport(w io.Writer) error {
	var err error
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if err == nil {
			_, err = fmt.Fprintf(w, "%-24s %d\n", key, v.Load())
		}
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		if err == nil {
			_, err = fmt.Fprintf(w, "%-24s %.3f\n", key, v.Get())
		}
	})
	return err
}
