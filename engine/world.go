package engine

import (
	"sort"
	"sync"
)

// World owns shared resources and the registered systems
// The update mutex serializes simulation ticks against render snapshots
type World struct {
	mu          sync.RWMutex
	updateMutex sync.Mutex

	Resources *Resources

	systems []System
}

// NewWorld creates a world around resources
func NewWorld(res *Resources) *World {
	return &World{
		Resources: res,
		systems:   make([]System, 0, 4),
	}
}

// AddSystem registers a system keeping priority order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of registered systems in priority order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// InitSystems resets every system's session state
// Caller must hold the update lock if the scheduler is running
func (w *World) InitSystems() {
	for _, s := range w.Systems() {
		s.Init()
	}
}

// RunSafe executes fn while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the update lock
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// TryLock attempts to acquire the update lock without blocking
func (w *World) TryLock() bool {
	return w.updateMutex.TryLock()
}

// Unlock releases the update lock
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}
