package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/status"
)

// Stepper advances the simulation by exactly one tick
type Stepper interface {
	Step()
}

// ClockScheduler runs simulation ticks on a fixed interval
// Each tick executes under the world update lock; pause is honored without busy-wait
type ClockScheduler struct {
	world   *World
	stepper Stepper

	tickInterval     time.Duration
	nextTickDeadline time.Time

	isPaused  atomic.Bool
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stepChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool

	// updateDone signals the render loop that a tick completed, dropped if nobody listens
	updateDone chan struct{}

	statTicks    *atomic.Int64
	statDuration *status.AtomicFloat
}

// NewClockScheduler creates a scheduler; returns it with the tick-complete channel
func NewClockScheduler(world *World, stepper Stepper, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		world:        world,
		stepper:      stepper,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		stepChan:     make(chan struct{}, 1),
		updateDone:   updateDone,
		statTicks:    world.Resources.Status.Ints.Get(status.KeyEngineTicks),
		statDuration: world.Resources.Status.Floats.Get(status.KeyTickDuration),
	}
	return cs, updateDone
}

// Name returns the service name
func (cs *ClockScheduler) Name() string { return "scheduler" }

// Start begins the scheduler loop; a stopped scheduler cannot restart
func (cs *ClockScheduler) Start() error {
	if cs.stopped.Load() {
		return errors.New("scheduler already stopped")
	}
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
	return nil
}

// Stop halts the scheduler loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() error {
	cs.stopOnce.Do(func() {
		cs.stopped.Store(true)
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
	return nil
}

// Pause suspends ticking
func (cs *ClockScheduler) Pause() { cs.isPaused.Store(true) }

// Resume continues ticking from now, without catching up paused time
func (cs *ClockScheduler) Resume() { cs.isPaused.Store(false) }

// TogglePause flips pause state and returns the new value
func (cs *ClockScheduler) TogglePause() bool {
	for {
		old := cs.isPaused.Load()
		if cs.isPaused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports pause state
func (cs *ClockScheduler) Paused() bool { return cs.isPaused.Load() }

// StepOnce requests a single tick while paused; ignored when running
func (cs *ClockScheduler) StepOnce() {
	select {
	case cs.stepChan <- struct{}{}:
	default:
	}
}

// TickCount returns completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return

		case <-cs.stepChan:
			if cs.isPaused.Load() {
				cs.processTick()
			}

		case <-timer.C:
			now := time.Now()
			if cs.isPaused.Load() {
				// Slower polling while paused; deadline restarts on resume
				cs.nextTickDeadline = now.Add(cs.tickInterval)
				timer.Reset(cs.tickInterval * 2)
				continue
			}

			if !now.Before(cs.nextTickDeadline) {
				cs.processTick()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

				// Resync instead of bursting when far behind
				if now.Sub(cs.nextTickDeadline) > cs.tickInterval*parameter.SchedulerMaxBehind {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
			}

			timer.Reset(max(time.Until(cs.nextTickDeadline), 0))
		}
	}
}

// processTick executes one simulation step under the world lock
func (cs *ClockScheduler) processTick() {
	start := time.Now()
	cs.world.RunSafe(cs.stepper.Step)

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))
	cs.statDuration.Set(float64(time.Since(start).Microseconds()) / 1000)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}
