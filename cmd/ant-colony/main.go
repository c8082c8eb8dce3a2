package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/ant-colony/audio"
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/logging"
	"github.com/lixenwraith/ant-colony/render"
	"github.com/lixenwraith/ant-colony/service"
	"github.com/lixenwraith/ant-colony/simulation"
	"github.com/lixenwraith/ant-colony/status"
)

var (
	configFlag   = flag.String("config", "", "TOML config file, defaults apply when empty")
	seedFlag     = flag.Uint64("seed", 0, "Random seed override, 0 keeps the config value")
	ticksFlag    = flag.Int("ticks", -1, "Headless step count override, 0 runs until interrupted")
	headlessFlag = flag.Bool("headless", false, "Run without the terminal UI and print metrics")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/"+logging.LogFileName)
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
	volumeFlag   = flag.Float64("volume", 1, "Audio cue gain in [0, 1]")
)

func main() {
	flag.Parse()

	logFile, err := logging.Setup(*debugFlag, "logs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	minLevel := logging.LevelInfo
	if *debugFlag {
		minLevel = logging.LevelDebug
	}
	logger := logging.Default(minLevel)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.World.Seed = *seedFlag
	}
	if *ticksFlag >= 0 {
		cfg.Engine.HeadlessTicks = *ticksFlag
	}

	reg := status.NewRegistry()
	sim, err := simulation.New(cfg, logger, reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := sim.SpawnErr(); err != nil {
		fmt.Fprintf(os.Stderr, "Running without ants: %v\n", err)
	}

	if *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		runHeadless(sim, reg, cfg.Engine.HeadlessTicks)
		return
	}
	runTerminal(sim, cfg, logger)
}

// runHeadless steps as fast as possible and prints the metrics report
func runHeadless(sim *simulation.Simulation, reg *status.Registry, ticks int) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	start := time.Now()
loop:
	for ticks == 0 || sim.Tick() < uint64(ticks) {
		select {
		case <-interrupt:
			break loop
		default:
		}
		sim.Step()
	}

	fmt.Printf("ran %d ticks in %s, %d food delivered\n", sim.Tick(), time.Since(start).Round(time.Millisecond), sim.Delivered())
	if err := reg.WriteReport(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
	}
}

func runTerminal(sim *simulation.Simulation, cfg *config.Config, logger logging.Logger) {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a panic from any goroutine started with core.Go
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mANT COLONY CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	sounds := audio.NewSoundManager()
	sounds.SetMuted(*muteFlag)
	sounds.SetVolume(*volumeFlag)
	sim.SetHooks(simulation.Hooks{
		OnBite:     func(int) { sounds.PlayBite() },
		OnDelivery: func(int) { sounds.PlayDelivery() },
		OnDepleted: func(int) { sounds.PlayDepleted() },
	})

	world := sim.World()
	frame := render.NewTerminalFrame(screen, world.Resources.ViewPort)
	scheduler, updateDone := engine.NewClockScheduler(world, sim, cfg.Engine.TickInterval.Duration)

	// Audio failure is non-fatal, the colony runs silent
	services := service.NewHub(logger)
	services.Register(sounds)
	services.Register(scheduler)
	services.StartAll()
	defer services.StopAll()

	frameTicker := time.NewTicker(cfg.Engine.FrameInterval.Duration)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	logger.Info(fmt.Sprintf("terminal session started with %d ants", sim.AntCount()))

	dirty := true
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				dirty = true
			case *tcell.EventKey:
				if !handleKey(ev, sim, scheduler, sounds) {
					return
				}
				dirty = true
			}

		case <-updateDone:
			dirty = true

		case <-frameTicker.C:
			if !dirty {
				continue
			}
			dirty = false
			drawFrame(frame, sim, scheduler, sounds)
		}
	}
}

// handleKey applies a key press; returns false on quit
func handleKey(ev *tcell.EventKey, sim *simulation.Simulation, scheduler *engine.ClockScheduler, sounds *audio.SoundManager) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case ' ':
		scheduler.TogglePause()
	case '.':
		scheduler.StepOnce()
	case 'm', 'M':
		sounds.ToggleMute()
	case 'r', 'R':
		sim.World().RunSafe(sim.Reset)
	}
	return true
}

func drawFrame(frame *render.TerminalFrame, sim *simulation.Simulation, scheduler *engine.ClockScheduler, sounds *audio.SoundManager) {
	snap := sim.Snapshot()
	scene := render.NewScene(snap.ViewPort, snap.Colony, snap.Food, snap.Pheromones, snap.Ants, snap.Counter)

	state := "running"
	if scheduler.Paused() {
		state = "paused"
	}
	if sounds.Muted() {
		state += ", muted"
	}
	scene.Add(render.StatusLayer{
		Position: core.Point{X: snap.Counter.Position.X, Y: snap.ViewPort.MinY + 0.08},
		Text:     fmt.Sprintf("tick %d (%s)  space pause  . step  r reset  m mute  q quit", snap.Tick, state),
		Color:    core.ColorFrame,
	})

	render.Draw(frame, scene)
}
