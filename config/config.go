// Package config loads simulation parameters from TOML over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/parameter"
)

// Config holds every tunable of a run
type Config struct {
	World     WorldConfig     `toml:"world"`
	Colony    ColonyConfig    `toml:"colony"`
	Ant       AntConfig       `toml:"ant"`
	Food      FoodConfig      `toml:"food"`
	Pheromone PheromoneConfig `toml:"pheromone"`
	Engine    EngineConfig    `toml:"engine"`
}

// WorldConfig bounds the plane and seeds the shared RNG
type WorldConfig struct {
	MinX float64 `toml:"min_x"`
	MinY float64 `toml:"min_y"`
	MaxX float64 `toml:"max_x"`
	MaxY float64 `toml:"max_y"`
	Seed uint64  `toml:"seed"`
}

// ColonyConfig places the colony disk
type ColonyConfig struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Radius float64 `toml:"radius"`
}

// AntConfig sizes agents; population is floor(colony radius / size)
type AntConfig struct {
	Size            float64 `toml:"size"`
	ChargeThreshold int     `toml:"charge_threshold"`
}

// FoodConfig controls the spawner
type FoodConfig struct {
	UnitRadius  float64 `toml:"unit_radius"`
	MaxCapacity int     `toml:"max_capacity"`
	SpawnChance float64 `toml:"spawn_chance"`
}

// PheromoneConfig controls marker size and lifetime
type PheromoneConfig struct {
	Size            float64 `toml:"size"`
	DepositStrength int     `toml:"deposit_strength"`
}

// EngineConfig controls loop pacing
type EngineConfig struct {
	TickInterval  Duration `toml:"tick_interval"`
	FrameInterval Duration `toml:"frame_interval"`
	// HeadlessTicks is the number of steps run without a terminal, 0 means until interrupted
	HeadlessTicks int `toml:"headless_ticks"`
}

// Duration decodes TOML strings like "33ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in parameters
func Default() *Config {
	return &Config{
		World: WorldConfig{
			MinX: parameter.ViewPortMinX,
			MinY: parameter.ViewPortMinY,
			MaxX: parameter.ViewPortMaxX,
			MaxY: parameter.ViewPortMaxY,
			Seed: parameter.DefaultSeed,
		},
		Colony: ColonyConfig{Radius: parameter.ColonyRadius},
		Ant: AntConfig{
			Size:            parameter.AntSize,
			ChargeThreshold: parameter.PheromoneChargeThreshold,
		},
		Food: FoodConfig{
			UnitRadius:  parameter.FoodUnitRadius,
			MaxCapacity: parameter.FoodMaxCapacity,
			SpawnChance: parameter.FoodSpawnChance,
		},
		Pheromone: PheromoneConfig{
			Size:            parameter.PheromoneSize,
			DepositStrength: parameter.PheromoneDepositStrength,
		},
		Engine: EngineConfig{
			TickInterval:  Duration{parameter.GameUpdateInterval},
			FrameInterval: Duration{parameter.FrameUpdateInterval},
		},
	}
}

// Load decodes the file at path over defaults; empty path returns defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	md, err := toml.DecodeFile(path, cfg)
	if err := checkDecoded(md, err); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over defaults with the same checks as Load
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err := checkDecoded(md, err); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// checkDecoded reports a decode failure or any key that matched no field
func checkDecoded(md toml.MetaData, err error) error {
	if err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config keys: %v", undecoded)
	}
	return nil
}

// ViewPort builds the validated plane bounds
func (c *Config) ViewPort() (core.ViewPort, error) {
	return core.NewViewPort(c.World.MinX, c.World.MinY, c.World.MaxX, c.World.MaxY)
}

// ColonyCenter returns the colony position
func (c *Config) ColonyCenter() core.Point {
	return core.Point{X: c.Colony.X, Y: c.Colony.Y}
}

// Validate checks ranges; every violation is reported
func (c *Config) Validate() error {
	var errs []error

	vp, err := c.ViewPort()
	if err != nil {
		errs = append(errs, err)
	} else if !vp.Contains(c.ColonyCenter()) {
		errs = append(errs, fmt.Errorf("colony center %v outside viewport", c.ColonyCenter()))
	}

	if c.Colony.Radius <= 0 {
		errs = append(errs, fmt.Errorf("colony radius must be positive, got %g", c.Colony.Radius))
	}
	if c.Ant.Size <= 0 {
		errs = append(errs, fmt.Errorf("ant size must be positive, got %g", c.Ant.Size))
	}
	if c.Ant.ChargeThreshold < 0 {
		errs = append(errs, fmt.Errorf("ant charge threshold must not be negative, got %d", c.Ant.ChargeThreshold))
	}
	if c.Food.UnitRadius <= 0 {
		errs = append(errs, fmt.Errorf("food unit radius must be positive, got %g", c.Food.UnitRadius))
	}
	if c.Food.MaxCapacity < parameter.FoodMinCapacity {
		errs = append(errs, fmt.Errorf("food max capacity must be at least %d, got %d", parameter.FoodMinCapacity, c.Food.MaxCapacity))
	}
	if c.Food.SpawnChance < 0 || c.Food.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("food spawn chance must be in [0,1], got %g", c.Food.SpawnChance))
	}
	if c.Pheromone.Size <= 0 {
		errs = append(errs, fmt.Errorf("pheromone size must be positive, got %g", c.Pheromone.Size))
	}
	if c.Pheromone.DepositStrength <= 0 {
		errs = append(errs, fmt.Errorf("pheromone deposit strength must be positive, got %d", c.Pheromone.DepositStrength))
	}
	if c.Engine.TickInterval.Duration <= 0 || c.Engine.FrameInterval.Duration <= 0 {
		errs = append(errs, errors.New("engine intervals must be positive"))
	}
	if c.Engine.HeadlessTicks < 0 {
		errs = append(errs, fmt.Errorf("headless ticks must not be negative, got %d", c.Engine.HeadlessTicks))
	}

	return errors.Join(errs...)
}
