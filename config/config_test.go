package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.ColonyRadius, cfg.Colony.Radius)
	assert.Equal(t, parameter.GameUpdateInterval, cfg.Engine.TickInterval.Duration)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colony.toml")
	data := `
[world]
min_x = -250.0
min_y = -250.0
max_x = 250.0
max_y = 250.0
seed = 7

[colony]
radius = 50.0

[ant]
size = 2.0

[food]
unit_radius = 5.0
spawn_chance = 1.0

[engine]
tick_interval = "10ms"
headless_ticks = 500
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.World.Seed)
	assert.Equal(t, 50.0, cfg.Colony.Radius)
	assert.Equal(t, 2.0, cfg.Ant.Size)
	assert.Equal(t, 1.0, cfg.Food.SpawnChance)
	assert.Equal(t, 10*time.Millisecond, cfg.Engine.TickInterval.Duration)
	assert.Equal(t, 500, cfg.Engine.HeadlessTicks)
	// Untouched keys keep defaults
	assert.Equal(t, parameter.FoodMaxCapacity, cfg.Food.MaxCapacity)
	assert.Equal(t, parameter.PheromoneChargeThreshold, cfg.Ant.ChargeThreshold)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ant]\nspeed = 3\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown config keys")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestParseValidation(t *testing.T) {
	_, err := Parse("[world]\nmin_x = 2.0\nmax_x = 1.0\n")
	assert.ErrorContains(t, err, "invalid viewport")

	_, err = Parse("[colony]\nradius = -1.0\n")
	assert.ErrorContains(t, err, "colony radius")

	_, err = Parse("[food]\nspawn_chance = 1.5\n")
	assert.ErrorContains(t, err, "spawn chance")

	_, err = Parse("[engine]\ntick_interval = \"soon\"\n")
	assert.Error(t, err)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse("[ant]\nspeed = 3\n")
	assert.ErrorContains(t, err, "unknown config keys")

	cfg, err := Parse("[ant]\nsize = 0.01\n")
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.Ant.Size)
}

func TestDurationRoundTrip(t *testing.T) {
	d := Duration{250 * time.Millisecond}
	text, err := d.MarshalText()
	require.NoError(t, err)

	var back Duration
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, d, back)
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "colony.toml"))
	require.NoError(t, err)

	want := Default()
	want.Engine.HeadlessTicks = 500
	assert.Equal(t, want, cfg)
}
