package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/logging"
)

func newTestWorld(t *testing.T, mutate func(*config.Config)) (*engine.World, *logging.Fake) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	logger := &logging.Fake{}
	res, err := engine.NewResources(cfg, logger, nil)
	require.NoError(t, err)
	return engine.NewWorld(res), logger
}

// scriptedRandom replays fixed fractions; FloatRange maps them into [lo, hi)
type scriptedRandom struct {
	fractions []float64
	next      int
}

func (r *scriptedRandom) fraction() float64 {
	f := r.fractions[r.next%len(r.fractions)]
	r.next++
	return f
}

func (r *scriptedRandom) IntRange(lo, hi int) int {
	return lo + int(r.fraction()*float64(hi-lo+1))
}

func (r *scriptedRandom) FloatRange(lo, hi float64) float64 {
	return lo + r.fraction()*(hi-lo)
}

func (r *scriptedRandom) Chance(p float64) bool {
	return r.fraction() < p
}
