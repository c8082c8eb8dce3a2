package engine

import (
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/logging"
	"github.com/lixenwraith/ant-colony/status"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Resources holds singletons shared by systems, created once per simulation
type Resources struct {
	Config   *config.Config
	ViewPort core.ViewPort

	// Rand is the single source of randomness; a fixed seed reproduces a run
	Rand *vmath.FastRand

	Logger logging.Logger
	Status *status.Registry
}

// NewResources validates config and builds the resource set
// Nil logger falls back to discard, nil status to a fresh registry
func NewResources(cfg *config.Config, logger logging.Logger, reg *status.Registry) (*Resources, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	vp, err := cfg.ViewPort()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Resources{
		Config:   cfg,
		ViewPort: vp,
		Rand:     vmath.NewFastRand(cfg.World.Seed),
		Logger:   logger,
		Status:   reg,
	}, nil
}
