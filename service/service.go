// Package service starts and stops the long-lived pieces around the simulation:
// the audio device and the tick scheduler.
package service

import (
	"fmt"

	"github.com/lixenwraith/ant-colony/logging"
)

// Service defines the lifecycle of an infrastructure subsystem
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire devices, launch goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources; must be idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string
	Start() error
	Stop() error
}

// Hub starts services in registration order and stops them in reverse
// A service that fails to start is logged and skipped; the rest keep running
type Hub struct {
	logger   logging.Logger
	services []Service
	started  []Service
}

// NewHub creates an empty hub; nil logger discards
func NewHub(logger logging.Logger) *Hub {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Hub{logger: logger}
}

// Register adds a service instance; duplicate names are rejected
func (h *Hub) Register(s Service) error {
	for _, existing := range h.services {
		if existing.Name() == s.Name() {
			return fmt.Errorf("service %q already registered", s.Name())
		}
	}
	h.services = append(h.services, s)
	return nil
}

// StartAll starts every registered service not yet running
// Returns the start failures, each wrapped with the service name
func (h *Hub) StartAll() []error {
	var errs []error
	for _, s := range h.services {
		if h.Running(s.Name()) {
			continue
		}
		if err := s.Start(); err != nil {
			err = fmt.Errorf("%s: %w", s.Name(), err)
			h.logger.Warning(fmt.Sprintf("service start failed, continuing without it: %v", err))
			errs = append(errs, err)
			continue
		}
		h.started = append(h.started, s)
		h.logger.Debug(fmt.Sprintf("service %s started", s.Name()))
	}
	return errs
}

// StopAll stops started services in reverse start order
func (h *Hub) StopAll() {
	for i := len(h.started) - 1; i >= 0; i-- {
		s := h.started[i]
		if err := s.Stop(); err != nil {
			h.logger.Error(fmt.Sprintf("service %s stop failed: %v", s.Name(), err))
			continue
		}
		h.logger.Debug(fmt.Sprintf("service %s stopped", s.Name()))
	}
	h.started = h.started[:0]
}

// Running reports whether the named service started successfully
func (h *Hub) Running(name string) bool {
	for _, s := range h.started {
		if s.Name() == name {
			return true
		}
	}
	return false
}
