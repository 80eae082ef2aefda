package config

import (
	"fmt"

	"github.com/kilianp07/dayplanner/core/clock"
	"github.com/kilianp07/dayplanner/core/interval"
	"github.com/kilianp07/dayplanner/core/sorted"
)

// EventConfig describes an event the planner starts with.
type EventConfig struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// Interval builds the event.
func (e EventConfig) Interval() (*interval.Interval, error) {
	start, err := clock.Parse(e.Start)
	if err != nil {
		return nil, err
	}
	end, err := clock.Parse(e.End)
	if err != nil {
		return nil, err
	}
	return interval.NewLabeled(start, end, e.Label)
}

// MaxInitialCapacity bounds initial_capacity. Storage grows on demand past it.
const MaxInitialCapacity = 1 << 20

// PlannerConfig defines the initial state of the planner.
type PlannerConfig struct {
	InitialCapacity int           `json:"initial_capacity"`
	Events          []EventConfig `json:"events"`
}

// SetDefaults applies sane defaults.
func (c *PlannerConfig) SetDefaults() {
	if c.InitialCapacity == 0 {
		c.InitialCapacity = sorted.DefaultCapacity
	}
}

// Validate checks the capacity and that every event is well formed.
func (c PlannerConfig) Validate() error {
	if c.InitialCapacity < sorted.MinCapacity {
		return fmt.Errorf("initial_capacity must be at least %d", sorted.MinCapacity)
	}
	if c.InitialCapacity > MaxInitialCapacity {
		return fmt.Errorf("initial_capacity must be at most %d", MaxInitialCapacity)
	}
	for i, e := range c.Events {
		if _, err := e.Interval(); err != nil {
			return fmt.Errorf("events[%d]: %w", i, err)
		}
	}
	return nil
}
