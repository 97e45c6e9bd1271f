// Package journey owns the process-wide travel corridor: the last-known drop
// and the forward waypoint the driver is expected to continue toward.
package journey

import (
	"sync"

	"github.com/gigly/copilot/internal/geo"
)

// State holds the corridor pair. The pair is always replaced wholesale under
// one lock, so a reader can never see one fresh and one stale coordinate.
type State struct {
	mu       sync.RWMutex
	lastDrop *geo.Point
	waypoint *geo.Point
}

// New returns an empty State with no corridor constraint active.
func New() *State {
	return &State{}
}

// Set atomically replaces both corridor points.
func (s *State) Set(lastDrop, waypoint geo.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastDrop = &lastDrop
	s.waypoint = &waypoint
}

// Corridor returns copies of the corridor points, or nils when no journey has
// been set.
func (s *State) Corridor() (lastDrop, waypoint *geo.Point) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastDrop == nil || s.waypoint == nil {
		return nil, nil
	}
	ld := *s.lastDrop
	wp := *s.waypoint
	return &ld, &wp
}

// IsSet reports whether a corridor is currently active.
func (s *State) IsSet() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastDrop != nil && s.waypoint != nil
}
