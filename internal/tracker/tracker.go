// Package tracker keeps the rolling acceptance-rate counters and the derived
// health signals the decision engine gates on.
package tracker

import "sync"

// Pill is the coarse three-level acceptance-rate health indicator.
type Pill string

const (
	PillGreen  Pill = "GREEN"
	PillYellow Pill = "YELLOW"
	PillRed    Pill = "RED"
)

const (
	// DefaultAssumedAcceptRate is the constant future acceptance rate used by
	// forward projections when the caller has nothing better.
	DefaultAssumedAcceptRate = 0.7

	// pillHorizon is how many future offers the pill projects over.
	pillHorizon = 10

	// greenDeclineHeadroom is the minimum declines-left for a GREEN pill.
	greenDeclineHeadroom = 3
)

// Tracker holds the accepted/declined counters. Counters only ever increase;
// the mutex serializes increments against headroom reads so no update is lost.
type Tracker struct {
	mu       sync.Mutex
	accepted int
	declined int

	target float64
	warn   float64
}

// New creates a Tracker with zero counters against the given target and warn
// ratios. Target must be in (0, 1); config validation enforces that upstream.
func New(target, warn float64) *Tracker {
	return &Tracker{target: target, warn: warn}
}

// Snapshot is a consistent view of the tracker taken under one lock.
type Snapshot struct {
	Accepted     int     `json:"accepted"`
	Declined     int     `json:"declined"`
	Current      float64 `json:"current"`
	DeclinesLeft int     `json:"declines_left"`
	Pill         Pill    `json:"pill"`
	Target       float64 `json:"target"`
}

// Current returns accepted/total, or 1.0 before any offer has been seen.
func (t *Tracker) Current() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentLocked()
}

// DeclinesLeft returns how many more declines the tracker can absorb before
// the running ratio drops below target.
func (t *Tracker) DeclinesLeft() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.declinesLeftLocked()
}

// ProjectedAfter returns the ratio after n more offers assuming a constant
// future acceptance rate. It never mutates state.
func (t *Tracker) ProjectedAfter(n int, assumedRate float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.projectedLocked(n, assumedRate)
}

// Pill returns the health indicator. GREEN requires both the 10-offer
// projection to clear the warn ratio and at least 3 declines of headroom;
// YELLOW needs either the projection to clear target or any headroom at all.
func (t *Tracker) Pill() Pill {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pillLocked()
}

// RecordAccept increments the accepted counter by one.
func (t *Tracker) RecordAccept() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.accepted++
}

// RecordDecline increments the declined counter by one.
func (t *Tracker) RecordDecline() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.declined++
}

// Snapshot returns all derived values from a single lock acquisition, so
// status readers never observe counters and headroom from different moments.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		Accepted:     t.accepted,
		Declined:     t.declined,
		Current:      t.currentLocked(),
		DeclinesLeft: t.declinesLeftLocked(),
		Pill:         t.pillLocked(),
		Target:       t.target,
	}
}

func (t *Tracker) currentLocked() float64 {
	total := t.accepted + t.declined
	if total == 0 {
		return 1.0
	}
	return float64(t.accepted) / float64(total)
}

// declinesLeftLocked simulates additional declines until the ratio would fall
// below target. Terminates for any target > 0 since the ratio tends to zero.
func (t *Tracker) declinesLeftLocked() int {
	total := t.accepted + t.declined
	left := 0
	for float64(t.accepted)/float64(total+left+1) >= t.target {
		left++
	}
	return left
}

func (t *Tracker) projectedLocked(n int, assumedRate float64) float64 {
	if n <= 0 {
		return t.currentLocked()
	}
	total := t.accepted + t.declined
	return (float64(t.accepted) + assumedRate*float64(n)) / float64(total+n)
}

func (t *Tracker) pillLocked() Pill {
	projection := t.projectedLocked(pillHorizon, DefaultAssumedAcceptRate)
	left := t.declinesLeftLocked()

	switch {
	case projection >= t.warn && left >= greenDeclineHeadroom:
		return PillGreen
	case projection >= t.target || left >= 1:
		return PillYellow
	default:
		return PillRed
	}
}
