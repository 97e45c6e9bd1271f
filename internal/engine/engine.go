// Package engine decides what to do with an incoming delivery offer by
// combining offer economics, corridor alignment, and acceptance-rate headroom.
package engine

import (
	"log/slog"
	"math"
	"time"

	"github.com/gigly/copilot/internal/events"
	"github.com/gigly/copilot/internal/geo"
	"github.com/gigly/copilot/internal/journey"
	"github.com/gigly/copilot/internal/tracker"
)

// Action is the final verdict on an offer.
type Action string

const (
	ActionAccept        Action = "ACCEPT"
	ActionDecline       Action = "DECLINE"
	ActionAcceptReroute Action = "ACCEPT_REROUTE"
)

// Mode controls whether decisions commit to the acceptance-rate counters.
type Mode string

const (
	// ModeShadow computes and returns decisions without mutating counters.
	ModeShadow Mode = "SHADOW"
	// ModeLive records every decision against the tracker.
	ModeLive Mode = "LIVE"
)

const (
	// rateEpsilon floors etaMin and miles so degenerate offers distort the
	// rate instead of faulting the division.
	rateEpsilon = 0.01

	// minPayPerHr is the hourly floor enforced on every offer.
	// TODO: derive this from the configured per-minute floor; the check is
	// still the literal $24/hr the configured value is supposed to express.
	minPayPerHr = 24.0
)

// Offer is one incoming delivery offer. Immutable; lives for one decision.
type Offer struct {
	ID     string
	Pay    float64
	Miles  float64
	EtaMin float64
	Drop   geo.Point
}

// Decision is the structured outcome returned to the caller.
type Decision struct {
	OfferID        string       `json:"offer_id"`
	Action         Action       `json:"action"`
	Reason         string       `json:"reason"`
	PayPerHr       float64      `json:"pay_per_hr"`
	PayPerMile     float64      `json:"pay_per_mile"`
	CorridorOk     bool         `json:"corridor_ok"`
	ARPill         tracker.Pill `json:"ar_pill"`
	ARCurrent      float64      `json:"ar_current"`
	ARDeclinesLeft int          `json:"ar_declines_left"`
	Mode           Mode         `json:"mode"`
}

// Params are the decision thresholds, fixed for the engine's lifetime.
type Params struct {
	Mode            Mode
	MinPerMile      float64
	ConeDeg         float64
	LateralOffsetMi float64
}

// Engine evaluates offers against the tracker and journey it was built with.
// It holds no per-offer state of its own.
type Engine struct {
	tracker *tracker.Tracker
	journey *journey.State
	events  events.Client
	params  Params
	logger  *slog.Logger
}

// New creates an Engine. A nil events client disables event publishing.
func New(t *tracker.Tracker, j *journey.State, ev events.Client, params Params, logger *slog.Logger) *Engine {
	return &Engine{
		tracker: t,
		journey: j,
		events:  ev,
		params:  params,
		logger:  logger,
	}
}

// Mode returns the operating mode the engine was configured with.
func (e *Engine) Mode() Mode {
	return e.params.Mode
}

// Consider evaluates one offer and returns the decision. In live mode the
// matching rule's outcome is recorded against the tracker; in shadow mode the
// counters stay frozen.
func (e *Engine) Consider(o Offer) Decision {
	payPerHr := o.Pay / math.Max(o.EtaMin, rateEpsilon) * 60
	payPerMile := o.Pay / math.Max(o.Miles, rateEpsilon)

	lastDrop, waypoint := e.journey.Corridor()
	corridorOk := geo.AdvancesCorridor(lastDrop, waypoint, o.Drop, e.params.ConeDeg, e.params.LateralOffsetMi)

	s := signals{
		floorsOk:     payPerHr >= minPayPerHr && payPerMile >= e.params.MinPerMile,
		corridorOk:   corridorOk,
		arWouldBreak: e.tracker.DeclinesLeft() <= 0,
	}
	r := matchRule(s)

	if e.params.Mode == ModeLive {
		if r.accepted {
			e.tracker.RecordAccept()
		} else {
			e.tracker.RecordDecline()
		}
	}

	snap := e.tracker.Snapshot()
	d := Decision{
		OfferID:        o.ID,
		Action:         r.action,
		Reason:         r.reason,
		PayPerHr:       payPerHr,
		PayPerMile:     payPerMile,
		CorridorOk:     corridorOk,
		ARPill:         snap.Pill,
		ARCurrent:      snap.Current,
		ARDeclinesLeft: snap.DeclinesLeft,
		Mode:           e.params.Mode,
	}

	e.logger.Info("offer decided",
		"offer_id", o.ID,
		"action", d.Action,
		"rule", r.name,
		"pay_per_hr", payPerHr,
		"pay_per_mile", payPerMile,
		"corridor_ok", corridorOk,
		"ar_pill", snap.Pill,
		"mode", e.params.Mode,
	)

	if e.events != nil {
		_ = e.events.Publish(events.SubjectOfferDecided(o.ID), events.OfferDecidedEvent{
			OfferID:    o.ID,
			Action:     string(d.Action),
			Reason:     d.Reason,
			PayPerHr:   payPerHr,
			PayPerMile: payPerMile,
			CorridorOk: corridorOk,
			ARCurrent:  snap.Current,
			ARPill:     string(snap.Pill),
			Mode:       string(e.params.Mode),
			Timestamp:  time.Now().UTC(),
		})
	}

	return d
}
