package events

import (
	"time"

	"github.com/gigly/copilot/internal/geo"
)

type OfferDecidedEvent struct {
	OfferID    string    `json:"offer_id"`
	Action     string    `json:"action"`
	Reason     string    `json:"reason"`
	PayPerHr   float64   `json:"pay_per_hr"`
	PayPerMile float64   `json:"pay_per_mile"`
	CorridorOk bool      `json:"corridor_ok"`
	ARCurrent  float64   `json:"ar_current"`
	ARPill     string    `json:"ar_pill"`
	Mode       string    `json:"mode"`
	Timestamp  time.Time `json:"timestamp"`
}

type JourneyUpdatedEvent struct {
	LastDrop  geo.Point `json:"last_drop"`
	Waypoint  geo.Point `json:"waypoint"`
	Timestamp time.Time `json:"timestamp"`
}
