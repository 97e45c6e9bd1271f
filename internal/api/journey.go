package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gigly/copilot/internal/events"
	"github.com/gigly/copilot/internal/geo"
	"github.com/gigly/copilot/internal/journey"
)

type JourneyHandler struct {
	journey *journey.State
	events  events.Client
}

func NewJourneyHandler(j *journey.State, ev events.Client) *JourneyHandler {
	return &JourneyHandler{journey: j, events: ev}
}

type SetJourneyRequest struct {
	LastDropLat *float64 `json:"last_drop_lat"`
	LastDropLng *float64 `json:"last_drop_lng"`
	WaypointLat *float64 `json:"waypoint_lat"`
	WaypointLng *float64 `json:"waypoint_lng"`
}

func (h *JourneyHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req SetJourneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.LastDropLat == nil || req.LastDropLng == nil || req.WaypointLat == nil || req.WaypointLng == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "all four journey coordinates required"})
		return
	}
	if !validLatLng(*req.LastDropLat, *req.LastDropLng) || !validLatLng(*req.WaypointLat, *req.WaypointLng) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "journey coordinates out of range"})
		return
	}

	lastDrop := geo.Point{Lat: *req.LastDropLat, Lng: *req.LastDropLng}
	waypoint := geo.Point{Lat: *req.WaypointLat, Lng: *req.WaypointLng}
	h.journey.Set(lastDrop, waypoint)

	if h.events != nil {
		_ = h.events.Publish(events.SubjectJourneyUpdated, events.JourneyUpdatedEvent{
			LastDrop:  lastDrop,
			Waypoint:  waypoint,
			Timestamp: time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"last_drop": lastDrop,
		"waypoint":  waypoint,
	})
}

func validLatLng(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
