package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/gigly/copilot/internal/engine"
	"github.com/gigly/copilot/internal/geo"
)

type OffersHandler struct {
	engine *engine.Engine
}

func NewOffersHandler(e *engine.Engine) *OffersHandler {
	return &OffersHandler{engine: e}
}

type dropPayload struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// ConsiderOfferRequest decodes numeric fields through pointers so a missing
// field is distinguishable from a zero.
type ConsiderOfferRequest struct {
	ID     string       `json:"id,omitempty"`
	Pay    *float64     `json:"pay"`
	Miles  *float64     `json:"miles"`
	EtaMin *float64     `json:"eta_min"`
	Drop   *dropPayload `json:"drop"`
}

func (h *OffersHandler) Consider(w http.ResponseWriter, r *http.Request) {
	var req ConsiderOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Pay == nil || req.Miles == nil || req.EtaMin == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "pay, miles and eta_min required"})
		return
	}
	if req.Drop == nil || req.Drop.Lat == nil || req.Drop.Lng == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "drop.lat and drop.lng required"})
		return
	}
	if *req.Pay < 0 || *req.Miles < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "pay and miles must be non-negative"})
		return
	}
	if *req.Drop.Lat < -90 || *req.Drop.Lat > 90 || *req.Drop.Lng < -180 || *req.Drop.Lng > 180 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "drop coordinates out of range"})
		return
	}

	offer := engine.Offer{
		ID:     req.ID,
		Pay:    *req.Pay,
		Miles:  *req.Miles,
		EtaMin: *req.EtaMin,
		Drop:   geo.Point{Lat: *req.Drop.Lat, Lng: *req.Drop.Lng},
	}
	if offer.ID == "" {
		offer.ID = uuid.NewString()
	}

	decision := h.engine.Consider(offer)

	decisionsTotal.WithLabelValues(string(decision.Action), string(decision.Mode)).Inc()
	acceptanceRate.Set(decision.ARCurrent)
	declinesLeft.Set(float64(decision.ARDeclinesLeft))

	writeJSON(w, http.StatusOK, decision)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
