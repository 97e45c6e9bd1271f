package api

import (
	"net/http"

	"github.com/gigly/copilot/internal/config"
	"github.com/gigly/copilot/internal/journey"
	"github.com/gigly/copilot/internal/tracker"
)

type StatusHandler struct {
	tracker *tracker.Tracker
	journey *journey.State
	cfg     *config.Config
}

func NewStatusHandler(t *tracker.Tracker, j *journey.State, cfg *config.Config) *StatusHandler {
	return &StatusHandler{tracker: t, journey: j, cfg: cfg}
}

type statusResponse struct {
	Mode       string           `json:"mode"`
	AR         tracker.Snapshot `json:"ar"`
	JourneySet bool             `json:"journey_set"`
	Floors     floorsConfig     `json:"floors"`
	Corridor   corridorConfig   `json:"corridor"`
}

type floorsConfig struct {
	MinPerMile float64 `json:"min_per_mile"`
	MinPerMin  float64 `json:"min_per_min"`
}

type corridorConfig struct {
	ConeDeg             float64 `json:"cone_deg"`
	LateralOffsetMi     float64 `json:"lateral_offset_mi"`
	WarnDeclineHeadroom int     `json:"warn_decline_headroom"`
}

func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Mode:       h.cfg.Decision.Mode,
		AR:         h.tracker.Snapshot(),
		JourneySet: h.journey.IsSet(),
		Floors: floorsConfig{
			MinPerMile: h.cfg.Decision.MinPerMile,
			MinPerMin:  h.cfg.Decision.MinPerMin,
		},
		Corridor: corridorConfig{
			ConeDeg:             h.cfg.Decision.ConeDeg,
			LateralOffsetMi:     h.cfg.Decision.LateralOffsetMi,
			WarnDeclineHeadroom: h.cfg.Decision.WarnDeclineHeadroom,
		},
	})
}

func (h *StatusHandler) AR(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Snapshot())
}
