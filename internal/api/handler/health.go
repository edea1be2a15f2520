package handler

import (
	"net/http"
	"time"

	"github.com/mcoot/rebirth/internal/api/response"
)

// ResetSchedule reports when identities are next cleared
type ResetSchedule interface {
	NextReset() time.Time
}

// HealthHandler handles the health endpoint
type HealthHandler struct {
	schedule ResetSchedule
}

// NewHealthHandler creates a new health handler. schedule may be nil.
func NewHealthHandler(schedule ResetSchedule) *HealthHandler {
	return &HealthHandler{schedule: schedule}
}

// Get handles GET /api/v1/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := response.Health{Status: "ok"}
	if h.schedule != nil {
		resp.NextReset = h.schedule.NextReset()
	}
	response.JSON(w, http.StatusOK, resp)
}
