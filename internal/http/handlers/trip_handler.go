// README: Trip plan handler; validates the request and delegates to the orchestrator.
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sankalp69/AI-travel-planner/internal/modules/trip"
)

const dateLayout = "2006-01-02"

// TripHandler serves the trip planning endpoint.
type TripHandler struct {
	planner *trip.Service
}

func NewTripHandler(planner *trip.Service) *TripHandler {
	return &TripHandler{planner: planner}
}

type planTripReq struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	BudgetLevel int    `json:"budget_level"`
}

// PlanTrip handles POST /plan_trip/.
func (h *TripHandler) PlanTrip(c *gin.Context) {
	var req planTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Source = strings.TrimSpace(req.Source)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Source == "" || req.Destination == "" {
		writeError(c, http.StatusBadRequest, "source and destination are required")
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		writeError(c, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}

	resp, err := h.planner.Plan(c.Request.Context(), trip.Request{
		Source:      req.Source,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		BudgetLevel: req.BudgetLevel,
	})
	if err != nil {
		if errors.Is(err, trip.ErrNotConfigured) {
			writeError(c, http.StatusServiceUnavailable, "generation backend is not configured")
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, resp)
}
