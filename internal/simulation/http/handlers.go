package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

// RunSimulation executes one simulation run and returns the persisted result
func (h *Handler) RunSimulation(c *gin.Context) {
	var body runRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input := domain.SimulationInput{
		SelectedDriverIDs: body.SelectedDriverIDs,
		StartTime:         body.StartTime,
		MaxHoursPerDay:    body.MaxHoursPerDay,
	}

	result, err := h.simService.RunSimulation(c.Request.Context(), input)
	if err != nil {
		status, msg := mapRunError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"results": result})
}

// GetHistory lists the most recent simulation runs, newest first
func (h *Handler) GetHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	results, err := h.simService.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list simulations"})
		return
	}

	items := make([]historyItem, 0, len(results))
	for _, r := range results {
		items = append(items, historyItem{
			ID:        r.ID,
			Inputs:    r.Inputs,
			Results:   r,
			CreatedAt: r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"simulations": items})
}

// GetRun retrieves one stored simulation result
func (h *Handler) GetRun(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "run ID is required"})
		return
	}

	result, err := h.simService.GetResult(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrResultNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "simulation result not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get simulation result"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": result})
}

// mapRunError translates engine/service errors into HTTP responses.
// Caller mistakes are 4xx; NoEligibleOrders gets 422 because the request
// was well-formed but there is nothing to simulate.
func mapRunError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNoDriversSelected),
		errors.Is(err, domain.ErrUnknownDriver),
		errors.Is(err, domain.ErrInvalidClock),
		errors.Is(err, domain.ErrMaxHoursOutOfRange),
		errors.Is(err, domain.ErrBadWeekHistory):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNoEligibleOrders):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, "simulation failed"
	}
}
