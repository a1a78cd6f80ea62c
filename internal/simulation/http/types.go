package http

import (
	"time"

	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/service"
)

// Handler handles HTTP requests for simulation runs
type Handler struct {
	simService *service.SimulationService
}

// New creates a new Handler
func New(simService *service.SimulationService) *Handler {
	return &Handler{simService: simService}
}

// runRequest mirrors the dashboard's run form payload.
type runRequest struct {
	SelectedDriverIDs []string `json:"selectedDriverIds"`
	StartTime         string   `json:"startTime"`
	MaxHoursPerDay    float64  `json:"maxHoursPerDay"`
	// AvailableDrivers is sent by older dashboard builds; it is implied
	// by the selection and ignored here.
	AvailableDrivers int `json:"availableDrivers,omitempty"`
}

// historyItem is one entry of the history panel: the inputs used for the
// run next to its results, so the dashboard can replay a run.
type historyItem struct {
	ID        string                  `json:"id"`
	Inputs    domain.SimulationInput  `json:"inputs"`
	Results   domain.SimulationResult `json:"results"`
	CreatedAt time.Time               `json:"createdAt"`
}
