package domain

import "time"

// FatigueLevel buckets a driver's trailing 7-day average hours.
type FatigueLevel string

const (
	FatigueLight    FatigueLevel = "Light"    // avg < 6h
	FatigueNormal   FatigueLevel = "Normal"   // avg < 8h
	FatigueHeavy    FatigueLevel = "Heavy"    // avg < 10h
	FatigueOverwork FatigueLevel = "Overwork" // avg >= 10h
)

// SimulationInput is the caller-supplied parameters for one run.
type SimulationInput struct {
	SelectedDriverIDs []string `json:"selectedDriverIds"`
	StartTime         string   `json:"startTime"`
	MaxHoursPerDay    float64  `json:"maxHoursPerDay"`
}

// DeliveryOutcome is the evaluated result of one assigned order.
type DeliveryOutcome struct {
	OrderID           string  `json:"orderId"`
	DriverID          string  `json:"driverId"`
	IsOnTime          bool    `json:"isOnTime"`
	ActualDurationMin float64 `json:"actualDurationMin"`
	Profit            float64 `json:"profit"`
	Penalty           float64 `json:"penalty"`
	Bonus             float64 `json:"bonus"`
}

// FuelCostBreakdown splits fuel spend into the distance-based base cost
// and the high-traffic surcharge.
type FuelCostBreakdown struct {
	BaseCost         float64 `json:"baseCost"`
	TrafficSurcharge float64 `json:"trafficSurcharge"`
	TotalCost        float64 `json:"totalCost"`
}

// SimulationResult is the immutable outcome of one simulation run.
// It is created once per run and appended to the history store.
type SimulationResult struct {
	ID                   string            `json:"id"`
	TotalProfit          float64           `json:"totalProfit"`
	EfficiencyScore      float64           `json:"efficiencyScore"`
	OnTimeDeliveries     int               `json:"onTimeDeliveries"`
	LateDeliveries       int               `json:"lateDeliveries"`
	UnassignedOrderCount int               `json:"unassignedOrderCount"`
	FuelCostBreakdown    FuelCostBreakdown `json:"fuelCostBreakdown"`
	DeliveryStats        []DeliveryOutcome `json:"deliveryStats"`
	Inputs               SimulationInput   `json:"inputs"`
	CreatedAt            time.Time         `json:"createdAt"`
}
