package engine

import (
	fleet "github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/domain"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
)

const (
	fuelBaseRatePerKm         = 5.0 // Rs per km on every route
	fuelTrafficSurchargePerKm = 2.0 // extra Rs per km on High traffic routes
)

// FuelCost computes the fuel cost breakdown for one traversal of a route.
func FuelCost(r fleet.Route) domain.FuelCostBreakdown {
	base := r.DistanceKm * fuelBaseRatePerKm

	var surcharge float64
	switch r.TrafficLevel {
	case fleet.TrafficHigh:
		surcharge = r.DistanceKm * fuelTrafficSurchargePerKm
	case fleet.TrafficLow, fleet.TrafficMedium:
		surcharge = 0
	}

	return domain.FuelCostBreakdown{
		BaseCost:         base,
		TrafficSurcharge: surcharge,
		TotalCost:        base + surcharge,
	}
}
