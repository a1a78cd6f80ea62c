package engine

import (
	"testing"

	fleet "github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/domain"
	"github.com/stretchr/testify/assert"
)

func TestFuelCost(t *testing.T) {
	t.Run("surcharge applies only on high traffic", func(t *testing.T) {
		for _, level := range []fleet.TrafficLevel{fleet.TrafficLow, fleet.TrafficMedium} {
			fuel := FuelCost(fleet.Route{DistanceKm: 12, TrafficLevel: level})
			assert.Equal(t, 60.0, fuel.BaseCost)
			assert.Equal(t, 0.0, fuel.TrafficSurcharge)
			assert.Equal(t, 60.0, fuel.TotalCost)
		}

		fuel := FuelCost(fleet.Route{DistanceKm: 12, TrafficLevel: fleet.TrafficHigh})
		assert.Equal(t, 60.0, fuel.BaseCost)
		assert.Equal(t, 24.0, fuel.TrafficSurcharge)
		assert.Equal(t, 84.0, fuel.TotalCost)
	})

	t.Run("ten km high traffic route costs 50 base plus 20 surcharge", func(t *testing.T) {
		fuel := FuelCost(fleet.Route{DistanceKm: 10, TrafficLevel: fleet.TrafficHigh})
		assert.Equal(t, 50.0, fuel.BaseCost)
		assert.Equal(t, 20.0, fuel.TrafficSurcharge)
		assert.Equal(t, 70.0, fuel.TotalCost)
	})
}
