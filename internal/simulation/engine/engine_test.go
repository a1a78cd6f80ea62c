package engine

import (
	"testing"

	fleet "github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/domain"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FatiguedDriverOnTimeWithBonus(t *testing.T) {
	drivers := []fleet.Driver{fatiguedDriver("d1")}
	routes := []fleet.Route{{ID: "r1", DistanceKm: 10, TrafficLevel: fleet.TrafficHigh, BaseTimeMin: 30}}
	orders := []fleet.Order{{ID: "o1", RouteID: "r1", ValueRs: 1200, DeliveryTime: "09:45", Status: fleet.OrderPending}}

	result, err := Run(drivers, routes, orders, domain.SimulationInput{
		SelectedDriverIDs: []string{"d1"},
		StartTime:         "09:00",
		MaxHoursPerDay:    8,
	})
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.FuelCostBreakdown.BaseCost)
	assert.Equal(t, 20.0, result.FuelCostBreakdown.TrafficSurcharge)
	assert.Equal(t, 70.0, result.FuelCostBreakdown.TotalCost)
	assert.Equal(t, 1, result.OnTimeDeliveries)
	assert.Zero(t, result.LateDeliveries)
	assert.Equal(t, 100.0, result.EfficiencyScore)
	assert.Equal(t, 1250.0, result.TotalProfit)
	assert.Zero(t, result.UnassignedOrderCount)

	require.Len(t, result.DeliveryStats, 1)
	outcome := result.DeliveryStats[0]
	assert.Equal(t, "o1", outcome.OrderID)
	assert.Equal(t, "d1", outcome.DriverID)
	assert.True(t, outcome.IsOnTime)
	assert.Equal(t, 120.0, outcome.Bonus)
	assert.InDelta(t, 30/0.7, outcome.ActualDurationMin, 1e-9)
}

func TestRun_TightTargetTurnsLate(t *testing.T) {
	drivers := []fleet.Driver{fatiguedDriver("d1")}
	routes := []fleet.Route{{ID: "r1", DistanceKm: 10, TrafficLevel: fleet.TrafficHigh, BaseTimeMin: 30}}
	orders := []fleet.Order{{ID: "o1", RouteID: "r1", ValueRs: 1200, DeliveryTime: "09:15", Status: fleet.OrderPending}}

	result, err := Run(drivers, routes, orders, domain.SimulationInput{
		SelectedDriverIDs: []string{"d1"},
		StartTime:         "09:00",
		MaxHoursPerDay:    8,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.LateDeliveries)
	assert.Zero(t, result.OnTimeDeliveries)
	assert.Equal(t, 0.0, result.EfficiencyScore)
	assert.Equal(t, 1080.0, result.TotalProfit)

	require.Len(t, result.DeliveryStats, 1)
	assert.Equal(t, 50.0, result.DeliveryStats[0].Penalty)
	assert.Equal(t, 0.0, result.DeliveryStats[0].Bonus)
}

func TestRun_CapacityExhaustedSurfacesUnassignedCount(t *testing.T) {
	drivers := []fleet.Driver{restedDriver("d1")}
	routes := []fleet.Route{{ID: "r1", DistanceKm: 40, TrafficLevel: fleet.TrafficLow, BaseTimeMin: 300}}
	orders := []fleet.Order{
		{ID: "o1", RouteID: "r1", ValueRs: 800, DeliveryTime: "18:00", Status: fleet.OrderPending},
		{ID: "o2", RouteID: "r1", ValueRs: 800, DeliveryTime: "18:00", Status: fleet.OrderAssigned},
	}

	result, err := Run(drivers, routes, orders, domain.SimulationInput{
		SelectedDriverIDs: []string{"d1"},
		StartTime:         "09:00",
		MaxHoursPerDay:    8,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.UnassignedOrderCount)
	require.Len(t, result.DeliveryStats, 1)
	assert.Equal(t, "o1", result.DeliveryStats[0].OrderID)

	// Unassigned orders stay out of the efficiency denominator.
	assert.Equal(t, 100.0, result.EfficiencyScore)
}

func TestRun_SkipsDeliveredAndCancelledOrders(t *testing.T) {
	drivers := []fleet.Driver{restedDriver("d1")}
	routes := []fleet.Route{{ID: "r1", DistanceKm: 5, TrafficLevel: fleet.TrafficLow, BaseTimeMin: 30}}
	orders := []fleet.Order{
		{ID: "o1", RouteID: "r1", ValueRs: 500, DeliveryTime: "12:00", Status: fleet.OrderDelivered},
		{ID: "o2", RouteID: "r1", ValueRs: 500, DeliveryTime: "12:00", Status: fleet.OrderCancelled},
		{ID: "o3", RouteID: "r1", ValueRs: 500, DeliveryTime: "12:00", Status: fleet.OrderPending},
	}

	result, err := Run(drivers, routes, orders, domain.SimulationInput{
		SelectedDriverIDs: []string{"d1"},
		StartTime:         "09:00",
		MaxHoursPerDay:    8,
	})
	require.NoError(t, err)
	require.Len(t, result.DeliveryStats, 1)
	assert.Equal(t, "o3", result.DeliveryStats[0].OrderID)
}

func TestRun_InputValidation(t *testing.T) {
	drivers := []fleet.Driver{restedDriver("d1")}
	routes := []fleet.Route{{ID: "r1", DistanceKm: 5, TrafficLevel: fleet.TrafficLow, BaseTimeMin: 30}}
	orders := []fleet.Order{{ID: "o1", RouteID: "r1", ValueRs: 500, DeliveryTime: "12:00", Status: fleet.OrderPending}}

	cases := []struct {
		name  string
		input domain.SimulationInput
		want  error
	}{
		{
			"empty driver selection",
			domain.SimulationInput{StartTime: "09:00", MaxHoursPerDay: 8},
			domain.ErrNoDriversSelected,
		},
		{
			"max hours below range",
			domain.SimulationInput{SelectedDriverIDs: []string{"d1"}, StartTime: "09:00", MaxHoursPerDay: 0.5},
			domain.ErrMaxHoursOutOfRange,
		},
		{
			"max hours above range",
			domain.SimulationInput{SelectedDriverIDs: []string{"d1"}, StartTime: "09:00", MaxHoursPerDay: 25},
			domain.ErrMaxHoursOutOfRange,
		},
		{
			"malformed start time",
			domain.SimulationInput{SelectedDriverIDs: []string{"d1"}, StartTime: "25:99", MaxHoursPerDay: 8},
			domain.ErrInvalidClock,
		},
		{
			"unknown driver id",
			domain.SimulationInput{SelectedDriverIDs: []string{"ghost"}, StartTime: "09:00", MaxHoursPerDay: 8},
			domain.ErrUnknownDriver,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Run(drivers, routes, orders, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRun_NoEligibleOrders(t *testing.T) {
	drivers := []fleet.Driver{restedDriver("d1")}
	routes := []fleet.Route{{ID: "r1", DistanceKm: 5, TrafficLevel: fleet.TrafficLow, BaseTimeMin: 30}}
	orders := []fleet.Order{{ID: "o1", RouteID: "r1", ValueRs: 500, DeliveryTime: "12:00", Status: fleet.OrderDelivered}}

	_, err := Run(drivers, routes, orders, domain.SimulationInput{
		SelectedDriverIDs: []string{"d1"},
		StartTime:         "09:00",
		MaxHoursPerDay:    8,
	})
	assert.ErrorIs(t, err, domain.ErrNoEligibleOrders)
}

func TestRun_Deterministic(t *testing.T) {
	drivers := []fleet.Driver{fatiguedDriver("d1"), restedDriver("d2"), restedDriver("d3")}
	routes := []fleet.Route{
		{ID: "r1", DistanceKm: 10, TrafficLevel: fleet.TrafficHigh, BaseTimeMin: 45},
		{ID: "r2", DistanceKm: 25, TrafficLevel: fleet.TrafficMedium, BaseTimeMin: 90},
		{ID: "r3", DistanceKm: 6, TrafficLevel: fleet.TrafficLow, BaseTimeMin: 25},
	}
	orders := []fleet.Order{
		{ID: "o4", RouteID: "r2", ValueRs: 2200, DeliveryTime: "11:00", Status: fleet.OrderPending},
		{ID: "o1", RouteID: "r1", ValueRs: 900, DeliveryTime: "09:30", Status: fleet.OrderAssigned},
		{ID: "o3", RouteID: "r3", ValueRs: 1500, DeliveryTime: "10:15", Status: fleet.OrderPending},
		{ID: "o2", RouteID: "r1", ValueRs: 400, DeliveryTime: "09:20", Status: fleet.OrderPending},
	}
	input := domain.SimulationInput{
		SelectedDriverIDs: []string{"d2", "d1", "d3"},
		StartTime:         "08:30",
		MaxHoursPerDay:    8,
	}

	first, err := Run(drivers, routes, orders, input)
	require.NoError(t, err)
	second, err := Run(drivers, routes, orders, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_DuplicateDriverSelectionCollapses(t *testing.T) {
	drivers := []fleet.Driver{restedDriver("d1")}
	routes := []fleet.Route{{ID: "r1", DistanceKm: 5, TrafficLevel: fleet.TrafficLow, BaseTimeMin: 300}}
	orders := []fleet.Order{
		{ID: "o1", RouteID: "r1", ValueRs: 500, DeliveryTime: "18:00", Status: fleet.OrderPending},
		{ID: "o2", RouteID: "r1", ValueRs: 500, DeliveryTime: "18:00", Status: fleet.OrderPending},
	}

	// Listing the same driver twice must not double the daily budget.
	result, err := Run(drivers, routes, orders, domain.SimulationInput{
		SelectedDriverIDs: []string{"d1", "d1"},
		StartTime:         "09:00",
		MaxHoursPerDay:    8,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.UnassignedOrderCount)
}
