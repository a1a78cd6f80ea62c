package engine

import (
	"testing"

	fleet "github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schedulerDrivers(ids ...string) []fleet.Driver {
	drivers := make([]fleet.Driver, 0, len(ids))
	for _, id := range ids {
		drivers = append(drivers, fleet.Driver{ID: id, PastWeekHours: []float64{6, 6, 6, 6, 6, 6, 6}})
	}
	return drivers
}

func orderOnRoute(orderID string, baseTimeMin float64) OrderRoute {
	return OrderRoute{
		Order: fleet.Order{ID: orderID, Status: fleet.OrderPending},
		Route: fleet.Route{ID: "r-" + orderID, DistanceKm: 5, TrafficLevel: fleet.TrafficLow, BaseTimeMin: baseTimeMin},
	}
}

func TestScheduleOrders_RoundRobin(t *testing.T) {
	drivers := schedulerDrivers("d1", "d2")
	orders := []OrderRoute{
		orderOnRoute("o1", 60),
		orderOnRoute("o2", 60),
		orderOnRoute("o3", 60),
	}

	schedule := ScheduleOrders(drivers, orders, 8)
	require.Len(t, schedule.Assignments, 3)
	assert.Zero(t, schedule.Unassigned)

	// Rotation resumes after the last driver used.
	assert.Equal(t, "d1", schedule.Assignments[0].Driver.ID)
	assert.Equal(t, "d2", schedule.Assignments[1].Driver.ID)
	assert.Equal(t, "d1", schedule.Assignments[2].Driver.ID)
}

func TestScheduleOrders_ProcessesOrdersByAscendingID(t *testing.T) {
	drivers := schedulerDrivers("d1")
	orders := []OrderRoute{
		orderOnRoute("o3", 30),
		orderOnRoute("o1", 30),
		orderOnRoute("o2", 30),
	}

	schedule := ScheduleOrders(drivers, orders, 8)
	require.Len(t, schedule.Assignments, 3)
	assert.Equal(t, "o1", schedule.Assignments[0].Order.ID)
	assert.Equal(t, "o2", schedule.Assignments[1].Order.ID)
	assert.Equal(t, "o3", schedule.Assignments[2].Order.ID)
}

func TestScheduleOrders_SkipsDriverWithoutBudget(t *testing.T) {
	drivers := schedulerDrivers("d1", "d2")
	orders := []OrderRoute{
		orderOnRoute("o1", 420), // fills most of d1's 8h
		orderOnRoute("o2", 120), // d1 cannot absorb this, d2 can
		orderOnRoute("o3", 120),
	}

	schedule := ScheduleOrders(drivers, orders, 8)
	require.Len(t, schedule.Assignments, 3)
	assert.Equal(t, "d1", schedule.Assignments[0].Driver.ID)
	assert.Equal(t, "d2", schedule.Assignments[1].Driver.ID)
	assert.Equal(t, "d2", schedule.Assignments[2].Driver.ID)
}

func TestScheduleOrders_CapacityExhausted(t *testing.T) {
	drivers := schedulerDrivers("d1")
	orders := []OrderRoute{
		orderOnRoute("o1", 300),
		orderOnRoute("o2", 300), // would push d1 past 8h
	}

	schedule := ScheduleOrders(drivers, orders, 8)
	require.Len(t, schedule.Assignments, 1)
	assert.Equal(t, "o1", schedule.Assignments[0].Order.ID)
	assert.Equal(t, 1, schedule.Unassigned)
}

func TestScheduleOrders_ExactBudgetFits(t *testing.T) {
	drivers := schedulerDrivers("d1")
	orders := []OrderRoute{
		orderOnRoute("o1", 240),
		orderOnRoute("o2", 240),
	}

	// 240 + 240 lands exactly on the 8h cap.
	schedule := ScheduleOrders(drivers, orders, 8)
	assert.Len(t, schedule.Assignments, 2)
	assert.Zero(t, schedule.Unassigned)
}

func TestScheduleOrders_Deterministic(t *testing.T) {
	drivers := schedulerDrivers("d1", "d2", "d3")
	orders := []OrderRoute{
		orderOnRoute("o5", 90),
		orderOnRoute("o2", 200),
		orderOnRoute("o4", 120),
		orderOnRoute("o1", 60),
		orderOnRoute("o3", 300),
	}

	first := ScheduleOrders(drivers, orders, 6)
	second := ScheduleOrders(drivers, orders, 6)
	assert.Equal(t, first, second)
}
