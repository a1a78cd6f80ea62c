package engine

import (
	"slices"
	"strings"

	fleet "github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/domain"
)

// OrderRoute is an eligible order joined with its route metadata.
type OrderRoute struct {
	Order fleet.Order
	Route fleet.Route
}

// Assignment pairs one order with the driver that will carry it.
type Assignment struct {
	Driver fleet.Driver
	Order  fleet.Order
	Route  fleet.Route
}

// Schedule is the output of one scheduling pass.
type Schedule struct {
	Assignments []Assignment
	// Unassigned counts orders no driver had remaining budget for.
	Unassigned int
}

// rotation is the scheduling state for a single pass: the round-robin
// cursor plus the minutes already committed to each driver. It lives only
// for the duration of one ScheduleOrders call.
type rotation struct {
	cursor    int
	usedMin   []float64
	budgetMin float64
}

func (r *rotation) fits(i int, routeMin float64) bool {
	return r.usedMin[i]+routeMin <= r.budgetMin
}

// ScheduleOrders distributes orders across drivers round-robin.
//
// Orders are processed in ascending order-id order and drivers are visited
// in selection order, resuming after the driver last assigned. The first
// driver whose remaining daily budget absorbs the route's base time takes
// the order; if a full rotation finds no capacity the order is left
// unassigned. The pass is deterministic for a given input.
func ScheduleOrders(drivers []fleet.Driver, orders []OrderRoute, maxHoursPerDay float64) Schedule {
	sorted := make([]OrderRoute, len(orders))
	copy(sorted, orders)
	slices.SortFunc(sorted, func(a, b OrderRoute) int {
		return strings.Compare(a.Order.ID, b.Order.ID)
	})

	rot := rotation{
		usedMin:   make([]float64, len(drivers)),
		budgetMin: maxHoursPerDay * 60,
	}

	var schedule Schedule
	for _, or := range sorted {
		assigned := false
		for step := 0; step < len(drivers); step++ {
			i := (rot.cursor + step) % len(drivers)
			if !rot.fits(i, or.Route.BaseTimeMin) {
				continue
			}

			rot.usedMin[i] += or.Route.BaseTimeMin
			rot.cursor = (i + 1) % len(drivers)
			schedule.Assignments = append(schedule.Assignments, Assignment{
				Driver: drivers[i],
				Order:  or.Order,
				Route:  or.Route,
			})
			assigned = true
			break
		}

		if !assigned {
			schedule.Unassigned++
		}
	}

	return schedule
}
