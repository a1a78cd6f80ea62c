package engine

import (
	"fmt"

	fleet "github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/domain"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
)

// Run executes one simulation pass over an immutable snapshot of master
// data. It validates the input, schedules eligible orders across the
// selected drivers, evaluates every assignment and reduces the outcomes
// into a SimulationResult.
//
// The computation is pure and deterministic: identical snapshots and
// input produce an identical result. ID and CreatedAt are left zero for
// the caller to stamp at persist time.
func Run(drivers []fleet.Driver, routes []fleet.Route, orders []fleet.Order, input domain.SimulationInput) (*domain.SimulationResult, error) {
	startMin, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	selected, err := selectDrivers(drivers, input.SelectedDriverIDs)
	if err != nil {
		return nil, err
	}

	eligible, err := eligibleOrders(orders, routes)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, domain.ErrNoEligibleOrders
	}

	schedule := ScheduleOrders(selected, eligible, input.MaxHoursPerDay)

	outcomes := make([]domain.DeliveryOutcome, 0, len(schedule.Assignments))
	for _, a := range schedule.Assignments {
		outcome, err := EvaluateDelivery(a, startMin)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}

	result := aggregate(schedule, outcomes)
	result.Inputs = input
	return result, nil
}

func validateInput(input domain.SimulationInput) (float64, error) {
	if len(input.SelectedDriverIDs) == 0 {
		return 0, domain.ErrNoDriversSelected
	}

	if input.MaxHoursPerDay < 1 || input.MaxHoursPerDay > 24 {
		return 0, domain.ErrMaxHoursOutOfRange
	}

	return ParseClock(input.StartTime)
}

// selectDrivers resolves the selected ids against the snapshot, keeping
// selection order and dropping duplicate ids.
func selectDrivers(drivers []fleet.Driver, ids []string) ([]fleet.Driver, error) {
	byID := make(map[string]fleet.Driver, len(drivers))
	for _, d := range drivers {
		byID[d.ID] = d
	}

	seen := make(map[string]bool, len(ids))
	selected := make([]fleet.Driver, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		d, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDriver, id)
		}
		selected = append(selected, d)
	}

	return selected, nil
}

func eligibleOrders(orders []fleet.Order, routes []fleet.Route) ([]OrderRoute, error) {
	byID := make(map[string]fleet.Route, len(routes))
	for _, r := range routes {
		byID[r.ID] = r
	}

	eligible := make([]OrderRoute, 0, len(orders))
	for _, o := range orders {
		if !o.Simulatable() {
			continue
		}

		r, ok := byID[o.RouteID]
		if !ok {
			return nil, fmt.Errorf("order %s references unknown route %s", o.ID, o.RouteID)
		}
		eligible = append(eligible, OrderRoute{Order: o, Route: r})
	}

	return eligible, nil
}

// aggregate reduces all delivery outcomes into the run totals.
func aggregate(schedule Schedule, outcomes []domain.DeliveryOutcome) *domain.SimulationResult {
	result := &domain.SimulationResult{
		UnassignedOrderCount: schedule.Unassigned,
		DeliveryStats:        outcomes,
	}

	for _, o := range outcomes {
		result.TotalProfit += o.Profit
		if o.IsOnTime {
			result.OnTimeDeliveries++
		} else {
			result.LateDeliveries++
		}
	}

	// Fuel is attributed once per processed order on that order's route.
	for _, a := range schedule.Assignments {
		fuel := FuelCost(a.Route)
		result.FuelCostBreakdown.BaseCost += fuel.BaseCost
		result.FuelCostBreakdown.TrafficSurcharge += fuel.TrafficSurcharge
	}
	result.FuelCostBreakdown.TotalCost = result.FuelCostBreakdown.BaseCost + result.FuelCostBreakdown.TrafficSurcharge

	processed := result.OnTimeDeliveries + result.LateDeliveries
	if processed > 0 {
		result.EfficiencyScore = 100 * float64(result.OnTimeDeliveries) / float64(processed)
	}

	return result
}
