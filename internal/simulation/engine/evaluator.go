package engine

import (
	"fmt"

	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
)

const (
	onTimeGraceMin    = 10.0   // minutes past the target still counted on-time
	latePenaltyRs     = 50.0   // flat penalty per late delivery
	bonusValueFloorRs = 1000.0 // order value above which on-time earns a bonus
	bonusRate         = 0.10
)

// EvaluateDelivery computes the outcome of one assignment: effective
// duration under the driver's fatigue, on-time status against the order's
// target plus the grace window, and the profit/penalty/bonus split.
func EvaluateDelivery(a Assignment, startMin float64) (domain.DeliveryOutcome, error) {
	profile, err := ClassifyFatigue(a.Driver.PastWeekHours)
	if err != nil {
		return domain.DeliveryOutcome{}, fmt.Errorf("driver %s: %w", a.Driver.ID, err)
	}

	targetMin, err := ParseClock(a.Order.DeliveryTime)
	if err != nil {
		return domain.DeliveryOutcome{}, fmt.Errorf("order %s delivery time: %w", a.Order.ID, err)
	}

	// A slower driver inflates the route's base time.
	effectiveMin := a.Route.BaseTimeMin / profile.SpeedMultiplier
	arrivalMin := startMin + effectiveMin
	onTime := arrivalMin <= targetMin+onTimeGraceMin

	var penalty, bonus float64
	if !onTime {
		penalty = latePenaltyRs
	}
	if onTime && a.Order.ValueRs > bonusValueFloorRs {
		bonus = bonusRate * a.Order.ValueRs
	}

	fuel := FuelCost(a.Route)
	profit := a.Order.ValueRs + bonus - penalty - fuel.TotalCost

	return domain.DeliveryOutcome{
		OrderID:           a.Order.ID,
		DriverID:          a.Driver.ID,
		IsOnTime:          onTime,
		ActualDurationMin: effectiveMin,
		Profit:            profit,
		Penalty:           penalty,
		Bonus:             bonus,
	}, nil
}
