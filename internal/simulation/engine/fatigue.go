package engine

import (
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
)

const (
	// A driver who logged more than this many hours yesterday is slowed today.
	fatigueDailyThresholdHours = 8.0
	// Speed multiplier applied to a fatigued driver (30% slower).
	fatigueSpeedMultiplier = 0.7
)

// FatigueProfile is the classification of one driver's trailing week.
type FatigueProfile struct {
	AvgHoursPerDay  float64
	Level           domain.FatigueLevel
	SpeedMultiplier float64
}

// ClassifyFatigue turns a 7-day hour history (most recent day last) into a
// fatigue level and the speed multiplier for the simulated day.
func ClassifyFatigue(pastWeekHours []float64) (FatigueProfile, error) {
	if len(pastWeekHours) != 7 {
		return FatigueProfile{}, domain.ErrBadWeekHistory
	}

	var total float64
	for _, h := range pastWeekHours {
		total += h
	}
	avg := total / 7

	var level domain.FatigueLevel
	switch {
	case avg < 6:
		level = domain.FatigueLight
	case avg < 8:
		level = domain.FatigueNormal
	case avg < 10:
		level = domain.FatigueHeavy
	default:
		level = domain.FatigueOverwork
	}

	multiplier := 1.0
	if pastWeekHours[6] > fatigueDailyThresholdHours {
		multiplier = fatigueSpeedMultiplier
	}

	return FatigueProfile{
		AvgHoursPerDay:  avg,
		Level:           level,
		SpeedMultiplier: multiplier,
	}, nil
}
