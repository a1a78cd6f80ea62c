package engine

import (
	"strconv"
	"strings"

	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
)

// ParseClock converts an "HH:MM" time-of-day into minutes since midnight.
// Hours run 00-23 and minutes 00-59; anything else is rejected.
func ParseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, domain.ErrInvalidClock
	}

	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, domain.ErrInvalidClock
	}

	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, domain.ErrInvalidClock
	}

	return float64(hh*60 + mm), nil
}
