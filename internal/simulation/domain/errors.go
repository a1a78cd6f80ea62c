package domain

import "errors"

var (
	ErrNoDriversSelected  = errors.New("at least one driver must be selected")
	ErrUnknownDriver      = errors.New("selected driver does not exist")
	ErrInvalidClock       = errors.New("time of day must be in HH:MM form")
	ErrMaxHoursOutOfRange = errors.New("max hours per day must be between 1 and 24")
	ErrBadWeekHistory     = errors.New("driver week history must hold exactly 7 days")
	ErrNoEligibleOrders   = errors.New("no pending or assigned orders to simulate")
	ErrResultNotFound     = errors.New("simulation result not found")
)
