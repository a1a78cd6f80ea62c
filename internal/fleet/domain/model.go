package domain

// TrafficLevel is the congestion rating recorded on a route.
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "Low"
	TrafficMedium TrafficLevel = "Medium"
	TrafficHigh   TrafficLevel = "High"
)

// Valid reports whether the level is one of the three known ratings.
func (l TrafficLevel) Valid() bool {
	switch l {
	case TrafficLow, TrafficMedium, TrafficHigh:
		return true
	}
	return false
}

// OrderStatus constants
const (
	OrderPending   = "pending"
	OrderAssigned  = "assigned"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Driver is a delivery driver with the trailing week of logged hours.
// PastWeekHours always holds exactly 7 entries, most recent day last.
type Driver struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	ShiftHours    float64   `json:"shiftHours"`
	PastWeekHours []float64 `json:"pastWeekHours"`
	IsActive      bool      `json:"isActive"`
}

// Route is fixed metadata for one delivery route.
type Route struct {
	ID           string       `json:"_id"`
	Name         string       `json:"name"`
	DistanceKm   float64      `json:"distanceKm"`
	TrafficLevel TrafficLevel `json:"trafficLevel"`
	BaseTimeMin  float64      `json:"baseTimeMin"`
}

// Order is a delivery order bound to a route, with a target delivery
// time on the simulated day in HH:MM form.
type Order struct {
	ID           string  `json:"_id"`
	RouteID      string  `json:"routeId"`
	ValueRs      float64 `json:"valueRs"`
	DeliveryTime string  `json:"deliveryTime"`
	Status       string  `json:"status"`
}

// Simulatable reports whether the order participates in a simulation run.
func (o Order) Simulatable() bool {
	return o.Status == OrderPending || o.Status == OrderAssigned
}
