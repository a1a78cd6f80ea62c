package repository

import (
	"context"
	"fmt"

	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads master data. Drivers, routes and orders are owned by
// the upstream CRUD service; this side only ever selects.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ActiveDrivers returns all drivers available for simulation.
func (r *Repository) ActiveDrivers(ctx context.Context) ([]domain.Driver, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, shift_hours, past_week_hours, is_active
		FROM drivers
		WHERE is_active
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.ShiftHours, &d.PastWeekHours, &d.IsActive); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drivers: %w", err)
	}

	return drivers, nil
}

// Routes returns all route metadata.
func (r *Repository) Routes(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, distance_km, traffic_level, base_time_min
		FROM routes
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	var routes []domain.Route
	for rows.Next() {
		var rt domain.Route
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.DistanceKm, &rt.TrafficLevel, &rt.BaseTimeMin); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routes: %w", err)
	}

	return routes, nil
}

// Orders returns all non-cancelled orders.
func (r *Repository) Orders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, route_id, value_rs, delivery_time, status
		FROM orders
		WHERE status <> $1
		ORDER BY id
	`, domain.OrderCancelled)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.RouteID, &o.ValueRs, &o.DeliveryTime, &o.Status); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}
