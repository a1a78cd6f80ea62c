package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
)

// HistoryRepository handles PostgreSQL operations for simulation results.
// The table is append-only; results never change after insertion.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create appends one simulation result. The caller stamps ID and
// CreatedAt before the call; nothing is written on marshal failure.
func (r *HistoryRepository) Create(ctx context.Context, result *domain.SimulationResult) error {
	statsJSON, err := json.Marshal(result.DeliveryStats)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery stats: %w", err)
	}

	inputsJSON, err := json.Marshal(result.Inputs)
	if err != nil {
		return fmt.Errorf("failed to marshal inputs: %w", err)
	}

	query := `
		INSERT INTO simulation_results (
			id, total_profit, efficiency_score, on_time_deliveries,
			late_deliveries, unassigned_order_count, fuel_base_cost,
			fuel_traffic_surcharge, delivery_stats, inputs, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		result.ID,
		result.TotalProfit,
		result.EfficiencyScore,
		result.OnTimeDeliveries,
		result.LateDeliveries,
		result.UnassignedOrderCount,
		result.FuelCostBreakdown.BaseCost,
		result.FuelCostBreakdown.TrafficSurcharge,
		statsJSON,
		inputsJSON,
		result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create simulation result: %w", err)
	}

	return nil
}

// GetByID retrieves one stored result.
func (r *HistoryRepository) GetByID(ctx context.Context, id string) (*domain.SimulationResult, error) {
	query := selectColumns + ` WHERE id = $1`

	result, err := scanResult(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get simulation result: %w", err)
	}

	return result, nil
}

// ListRecent retrieves the most recent results, newest first.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]domain.SimulationResult, error) {
	query := selectColumns + ` ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation results: %w", err)
	}
	defer rows.Close()

	results := make([]domain.SimulationResult, 0, limit)
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation result: %w", err)
		}
		results = append(results, *result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate simulation results: %w", err)
	}

	return results, nil
}

// DeleteOlderThan removes results created before the cutoff and reports
// how many rows went away. Used by the retention job.
func (r *HistoryRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM simulation_results WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune simulation results: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned results: %w", err)
	}

	return n, nil
}

const selectColumns = `
	SELECT id, total_profit, efficiency_score, on_time_deliveries,
	       late_deliveries, unassigned_order_count, fuel_base_cost,
	       fuel_traffic_surcharge, delivery_stats, inputs, created_at
	FROM simulation_results`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanResult(row rowScanner) (*domain.SimulationResult, error) {
	var result domain.SimulationResult
	var statsJSON, inputsJSON []byte

	err := row.Scan(
		&result.ID,
		&result.TotalProfit,
		&result.EfficiencyScore,
		&result.OnTimeDeliveries,
		&result.LateDeliveries,
		&result.UnassignedOrderCount,
		&result.FuelCostBreakdown.BaseCost,
		&result.FuelCostBreakdown.TrafficSurcharge,
		&statsJSON,
		&inputsJSON,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	result.FuelCostBreakdown.TotalCost = result.FuelCostBreakdown.BaseCost + result.FuelCostBreakdown.TrafficSurcharge

	if len(statsJSON) > 0 {
		if err := json.Unmarshal(statsJSON, &result.DeliveryStats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal delivery stats: %w", err)
		}
	}
	if len(inputsJSON) > 0 {
		if err := json.Unmarshal(inputsJSON, &result.Inputs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inputs: %w", err)
		}
	}

	return &result, nil
}
