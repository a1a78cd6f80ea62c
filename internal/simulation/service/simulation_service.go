package service

import (
	"context"
	"fmt"
	"log"
	"time"

	fleet "github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/domain"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/engine"
	"github.com/google/uuid"
)

// FleetReader provides the master data snapshot a run computes over.
type FleetReader interface {
	ActiveDrivers(ctx context.Context) ([]fleet.Driver, error)
	Routes(ctx context.Context) ([]fleet.Route, error)
	Orders(ctx context.Context) ([]fleet.Order, error)
}

// HistoryStore persists simulation results, newest first on reads.
type HistoryStore interface {
	Create(ctx context.Context, result *domain.SimulationResult) error
	GetByID(ctx context.Context, id string) (*domain.SimulationResult, error)
	ListRecent(ctx context.Context, limit int) ([]domain.SimulationResult, error)
}

// ResultCache keeps finished runs hot for the dashboard.
type ResultCache interface {
	Cache(ctx context.Context, result *domain.SimulationResult) error
}

// SimulationService handles business logic for simulation runs
type SimulationService struct {
	fleet   FleetReader
	history HistoryStore
	cache   ResultCache
}

// NewSimulationService creates a new SimulationService. cache may be nil
// when Redis is not configured.
func NewSimulationService(fleet FleetReader, history HistoryStore, cache ResultCache) *SimulationService {
	return &SimulationService{
		fleet:   fleet,
		history: history,
		cache:   cache,
	}
}

// RunSimulation takes a snapshot of the master data, runs one simulation
// pass and persists the result. The result is returned only after the
// history write succeeds; a cache failure is logged but not fatal.
func (s *SimulationService) RunSimulation(ctx context.Context, input domain.SimulationInput) (*domain.SimulationResult, error) {
	drivers, err := s.fleet.ActiveDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("read drivers: %w", err)
	}

	routes, err := s.fleet.Routes(ctx)
	if err != nil {
		return nil, fmt.Errorf("read routes: %w", err)
	}

	orders, err := s.fleet.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}

	result, err := engine.Run(drivers, routes, orders, input)
	if err != nil {
		return nil, err
	}

	result.ID = uuid.New().String()
	result.CreatedAt = time.Now().UTC()

	if err := s.history.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("persist result: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Cache(ctx, result); err != nil {
			log.Printf("Warning: failed to cache simulation result %s: %v", result.ID, err)
		}
	}

	return result, nil
}

// GetResult retrieves one stored result by ID.
func (s *SimulationService) GetResult(ctx context.Context, id string) (*domain.SimulationResult, error) {
	return s.history.GetByID(ctx, id)
}

// History retrieves the most recent results, newest first.
func (s *SimulationService) History(ctx context.Context, limit int) ([]domain.SimulationResult, error) {
	return s.history.ListRecent(ctx, limit)
}
