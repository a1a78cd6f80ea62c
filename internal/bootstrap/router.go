package bootstrap

import (
	"database/sql"

	httpapi "github.com/JoshuaJairaj/GreenCart-Logistics/internal/api/http"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/api/http/middleware"
	fleethttp "github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/http"
	fleetrepo "github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/repository"
	simhttp "github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/http"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/repository"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	DB             *pgxpool.Pool
	HistoryDB      *sql.DB
	// Cache may be nil; simulation runs then skip result caching.
	Cache *repository.ResultCache
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.SetupCORS(dep.AllowedOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	if dep.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(dep.RateLimitRPS, dep.RateLimitBurst)
		api.Use(limiter.Middleware())
	}

	fleetRepo := fleetrepo.New(dep.DB)
	historyRepo := repository.NewHistoryRepository(dep.HistoryDB)

	var cache service.ResultCache
	if dep.Cache != nil {
		cache = dep.Cache
	}
	simService := service.NewSimulationService(fleetRepo, historyRepo, cache)

	fleethttp.New(fleetRepo).Register(api)
	simhttp.New(simService).Register(api)

	return r
}
