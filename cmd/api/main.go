package main

import (
	"context"
	"log"

	"github.com/JoshuaJairaj/GreenCart-Logistics/config"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/bootstrap"
	cronjob "github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/cron"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/repository"
	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/storage/postgres"
)

const serviceName = "greencart-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	historyDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("postgres history store: %v", err)
	}
	defer historyDB.Close()

	var cache *repository.ResultCache
	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, running without result cache: %v", err)
	} else {
		defer redisClient.Close()
		cache = repository.NewResultCache(redisClient, cfg.Simulation.RecentResultsCap)
	}

	historyRepo := repository.NewHistoryRepository(historyDB)
	var trimmer cronjob.RecentTrimmer
	if cache != nil {
		trimmer = cache
	}
	retention := cronjob.NewScheduler(historyRepo, trimmer, cfg.Simulation.HistoryRetentionDays)
	retention.Start()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		DB:             pool,
		HistoryDB:      historyDB,
		Cache:          cache,
	})

	log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
