package main

// @title Campus Navigator API
// @version 1.0.0
// @description Пешеходная навигация по кампусу: граф дорог из GeoJSON, PostGIS или OpenStreetMap, кратчайшие маршруты между узлами, навигационные сессии посетителей и ссылки для передачи маршрута с киоска на телефон.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/campus-navigator/docs"
	"github.com/campus-navigator/internal/config"
	httpDelivery "github.com/campus-navigator/internal/delivery/http"
	"github.com/campus-navigator/internal/delivery/http/handler"
	"github.com/campus-navigator/internal/domain/repository"
	"github.com/campus-navigator/internal/pkg/logger"
	"github.com/campus-navigator/internal/repository/cache"
	redisRepo "github.com/campus-navigator/internal/repository/redis"
	"github.com/campus-navigator/internal/repository/source"
	"github.com/campus-navigator/internal/roadgraph"
	"github.com/campus-navigator/internal/session"
	"github.com/campus-navigator/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger. Вне production последние строки доступны в /api/v1/debug/log
	var ring *logger.Ring
	if cfg.DebugEnabled() {
		ring = logger.NewRing(cfg.Log.DebugCapacity)
	}
	log, err := logger.New(cfg.Log.Level, ring)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Campus Navigator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("feature_source", cfg.Source.Kind),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Connect to Redis (optional: route cache and route events)
	var (
		cacheRepo  repository.CacheRepository
		streamRepo repository.StreamRepository
		checkers   = map[string]handler.HealthChecker{}
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		cacheRepo = cache.NewCacheRepository(redisClient)
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
		checkers["redis"] = redisClient
		log.Info("Redis connected")
	} else {
		log.Info("Redis disabled, route cache and route events are off")
	}

	// 4. Feature source
	featureSource, closeSource, err := source.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize feature source", zap.Error(err))
	}
	defer func() {
		if err := closeSource(); err != nil {
			log.Error("Failed to close feature source", zap.Error(err))
		}
	}()
	if hc, ok := featureSource.(handler.HealthChecker); ok {
		checkers[featureSource.Name()] = hc
	}

	// 5. Road graph. Загрузка идёт в фоне, до её окончания API отвечает 503
	store := roadgraph.NewStore()
	graphUC := usecase.NewGraphUseCase(
		featureSource,
		store,
		cfg.Routing.WalkingSpeed,
		cfg.Routing.GraphReadyTimeout,
		log,
		usecase.WithCampusBuffer(cfg.Routing.CampusBuffer),
	)
	go func() {
		if _, err := graphUC.Load(ctx); err != nil {
			log.Error("Initial road graph load failed", zap.Error(err))
		}
	}()

	// 6. Initialize Use Cases
	routeUC := usecase.NewRouteUseCase(
		graphUC,
		cacheRepo,
		streamRepo,
		cfg.Cache.RouteCacheTTL,
		usecase.ShareConfig{
			BaseURL:     cfg.Share.BaseURL,
			CampusID:    cfg.Share.CampusID,
			DefaultNode: cfg.Routing.DefaultStartNode,
		},
		log,
	)
	nodeUC := usecase.NewNodeUseCase(graphUC, log)

	registry := session.NewRegistry(routeUC, session.Options{
		DefaultStartNodeID: cfg.Routing.DefaultStartNode,
		Debounce:           cfg.Routing.LocationDebounce,
	}, cfg.Session.TTL, log)
	go registry.Run(ctx, cfg.Session.EvictInterval)

	sessionUC := usecase.NewSessionUseCase(registry, graphUC, routeUC, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Health:  handler.NewHealthHandler(graphUC, checkers, log),
		Graph:   handler.NewGraphHandler(graphUC, log),
		Node:    handler.NewNodeHandler(nodeUC, log),
		Route:   handler.NewRouteHandler(routeUC, log),
		Session: handler.NewSessionHandler(sessionUC, log),
		Debug:   handler.NewDebugHandler(ring),
	})

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
