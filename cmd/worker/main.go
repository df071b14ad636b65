package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/campus-navigator/internal/config"
	"github.com/campus-navigator/internal/pkg/logger"
	"github.com/campus-navigator/internal/repository/cache"
	redisRepo "github.com/campus-navigator/internal/repository/redis"
	"github.com/campus-navigator/internal/repository/source"
	"github.com/campus-navigator/internal/roadgraph"
	"github.com/campus-navigator/internal/usecase"
	"github.com/campus-navigator/internal/worker"
	"github.com/campus-navigator/internal/worker/route"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, nil)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Request Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("feature_source", cfg.Source.Kind))

	// 3. Connect to Redis (streams are required here)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	featureSource, closeSource, err := source.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize feature source", zap.Error(err))
	}
	defer func() {
		if err := closeSource(); err != nil {
			log.Error("Failed to close feature source", zap.Error(err))
		}
	}()

	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log,
		redisRepo.WithBatchSize(cfg.Worker.BatchSize),
		redisRepo.WithBlock(cfg.Worker.StreamReadTimeout),
	)
	cacheRepo := cache.NewCacheRepository(redisClient)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 5. Load road graph
	graphUC := usecase.NewGraphUseCase(
		featureSource,
		roadgraph.NewStore(),
		cfg.Routing.WalkingSpeed,
		cfg.Routing.GraphReadyTimeout,
		log,
		usecase.WithCampusBuffer(cfg.Routing.CampusBuffer),
	)
	if _, err := graphUC.Load(ctx); err != nil {
		log.Fatal("Failed to load road graph", zap.Error(err))
	}

	// 6. Initialize use cases
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

	// 7. Initialize workers
	routeWorker := route.NewRouteRequestWorker(
		streamRepo,
		routeUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
		route.WithClaimMinIdle(cfg.Worker.ClaimMinIdle),
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(cfg.Worker.ShutdownTimeout, log)
	workerManager.Register(routeWorker)

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 9. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
