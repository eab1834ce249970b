package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mediolano-app/mip-indexer/internal/activity"
	"github.com/mediolano-app/mip-indexer/internal/adapter"
	"github.com/mediolano-app/mip-indexer/internal/api/rest"
	"github.com/mediolano-app/mip-indexer/internal/api/server"
	"github.com/mediolano-app/mip-indexer/internal/config"
	"github.com/mediolano-app/mip-indexer/internal/enumerate"
	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/metadata"
	"github.com/mediolano-app/mip-indexer/internal/providers/indexer"
	"github.com/mediolano-app/mip-indexer/internal/providers/voyager"
	"github.com/mediolano-app/mip-indexer/internal/starknet"
	"github.com/mediolano-app/mip-indexer/internal/store"
	"github.com/mediolano-app/mip-indexer/internal/timeline"
	"github.com/mediolano-app/mip-indexer/internal/txcache"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting MIP Indexer API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	// Run migrations
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to run migrations", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.HTTP.Timeout)

	// Timeline pipeline: chain enumeration plus metadata resolution
	chainClient := starknet.NewClient(cfg.Starknet.RPCURL, httpClient)
	contract := starknet.NewContract(chainClient, cfg.Starknet.ContractAddress)
	enumerator := enumerate.NewEnumerator(contract, cfg.Worker.PoolSize)
	fetcher := metadata.NewFetcher(httpClient, &metadata.Config{
		IPFSGateways:   cfg.URI.IPFSGateways,
		AttemptTimeout: cfg.URI.AttemptTimeout,
	})
	timelineSvc := timeline.NewService(enumerator, fetcher, clock, cfg.Starknet.ContractAddress, cfg.Worker.PoolSize)

	// Activity pipeline: backend indexer plus explorer enrichment
	var enrichmentStore store.Store
	if cfg.Cache.Persist {
		enrichmentStore = dataStore
	}
	cache := txcache.NewCache(clock, cfg.Cache.TxTTL, enrichmentStore)
	voyagerClient := voyager.NewClient(httpClient, cfg.Providers.VoyagerURL)
	indexerClient := indexer.NewClient(httpClient, cfg.Providers.IndexerURL)
	aggregator := activity.NewAggregator(cache, voyagerClient, cfg.Starknet.ContractAddress, indexer.PROVIDER_NAME)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Timeline: rest.TimelineConfig{
			DefaultPageSize: cfg.Timeline.DefaultPageSize,
			MaxPageSize:     cfg.Timeline.MaxPageSize,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, timelineSvc, indexerClient, aggregator)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
