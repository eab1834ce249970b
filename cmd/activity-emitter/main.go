package main

import (
	"context"
	"errors"
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
	"github.com/mediolano-app/mip-indexer/internal/config"
	"github.com/mediolano-app/mip-indexer/internal/emitter"
	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/providers/indexer"
	"github.com/mediolano-app/mip-indexer/internal/providers/jetstream"
	"github.com/mediolano-app/mip-indexer/internal/providers/voyager"
	"github.com/mediolano-app/mip-indexer/internal/store"
	"github.com/mediolano-app/mip-indexer/internal/txcache"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadActivityEmitterConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "activity-emitter",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Activity Emitter")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to run migrations", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()
	httpClient := adapter.NewHTTPClient(cfg.HTTP.Timeout)

	// Initialize provider clients
	indexerClient := indexer.NewClient(httpClient, cfg.Providers.IndexerURL)
	voyagerClient := voyager.NewClient(httpClient, cfg.Providers.VoyagerURL)

	// Enrichment cache, persisted so restarts keep resolved timestamps
	var enrichmentStore store.Store
	if cfg.Cache.Persist {
		enrichmentStore = dataStore
	}
	cache := txcache.NewCache(clockAdapter, cfg.Cache.TxTTL, enrichmentStore)
	aggregator := activity.NewAggregator(cache, voyagerClient, cfg.Starknet.ContractAddress, cfg.Emitter.Source)

	// Initialize NATS publisher
	natsPublisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer natsPublisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Create emitter
	emitterCfg := emitter.Config{
		Source:       cfg.Emitter.Source,
		StartBlock:   cfg.Emitter.StartBlock,
		PollInterval: cfg.Emitter.PollInterval,
		BatchLimit:   cfg.Emitter.BatchLimit,
	}

	activityEmitter := emitter.NewEmitter(
		indexerClient,
		aggregator,
		natsPublisher,
		dataStore,
		emitterCfg,
		clockAdapter,
	)
	defer activityEmitter.Close()

	// Channel for emitter errors
	errCh := make(chan error, 1)

	// Start the emitter
	go func() {
		if err := activityEmitter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "emitter"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("Activity emitter stopped")
}
