package emitter

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mediolano-app/mip-indexer/internal/activity"
	"github.com/mediolano-app/mip-indexer/internal/adapter"
	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/messaging"
	"github.com/mediolano-app/mip-indexer/internal/providers/indexer"
	"github.com/mediolano-app/mip-indexer/internal/store"
)

// Config holds the configuration for the activity emitter
type Config struct {
	// Source names the block cursor key in the key-value store
	Source string
	// StartBlock overrides the stored cursor when non-zero
	StartBlock   uint64
	PollInterval time.Duration
	BatchLimit   int
}

// Emitter polls the backend indexer for new transfers and publishes the
// derived activity records. Delivery is at least once: the cursor only
// advances after a fully published cycle.
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run starts the polling loop and blocks until ctx is done
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

type emitter struct {
	indexer    indexer.Client
	aggregator activity.Aggregator
	publisher  messaging.Publisher
	store      store.Store
	config     Config
	clock      adapter.Clock
}

// NewEmitter creates a new activity emitter
func NewEmitter(
	indexerClient indexer.Client,
	aggregator activity.Aggregator,
	publisher messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Second
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 100
	}
	if cfg.Source == "" {
		cfg.Source = "indexer"
	}
	return &emitter{
		indexer:    indexerClient,
		aggregator: aggregator,
		publisher:  publisher,
		store:      st,
		config:     cfg,
		clock:      clock,
	}
}

// Run starts the activity emitter
func (e *emitter) Run(ctx context.Context) error {
	cursor := e.config.StartBlock
	if cursor == 0 {
		stored, err := e.store.GetBlockCursor(ctx, e.config.Source)
		if err != nil {
			return fmt.Errorf("failed to get block cursor: %w", err)
		}
		cursor = stored
	}

	logger.Info("Starting activity emitter",
		zap.String("source", e.config.Source),
		zap.Uint64("cursor", cursor))

	for {
		next, err := e.cycle(ctx, cursor)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// retry the same window on the next tick
			logger.ErrorCtx(ctx, err, zap.Uint64("cursor", cursor))
		} else {
			cursor = next
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.clock.After(e.config.PollInterval):
		}
	}
}

// cycle polls one batch of transfers and publishes everything newer than
// the cursor. It returns the advanced cursor.
func (e *emitter) cycle(ctx context.Context, cursor uint64) (uint64, error) {
	resp, err := e.indexer.ListTransfers(ctx, indexer.ListOptions{
		Limit:     e.config.BatchLimit,
		SortOrder: "desc",
	})
	if err != nil {
		return cursor, fmt.Errorf("failed to list transfers: %w", err)
	}

	var events []domain.ChainEvent
	maxBlock := cursor
	for _, transfer := range resp.Data {
		if transfer.Block <= cursor {
			continue
		}
		if transfer.Block > maxBlock {
			maxBlock = transfer.Block
		}
		events = append(events, activity.EventFromTransfer(transfer))
	}

	if len(events) == 0 {
		return cursor, nil
	}

	records := e.aggregator.Aggregate(ctx, events)

	// records arrive newest first; publish in chain order
	for i := len(records) - 1; i >= 0; i-- {
		if err := e.publisher.PublishActivity(ctx, &records[i]); err != nil {
			return cursor, fmt.Errorf("failed to publish activity %s: %w", records[i].ID, err)
		}
	}

	if err := e.store.SetBlockCursor(ctx, e.config.Source, maxBlock); err != nil {
		// records are out, the next cycle may re-publish this window
		logger.WarnCtx(ctx, "failed to save block cursor",
			zap.Uint64("block", maxBlock),
			zap.Error(err))
		return cursor, nil
	}

	logger.InfoCtx(ctx, "activity cycle published",
		zap.Int("records", len(records)),
		zap.Uint64("cursor", maxBlock))

	return maxBlock, nil
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.publisher.Close()
}
