package store

import (
	"context"
	"time"

	"github.com/mediolano-app/mip-indexer/internal/domain"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetBlockCursor retrieves the last processed block number for a source
	GetBlockCursor(ctx context.Context, source string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a source
	SetBlockCursor(ctx context.Context, source string, blockNumber uint64) error
	// GetTxEnrichments retrieves persisted enrichments for the given hashes,
	// ignoring rows cached before notBefore
	GetTxEnrichments(ctx context.Context, hashes []string, notBefore time.Time) (map[string]domain.TxEnrichment, error)
	// SaveTxEnrichments upserts enrichments with the given cache time
	SaveTxEnrichments(ctx context.Context, items map[string]domain.TxEnrichment, cachedAt time.Time) error
}
