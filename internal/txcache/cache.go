package txcache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mediolano-app/mip-indexer/internal/adapter"
	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/store"
)

// DefaultTTL bounds how long an enrichment stays servable
const DefaultTTL = 15 * time.Minute

// Cache holds explorer transaction enrichments keyed by hash. Expired
// entries behave exactly like missing ones.
//
//go:generate mockgen -source=cache.go -destination=../mocks/txcache.go -package=mocks -mock_names=Cache=MockCache
type Cache interface {
	// Get returns the fresh entries among hashes
	Get(ctx context.Context, hashes []string) map[string]domain.TxEnrichment
	// Put merges items into the cache, refreshing their expiry
	Put(ctx context.Context, items map[string]domain.TxEnrichment)
}

type entry struct {
	enrichment domain.TxEnrichment
	cachedAt   time.Time
}

type cache struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   adapter.Clock
	ttl     time.Duration
	// optional persistence; nil keeps the cache memory-only
	store store.Store
}

// NewCache creates a transaction cache. A non-nil store makes the cache
// read and write through it so enrichments survive restarts.
func NewCache(clock adapter.Clock, ttl time.Duration, st store.Store) Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &cache{
		entries: make(map[string]entry),
		clock:   clock,
		ttl:     ttl,
		store:   st,
	}
}

func (c *cache) Get(ctx context.Context, hashes []string) map[string]domain.TxEnrichment {
	now := c.clock.Now()
	result := make(map[string]domain.TxEnrichment, len(hashes))
	var misses []string

	c.mu.Lock()
	for _, hash := range hashes {
		e, ok := c.entries[hash]
		if !ok {
			misses = append(misses, hash)
			continue
		}
		// an entry aged exactly to the TTL is still valid
		if now.Sub(e.cachedAt) > c.ttl {
			delete(c.entries, hash)
			misses = append(misses, hash)
			continue
		}
		result[hash] = e.enrichment
	}
	c.mu.Unlock()

	if c.store == nil || len(misses) == 0 {
		return result
	}

	persisted, err := c.store.GetTxEnrichments(ctx, misses, now.Add(-c.ttl))
	if err != nil {
		logger.WarnCtx(ctx, "tx cache store read failed", zap.Error(err))
		return result
	}

	if len(persisted) > 0 {
		c.mu.Lock()
		for hash, enrichment := range persisted {
			result[hash] = enrichment
			c.entries[hash] = entry{enrichment: enrichment, cachedAt: now}
		}
		c.mu.Unlock()
	}

	return result
}

func (c *cache) Put(ctx context.Context, items map[string]domain.TxEnrichment) {
	if len(items) == 0 {
		return
	}
	now := c.clock.Now()

	c.mu.Lock()
	for hash, enrichment := range items {
		c.entries[hash] = entry{enrichment: enrichment, cachedAt: now}
	}
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	if err := c.store.SaveTxEnrichments(ctx, items, now); err != nil {
		// persistence is best effort, the memory tier already has the data
		logger.WarnCtx(ctx, "tx cache store write failed", zap.Error(err))
	}
}
