package activity

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/providers/voyager"
	"github.com/mediolano-app/mip-indexer/internal/txcache"
)

// Aggregator turns raw chain events into an enriched, ordered activity
// feed.
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/activity_aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator
type Aggregator interface {
	// Aggregate deduplicates, enriches and orders events into activity
	// records. Enrichment failures leave timestamps empty; the feed is
	// still returned.
	Aggregate(ctx context.Context, events []domain.ChainEvent) []domain.ActivityRecord
	// Enrich resolves explorer details for the given hashes through the
	// TTL cache
	Enrich(ctx context.Context, hashes []string) map[string]domain.TxEnrichment
}

type aggregator struct {
	cache           txcache.Cache
	voyager         voyager.Client
	contractAddress string
	indexerSource   string
}

// NewAggregator creates an activity aggregator
func NewAggregator(cache txcache.Cache, voyagerClient voyager.Client, contractAddress, indexerSource string) Aggregator {
	return &aggregator{
		cache:           cache,
		voyager:         voyagerClient,
		contractAddress: contractAddress,
		indexerSource:   indexerSource,
	}
}

func (a *aggregator) Aggregate(ctx context.Context, events []domain.ChainEvent) []domain.ActivityRecord {
	if len(events) == 0 {
		return []domain.ActivityRecord{}
	}

	hashes := orderedHashes(events)
	enrichments := a.Enrich(ctx, hashes)

	records := make([]domain.ActivityRecord, 0, len(events))
	for _, event := range events {
		timestampIso := enrichments[event.TxHash].TimestampIso
		records = append(records, BuildRecord(event, a.contractAddress, a.indexerSource, timestampIso))
	}

	sortRecords(records)
	return records
}

func (a *aggregator) Enrich(ctx context.Context, hashes []string) map[string]domain.TxEnrichment {
	if len(hashes) == 0 {
		return map[string]domain.TxEnrichment{}
	}

	enrichments := a.cache.Get(ctx, hashes)

	var misses []string
	for _, hash := range hashes {
		if _, ok := enrichments[hash]; !ok {
			misses = append(misses, hash)
		}
	}

	for start := 0; start < len(misses); start += voyager.MAX_BATCH_SIZE {
		end := start + voyager.MAX_BATCH_SIZE
		if end > len(misses) {
			end = len(misses)
		}

		fetched, err := a.voyager.BatchTransactions(ctx, misses[start:end])
		if err != nil {
			// feed still renders with whatever the cache had
			logger.WarnCtx(ctx, "activity enrichment batch failed",
				zap.Int("hashes", end-start),
				zap.Error(err))
			continue
		}
		if len(fetched) == 0 {
			continue
		}

		a.cache.Put(ctx, fetched)
		for hash, enrichment := range fetched {
			enrichments[hash] = enrichment
		}
	}

	return enrichments
}

// orderedHashes deduplicates transaction hashes, keeping the first
// occurrence after ordering events newest block first
func orderedHashes(events []domain.ChainEvent) []string {
	sorted := make([]domain.ChainEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BlockNumber > sorted[j].BlockNumber
	})

	seen := make(map[string]struct{}, len(sorted))
	hashes := make([]string, 0, len(sorted))
	for _, event := range sorted {
		if event.TxHash == "" {
			continue
		}
		if _, ok := seen[event.TxHash]; ok {
			continue
		}
		seen[event.TxHash] = struct{}{}
		hashes = append(hashes, event.TxHash)
	}
	return hashes
}

// sortRecords orders records newest first by enriched timestamp, falling
// back to block number for ties and unresolved timestamps
func sortRecords(records []domain.ActivityRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		ti := parseTimestamp(records[i].Timestamp)
		tj := parseTimestamp(records[j].Timestamp)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return records[i].Metadata.BlockNumber > records[j].Metadata.BlockNumber
	})
}

func parseTimestamp(iso string) time.Time {
	if iso == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}
	}
	return t
}
