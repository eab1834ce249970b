package timeline

import (
	"context"
	"errors"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/mediolano-app/mip-indexer/internal/adapter"
	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/enumerate"
	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/metadata"
)

const (
	FilterAll   = "all"
	FilterOther = "other"

	defaultMaxWorkers = 8
)

// knownAssetTypes are the explicit categories the frontend filters on;
// everything else falls under "other"
var knownAssetTypes = map[string]struct{}{
	"art":   {},
	"music": {},
	"docs":  {},
}

// Service assembles the public timeline of tokenized IP assets.
//
//go:generate mockgen -source=service.go -destination=../mocks/timeline_service.go -package=mocks -mock_names=Service=MockTimelineService
type Service interface {
	// FetchLatestAssets returns a filtered, ordered page of assets.
	// Enumeration being unavailable degrades to an empty page.
	FetchLatestAssets(ctx context.Context, page, pageSize uint64, filterType string) ([]domain.TimelineAsset, error)
}

type service struct {
	enumerator      enumerate.Enumerator
	fetcher         metadata.Fetcher
	clock           adapter.Clock
	contractAddress string
	pool            pond.ResultPool[domain.TimelineAsset]
}

// NewService creates a timeline service resolving up to maxWorkers
// assets concurrently
func NewService(enumerator enumerate.Enumerator, fetcher metadata.Fetcher, clock adapter.Clock, contractAddress string, maxWorkers int) Service {
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}
	return &service{
		enumerator:      enumerator,
		fetcher:         fetcher,
		clock:           clock,
		contractAddress: contractAddress,
		pool:            pond.NewResultPool[domain.TimelineAsset](maxWorkers),
	}
}

func (s *service) FetchLatestAssets(ctx context.Context, page, pageSize uint64, filterType string) ([]domain.TimelineAsset, error) {
	refs, err := s.enumerator.EnumeratePage(ctx, page, pageSize)
	if err != nil {
		if errors.Is(err, domain.ErrEnumerationUnavailable) {
			logger.WarnCtx(ctx, "enumeration unavailable, serving empty page",
				zap.Uint64("page", page),
				zap.Error(err))
			return []domain.TimelineAsset{}, nil
		}
		return nil, err
	}

	// one resolution time per request keeps the fallback ordering stable
	resolvedAt := s.clock.Now()

	tasks := make([]pond.Result[domain.TimelineAsset], 0, len(refs))
	for _, ref := range refs {
		tasks = append(tasks, s.pool.Submit(func() domain.TimelineAsset {
			return s.assemble(ctx, ref, resolvedAt)
		}))
	}

	assets := make([]domain.TimelineAsset, 0, len(tasks))
	for _, task := range tasks {
		asset, err := task.Wait()
		if err != nil {
			continue
		}
		if matchesFilter(asset, filterType) {
			assets = append(assets, asset)
		}
	}

	sortAssets(assets)
	return assets, nil
}

// assemble merges one token's on-chain reference with its off-chain
// metadata
func (s *service) assemble(ctx context.Context, ref *domain.TokenRef, resolvedAt time.Time) domain.TimelineAsset {
	asset := domain.TimelineAsset{
		TokenID:         ref.TokenID,
		ContractAddress: s.contractAddress,
		Owner:           ref.Owner,
		TokenURI:        ref.TokenURI,
		Timestamp:       resolvedAt,
	}

	if ref.TokenURI != "" {
		meta, err := s.fetcher.FetchMetadata(ctx, ref.TokenURI)
		if err == nil && meta != nil {
			asset.Metadata = meta
			if ts := meta.Timestamp(); !ts.IsZero() {
				asset.Timestamp = ts
			}
		}
	}

	return asset
}

// matchesFilter applies the timeline type filter. "all" passes
// everything. An explicit type matches case-insensitively after trim.
// "other" keeps assets without a declared type or with a type outside
// the known categories, including assets whose metadata never resolved.
func matchesFilter(asset domain.TimelineAsset, filterType string) bool {
	filter := strings.ToLower(strings.TrimSpace(filterType))
	if filter == "" || filter == FilterAll {
		return true
	}

	assetType := asset.Metadata.AssetType()

	if filter == FilterOther {
		if assetType == "" {
			return true
		}
		_, known := knownAssetTypes[assetType]
		return !known
	}

	if asset.Metadata == nil {
		return false
	}
	return assetType == filter
}

// sortAssets orders newest first, breaking timestamp ties by numeric
// token id descending so the order is total
func sortAssets(assets []domain.TimelineAsset) {
	sort.SliceStable(assets, func(i, j int) bool {
		if !assets[i].Timestamp.Equal(assets[j].Timestamp) {
			return assets[i].Timestamp.After(assets[j].Timestamp)
		}
		return compareTokenIDs(assets[i].TokenID, assets[j].TokenID) > 0
	})
}

func compareTokenIDs(a, b string) int {
	ai, aok := new(big.Int).SetString(a, 10)
	bi, bok := new(big.Int).SetString(b, 10)
	if aok && bok {
		return ai.Cmp(bi)
	}
	return strings.Compare(a, b)
}
