package enumerate

import (
	"context"
	"fmt"
	"math"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/logger"
)

const (
	DefaultPageSize   = 20
	DefaultMaxWorkers = 8
)

// TokenContract reads the enumerable ERC-721 views of the collection
// contract.
//
//go:generate mockgen -source=enumerator.go -destination=../mocks/enumerate.go -package=mocks -mock_names=TokenContract=MockTokenContract,Enumerator=MockEnumerator
type TokenContract interface {
	TotalSupply(ctx context.Context) (uint64, error)
	TokenByIndex(ctx context.Context, index uint64) (string, error)
	FetchTokenRef(ctx context.Context, tokenID string) (*domain.TokenRef, error)
}

// Enumerator walks a collection newest-first in fixed-size pages.
type Enumerator interface {
	// EnumeratePage returns the token references of the given page.
	// Tokens whose on-chain reads fail are skipped; only an unreadable
	// total supply fails the whole page.
	EnumeratePage(ctx context.Context, page, pageSize uint64) ([]*domain.TokenRef, error)
}

type enumerator struct {
	contract TokenContract
	pool     pond.ResultPool[*domain.TokenRef]
}

// NewEnumerator creates an enumerator fetching up to maxWorkers tokens
// concurrently
func NewEnumerator(contract TokenContract, maxWorkers int) Enumerator {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}
	return &enumerator{
		contract: contract,
		pool:     pond.NewResultPool[*domain.TokenRef](maxWorkers),
	}
}

func (e *enumerator) EnumeratePage(ctx context.Context, page, pageSize uint64) ([]*domain.TokenRef, error) {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	totalSupply, err := e.contract.TotalSupply(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEnumerationUnavailable, err)
	}
	if totalSupply == 0 {
		return []*domain.TokenRef{}, nil
	}

	// newest token sits at index totalSupply-1; walk downward. A page
	// whose offset cannot be represented is past the end of any supply.
	if page > math.MaxUint64/pageSize {
		return []*domain.TokenRef{}, nil
	}
	offset := page * pageSize
	if offset >= totalSupply {
		return []*domain.TokenRef{}, nil
	}
	start := totalSupply - 1 - offset

	count := pageSize
	if start+1 < count {
		count = start + 1
	}

	tasks := make([]pond.Result[*domain.TokenRef], 0, count)
	for i := uint64(0); i < count; i++ {
		index := start - i
		tasks = append(tasks, e.pool.SubmitErr(func() (*domain.TokenRef, error) {
			return e.fetchAtIndex(ctx, index)
		}))
	}

	refs := make([]*domain.TokenRef, 0, count)
	for _, task := range tasks {
		ref, err := task.Wait()
		if err != nil || ref == nil {
			// already logged at the point of failure
			continue
		}
		refs = append(refs, ref)
	}

	logger.DebugCtx(ctx, "page enumerated",
		zap.Uint64("page", page),
		zap.Uint64("pageSize", pageSize),
		zap.Uint64("totalSupply", totalSupply),
		zap.Int("tokens", len(refs)))

	return refs, nil
}

// fetchAtIndex resolves one enumeration index to a token reference
func (e *enumerator) fetchAtIndex(ctx context.Context, index uint64) (*domain.TokenRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokenID, err := e.contract.TokenByIndex(ctx, index)
	if err != nil {
		logger.WarnCtx(ctx, "token_by_index failed, skipping index",
			zap.Uint64("index", index),
			zap.Error(err))
		return nil, err
	}

	ref, err := e.contract.FetchTokenRef(ctx, tokenID)
	if err != nil {
		logger.WarnCtx(ctx, "token reference fetch failed, skipping token",
			zap.String("tokenID", tokenID),
			zap.Error(err))
		return nil, err
	}

	return ref, nil
}
