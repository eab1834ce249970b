package enumerate_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/enumerate"
	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func refForToken(tokenID string) *domain.TokenRef {
	return &domain.TokenRef{
		TokenID:  tokenID,
		Owner:    "0xabc",
		TokenURI: "ipfs://hash-" + tokenID,
	}
}

func TestEnumeratePage_NewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := mocks.NewMockTokenContract(ctrl)
	contract.EXPECT().TotalSupply(gomock.Any()).Return(uint64(5), nil)

	// page 0 of size 3 covers indices 4, 3, 2
	for _, tc := range []struct {
		index   uint64
		tokenID string
	}{
		{4, "104"}, {3, "103"}, {2, "102"},
	} {
		contract.EXPECT().TokenByIndex(gomock.Any(), tc.index).Return(tc.tokenID, nil)
		contract.EXPECT().FetchTokenRef(gomock.Any(), tc.tokenID).Return(refForToken(tc.tokenID), nil)
	}

	enumerator := enumerate.NewEnumerator(contract, 1)
	refs, err := enumerator.EnumeratePage(context.Background(), 0, 3)

	assert.NoError(t, err)
	assert.Len(t, refs, 3)
	assert.Equal(t, "104", refs[0].TokenID)
	assert.Equal(t, "103", refs[1].TokenID)
	assert.Equal(t, "102", refs[2].TokenID)
}

func TestEnumeratePage_LastPageTruncated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := mocks.NewMockTokenContract(ctrl)
	contract.EXPECT().TotalSupply(gomock.Any()).Return(uint64(5), nil)

	// page 1 of size 3 covers indices 1, 0 only
	contract.EXPECT().TokenByIndex(gomock.Any(), uint64(1)).Return("101", nil)
	contract.EXPECT().FetchTokenRef(gomock.Any(), "101").Return(refForToken("101"), nil)
	contract.EXPECT().TokenByIndex(gomock.Any(), uint64(0)).Return("100", nil)
	contract.EXPECT().FetchTokenRef(gomock.Any(), "100").Return(refForToken("100"), nil)

	enumerator := enumerate.NewEnumerator(contract, 1)
	refs, err := enumerator.EnumeratePage(context.Background(), 1, 3)

	assert.NoError(t, err)
	assert.Len(t, refs, 2)
	assert.Equal(t, "101", refs[0].TokenID)
	assert.Equal(t, "100", refs[1].TokenID)
}

func TestEnumeratePage_PageBeyondSupply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := mocks.NewMockTokenContract(ctrl)
	contract.EXPECT().TotalSupply(gomock.Any()).Return(uint64(5), nil)

	enumerator := enumerate.NewEnumerator(contract, 1)
	refs, err := enumerator.EnumeratePage(context.Background(), 2, 3)

	assert.NoError(t, err)
	assert.Empty(t, refs)
}

func TestEnumeratePage_OverflowingPageIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := mocks.NewMockTokenContract(ctrl)
	contract.EXPECT().TotalSupply(gomock.Any()).Return(uint64(5), nil)

	// page*pageSize wraps uint64; the page must stay empty instead of
	// aliasing back into live indices
	enumerator := enumerate.NewEnumerator(contract, 1)
	refs, err := enumerator.EnumeratePage(context.Background(), uint64(1)<<63+1, 2)

	assert.NoError(t, err)
	assert.Empty(t, refs)
}

func TestEnumeratePage_EmptyCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := mocks.NewMockTokenContract(ctrl)
	contract.EXPECT().TotalSupply(gomock.Any()).Return(uint64(0), nil)

	enumerator := enumerate.NewEnumerator(contract, 1)
	refs, err := enumerator.EnumeratePage(context.Background(), 0, 20)

	assert.NoError(t, err)
	assert.Empty(t, refs)
}

func TestEnumeratePage_SupplyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := mocks.NewMockTokenContract(ctrl)
	contract.EXPECT().TotalSupply(gomock.Any()).Return(uint64(0), errors.New("rpc unreachable"))

	enumerator := enumerate.NewEnumerator(contract, 1)
	refs, err := enumerator.EnumeratePage(context.Background(), 0, 20)

	assert.ErrorIs(t, err, domain.ErrEnumerationUnavailable)
	assert.Nil(t, refs)
}

func TestEnumeratePage_SkipsFailedTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := mocks.NewMockTokenContract(ctrl)
	contract.EXPECT().TotalSupply(gomock.Any()).Return(uint64(3), nil)

	// index 2 fails at token_by_index, index 1 fails at owner/uri reads,
	// index 0 succeeds
	contract.EXPECT().TokenByIndex(gomock.Any(), uint64(2)).Return("", errors.New("revert"))
	contract.EXPECT().TokenByIndex(gomock.Any(), uint64(1)).Return("101", nil)
	contract.EXPECT().FetchTokenRef(gomock.Any(), "101").Return(nil, errors.New("owner_of failed"))
	contract.EXPECT().TokenByIndex(gomock.Any(), uint64(0)).Return("100", nil)
	contract.EXPECT().FetchTokenRef(gomock.Any(), "100").Return(refForToken("100"), nil)

	enumerator := enumerate.NewEnumerator(contract, 1)
	refs, err := enumerator.EnumeratePage(context.Background(), 0, 20)

	assert.NoError(t, err)
	assert.Len(t, refs, 1)
	assert.Equal(t, "100", refs[0].TokenID)
}

func TestEnumeratePage_DefaultPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := mocks.NewMockTokenContract(ctrl)
	contract.EXPECT().TotalSupply(gomock.Any()).Return(uint64(2), nil)
	contract.EXPECT().TokenByIndex(gomock.Any(), uint64(1)).Return("101", nil)
	contract.EXPECT().FetchTokenRef(gomock.Any(), "101").Return(refForToken("101"), nil)
	contract.EXPECT().TokenByIndex(gomock.Any(), uint64(0)).Return("100", nil)
	contract.EXPECT().FetchTokenRef(gomock.Any(), "100").Return(refForToken("100"), nil)

	enumerator := enumerate.NewEnumerator(contract, 1)
	refs, err := enumerator.EnumeratePage(context.Background(), 0, 0)

	assert.NoError(t, err)
	assert.Len(t, refs, 2)
}
