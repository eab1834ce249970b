package indexer_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/mocks"
	"github.com/mediolano-app/mip-indexer/internal/providers/indexer"
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

const transfersPayload = `{
	"data": [
		{"id": "0xaaa", "from": "0x111", "to": "0x222", "tokenId": "7", "block": 1200, "indexerSource": "apibara"},
		{"id": "0xbbb", "from": "0x0", "to": "0x333", "tokenId": "8", "block": 1201, "indexerSource": "apibara"}
	],
	"pagination": {"total": 2, "offset": 0, "limit": 25}
}`

func fillJSON(payload string) func(ctx context.Context, url string, result interface{}) error {
	return func(ctx context.Context, url string, result interface{}) error {
		return json.Unmarshal([]byte(payload), result)
	}
}

func TestListTransfers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := indexer.NewClient(httpClient, "http://localhost:3001/")

	httpClient.EXPECT().
		Get(gomock.Any(), "http://localhost:3001/transfers?limit=25&offset=0&sortOrder=desc", gomock.Any()).
		DoAndReturn(fillJSON(transfersPayload))

	resp, err := client.ListTransfers(context.Background(), indexer.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, "0xaaa", resp.Data[0].ID)
	assert.Equal(t, uint64(1201), resp.Data[1].Block)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestListTransfers_ExplicitOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := indexer.NewClient(httpClient, "http://localhost:3001")

	httpClient.EXPECT().
		Get(gomock.Any(), "http://localhost:3001/transfers?limit=50&offset=100&sortOrder=asc", gomock.Any()).
		DoAndReturn(fillJSON(`{"data": [], "pagination": {"total": 0, "offset": 100, "limit": 50}}`))

	resp, err := client.ListTransfers(context.Background(), indexer.ListOptions{
		Limit:     50,
		Offset:    100,
		SortOrder: "asc",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
}

func TestListTransfersFrom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := indexer.NewClient(httpClient, "http://localhost:3001")

	httpClient.EXPECT().
		Get(gomock.Any(), "http://localhost:3001/transfers/from/0x111?limit=25&offset=0&sortOrder=desc", gomock.Any()).
		DoAndReturn(fillJSON(transfersPayload))

	resp, err := client.ListTransfersFrom(context.Background(), "0x111", indexer.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
}

func TestListTransfers_BackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := indexer.NewClient(httpClient, "http://localhost:3001")

	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	resp, err := client.ListTransfers(context.Background(), indexer.ListOptions{})
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestListTransfers_InvalidSortOrderNormalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := indexer.NewClient(httpClient, "http://localhost:3001")

	httpClient.EXPECT().
		Get(gomock.Any(), "http://localhost:3001/transfers?limit=25&offset=0&sortOrder=desc", gomock.Any()).
		DoAndReturn(fillJSON(`{"data": [], "pagination": {"total": 0, "offset": 0, "limit": 25}}`))

	_, err := client.ListTransfers(context.Background(), indexer.ListOptions{SortOrder: "sideways"})
	assert.NoError(t, err)
}
