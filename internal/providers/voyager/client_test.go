package voyager_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/mocks"
	"github.com/mediolano-app/mip-indexer/internal/providers/voyager"
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

// fillTxn populates the unexported response struct through its JSON tags
func fillTxn(result interface{}, timestamp int64, sender string) error {
	payload := fmt.Sprintf(`{"timestamp":%d,"sender_address":%q}`, timestamp, sender)
	return json.Unmarshal([]byte(payload), result)
}

func TestBatchTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := voyager.NewClient(httpClient, "https://voyager.online/api/")

	httpClient.EXPECT().
		Get(gomock.Any(), "https://voyager.online/api/txn/0xaaa", gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, result interface{}) error {
			return fillTxn(result, 1785578400, "0x111")
		})
	httpClient.EXPECT().
		Get(gomock.Any(), "https://voyager.online/api/txn/0xbbb", gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, result interface{}) error {
			return fillTxn(result, 1785582000, "0x222ABC")
		})

	got, err := client.BatchTransactions(context.Background(), []string{"0xaaa", "0xbbb"})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "2026-08-01T10:00:00Z", got["0xaaa"].TimestampIso)
	assert.Equal(t, "0x111", got["0xaaa"].Sender)
	// sender addresses are normalized to lowercase
	assert.Equal(t, "0x222abc", got["0xbbb"].Sender)
}

func TestBatchTransactions_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := voyager.NewClient(httpClient, "https://voyager.online/api")

	httpClient.EXPECT().
		Get(gomock.Any(), "https://voyager.online/api/txn/0xaaa", gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, result interface{}) error {
			return fillTxn(result, 1785578400, "0x111")
		})
	httpClient.EXPECT().
		Get(gomock.Any(), "https://voyager.online/api/txn/0xbbb", gomock.Any()).
		Return(errors.New("rate limited"))

	got, err := client.BatchTransactions(context.Background(), []string{"0xaaa", "0xbbb"})
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "0xaaa")
}

func TestBatchTransactions_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := voyager.NewClient(httpClient, "https://voyager.online/api")

	got, err := client.BatchTransactions(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestBatchTransactions_TruncatesOversizedBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := voyager.NewClient(httpClient, "https://voyager.online/api")

	hashes := make([]string, voyager.MAX_BATCH_SIZE+20)
	for i := range hashes {
		hashes[i] = fmt.Sprintf("0x%03d", i)
	}

	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, result interface{}) error {
			return fillTxn(result, 1785578400, "0x111")
		}).
		Times(voyager.MAX_BATCH_SIZE)

	got, err := client.BatchTransactions(context.Background(), hashes)
	assert.NoError(t, err)
	assert.Len(t, got, voyager.MAX_BATCH_SIZE)
}
