package voyager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/mediolano-app/mip-indexer/internal/adapter"
	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/logger"
)

const (
	PROVIDER_NAME = "voyager"

	// MAX_BATCH_SIZE caps a single enrichment batch
	MAX_BATCH_SIZE = 100

	defaultMaxWorkers = 4
)

// txnResponse represents the transaction detail from the Voyager explorer API
type txnResponse struct {
	Hash          string `json:"hash"`
	Timestamp     int64  `json:"timestamp"`
	SenderAddress string `json:"sender_address"`
}

// Client defines the interface for Voyager client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/voyager_client.go -package=mocks -mock_names=Client=MockVoyagerClient
type Client interface {
	// BatchTransactions fetches transaction details for up to MAX_BATCH_SIZE
	// hashes. Hashes that cannot be fetched are omitted from the result.
	BatchTransactions(ctx context.Context, hashes []string) (map[string]domain.TxEnrichment, error)
}

// VoyagerClient implements the Voyager explorer client
type VoyagerClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	pool       pond.ResultPool[*txnResponse]
}

// NewClient creates a new Voyager client
func NewClient(httpClient adapter.HTTPClient, apiURL string) Client {
	return &VoyagerClient{
		httpClient: httpClient,
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		pool:       pond.NewResultPool[*txnResponse](defaultMaxWorkers),
	}
}

// BatchTransactions fetches transaction details for the given hashes
func (c *VoyagerClient) BatchTransactions(ctx context.Context, hashes []string) (map[string]domain.TxEnrichment, error) {
	if len(hashes) == 0 {
		return map[string]domain.TxEnrichment{}, nil
	}
	if len(hashes) > MAX_BATCH_SIZE {
		logger.WarnCtx(ctx, "voyager batch truncated",
			zap.Int("requested", len(hashes)),
			zap.Int("max", MAX_BATCH_SIZE))
		hashes = hashes[:MAX_BATCH_SIZE]
	}

	tasks := make([]pond.Result[*txnResponse], 0, len(hashes))
	for _, hash := range hashes {
		tasks = append(tasks, c.pool.SubmitErr(func() (*txnResponse, error) {
			return c.fetchTransaction(ctx, hash)
		}))
	}

	result := make(map[string]domain.TxEnrichment, len(hashes))
	for i, task := range tasks {
		txn, err := task.Wait()
		if err != nil {
			// partial results are fine, skip the failed hash
			logger.WarnCtx(ctx, "voyager transaction fetch failed",
				zap.String("hash", hashes[i]),
				zap.Error(err))
			continue
		}
		result[hashes[i]] = domain.TxEnrichment{
			TimestampIso: time.Unix(txn.Timestamp, 0).UTC().Format(time.RFC3339),
			Sender:       strings.ToLower(txn.SenderAddress),
		}
	}

	return result, nil
}

func (c *VoyagerClient) fetchTransaction(ctx context.Context, hash string) (*txnResponse, error) {
	url := fmt.Sprintf("%s/txn/%s", c.apiURL, hash)

	var txn txnResponse
	if err := c.httpClient.Get(ctx, url, &txn); err != nil {
		return nil, fmt.Errorf("failed to call Voyager API: %w", err)
	}
	if txn.Timestamp == 0 {
		return nil, fmt.Errorf("voyager returned no timestamp for %s", hash)
	}

	return &txn, nil
}
