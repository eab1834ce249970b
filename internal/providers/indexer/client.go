package indexer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mediolano-app/mip-indexer/internal/adapter"
	"github.com/mediolano-app/mip-indexer/internal/domain"
)

const PROVIDER_NAME = "indexer"

// Pagination describes the page window of a transfer listing
type Pagination struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// TransfersResponse is the envelope returned by the transfer endpoints
type TransfersResponse struct {
	Data       []domain.Transfer `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// ListOptions selects a page of transfers
type ListOptions struct {
	Limit     int
	Offset    int
	SortOrder string
}

// Client defines the interface for backend indexer operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/indexer_client.go -package=mocks -mock_names=Client=MockIndexerClient
type Client interface {
	// ListTransfers fetches a page of transfer rows
	ListTransfers(ctx context.Context, opts ListOptions) (*TransfersResponse, error)
	// ListTransfersFrom fetches a page of transfer rows touching the address
	ListTransfersFrom(ctx context.Context, address string, opts ListOptions) (*TransfersResponse, error)
}

// IndexerClient implements the backend indexer client
type IndexerClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
}

// NewClient creates a new indexer client
func NewClient(httpClient adapter.HTTPClient, apiURL string) Client {
	return &IndexerClient{
		httpClient: httpClient,
		apiURL:     strings.TrimSuffix(apiURL, "/"),
	}
}

// ListTransfers fetches a page of transfer rows
func (c *IndexerClient) ListTransfers(ctx context.Context, opts ListOptions) (*TransfersResponse, error) {
	endpoint := fmt.Sprintf("%s/transfers?%s", c.apiURL, listQuery(opts))
	return c.fetch(ctx, endpoint)
}

// ListTransfersFrom fetches a page of transfer rows touching the address
func (c *IndexerClient) ListTransfersFrom(ctx context.Context, address string, opts ListOptions) (*TransfersResponse, error) {
	endpoint := fmt.Sprintf("%s/transfers/from/%s?%s",
		c.apiURL, url.PathEscape(address), listQuery(opts))
	return c.fetch(ctx, endpoint)
}

func (c *IndexerClient) fetch(ctx context.Context, endpoint string) (*TransfersResponse, error) {
	var response TransfersResponse
	if err := c.httpClient.Get(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to call indexer API: %w", err)
	}
	return &response, nil
}

func listQuery(opts ListOptions) string {
	if opts.Limit <= 0 {
		opts.Limit = 25
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.SortOrder != "asc" {
		opts.SortOrder = "desc"
	}

	q := url.Values{}
	q.Set("limit", fmt.Sprintf("%d", opts.Limit))
	q.Set("offset", fmt.Sprintf("%d", opts.Offset))
	q.Set("sortOrder", opts.SortOrder)
	return q.Encode()
}
