package metadata_test

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mediolano-app/mip-indexer/internal/adapter"
	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/metadata"
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

const testHash = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

type testFetcherMocks struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	fetcher    metadata.Fetcher
}

func setupTestFetcher(t *testing.T, gateways ...string) *testFetcherMocks {
	ctrl := gomock.NewController(t)

	tm := &testFetcherMocks{
		ctrl:       ctrl,
		httpClient: mocks.NewMockHTTPClient(ctrl),
	}

	tm.fetcher = metadata.NewFetcher(tm.httpClient, &metadata.Config{
		IPFSGateways: gateways,
	})

	return tm
}

func jsonResponse(status int, body string) *adapter.Response {
	return &adapter.Response{
		StatusCode:  status,
		ContentType: "application/json",
		Body:        []byte(body),
	}
}

func TestFetchMetadata_GatewayFallback(t *testing.T) {
	tm := setupTestFetcher(t,
		"https://gateway-one.example",
		"https://gateway-two.example",
		"https://gateway-three.example")
	defer tm.ctrl.Finish()

	// gateway 1 times out, gateway 2 serves 404, gateway 3 succeeds
	gomock.InOrder(
		tm.httpClient.EXPECT().
			Fetch(gomock.Any(), "https://gateway-one.example/ipfs/"+testHash, gomock.Any()).
			Return(nil, context.DeadlineExceeded),
		tm.httpClient.EXPECT().
			Fetch(gomock.Any(), "https://gateway-two.example/ipfs/"+testHash, gomock.Any()).
			Return(jsonResponse(http.StatusNotFound, "not found"), nil),
		tm.httpClient.EXPECT().
			Fetch(gomock.Any(), "https://gateway-three.example/ipfs/"+testHash, gomock.Any()).
			Return(jsonResponse(http.StatusOK, `{"title":"X"}`), nil),
	)

	doc, err := tm.fetcher.FetchMetadata(context.Background(), "ipfs://"+testHash)
	assert.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Equal(t, "X", doc.Title())
}

func TestFetchMetadata_DirectHTTPURL(t *testing.T) {
	tm := setupTestFetcher(t, "https://gateway.example")
	defer tm.ctrl.Finish()

	// plain HTTP URIs are fetched as-is, no gateway rewriting
	tm.httpClient.EXPECT().
		Fetch(gomock.Any(), "https://api.example.com/token/42", gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{"name":"Work #42","type":"Art"}`), nil)

	doc, err := tm.fetcher.FetchMetadata(context.Background(), "https://api.example.com/token/42")
	assert.NoError(t, err)
	assert.Equal(t, "Work #42", doc.Title())
	assert.Equal(t, "art", doc.AssetType())
}

func TestFetchMetadata_PathGatewayKeepsOriginalLast(t *testing.T) {
	tm := setupTestFetcher(t,
		"https://gateway-one.example",
		"https://gateway-two.example")
	defer tm.ctrl.Finish()

	original := "https://custom-gw.example/ipfs/" + testHash

	gomock.InOrder(
		tm.httpClient.EXPECT().
			Fetch(gomock.Any(), "https://gateway-one.example/ipfs/"+testHash, gomock.Any()).
			Return(jsonResponse(http.StatusBadGateway, ""), nil),
		tm.httpClient.EXPECT().
			Fetch(gomock.Any(), "https://gateway-two.example/ipfs/"+testHash, gomock.Any()).
			Return(jsonResponse(http.StatusBadGateway, ""), nil),
		tm.httpClient.EXPECT().
			Fetch(gomock.Any(), original, gomock.Any()).
			Return(jsonResponse(http.StatusOK, `{"title":"fallback"}`), nil),
	)

	doc, err := tm.fetcher.FetchMetadata(context.Background(), original)
	assert.NoError(t, err)
	assert.Equal(t, "fallback", doc.Title())
}

func TestFetchMetadata_BareHash(t *testing.T) {
	tm := setupTestFetcher(t, "https://gateway.example")
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		Fetch(gomock.Any(), "https://gateway.example/ipfs/"+testHash, gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{"title":"bare"}`), nil)

	doc, err := tm.fetcher.FetchMetadata(context.Background(), testHash)
	assert.NoError(t, err)
	assert.Equal(t, "bare", doc.Title())
}

func TestFetchMetadata_MediaContentReturnsNil(t *testing.T) {
	tm := setupTestFetcher(t, "https://gateway.example")
	defer tm.ctrl.Finish()

	// a successful response that is the artwork itself ends the search
	tm.httpClient.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&adapter.Response{
			StatusCode:  http.StatusOK,
			ContentType: "image/png",
			Body:        []byte{0x89, 0x50, 0x4E, 0x47},
		}, nil).
		Times(1)

	doc, err := tm.fetcher.FetchMetadata(context.Background(), "ipfs://"+testHash)
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFetchMetadata_SniffsMislabeledMedia(t *testing.T) {
	tm := setupTestFetcher(t, "https://gateway.example")
	defer tm.ctrl.Finish()

	// gateway declares octet-stream but the bytes are a PNG
	tm.httpClient.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&adapter.Response{
			StatusCode:  http.StatusOK,
			ContentType: "application/octet-stream",
			Body:        []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
		}, nil)

	doc, err := tm.fetcher.FetchMetadata(context.Background(), "ipfs://"+testHash)
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFetchMetadata_NonJSONBody(t *testing.T) {
	tm := setupTestFetcher(t, "https://gateway.example")
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&adapter.Response{
			StatusCode:  http.StatusOK,
			ContentType: "text/html",
			Body:        []byte("<html><body>gateway landing page</body></html>"),
		}, nil)

	doc, err := tm.fetcher.FetchMetadata(context.Background(), "ipfs://"+testHash)
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFetchMetadata_JSONArrayBody(t *testing.T) {
	tm := setupTestFetcher(t, "https://gateway.example")
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(jsonResponse(http.StatusOK, `[{"title":"X"}]`), nil)

	doc, err := tm.fetcher.FetchMetadata(context.Background(), "ipfs://"+testHash)
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFetchMetadata_MalformedJSON(t *testing.T) {
	tm := setupTestFetcher(t, "https://gateway.example")
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{"title": "unterminated`), nil)

	doc, err := tm.fetcher.FetchMetadata(context.Background(), "ipfs://"+testHash)
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFetchMetadata_EmptyURI(t *testing.T) {
	tm := setupTestFetcher(t, "https://gateway.example")
	defer tm.ctrl.Finish()

	doc, err := tm.fetcher.FetchMetadata(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, doc)

	doc, err = tm.fetcher.FetchMetadata(context.Background(), "   ")
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFetchMetadata_UnsupportedScheme(t *testing.T) {
	tm := setupTestFetcher(t, "https://gateway.example")
	defer tm.ctrl.Finish()

	doc, err := tm.fetcher.FetchMetadata(context.Background(), "ar://some-arweave-id")
	assert.ErrorIs(t, err, domain.ErrInvalidURI)
	assert.Nil(t, doc)
}

func TestFetchMetadata_DuplicateGatewaysDeduplicated(t *testing.T) {
	tm := setupTestFetcher(t,
		"https://gateway.example",
		"https://gateway.example/")
	defer tm.ctrl.Finish()

	// trailing-slash variant builds the same URL, attempted once
	tm.httpClient.EXPECT().
		Fetch(gomock.Any(), "https://gateway.example/ipfs/"+testHash, gomock.Any()).
		Return(jsonResponse(http.StatusServiceUnavailable, ""), nil).
		Times(1)

	doc, err := tm.fetcher.FetchMetadata(context.Background(), "ipfs://"+testHash)
	assert.ErrorIs(t, err, domain.ErrMetadataUnavailable)
	assert.Nil(t, doc)
}

func TestFetchMetadata_ContextCancelled(t *testing.T) {
	tm := setupTestFetcher(t, "https://gateway.example")
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tm.fetcher.FetchMetadata(ctx, "ipfs://"+testHash)
	assert.ErrorIs(t, err, context.Canceled)
}
