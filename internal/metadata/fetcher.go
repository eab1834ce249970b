package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/mediolano-app/mip-indexer/internal/adapter"
	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/logger"
)

const (
	// acceptHeader tolerates gateways that serve media at metadata paths
	acceptHeader = "application/json, image/*, */*"

	// DefaultAttemptTimeout bounds each gateway attempt
	DefaultAttemptTimeout = 8 * time.Second
)

// bareHashPattern matches IPFS content hashes given without a scheme
var bareHashPattern = regexp.MustCompile(`^(Qm[1-9A-HJ-NP-Za-km-z]{44}|bafy[a-z2-7]+|bafk[a-z2-7]+)$`)

// Config holds metadata fetcher configuration
type Config struct {
	// IPFSGateways are tried in order; the first 2xx wins
	IPFSGateways []string
	// AttemptTimeout bounds a single candidate attempt
	AttemptTimeout time.Duration
}

// Fetcher resolves a token URI to its off-chain JSON document.
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/metadata_fetcher.go -package=mocks -mock_names=Fetcher=MockMetadataFetcher
type Fetcher interface {
	// FetchMetadata retrieves and parses the document behind uri.
	// An unresolvable URI returns ErrInvalidURI and exhausted gateway
	// candidates return ErrMetadataUnavailable; a readable body that is
	// media or malformed JSON degrades to a nil document without error.
	FetchMetadata(ctx context.Context, uri string) (domain.RawMetadata, error)
}

type fetcher struct {
	httpClient adapter.HTTPClient
	config     *Config
}

// NewFetcher creates a metadata fetcher with the given gateway list
func NewFetcher(httpClient adapter.HTTPClient, config *Config) Fetcher {
	if config.AttemptTimeout <= 0 {
		config.AttemptTimeout = DefaultAttemptTimeout
	}
	return &fetcher{
		httpClient: httpClient,
		config:     config,
	}
}

func (f *fetcher) FetchMetadata(ctx context.Context, uri string) (domain.RawMetadata, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, nil
	}

	candidates := f.candidates(uri)
	if len(candidates) == 0 {
		logger.DebugCtx(ctx, "no metadata candidates for URI", zap.String("uri", uri))
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidURI, uri)
	}

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, retryable := f.tryCandidate(ctx, candidate)
		if doc != nil || !retryable {
			return doc, nil
		}
	}

	logger.WarnCtx(ctx, "all metadata candidates exhausted",
		zap.String("uri", uri),
		zap.Int("candidates", len(candidates)))
	return nil, domain.ErrMetadataUnavailable
}

// tryCandidate fetches one candidate URL. It returns the parsed document
// when the candidate succeeded, and whether the next candidate should be
// tried. A 2xx response ends the loop either way: a media or malformed
// body at a working gateway will not read differently elsewhere.
func (f *fetcher) tryCandidate(ctx context.Context, url string) (domain.RawMetadata, bool) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.config.AttemptTimeout)
	defer cancel()

	resp, err := f.httpClient.Fetch(attemptCtx, url, acceptHeader)
	if err != nil {
		logger.DebugCtx(ctx, "metadata candidate failed", zap.String("url", url), zap.Error(err))
		return nil, true
	}
	if !resp.OK() {
		logger.DebugCtx(ctx, "metadata candidate rejected",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		return nil, true
	}

	return parseDocument(ctx, url, resp), false
}

// parseDocument turns a successful response into a metadata document,
// or nil when the body is media or not valid JSON
func parseDocument(ctx context.Context, url string, resp *adapter.Response) domain.RawMetadata {
	if isMediaContent(resp.ContentType, resp.Body) {
		// tokenURI pointed at the artwork itself, not at metadata
		logger.DebugCtx(ctx, "token URI resolved to media content", zap.String("url", url))
		return nil
	}

	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 || (body[0] != '{' && body[0] != '[') {
		logger.DebugCtx(ctx, "metadata body is not JSON", zap.String("url", url))
		return nil
	}

	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		logger.WarnCtx(ctx, "metadata JSON parse failed", zap.String("url", url), zap.Error(err))
		return nil
	}

	doc, ok := parsed.(map[string]interface{})
	if !ok {
		logger.DebugCtx(ctx, "metadata JSON is not an object", zap.String("url", url))
		return nil
	}

	return domain.RawMetadata(doc)
}

// isMediaContent detects image/video/audio responses, preferring the
// declared content type and falling back to byte sniffing for gateways
// that mislabel
func isMediaContent(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	if isMediaType(ct) {
		return true
	}
	if strings.Contains(ct, "json") || strings.HasPrefix(ct, "text/") {
		return false
	}

	return isMediaType(mimetype.Detect(body).String())
}

func isMediaType(mt string) bool {
	return strings.HasPrefix(mt, "image/") ||
		strings.HasPrefix(mt, "video/") ||
		strings.HasPrefix(mt, "audio/")
}

// candidates builds the ordered, de-duplicated list of URLs to try for a
// token URI
func (f *fetcher) candidates(uri string) []string {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil
	}

	var out []string
	switch {
	case strings.HasPrefix(uri, "ipfs://"):
		out = f.gatewayURLs(strings.TrimPrefix(uri, "ipfs://"))

	case strings.Contains(uri, "/ipfs/"):
		parts := strings.SplitN(uri, "/ipfs/", 2)
		out = f.gatewayURLs(parts[1])
		// keep the original gateway as a last resort
		out = append(out, uri)

	case isBareHash(uri):
		out = f.gatewayURLs(uri)

	case strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://"):
		out = []string{uri}

	default:
		return nil
	}

	return dedupe(out)
}

func (f *fetcher) gatewayURLs(hash string) []string {
	urls := make([]string, 0, len(f.config.IPFSGateways))
	for _, gw := range f.config.IPFSGateways {
		urls = append(urls, strings.TrimSuffix(gw, "/")+"/ipfs/"+hash)
	}
	return urls
}

// isBareHash recognizes schemeless content hashes: canonical CID shapes,
// or any long schemeless token
func isBareHash(uri string) bool {
	if strings.Contains(uri, "://") {
		return false
	}
	if bareHashPattern.MatchString(uri) {
		return true
	}
	return len(uri) > 30 && !strings.ContainsAny(uri, " \t\n")
}

func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := urls[:0]
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
