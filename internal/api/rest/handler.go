package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mediolano-app/mip-indexer/internal/activity"
	"github.com/mediolano-app/mip-indexer/internal/domain"
	"github.com/mediolano-app/mip-indexer/internal/enumerate"
	"github.com/mediolano-app/mip-indexer/internal/logger"
	"github.com/mediolano-app/mip-indexer/internal/providers/indexer"
	"github.com/mediolano-app/mip-indexer/internal/timeline"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetTimeline retrieves a page of the asset discovery feed
	// GET /api/v1/timeline?page=<page>&pageSize=<size>&filterType=<all|art|music|docs|other>
	GetTimeline(c *gin.Context)

	// GetActivities retrieves aggregated activity records from the backend indexer
	// GET /api/v1/activities?limit=<limit>&offset=<offset>&sortOrder=<asc|desc>&from=<address>
	GetActivities(c *gin.Context)

	// VoyagerTxnBatch resolves transaction timestamps and senders in bulk
	// POST /api/v1/voyager/txn-batch
	VoyagerTxnBatch(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// TimelineConfig bounds the page sizes the timeline endpoint accepts
type TimelineConfig struct {
	DefaultPageSize uint64
	MaxPageSize     uint64
}

// timelineResponse is the envelope returned by GET /timeline
type timelineResponse struct {
	Data     []domain.TimelineAsset `json:"data"`
	Page     uint64                 `json:"page"`
	PageSize uint64                 `json:"pageSize"`
}

// activitiesResponse is the envelope returned by GET /activities
type activitiesResponse struct {
	Data       []domain.ActivityRecord `json:"data"`
	Pagination indexer.Pagination      `json:"pagination"`
}

// handler implements the Handler interface
type handler struct {
	timeline    timeline.Service
	indexer     indexer.Client
	aggregator  activity.Aggregator
	timelineCfg TimelineConfig
}

// NewHandler creates a new REST API handler
func NewHandler(timelineSvc timeline.Service, indexerClient indexer.Client, aggregator activity.Aggregator, timelineCfg TimelineConfig) Handler {
	if timelineCfg.DefaultPageSize == 0 {
		timelineCfg.DefaultPageSize = enumerate.DefaultPageSize
	}
	if timelineCfg.MaxPageSize == 0 {
		timelineCfg.MaxPageSize = MAX_PAGE_SIZE
	}
	return &handler{
		timeline:    timelineSvc,
		indexer:     indexerClient,
		aggregator:  aggregator,
		timelineCfg: timelineCfg,
	}
}

// GetTimeline retrieves one page of enumerated assets with resolved metadata
func (h *handler) GetTimeline(c *gin.Context) {
	queryParams, err := ParseTimelineQuery(c, h.timelineCfg.DefaultPageSize, h.timelineCfg.MaxPageSize)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	assets, err := h.timeline.FetchLatestAssets(
		c.Request.Context(),
		queryParams.Page,
		queryParams.PageSize,
		queryParams.FilterType,
	)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch timeline")
		return
	}

	if assets == nil {
		assets = []domain.TimelineAsset{}
	}

	// Assets merge live chain state with mutable off-chain metadata,
	// so responses must not be cached by intermediaries.
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, timelineResponse{
		Data:     assets,
		Page:     queryParams.Page,
		PageSize: queryParams.PageSize,
	})
}

// GetActivities proxies the backend indexer's transfer listing and
// aggregates the rows into typed activity records. A backend outage
// degrades to an empty page rather than an error.
func (h *handler) GetActivities(c *gin.Context) {
	queryParams, err := ParseActivitiesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	opts := indexer.ListOptions{
		Limit:     queryParams.Limit,
		Offset:    queryParams.Offset,
		SortOrder: string(queryParams.SortOrder),
	}

	var resp *indexer.TransfersResponse
	if queryParams.From != "" {
		resp, err = h.indexer.ListTransfersFrom(c.Request.Context(), queryParams.From, opts)
	} else {
		resp, err = h.indexer.ListTransfers(c.Request.Context(), opts)
	}
	if err != nil {
		logger.WarnCtx(c.Request.Context(), "backend indexer unavailable, serving empty activity page",
			zap.Error(err),
			zap.String("from", queryParams.From),
		)
		c.JSON(http.StatusOK, activitiesResponse{
			Data: []domain.ActivityRecord{},
			Pagination: indexer.Pagination{
				Total:  0,
				Offset: queryParams.Offset,
				Limit:  queryParams.Limit,
			},
		})
		return
	}

	events := make([]domain.ChainEvent, 0, len(resp.Data))
	for _, transfer := range resp.Data {
		events = append(events, activity.EventFromTransfer(transfer))
	}

	records := h.aggregator.Aggregate(c.Request.Context(), events)
	records = activity.Localize(records, queryParams.From)
	if records == nil {
		records = []domain.ActivityRecord{}
	}

	c.JSON(http.StatusOK, activitiesResponse{
		Data:       records,
		Pagination: resp.Pagination,
	})
}

// VoyagerTxnBatch resolves up to MAX_TXN_BATCH transaction hashes into
// explorer timestamps and senders, served through the enrichment cache
func (h *handler) VoyagerTxnBatch(c *gin.Context) {
	var req TxnBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if len(req.Hashes) == 0 {
		c.JSON(http.StatusOK, map[string]domain.TxEnrichment{})
		return
	}
	if len(req.Hashes) > MAX_TXN_BATCH {
		req.Hashes = req.Hashes[:MAX_TXN_BATCH]
	}

	enrichments := h.aggregator.Enrich(c.Request.Context(), req.Hashes)
	if enrichments == nil {
		enrichments = map[string]domain.TxEnrichment{}
	}

	c.JSON(http.StatusOK, enrichments)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "mip-indexer-api",
	})
}
