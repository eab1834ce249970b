package rest

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const MAX_PAGE_SIZE = 100

const MAX_TXN_BATCH = 100

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func (o Order) Desc() bool {
	return o == OrderDesc
}

func (o Order) Asc() bool {
	return o == OrderAsc
}

// TimelineQueryParams holds query parameters for GET /timeline
type TimelineQueryParams struct {
	Page       uint64 `form:"page,default=0"`
	PageSize   uint64 `form:"pageSize,default=0"`
	FilterType string `form:"filterType,default=all"`
}

// ActivitiesQueryParams holds query parameters for GET /activities
type ActivitiesQueryParams struct {
	Limit     int    `form:"limit,default=25"`
	Offset    int    `form:"offset,default=0"`
	SortOrder Order  `form:"sortOrder,default=desc"`
	From      string `form:"from"`
}

// TxnBatchRequest is the body of POST /voyager/txn-batch
type TxnBatchRequest struct {
	Hashes []string `json:"hashes"`
}

// ParseTimelineQuery parses query parameters for GET /timeline.
// A zero pageSize falls back to defaultPageSize; maxPageSize caps it.
func ParseTimelineQuery(c *gin.Context, defaultPageSize, maxPageSize uint64) (*TimelineQueryParams, error) {
	var params TimelineQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.PageSize == 0 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	params.FilterType = strings.ToLower(strings.TrimSpace(params.FilterType))

	return &params, nil
}

// ParseActivitiesQuery parses query parameters for GET /activities
func ParseActivitiesQuery(c *gin.Context) (*ActivitiesQueryParams, error) {
	var params ActivitiesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Limit < 0 {
		params.Limit = 0
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	// Validate order
	if !params.SortOrder.Asc() && !params.SortOrder.Desc() {
		params.SortOrder = OrderDesc
	}

	return &params, nil
}
