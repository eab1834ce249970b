package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Timeline endpoint (public read access)
		v1.GET("/timeline", handler.GetTimeline)

		// Activity endpoints (public read access)
		v1.GET("/activities", handler.GetActivities)

		// Bulk transaction enrichment
		v1.POST("/voyager/txn-batch", handler.VoyagerTxnBatch)
	}
}
