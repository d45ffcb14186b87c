package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/cellstrat/invoicestack/api/handlers"
	"github.com/cellstrat/invoicestack/api/middleware"
	"github.com/cellstrat/invoicestack/internal/tracing"
	"github.com/cellstrat/invoicestack/services"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(ctx context.Context, r *gin.Engine, s *services.Services, apikey string) {
	if s == nil {
		panic("Services cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer()))

	// Health check endpoint (no auth)
	r.GET("/health", handlers.HealthCheck)

	apiKeyMiddleware := middleware.APIKeyMiddleware(middleware.APIKeyConfig{
		HeaderName:  "X-INVOICESTACK-API-KEY",
		ValidAPIKey: apikey,
	})

	// API group with version
	api := r.Group("/v1")
	api.Use(apiKeyMiddleware)
	{
		runs := api.Group("/runs")
		runs.Use(tracing.TracingEnhancer(ctx, "POST /v1/runs"))
		{
			runs.POST("", handlers.TriggerRun(s.OrchestratorService))
		}
	}
}
