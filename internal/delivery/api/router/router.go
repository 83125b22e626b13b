// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locus/internal/delivery/api/router/handler"
	"locus/internal/delivery/middleware"
	"locus/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	ScanHandler    *handler.ScanHandler
	AssetHandler   *handler.AssetHandler
	LiveHandler    *handler.LiveHandler
	AdminHandler   *handler.AdminHandler
	ExportHandler  *handler.ExportHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	scanHandler    *handler.ScanHandler
	assetHandler   *handler.AssetHandler
	liveHandler    *handler.LiveHandler
	adminHandler   *handler.AdminHandler
	exportHandler  *handler.ExportHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		scanHandler:    params.ScanHandler,
		assetHandler:   params.AssetHandler,
		liveHandler:    params.LiveHandler,
		adminHandler:   params.AdminHandler,
		exportHandler:  params.ExportHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Target of blob.publicBaseUrl; image URLs are embedded in asset records.
	e.GET("/images/*", r.assetHandler.GetImage)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/sign-out", r.sessionHandler.SignOut)
	}

	scanGroup := apiV1.Group("/scan-sessions")
	{
		scanGroup.POST("", r.scanHandler.OpenScanSession)
		scanGroup.POST("/:id/scans", r.scanHandler.Scan)
		scanGroup.POST("/:id/release", r.scanHandler.ReleaseScanSession)
		scanGroup.DELETE("/:id", r.scanHandler.CloseScanSession)
	}

	assetsGroup := apiV1.Group("/assets")
	{
		assetsGroup.GET("", r.assetHandler.ListAssets)
		assetsGroup.POST("", r.assetHandler.CreateAsset)
		assetsGroup.GET("/stream", r.liveHandler.Stream)
		assetsGroup.GET("/live", r.liveHandler.Live)
		assetsGroup.GET("/:code", r.assetHandler.GetAsset)
		assetsGroup.PUT("/:code", r.assetHandler.UpdateAsset)
		assetsGroup.DELETE("/:code", r.assetHandler.DeleteAsset)
		assetsGroup.GET("/:code/history", r.assetHandler.GetHistory)
		assetsGroup.GET("/:code/label", r.assetHandler.GetLabel)
	}

	apiV1.GET("/export", r.exportHandler.Export)

	// Role checks happen in the use cases so denials are counted and logged.
	adminGroup := apiV1.Group("/admin")
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:uid/role", r.adminHandler.ChangeRole)
	}
}
