package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ryft-xyz/ryft-indexer/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Inbound provider webhook, authenticated by its HMAC signature
	router.POST("/webhooks/wallet-activity", handler.IngestWalletActivity)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Read endpoints (public)
		v1.GET("/collections/:address", handler.GetCollection)
		v1.GET("/collections/:address/nfts", handler.ListCollectionNFTs)
		v1.GET("/collections/:address/attributes", handler.ListCollectionAttributes)
		v1.GET("/trending", handler.GetTrending)
		v1.GET("/wallets/:address", handler.GetWallet)

		// Write endpoints (requires API key authentication)
		v1.POST("/collections", middleware.Auth(authCfg), handler.CreateCollection)
		v1.POST("/collections/:address/refresh", middleware.Auth(authCfg), handler.RefreshCollection)
		v1.POST("/wallets", middleware.Auth(authCfg), handler.OnboardWallet)
		v1.POST("/wallets/:address/track", middleware.Auth(authCfg), handler.TrackWallet)
	}
}
