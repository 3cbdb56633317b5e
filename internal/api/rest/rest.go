package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/tokenforge/chainledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Token registry (writes require authentication, reads are public)
		v1.POST("/tokens", middleware.Auth(authCfg), handler.CreateToken)
		v1.GET("/tokens/:id", handler.GetToken)
		v1.GET("/tokens", handler.ListTokens)

		// Token operations (supply-changing operations require authentication)
		v1.POST("/tokens/:id/mint", middleware.Auth(authCfg), handler.Mint)
		v1.POST("/tokens/:id/burn", middleware.Auth(authCfg), handler.Burn)
		v1.POST("/tokens/:id/transfer", handler.Transfer)

		// Wallet registry
		v1.POST("/wallets", middleware.Auth(authCfg), handler.RegisterWallet)
		v1.GET("/wallets/:address/balances", handler.GetWalletBalances)

		// NFT metadata (public read access)
		v1.GET("/nfts/:token_id/:token_number", handler.GetNFT)

		// Marketplace
		v1.POST("/marketplace/listings", handler.CreateListing)
		v1.GET("/marketplace/listings", handler.ListListings)
		v1.GET("/marketplace/listings/:id", handler.GetListing)
		v1.POST("/marketplace/listings/:id/buy", handler.BuyListing)
		v1.POST("/marketplace/listings/:id/cancel", handler.CancelListing)

		// Event and transaction log (public read access)
		v1.GET("/events", handler.ListEvents)
		v1.GET("/transactions/:hash", handler.GetTransaction)
	}
}
