package server

import (
	"net/http"

	handler "auction-marketplace/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(identityService handler.IdentityServiceInterface, auctionService handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlation ids
	router.Use(RequestLoggerMiddleware) // custom request logging

	identityHandler := handler.NewIdentityHandler(identityService)
	auctionHandler := handler.NewAuctionHandler(auctionService)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	auth := router.Group("/auth")
	{
		auth.POST("/register", identityHandler.RegisterHandler)
		auth.POST("/login", identityHandler.LoginHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id", identityHandler.GetUserHandler)
		users.GET("/:user_id/bids", auctionHandler.GetBidsByUserHandler)
	}

	items := router.Group("/items")
	{
		items.POST("", auctionHandler.AddItemHandler)
		items.GET("", auctionHandler.ListItemsHandler)
		items.GET("/:item_id", auctionHandler.GetItemHandler)
		items.GET("/:item_id/bids", auctionHandler.GetBidsByItemHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	sellers := router.Group("/sellers")
	{
		sellers.GET("/:seller_id/items", auctionHandler.GetItemsBySellerHandler)
		sellers.GET("/:seller_id/bids", auctionHandler.GetBidsBySellerHandler)
	}

	reports := router.Group("/reports")
	{
		reports.GET("/highest-bids", auctionHandler.HighestBidsHandler)
	}

	return router
}
