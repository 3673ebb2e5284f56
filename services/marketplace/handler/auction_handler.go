package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	AddItem(ctx context.Context, name, description string, basePrice decimal.Decimal, sellerID int64) (model.Item, error)
	ListItems(ctx context.Context) ([]model.ItemListing, error)
	GetItem(ctx context.Context, itemID int64) (model.ItemListing, error)
	PlaceBid(ctx context.Context, itemID, buyerID int64, amount decimal.Decimal) (model.Bid, error)
	BidsForItem(ctx context.Context, itemID int64) ([]model.ItemBid, error)
	BidsByUser(ctx context.Context, buyerID int64) ([]model.UserBid, error)
	ItemsBySeller(ctx context.Context, sellerID int64) ([]model.Item, error)
	ItemBidsBySeller(ctx context.Context, sellerID int64) ([]model.SellerBid, error)
	HighestBidPerItem(ctx context.Context) ([]model.ItemHighestBid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// AddItemHandler handles POST /items
func (h *AuctionHandler) AddItemHandler(c *gin.Context) {
	var req helpers.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddItemHandler", err)
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), req.ItemName, req.Description, *req.BasePrice, req.SellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AddItemHandler: failed to add item", map[string]any{
			"handler":   "AddItemHandler",
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item added successfully")
	helpers.LogSuccess("AddItemHandler", "item added successfully", map[string]any{
		"item_id":   item.ItemID,
		"seller_id": item.SellerID,
	})
}

// ListItemsHandler handles GET /items
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListItemsHandler: error retrieving items", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID, ok := parseIDParam(c, "GetItemHandler", "item_id")
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), req.ItemID, req.BuyerID, *req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":  "PlaceBidHandler",
			"item_id":  req.ItemID,
			"buyer_id": req.BuyerID,
			"error":    err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:   bid.BidID,
		ItemID:  bid.ItemID,
		BuyerID: bid.BuyerID,
		Amount:  bid.Amount.StringFixed(2),
		BidTime: bid.BidTime.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":   bid.BidID,
		"item_id":  bid.ItemID,
		"buyer_id": bid.BuyerID,
		"amount":   bid.Amount.StringFixed(2),
	})
}

// GetBidsByItemHandler handles GET /items/:item_id/bids
func (h *AuctionHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID, ok := parseIDParam(c, "GetBidsByItemHandler", "item_id")
	if !ok {
		return
	}

	bids, err := h.service.BidsForItem(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByItemHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByItemHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}

// GetBidsByUserHandler handles GET /users/:user_id/bids
func (h *AuctionHandler) GetBidsByUserHandler(c *gin.Context) {
	userID, ok := parseIDParam(c, "GetBidsByUserHandler", "user_id")
	if !ok {
		return
	}

	bids, err := h.service.BidsByUser(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByUserHandler: error retrieving bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// GetItemsBySellerHandler handles GET /sellers/:seller_id/items
func (h *AuctionHandler) GetItemsBySellerHandler(c *gin.Context) {
	sellerID, ok := parseIDParam(c, "GetItemsBySellerHandler", "seller_id")
	if !ok {
		return
	}

	items, err := h.service.ItemsBySeller(c.Request.Context(), sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemsBySellerHandler: error retrieving items", map[string]any{"seller_id": sellerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// GetBidsBySellerHandler handles GET /sellers/:seller_id/bids
func (h *AuctionHandler) GetBidsBySellerHandler(c *gin.Context) {
	sellerID, ok := parseIDParam(c, "GetBidsBySellerHandler", "seller_id")
	if !ok {
		return
	}

	bids, err := h.service.ItemBidsBySeller(c.Request.Context(), sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsBySellerHandler: error retrieving bids", map[string]any{"seller_id": sellerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// HighestBidsHandler handles GET /reports/highest-bids
func (h *AuctionHandler) HighestBidsHandler(c *gin.Context) {
	rows, err := h.service.HighestBidPerItem(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("HighestBidsHandler: error retrieving report", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, rows, "highest bids retrieved successfully")
}

// parseIDParam parses a positive int64 path parameter, responding with 400 on
// malformed input.
func parseIDParam(c *gin.Context, handlerName, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		wrapped := fmt.Errorf("invalid %s: %q", param, c.Param(param))
		utils.JSONError(c, http.StatusBadRequest, wrapped, "invalid "+param)
		utils.Warn(handlerName+": invalid path parameter", map[string]any{param: c.Param(param)})
		return 0, false
	}
	return id, true
}
