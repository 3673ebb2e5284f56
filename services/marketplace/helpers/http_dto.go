package helpers

import (
	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// BasePrice and Amount are pointers so "required" can distinguish an omitted
// field from a zero value; validator treats non-pointer struct fields as
// always set.
type AddItemRequest struct {
	ItemName    string           `json:"item_name" binding:"required"`
	Description string           `json:"description"`
	BasePrice   *decimal.Decimal `json:"base_price" binding:"required"`
	SellerID    int64            `json:"seller_id" binding:"required"`
}

type PlaceBidRequest struct {
	ItemID  int64            `json:"item_id" binding:"required"`
	BuyerID int64            `json:"buyer_id" binding:"required"`
	Amount  *decimal.Decimal `json:"amount" binding:"required"`
}

type UserResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type BidResponse struct {
	BidID   int64  `json:"bid_id"`
	ItemID  int64  `json:"item_id"`
	BuyerID int64  `json:"buyer_id"`
	Amount  string `json:"amount"`
	BidTime string `json:"bid_time"`
}
