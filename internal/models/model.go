package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role determines which marketplace operations a user may invoke
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// Valid reports whether the role is one of the two recognized values
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// User represents a registered participant in the marketplace.
// PasswordHash is the bcrypt hash of the credential and is never serialized.
type User struct {
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Item represents an auction listing owned by a seller
type Item struct {
	ItemID      int64           `json:"item_id"`
	ItemName    string          `json:"item_name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	SellerID    int64           `json:"seller_id"`
}

// ItemListing is an Item joined with its seller's display name
type ItemListing struct {
	ItemID      int64           `json:"item_id"`
	ItemName    string          `json:"item_name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	SellerID    int64           `json:"seller_id"`
	SellerName  string          `json:"seller_name"`
}

// Bid represents a buyer's bid on an item. Bids are append-only; BidTime
// is assigned by the storage layer at insert.
type Bid struct {
	BidID   int64           `json:"bid_id"`
	ItemID  int64           `json:"item_id"`
	BuyerID int64           `json:"buyer_id"`
	Amount  decimal.Decimal `json:"bid_amount"`
	BidTime time.Time       `json:"bid_time"`
}

// ItemBid is a Bid joined with the buyer's display name (per-item history)
type ItemBid struct {
	BidID     int64           `json:"bid_id"`
	ItemID    int64           `json:"item_id"`
	BuyerID   int64           `json:"buyer_id"`
	Amount    decimal.Decimal `json:"bid_amount"`
	BidTime   time.Time       `json:"bid_time"`
	BuyerName string          `json:"buyer_name"`
}

// UserBid is a Bid joined with the item name (per-buyer history)
type UserBid struct {
	BidID    int64           `json:"bid_id"`
	ItemID   int64           `json:"item_id"`
	BuyerID  int64           `json:"buyer_id"`
	Amount   decimal.Decimal `json:"bid_amount"`
	BidTime  time.Time       `json:"bid_time"`
	ItemName string          `json:"item_name"`
}

// SellerBid is a Bid on one of a seller's items, joined with item and buyer names
type SellerBid struct {
	BidID     int64           `json:"bid_id"`
	ItemID    int64           `json:"item_id"`
	BuyerID   int64           `json:"buyer_id"`
	Amount    decimal.Decimal `json:"bid_amount"`
	BidTime   time.Time       `json:"bid_time"`
	ItemName  string          `json:"item_name"`
	BuyerName string          `json:"buyer_name"`
}

// ItemHighestBid is one row of the global highest-bid-per-item report.
// Bid fields are nil for items that have received no bids.
type ItemHighestBid struct {
	ItemID    int64            `json:"item_id"`
	ItemName  string           `json:"item_name"`
	BuyerName *string          `json:"buyer_name"`
	Amount    *decimal.Decimal `json:"bid_amount"`
	BidTime   *time.Time       `json:"bid_time"`
}
