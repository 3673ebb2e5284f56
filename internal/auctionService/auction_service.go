package auction

import (
	"context"
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/shopspring/decimal"
)

// AuctionService defines the business logic for the auction ledger: item
// listings, bid acceptance and the ranking/aggregation queries.
type AuctionService struct {
	repo repository.AuctionDB
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB) *AuctionService {
	return &AuctionService{
		repo: repo,
	}
}

// AddItem validates and persists a new item for a seller
func (s *AuctionService) AddItem(ctx context.Context, name, description string, basePrice decimal.Decimal, sellerID int64) (model.Item, error) {
	if name == "" {
		return model.Item{}, fmt.Errorf("service: %w - item name is required", auctionerrors.ErrValidation)
	}
	if sellerID <= 0 {
		return model.Item{}, fmt.Errorf("service: %w - invalid seller id", auctionerrors.ErrValidation)
	}
	if err := validateAmount(basePrice); err != nil {
		return model.Item{}, fmt.Errorf("service: %w - base price %s", auctionerrors.ErrValidation, err)
	}

	item, err := s.repo.CreateItem(ctx, name, description, basePrice, sellerID)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: failed to add item for seller %d: %w", sellerID, err)
	}

	return item, nil
}

// ListItems returns all items joined with seller names
func (s *AuctionService) ListItems(ctx context.Context) ([]model.ItemListing, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}
	return items, nil
}

// GetItem returns one item joined with its seller name
func (s *AuctionService) GetItem(ctx context.Context, itemID int64) (model.ItemListing, error) {
	if itemID <= 0 {
		return model.ItemListing{}, fmt.Errorf("service: %w - invalid item id", auctionerrors.ErrValidation)
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.ItemListing{}, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}
	return item, nil
}

// PlaceBid validates a bid and delegates to the storage layer, where the
// monotonic-bid checks and the insert execute atomically. A bid is accepted
// only if it strictly exceeds both the item's base price and the current
// highest bid.
func (s *AuctionService) PlaceBid(ctx context.Context, itemID, buyerID int64, amount decimal.Decimal) (model.Bid, error) {
	if itemID <= 0 || buyerID <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - invalid item or buyer id", auctionerrors.ErrValidation)
	}
	if err := validateAmount(amount); err != nil {
		return model.Bid{}, fmt.Errorf("service: %w - bid amount %s", auctionerrors.ErrValidation, err)
	}

	bid, err := s.repo.InsertBid(ctx, itemID, buyerID, amount)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to place bid on item %d by buyer %d: %w", itemID, buyerID, err)
	}

	return bid, nil
}

// BidsForItem returns all bids for an item, highest amount first
func (s *AuctionService) BidsForItem(ctx context.Context, itemID int64) ([]model.ItemBid, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("service: %w - invalid item id", auctionerrors.ErrValidation)
	}

	bids, err := s.repo.GetBidsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %d: %w", itemID, err)
	}
	return bids, nil
}

// BidsByUser returns all bids placed by a buyer, most recent first
func (s *AuctionService) BidsByUser(ctx context.Context, buyerID int64) ([]model.UserBid, error) {
	if buyerID <= 0 {
		return nil, fmt.Errorf("service: %w - invalid user id", auctionerrors.ErrValidation)
	}

	bids, err := s.repo.GetBidsByUser(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids by user %d: %w", buyerID, err)
	}
	return bids, nil
}

// ItemsBySeller returns all items owned by a seller, item id ascending
func (s *AuctionService) ItemsBySeller(ctx context.Context, sellerID int64) ([]model.Item, error) {
	if sellerID <= 0 {
		return nil, fmt.Errorf("service: %w - invalid seller id", auctionerrors.ErrValidation)
	}

	items, err := s.repo.GetItemsBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get items by seller %d: %w", sellerID, err)
	}
	return items, nil
}

// ItemBidsBySeller returns all bids on any of a seller's items, most recent first
func (s *AuctionService) ItemBidsBySeller(ctx context.Context, sellerID int64) ([]model.SellerBid, error) {
	if sellerID <= 0 {
		return nil, fmt.Errorf("service: %w - invalid seller id", auctionerrors.ErrValidation)
	}

	bids, err := s.repo.GetBidsBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids by seller %d: %w", sellerID, err)
	}
	return bids, nil
}

// HighestBidPerItem returns the global highest-bid report, one row per item
func (s *AuctionService) HighestBidPerItem(ctx context.Context) ([]model.ItemHighestBid, error) {
	rows, err := s.repo.HighestBidPerItem(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get highest bids: %w", err)
	}
	return rows, nil
}

// validateAmount enforces that monetary values are positive with at most two
// fractional digits (currency precision).
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("must be positive, got %s", amount)
	}
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("must have at most two decimal places, got %s", amount)
	}
	return nil
}
