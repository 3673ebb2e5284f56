package postgres

import (
	"context"
	"errors"
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// AuctionRepository implements repository.AuctionDB on PostgreSQL
type AuctionRepository struct {
	pool *pgxpool.Pool
}

// NewAuctionRepository creates a new AuctionRepository instance
func NewAuctionRepository(pool *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{pool: pool}
}

// CreateItem persists a new item. The insert resolves the seller and its role
// in the same statement, so a dangling or non-seller id never produces a row.
func (r *AuctionRepository) CreateItem(ctx context.Context, name, description string, basePrice decimal.Decimal, sellerID int64) (model.Item, error) {
	query := `
        INSERT INTO items (item_name, description, base_price, seller_id)
        SELECT $1, $2, $3, u.user_id
        FROM users u
        WHERE u.user_id = $4 AND u.role = 'seller'
        RETURNING item_id
    `
	item := model.Item{
		ItemName:    name,
		Description: description,
		BasePrice:   basePrice,
		SellerID:    sellerID,
	}
	err := r.pool.QueryRow(ctx, query, name, description, basePrice, sellerID).Scan(&item.ItemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, fmt.Errorf("repository: create item for seller %d: %w", sellerID, auctionerrors.ErrUnknownSeller)
		}
		return model.Item{}, fmt.Errorf("repository: create item: %w", classify(err))
	}

	return item, nil
}

// ListItems returns every item joined with its seller name, item id ascending
func (r *AuctionRepository) ListItems(ctx context.Context) ([]model.ItemListing, error) {
	query := `
        SELECT i.item_id, i.item_name, i.description, i.base_price, i.seller_id, u.name AS seller_name
        FROM items i
        JOIN users u ON i.seller_id = u.user_id
        ORDER BY i.item_id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: list items: %w", classify(err))
	}
	defer rows.Close()

	listings := []model.ItemListing{}
	for rows.Next() {
		var l model.ItemListing
		if err := rows.Scan(&l.ItemID, &l.ItemName, &l.Description, &l.BasePrice, &l.SellerID, &l.SellerName); err != nil {
			return nil, fmt.Errorf("repository: list items: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: list items: %w", classify(err))
	}

	return listings, nil
}

// GetItem returns one item joined with its seller name
func (r *AuctionRepository) GetItem(ctx context.Context, itemID int64) (model.ItemListing, error) {
	query := `
        SELECT i.item_id, i.item_name, i.description, i.base_price, i.seller_id, u.name AS seller_name
        FROM items i
        JOIN users u ON i.seller_id = u.user_id
        WHERE i.item_id = $1
    `
	var l model.ItemListing
	err := r.pool.QueryRow(ctx, query, itemID).Scan(
		&l.ItemID, &l.ItemName, &l.Description, &l.BasePrice, &l.SellerID, &l.SellerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ItemListing{}, fmt.Errorf("repository: get item %d: %w", itemID, auctionerrors.ErrNotFound)
		}
		return model.ItemListing{}, fmt.Errorf("repository: get item %d: %w", itemID, classify(err))
	}

	return l, nil
}

// InsertBid validates and records a bid inside a single transaction. Locking
// the item row with SELECT ... FOR UPDATE serializes bids per item, so the
// base-price and current-maximum checks and the insert form one atomic unit:
// two concurrent bids can never both pass validation against the same stale
// maximum.
func (r *AuctionRepository) InsertBid(ctx context.Context, itemID, buyerID int64, amount decimal.Decimal) (bid model.Bid, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Bid{}, fmt.Errorf("repository: insert bid: begin: %w", classify(err))
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("repository: insert bid: commit: %w", classify(commitErr))
		}
	}()

	var basePrice decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT base_price FROM items WHERE item_id = $1 FOR UPDATE`, itemID).Scan(&basePrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bid{}, fmt.Errorf("repository: insert bid for item %d: %w", itemID, auctionerrors.ErrUnknownItem)
		}
		return model.Bid{}, fmt.Errorf("repository: insert bid: %w", classify(err))
	}

	if amount.Cmp(basePrice) <= 0 {
		err = fmt.Errorf("%w: bid must be higher than base price of %s",
			auctionerrors.ErrBidTooLow, basePrice.StringFixed(2))
		return model.Bid{}, err
	}

	var currentMax decimal.NullDecimal
	err = tx.QueryRow(ctx, `SELECT MAX(bid_amount) FROM bids WHERE item_id = $1`, itemID).Scan(&currentMax)
	if err != nil {
		return model.Bid{}, fmt.Errorf("repository: insert bid: %w", classify(err))
	}
	if currentMax.Valid && amount.Cmp(currentMax.Decimal) <= 0 {
		err = fmt.Errorf("%w: bid must be higher than current highest bid of %s",
			auctionerrors.ErrBidTooLow, currentMax.Decimal.StringFixed(2))
		return model.Bid{}, err
	}

	bid = model.Bid{ItemID: itemID, BuyerID: buyerID, Amount: amount}
	err = tx.QueryRow(ctx,
		`INSERT INTO bids (item_id, buyer_id, bid_amount) VALUES ($1, $2, $3) RETURNING bid_id, bid_time`,
		itemID, buyerID, amount,
	).Scan(&bid.BidID, &bid.BidTime)
	if err != nil {
		return model.Bid{}, fmt.Errorf("repository: insert bid: %w", classify(err))
	}

	return bid, nil
}

// GetBidsByItem returns all bids for an item joined with buyer names,
// amount descending, ties broken by insertion order
func (r *AuctionRepository) GetBidsByItem(ctx context.Context, itemID int64) ([]model.ItemBid, error) {
	query := `
        SELECT b.bid_id, b.item_id, b.buyer_id, b.bid_amount, b.bid_time, u.name AS buyer_name
        FROM bids b
        JOIN users u ON b.buyer_id = u.user_id
        WHERE b.item_id = $1
        ORDER BY b.bid_amount DESC, b.bid_id ASC
    `
	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("repository: bids for item %d: %w", itemID, classify(err))
	}
	defer rows.Close()

	bids := []model.ItemBid{}
	for rows.Next() {
		var b model.ItemBid
		if err := rows.Scan(&b.BidID, &b.ItemID, &b.BuyerID, &b.Amount, &b.BidTime, &b.BuyerName); err != nil {
			return nil, fmt.Errorf("repository: bids for item %d: %w", itemID, err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: bids for item %d: %w", itemID, classify(err))
	}

	return bids, nil
}

// GetBidsByUser returns all bids placed by a buyer joined with item names,
// most recent first
func (r *AuctionRepository) GetBidsByUser(ctx context.Context, buyerID int64) ([]model.UserBid, error) {
	query := `
        SELECT b.bid_id, b.item_id, b.buyer_id, b.bid_amount, b.bid_time, i.item_name
        FROM bids b
        JOIN items i ON b.item_id = i.item_id
        WHERE b.buyer_id = $1
        ORDER BY b.bid_time DESC, b.bid_id DESC
    `
	rows, err := r.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("repository: bids by user %d: %w", buyerID, classify(err))
	}
	defer rows.Close()

	bids := []model.UserBid{}
	for rows.Next() {
		var b model.UserBid
		if err := rows.Scan(&b.BidID, &b.ItemID, &b.BuyerID, &b.Amount, &b.BidTime, &b.ItemName); err != nil {
			return nil, fmt.Errorf("repository: bids by user %d: %w", buyerID, err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: bids by user %d: %w", buyerID, classify(err))
	}

	return bids, nil
}

// GetItemsBySeller returns all items owned by a seller, item id ascending
func (r *AuctionRepository) GetItemsBySeller(ctx context.Context, sellerID int64) ([]model.Item, error) {
	query := `
        SELECT i.item_id, i.item_name, i.description, i.base_price, i.seller_id
        FROM items i
        WHERE i.seller_id = $1
        ORDER BY i.item_id
    `
	rows, err := r.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("repository: items by seller %d: %w", sellerID, classify(err))
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var i model.Item
		if err := rows.Scan(&i.ItemID, &i.ItemName, &i.Description, &i.BasePrice, &i.SellerID); err != nil {
			return nil, fmt.Errorf("repository: items by seller %d: %w", sellerID, err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: items by seller %d: %w", sellerID, classify(err))
	}

	return items, nil
}

// GetBidsBySeller returns all bids on any item owned by a seller, joined with
// item and buyer names, most recent first
func (r *AuctionRepository) GetBidsBySeller(ctx context.Context, sellerID int64) ([]model.SellerBid, error) {
	query := `
        SELECT b.bid_id, b.item_id, b.buyer_id, b.bid_amount, b.bid_time, i.item_name, u.name AS buyer_name
        FROM bids b
        JOIN items i ON b.item_id = i.item_id
        JOIN users u ON b.buyer_id = u.user_id
        WHERE i.seller_id = $1
        ORDER BY b.bid_time DESC, b.bid_id DESC
    `
	rows, err := r.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("repository: bids by seller %d: %w", sellerID, classify(err))
	}
	defer rows.Close()

	bids := []model.SellerBid{}
	for rows.Next() {
		var b model.SellerBid
		if err := rows.Scan(&b.BidID, &b.ItemID, &b.BuyerID, &b.Amount, &b.BidTime, &b.ItemName, &b.BuyerName); err != nil {
			return nil, fmt.Errorf("repository: bids by seller %d: %w", sellerID, err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: bids by seller %d: %w", sellerID, classify(err))
	}

	return bids, nil
}

// HighestBidPerItem returns at most one row per item: the maximum-amount bid
// joined with its buyer name. Items with zero bids still appear with null bid
// fields and sort last; ties on amount break by item id for a stable order.
func (r *AuctionRepository) HighestBidPerItem(ctx context.Context) ([]model.ItemHighestBid, error) {
	query := `
        SELECT i.item_id, i.item_name, u.name AS buyer_name, b.bid_amount, b.bid_time
        FROM items i
        LEFT JOIN LATERAL (
            SELECT buyer_id, bid_amount, bid_time
            FROM bids
            WHERE item_id = i.item_id
            ORDER BY bid_amount DESC, bid_id ASC
            LIMIT 1
        ) b ON true
        LEFT JOIN users u ON b.buyer_id = u.user_id
        ORDER BY b.bid_amount DESC NULLS LAST, i.item_id ASC
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: highest bid per item: %w", classify(err))
	}
	defer rows.Close()

	result := []model.ItemHighestBid{}
	for rows.Next() {
		var row model.ItemHighestBid
		var amount decimal.NullDecimal
		if err := rows.Scan(&row.ItemID, &row.ItemName, &row.BuyerName, &amount, &row.BidTime); err != nil {
			return nil, fmt.Errorf("repository: highest bid per item: %w", err)
		}
		if amount.Valid {
			row.Amount = &amount.Decimal
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: highest bid per item: %w", classify(err))
	}

	return result, nil
}
