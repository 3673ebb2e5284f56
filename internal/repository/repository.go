package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"

	"github.com/shopspring/decimal"
)

// IdentityDB defines the user storage interface for the identity store
type IdentityDB interface {
	CreateUser(ctx context.Context, name, email, passwordHash string, role model.Role) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
}

// AuctionDB defines the item and bid storage interface for the auction ledger.
//
// InsertBid is the one operation that carries a concurrency guarantee: the
// resolve-item, check-against-base, check-against-current-max and insert steps
// execute as a single atomic unit, so two concurrent bids can never both be
// validated against the same stale maximum.
type AuctionDB interface {
	CreateItem(ctx context.Context, name, description string, basePrice decimal.Decimal, sellerID int64) (model.Item, error)
	ListItems(ctx context.Context) ([]model.ItemListing, error)
	GetItem(ctx context.Context, itemID int64) (model.ItemListing, error)
	InsertBid(ctx context.Context, itemID, buyerID int64, amount decimal.Decimal) (model.Bid, error)
	GetBidsByItem(ctx context.Context, itemID int64) ([]model.ItemBid, error)
	GetBidsByUser(ctx context.Context, buyerID int64) ([]model.UserBid, error)
	GetItemsBySeller(ctx context.Context, sellerID int64) ([]model.Item, error)
	GetBidsBySeller(ctx context.Context, sellerID int64) ([]model.SellerBid, error)
	HighestBidPerItem(ctx context.Context) ([]model.ItemHighestBid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of IdentityDB and
// AuctionDB, used by unit tests, integration tests and benchmarks.
type MemoryRepo struct {
	mu     sync.RWMutex
	users  map[int64]model.User
	emails map[string]int64       // email -> userID, enforces uniqueness
	items  map[int64]model.Item
	bids   map[int64][]model.Bid  // itemID -> bids in insertion order

	nextUserID int64
	nextItemID int64
	nextBidID  int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:  make(map[int64]model.User),
		emails: make(map[string]int64),
		items:  make(map[int64]model.Item),
		bids:   make(map[int64][]model.Bid),
	}
}

// CreateUser persists a new user, rejecting duplicate emails
func (r *MemoryRepo) CreateUser(_ context.Context, name, email, passwordHash string, role model.Role) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emails[email]; exists {
		return model.User{}, fmt.Errorf("create user %s: %w", email, auctionerrors.ErrDuplicateEmail)
	}

	r.nextUserID++
	user := model.User{
		UserID:       r.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	r.users[user.UserID] = user
	r.emails[email] = user.UserID

	return user, nil
}

// GetUserByEmail looks up a user by exact email match, including the password hash
func (r *MemoryRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrNotFound)
	}
	return r.users[id], nil
}

// GetUserByID returns a user by identifier
func (r *MemoryRepo) GetUserByID(_ context.Context, userID int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %d: %w", userID, auctionerrors.ErrNotFound)
	}
	return user, nil
}

// CreateItem persists a new item after resolving its seller
func (r *MemoryRepo) CreateItem(_ context.Context, name, description string, basePrice decimal.Decimal, sellerID int64) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seller, ok := r.users[sellerID]
	if !ok || seller.Role != model.RoleSeller {
		return model.Item{}, fmt.Errorf("create item for seller %d: %w", sellerID, auctionerrors.ErrUnknownSeller)
	}

	r.nextItemID++
	item := model.Item{
		ItemID:      r.nextItemID,
		ItemName:    name,
		Description: description,
		BasePrice:   basePrice,
		SellerID:    sellerID,
	}
	r.items[item.ItemID] = item

	return item, nil
}

// ListItems returns every item joined with its seller name, item id ascending
func (r *MemoryRepo) ListItems(_ context.Context) ([]model.ItemListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]model.ItemListing, 0, len(r.items))
	for _, item := range r.items {
		listings = append(listings, r.toListing(item))
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].ItemID < listings[j].ItemID })

	return listings, nil
}

// GetItem returns one item joined with its seller name
func (r *MemoryRepo) GetItem(_ context.Context, itemID int64) (model.ItemListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.ItemListing{}, fmt.Errorf("get item %d: %w", itemID, auctionerrors.ErrNotFound)
	}
	return r.toListing(item), nil
}

// InsertBid validates and records a bid as one atomic unit under the write
// lock: the base-price and current-maximum checks and the insert cannot
// interleave with another bid on the same item.
func (r *MemoryRepo) InsertBid(_ context.Context, itemID, buyerID int64, amount decimal.Decimal) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Bid{}, fmt.Errorf("insert bid for item %d: %w", itemID, auctionerrors.ErrUnknownItem)
	}
	if _, ok := r.users[buyerID]; !ok {
		return model.Bid{}, fmt.Errorf("insert bid for buyer %d: %w", buyerID, auctionerrors.ErrUnknownBuyer)
	}

	if amount.Cmp(item.BasePrice) <= 0 {
		return model.Bid{}, fmt.Errorf("%w: bid must be higher than base price of %s",
			auctionerrors.ErrBidTooLow, item.BasePrice.StringFixed(2))
	}

	if max, ok := r.currentMax(itemID); ok && amount.Cmp(max) <= 0 {
		return model.Bid{}, fmt.Errorf("%w: bid must be higher than current highest bid of %s",
			auctionerrors.ErrBidTooLow, max.StringFixed(2))
	}

	r.nextBidID++
	bid := model.Bid{
		BidID:   r.nextBidID,
		ItemID:  itemID,
		BuyerID: buyerID,
		Amount:  amount,
		BidTime: time.Now().UTC(),
	}
	r.bids[itemID] = append(r.bids[itemID], bid)

	return bid, nil
}

// GetBidsByItem returns all bids for an item joined with buyer names,
// amount descending, ties broken by insertion order
func (r *MemoryRepo) GetBidsByItem(_ context.Context, itemID int64) ([]model.ItemBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.ItemBid, 0, len(r.bids[itemID]))
	for _, b := range r.bids[itemID] {
		bids = append(bids, model.ItemBid{
			BidID:     b.BidID,
			ItemID:    b.ItemID,
			BuyerID:   b.BuyerID,
			Amount:    b.Amount,
			BidTime:   b.BidTime,
			BuyerName: r.users[b.BuyerID].Name,
		})
	}
	sort.Slice(bids, func(i, j int) bool {
		if !bids[i].Amount.Equal(bids[j].Amount) {
			return bids[i].Amount.GreaterThan(bids[j].Amount)
		}
		return bids[i].BidID < bids[j].BidID
	})

	return bids, nil
}

// GetBidsByUser returns all bids placed by a buyer joined with item names,
// most recent first
func (r *MemoryRepo) GetBidsByUser(_ context.Context, buyerID int64) ([]model.UserBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := []model.UserBid{}
	for itemID, itemBids := range r.bids {
		for _, b := range itemBids {
			if b.BuyerID != buyerID {
				continue
			}
			bids = append(bids, model.UserBid{
				BidID:    b.BidID,
				ItemID:   b.ItemID,
				BuyerID:  b.BuyerID,
				Amount:   b.Amount,
				BidTime:  b.BidTime,
				ItemName: r.items[itemID].ItemName,
			})
		}
	}
	sortBidsByTimeDesc(bids, func(b model.UserBid) (time.Time, int64) { return b.BidTime, b.BidID })

	return bids, nil
}

// GetItemsBySeller returns all items owned by a seller, item id ascending
func (r *MemoryRepo) GetItemsBySeller(_ context.Context, sellerID int64) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []model.Item{}
	for _, item := range r.items {
		if item.SellerID == sellerID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })

	return items, nil
}

// GetBidsBySeller returns all bids on any item owned by a seller, joined with
// item and buyer names, most recent first
func (r *MemoryRepo) GetBidsBySeller(_ context.Context, sellerID int64) ([]model.SellerBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := []model.SellerBid{}
	for itemID, item := range r.items {
		if item.SellerID != sellerID {
			continue
		}
		for _, b := range r.bids[itemID] {
			bids = append(bids, model.SellerBid{
				BidID:     b.BidID,
				ItemID:    b.ItemID,
				BuyerID:   b.BuyerID,
				Amount:    b.Amount,
				BidTime:   b.BidTime,
				ItemName:  item.ItemName,
				BuyerName: r.users[b.BuyerID].Name,
			})
		}
	}
	sortBidsByTimeDesc(bids, func(b model.SellerBid) (time.Time, int64) { return b.BidTime, b.BidID })

	return bids, nil
}

// HighestBidPerItem returns at most one row per item: the maximum-amount bid
// joined with its buyer name, or nil bid fields when the item has no bids.
// Rows are ordered by bid amount descending with bid-less items trailing.
func (r *MemoryRepo) HighestBidPerItem(_ context.Context) ([]model.ItemHighestBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]model.ItemHighestBid, 0, len(r.items))
	for itemID, item := range r.items {
		row := model.ItemHighestBid{
			ItemID:   item.ItemID,
			ItemName: item.ItemName,
		}
		if top, ok := r.topBid(itemID); ok {
			name := r.users[top.BuyerID].Name
			amount := top.Amount
			bidTime := top.BidTime
			row.BuyerName = &name
			row.Amount = &amount
			row.BidTime = &bidTime
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.Amount == nil && b.Amount == nil:
			return a.ItemID < b.ItemID
		case a.Amount == nil:
			return false // nulls last
		case b.Amount == nil:
			return true
		case !a.Amount.Equal(*b.Amount):
			return a.Amount.GreaterThan(*b.Amount)
		default:
			return a.ItemID < b.ItemID
		}
	})

	return rows, nil
}

// currentMax returns the maximum bid amount for an item. Caller must hold a lock.
func (r *MemoryRepo) currentMax(itemID int64) (decimal.Decimal, bool) {
	bids := r.bids[itemID]
	if len(bids) == 0 {
		return decimal.Decimal{}, false
	}
	max := bids[0].Amount
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(max) {
			max = b.Amount
		}
	}
	return max, true
}

// topBid returns the maximum-amount bid for an item. Amounts on one item are
// strictly increasing, so the maximum is unique. Caller must hold a lock.
func (r *MemoryRepo) topBid(itemID int64) (model.Bid, bool) {
	bids := r.bids[itemID]
	if len(bids) == 0 {
		return model.Bid{}, false
	}
	top := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(top.Amount) {
			top = b
		}
	}
	return top, true
}

// toListing joins an item with its seller's name. Caller must hold a lock.
func (r *MemoryRepo) toListing(item model.Item) model.ItemListing {
	return model.ItemListing{
		ItemID:      item.ItemID,
		ItemName:    item.ItemName,
		Description: item.Description,
		BasePrice:   item.BasePrice,
		SellerID:    item.SellerID,
		SellerName:  r.users[item.SellerID].Name,
	}
}

// sortBidsByTimeDesc orders bids newest first, breaking timestamp ties by the
// higher (later) bid id.
func sortBidsByTimeDesc[T any](bids []T, key func(T) (time.Time, int64)) {
	sort.Slice(bids, func(i, j int) bool {
		ti, idi := key(bids[i])
		tj, idj := key(bids[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi > idj
	})
}
