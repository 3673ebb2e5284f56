package perftests

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/repository"

	"github.com/shopspring/decimal"
)

// cents converts an integer cent count into a two-decimal amount
func cents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

// setupMarketplace seeds a seller, the given number of items and a pool of
// buyers directly through the repository.
func setupMarketplace(b *testing.B, numItems, numBuyers int) (*auction.AuctionService, []int64, []int64) {
	b.Helper()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo)

	seller, err := repo.CreateUser(ctx, "bench seller", "seller@bench.local", "x", "seller")
	if err != nil {
		b.Fatalf("failed to seed seller: %v", err)
	}

	itemIDs := make([]int64, 0, numItems)
	for i := 0; i < numItems; i++ {
		item, err := repo.CreateItem(ctx, fmt.Sprintf("item_%d", i), "benchmark item", cents(10000), seller.UserID)
		if err != nil {
			b.Fatalf("failed to seed item: %v", err)
		}
		itemIDs = append(itemIDs, item.ItemID)
	}

	buyerIDs := make([]int64, 0, numBuyers)
	for i := 0; i < numBuyers; i++ {
		buyer, err := repo.CreateUser(ctx, fmt.Sprintf("buyer_%d", i), fmt.Sprintf("buyer_%d@bench.local", i), "x", "buyer")
		if err != nil {
			b.Fatalf("failed to seed buyer: %v", err)
		}
		buyerIDs = append(buyerIDs, buyer.UserID)
	}

	return svc, itemIDs, buyerIDs
}

// Benchmark 1: PlaceBid on isolated items (low contention)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	svc, itemIDs, buyerIDs := setupMarketplace(b, b.N, 1)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.PlaceBid(ctx, itemIDs[i], buyerIDs[0], cents(10001)); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid on one shared item (high contention). Amounts are
// driven by an atomic counter so every bid strictly exceeds the last.
func Benchmark_PlaceBid_ConcurrentSharedItem(b *testing.B) {
	svc, itemIDs, buyerIDs := setupMarketplace(b, 1, 64)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var lastCents int64 = 10000
	var next int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buyer := buyerIDs[atomic.AddInt64(&next, 1)%int64(len(buyerIDs))]
			amount := cents(atomic.AddInt64(&lastCents, 1))
			_, _ = svc.PlaceBid(ctx, itemIDs[0], buyer, amount)
		}
	})
}

// Benchmark 3: per-item bid history, single threaded
func Benchmark_BidsForItem_SingleThreaded(b *testing.B) {
	svc, itemIDs, buyerIDs := setupMarketplace(b, 1, 1)
	ctx := context.Background()

	for j := 0; j < 100; j++ {
		if _, err := svc.PlaceBid(ctx, itemIDs[0], buyerIDs[0], cents(int64(10001+j))); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.BidsForItem(ctx, itemIDs[0]); err != nil {
			b.Fatalf("failed to read bid history: %v", err)
		}
	}
}

// Benchmark 4: highest-bid report over a seeded catalog, concurrent readers
func Benchmark_HighestBidReport_Concurrent(b *testing.B) {
	svc, itemIDs, buyerIDs := setupMarketplace(b, 50, 1)
	ctx := context.Background()

	for i, itemID := range itemIDs {
		if _, err := svc.PlaceBid(ctx, itemID, buyerIDs[0], cents(int64(10001+i))); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.HighestBidPerItem(ctx); err != nil {
				b.Fatalf("failed to build report: %v", err)
			}
		}
	})
}

// Benchmark 5: mixed workload, 70% readers and 30% writers on one item
func Benchmark_MixedWorkload_SharedItem(b *testing.B) {
	svc, itemIDs, buyerIDs := setupMarketplace(b, 1, 64)
	ctx := context.Background()

	for j := 0; j < 50; j++ {
		if _, err := svc.PlaceBid(ctx, itemIDs[0], buyerIDs[j%len(buyerIDs)], cents(int64(10001+j))); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastCents int64 = 10051
	var next int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			op := atomic.AddInt64(&next, 1)
			if op%10 < 3 {
				buyer := buyerIDs[op%int64(len(buyerIDs))]
				amount := cents(atomic.AddInt64(&lastCents, 1))
				_, _ = svc.PlaceBid(ctx, itemIDs[0], buyer, amount)
			} else {
				if _, err := svc.BidsForItem(ctx, itemIDs[0]); err != nil {
					b.Fatalf("failed to read bid history: %v", err)
				}
			}
		}
	})
}
