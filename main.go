package main

import (
	"context"

	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/config"
	identity "auction-marketplace/internal/identityService"
	"auction-marketplace/internal/repository/postgres"
	"auction-marketplace/internal/repository/postgres/migrations"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}

	if err := migrations.Run(cfg.MigrationsURL, cfg.PostgresDSN()); err != nil {
		utils.Fatal("Database migration failed", map[string]any{"error": err.Error()})
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN())
	if err != nil {
		utils.Fatal("Failed to connect to database", map[string]any{"error": err.Error()})
	}
	defer pool.Close()

	identitySvc := identity.NewIdentityService(postgres.NewIdentityRepository(pool))
	auctionSvc := auction.NewAuctionService(postgres.NewAuctionRepository(pool))

	router := server.SetupRouter(identitySvc, auctionSvc)

	utils.Info("Starting auction server", map[string]any{"addr": cfg.Addr()})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}
