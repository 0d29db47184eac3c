package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calenfir/bazaar/internal/database/postgres"
	"github.com/calenfir/bazaar/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Inventory repository.Inventory
	Champion  repository.Champion
	Shop      repository.Shop
	Item      repository.Item
	Trade     repository.Trade
}

// InitializeRepositories creates all repository implementations against the
// shared connection pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Inventory: postgres.NewInventoryRepository(dbPool),
		Champion:  postgres.NewChampionRepository(dbPool),
		Shop:      postgres.NewShopRepository(dbPool),
		Item:      postgres.NewItemRepository(dbPool),
		Trade:     postgres.NewTradeRepository(dbPool),
	}
}
