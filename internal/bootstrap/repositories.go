package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matkaworks/matka-backend/internal/database/postgres"
	"github.com/matkaworks/matka-backend/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Game       repository.Game
	Betting    repository.Betting
	Settlement repository.Settlement
	Wallet     repository.Wallet
}

// InitializeRepositories creates all repository implementations over the
// shared database pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Game:       postgres.NewGameRepository(dbPool),
		Betting:    postgres.NewBettingRepository(dbPool),
		Settlement: postgres.NewSettlementRepository(dbPool),
		Wallet:     postgres.NewWalletRepository(dbPool),
	}
}
