package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/matkaworks/matka-backend/internal/domain"
)

// Wallet defines read/provision operations on user wallets. Balance
// mutations happen only inside PlacementTx / SettlementTx scopes.
type Wallet interface {
	GetWalletByUser(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}
