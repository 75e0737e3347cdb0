package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/matkaworks/matka-backend/internal/domain"
)

// Betting defines what the bet placement guard needs from persistence.
type Betting interface {
	GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	BeginPlacementTx(ctx context.Context) (PlacementTx, error)
}

// Settlement defines what the settlement engine needs from persistence.
type Settlement interface {
	GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	GetBetsByGameAndUser(ctx context.Context, gameID, userID uuid.UUID) ([]domain.Bet, error)
	GetGameResult(ctx context.Context, gameID uuid.UUID) (*domain.GameResult, error)
	BeginSettlementTx(ctx context.Context) (SettlementTx, error)
}
