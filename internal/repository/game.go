package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/matkaworks/matka-backend/internal/domain"
)

// Game defines persistence operations for game configuration and round state.
type Game interface {
	CreateGame(ctx context.Context, game *domain.Game) error
	GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	GetGameByName(ctx context.Context, name string) (*domain.Game, error)
	ListGames(ctx context.Context) ([]domain.Game, error)
	UpdateGame(ctx context.Context, game *domain.Game) error
	DeleteGame(ctx context.Context, id uuid.UUID) error
	SetForcedStatus(ctx context.Context, id uuid.UUID, status *domain.GameStatus) error
	CountPendingBets(ctx context.Context, gameID uuid.UUID) (int, error)

	// ResetDeclaredRounds clears declared results on games whose round has
	// been settled, opening the next round. Returns the number of games
	// rolled over.
	ResetDeclaredRounds(ctx context.Context) (int64, error)
}
