// Package game manages game configuration: admin CRUD, the forced-status
// override, status derivation for display, and daily round rollover.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/gamewindow"
	"github.com/matkaworks/matka-backend/internal/logger"
	"github.com/matkaworks/matka-backend/internal/repository"
)

// Service defines the interface for game configuration operations
type Service interface {
	CreateGame(ctx context.Context, game *domain.Game) (*domain.Game, error)
	GetGame(ctx context.Context, id uuid.UUID) (*GameView, error)
	ListGames(ctx context.Context) ([]GameView, error)
	UpdateGame(ctx context.Context, game *domain.Game) (*domain.Game, error)
	DeleteGame(ctx context.Context, id uuid.UUID) error
	SetForcedStatus(ctx context.Context, id uuid.UUID, status *domain.GameStatus) error
	GameStatus(ctx context.Context, id uuid.UUID) (domain.GameStatus, error)
	RolloverRounds(ctx context.Context) (int64, error)
}

// GameView is a game plus its status derived at read time.
type GameView struct {
	domain.Game
	Status domain.GameStatus `json:"status"`
}

type service struct {
	repo  repository.Game
	cache *expirable.LRU[uuid.UUID, *domain.Game]
	loc   *time.Location
	now   func() time.Time
}

// NewService creates a new game service.
func NewService(repo repository.Game, loc *time.Location, now func() time.Time) Service {
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[uuid.UUID, *domain.Game](gameCacheSize, nil, gameCacheTTL),
		loc:   loc,
		now:   now,
	}
}

// CreateGame validates and persists a new game configuration.
func (s *service) CreateGame(ctx context.Context, g *domain.Game) (*domain.Game, error) {
	if err := validateGameConfig(g); err != nil {
		return nil, err
	}

	g.ID = uuid.New()
	g.IsActive = true
	g.CreatedAt = s.now()
	g.UpdatedAt = g.CreatedAt

	if err := s.repo.CreateGame(ctx, g); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateGame, err)
	}

	logger.FromContext(ctx).Info(LogMsgGameCreated, "game_id", g.ID, "name", g.Name, "type", g.Type)
	return g, nil
}

// GetGame returns the game with its current derived status.
func (s *service) GetGame(ctx context.Context, id uuid.UUID) (*GameView, error) {
	g, err := s.cachedGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrGameNotFound
	}
	return &GameView{Game: *g, Status: gamewindow.Status(g, s.now().In(s.loc))}, nil
}

// ListGames returns all games with derived statuses, for admin and lobby
// display.
func (s *service) ListGames(ctx context.Context) ([]GameView, error) {
	games, err := s.repo.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListGames, err)
	}

	now := s.now().In(s.loc)
	views := make([]GameView, 0, len(games))
	for i := range games {
		views = append(views, GameView{
			Game:   games[i],
			Status: gamewindow.Status(&games[i], now),
		})
	}
	return views, nil
}

// UpdateGame validates and persists edits to a game's configuration.
// Multiplier changes only affect bets placed afterwards; placed bets carry a
// frozen potential winning.
func (s *service) UpdateGame(ctx context.Context, g *domain.Game) (*domain.Game, error) {
	if err := validateGameConfig(g); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetGame(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGame, err)
	}
	if existing == nil {
		return nil, domain.ErrGameNotFound
	}

	g.UpdatedAt = s.now()
	if err := s.repo.UpdateGame(ctx, g); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateGame, err)
	}
	s.cache.Remove(g.ID)

	logger.FromContext(ctx).Info(LogMsgGameUpdated, "game_id", g.ID, "name", g.Name)
	return g, nil
}

// DeleteGame removes a game. Blocked while the game still has pending bets;
// those must settle or be refunded first.
func (s *service) DeleteGame(ctx context.Context, id uuid.UUID) error {
	g, err := s.repo.GetGame(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetGame, err)
	}
	if g == nil {
		return domain.ErrGameNotFound
	}

	pending, err := s.repo.CountPendingBets(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCountBets, err)
	}
	if pending > 0 {
		return fmt.Errorf("%w: %d pending", domain.ErrPendingBetsExist, pending)
	}

	if err := s.repo.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToDeleteGame, err)
	}
	s.cache.Remove(id)

	logger.FromContext(ctx).Info(LogMsgGameDeleted, "game_id", id, "name", g.Name)
	return nil
}

// SetForcedStatus sets or clears (status == nil) the admin override. While
// set, the override wins over the time computation.
func (s *service) SetForcedStatus(ctx context.Context, id uuid.UUID, status *domain.GameStatus) error {
	if status != nil && !domain.ValidGameStatus(*status) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *status)
	}

	g, err := s.repo.GetGame(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetGame, err)
	}
	if g == nil {
		return domain.ErrGameNotFound
	}

	if err := s.repo.SetForcedStatus(ctx, id, status); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSetForced, err)
	}
	s.cache.Remove(id)

	log := logger.FromContext(ctx)
	if status != nil {
		log.Info(LogMsgForcedStatusSet, "game_id", id, "status", *status)
	} else {
		log.Info(LogMsgForcedStatusClear, "game_id", id)
	}
	return nil
}

// GameStatus derives the game's current status. Served from a short-TTL
// cache; this is the hot path polled by clients.
func (s *service) GameStatus(ctx context.Context, id uuid.UUID) (domain.GameStatus, error) {
	g, err := s.cachedGame(ctx, id)
	if err != nil {
		return "", err
	}
	if g == nil {
		return "", domain.ErrGameNotFound
	}
	return gamewindow.Status(g, s.now().In(s.loc)), nil
}

// RolloverRounds clears declared results of settled rounds so the next
// betting window opens fresh. Called by the rollover worker.
func (s *service) RolloverRounds(ctx context.Context) (int64, error) {
	n, err := s.repo.ResetDeclaredRounds(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToResetRounds, err)
	}
	s.cache.Purge()

	logger.FromContext(ctx).Info(LogMsgRoundsRolledOver, "games", n)
	return n, nil
}

func (s *service) cachedGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	if g, ok := s.cache.Get(id); ok {
		return g, nil
	}
	g, err := s.repo.GetGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGame, err)
	}
	if g != nil {
		s.cache.Add(id, g)
	}
	return g, nil
}

// validateGameConfig checks a game's configuration fields.
func validateGameConfig(g *domain.Game) error {
	if g.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !domain.ValidGameType(g.Type) {
		return fmt.Errorf("%w: unknown game type %q", domain.ErrInvalidInput, g.Type)
	}
	for _, t := range []string{g.StartTime, g.EndTime, g.ResultTime} {
		if _, err := gamewindow.ParseMinutes(t); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	if g.MinBet < 1 {
		return fmt.Errorf("%w: min bet must be at least 1", domain.ErrInvalidInput)
	}
	if g.MinBet > domain.PlatformMaxMinBet {
		return fmt.Errorf("%w: min bet exceeds platform cap %d", domain.ErrInvalidInput, domain.PlatformMaxMinBet)
	}
	if g.MinBet > g.MaxBet {
		return fmt.Errorf("%w: min bet exceeds max bet", domain.ErrInvalidInput)
	}
	if g.JodiPayout <= 0 || g.HarufPayout <= 0 || g.CrossingPayout <= 0 {
		return fmt.Errorf("%w: payout multipliers must be positive", domain.ErrInvalidInput)
	}
	if g.CommissionPct < 0 || g.CommissionPct > 100 {
		return fmt.Errorf("%w: commission must be between 0 and 100", domain.ErrInvalidInput)
	}
	return nil
}
