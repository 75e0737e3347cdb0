// Package betting implements the bet placement guard: it validates a
// placement request against the game's betting window and the user's wallet,
// then atomically debits the wallet and creates the bet and its ledger entry.
package betting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/gamewindow"
	"github.com/matkaworks/matka-backend/internal/logger"
	"github.com/matkaworks/matka-backend/internal/metrics"
	"github.com/matkaworks/matka-backend/internal/repository"
	"github.com/matkaworks/matka-backend/internal/wager"
)

// Service defines the interface for bet placement
type Service interface {
	PlaceBet(ctx context.Context, req PlaceBetRequest) (*domain.Bet, error)
}

// PlaceBetRequest carries one placement attempt.
type PlaceBetRequest struct {
	UserID   uuid.UUID
	GameID   uuid.UUID
	Type     domain.GameType
	Number   string
	Position domain.HarufPosition
	Amount   int64
}

type service struct {
	repo repository.Betting
	loc  *time.Location
	now  func() time.Time
}

// NewService creates a new betting service. The clock is injected so the
// window evaluation is testable; production callers pass time.Now.
func NewService(repo repository.Betting, loc *time.Location, now func() time.Time) Service {
	return &service{repo: repo, loc: loc, now: now}
}

// PlaceBet validates and executes one placement. Validation failures return
// before any mutation; the debit, ledger entry and bet row commit as one
// transaction.
func (s *service) PlaceBet(ctx context.Context, req PlaceBetRequest) (*domain.Bet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlaceBetCalled,
		"user_id", req.UserID, "game_id", req.GameID,
		"type", req.Type, "number", req.Number, "amount", req.Amount)

	game, err := s.repo.GetGame(ctx, req.GameID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGame, err)
	}
	if game == nil {
		return nil, domain.ErrGameNotFound
	}
	if !game.IsActive {
		return nil, domain.ErrGameInactive
	}

	if req.Type != game.Type {
		return nil, fmt.Errorf("%w: game %q takes %s bets", domain.ErrInvalidBetType, game.Name, game.Type)
	}

	sel := domain.Selection{Type: req.Type, Number: req.Number, Position: req.Position}
	if !wager.ValidBetNumber(sel) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidBetNumber, req.Number)
	}

	if req.Amount <= 0 || req.Amount < game.MinBet || req.Amount > game.MaxBet {
		return nil, fmt.Errorf("%w: amount %d, allowed %d-%d",
			domain.ErrInvalidAmount, req.Amount, game.MinBet, game.MaxBet)
	}

	if status := gamewindow.Status(game, s.now().In(s.loc)); status != domain.StatusOpen {
		return nil, fmt.Errorf("%w: %s", domain.ErrBettingClosed, closedReason(status))
	}

	// Potential winning is frozen here; later multiplier edits never touch
	// this bet.
	potential := int64(float64(req.Amount) * game.PayoutMultiplier(req.Type))

	bet := &domain.Bet{
		ID:               uuid.New(),
		UserID:           req.UserID,
		GameID:           req.GameID,
		Type:             req.Type,
		Number:           req.Number,
		Position:         req.Position,
		Amount:           req.Amount,
		PotentialWinning: potential,
		Status:           domain.BetStatusPending,
		PlacedAt:         s.now(),
	}

	if err := s.executePlacementTx(ctx, game, bet); err != nil {
		return nil, err
	}

	metrics.BetsPlaced.WithLabelValues(string(req.Type)).Inc()
	metrics.StakeTaken.Add(float64(req.Amount))

	log.Info(LogMsgBetPlaced, "bet_id", bet.ID, "potential_winning", potential)
	return bet, nil
}

// executePlacementTx encapsulates the transactional portion of a placement.
func (s *service) executePlacementTx(ctx context.Context, game *domain.Game, bet *domain.Bet) error {
	tx, err := s.repo.BeginPlacementTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	wallet, err := tx.GetWalletForUpdate(ctx, bet.UserID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetWallet, err)
	}
	if wallet == nil {
		return domain.ErrWalletNotFound
	}
	if wallet.DepositBalance < bet.Amount {
		return fmt.Errorf("%w: have %d, need %d",
			domain.ErrInsufficientBalance, wallet.DepositBalance, bet.Amount)
	}

	if err := tx.DebitForBet(ctx, wallet.ID, bet.Amount); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToDebit, err)
	}

	txn := &domain.Transaction{
		ID:          uuid.New(),
		UserID:      bet.UserID,
		Type:        domain.TransactionTypeBet,
		Amount:      bet.Amount,
		Status:      domain.TransactionStatusCompleted,
		Description: fmt.Sprintf(TxnDescriptionBetFormat, game.Name, bet.Type, bet.Number),
		GameID:      &bet.GameID,
		ReferenceID: &bet.ID,
		CreatedAt:   bet.PlacedAt,
	}
	if err := tx.CreateTransaction(ctx, txn); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCreateTxn, err)
	}

	bet.TransactionID = txn.ID
	if err := tx.CreateBet(ctx, bet); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCreateBet, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}
	return nil
}

func closedReason(status domain.GameStatus) string {
	switch status {
	case domain.StatusWaiting:
		return ReasonBettingNotOpen
	case domain.StatusClosed:
		return ReasonBettingClosed
	case domain.StatusResultDeclared:
		return ReasonResultDeclared
	}
	return ReasonGameNotAvailable
}
