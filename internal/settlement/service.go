// Package settlement implements the settlement engine: declaring a round's
// result and resolving every pending bet against it exactly once, inside a
// single transaction.
package settlement

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

// Service defines the interface for settlement operations
type Service interface {
	DeclareResult(ctx context.Context, gameID uuid.UUID, declared string, adminID uuid.UUID) (*domain.SettlementSummary, error)
	UserSummary(ctx context.Context, gameID, userID uuid.UUID) (*domain.UserGameSummary, error)
	RoundResult(ctx context.Context, gameID uuid.UUID) (*domain.GameResult, error)
}

type service struct {
	repo repository.Settlement
	loc  *time.Location
	now  func() time.Time
}

// NewService creates a new settlement service.
func NewService(repo repository.Settlement, loc *time.Location, now func() time.Time) Service {
	return &service{repo: repo, loc: loc, now: now}
}

// DeclareResult marks the game's round with the declared result and settles
// every pending bet against it. The declaration is guarded twice: a
// precondition check on the loaded game, and a compare-and-swap on the round
// marking inside the transaction. Either guard failing means another
// declaration already happened and nothing is credited.
func (s *service) DeclareResult(ctx context.Context, gameID uuid.UUID, declared string, adminID uuid.UUID) (*domain.SettlementSummary, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDeclareResultCalled, "game_id", gameID, "declared", declared, "admin_id", adminID)

	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGame, err)
	}
	if game == nil {
		return nil, domain.ErrGameNotFound
	}

	if declared == "" || !wager.ValidResultFormat(game.Type, declared) {
		return nil, fmt.Errorf("%w: %q for %s game", domain.ErrInvalidResultFormat, declared, game.Type)
	}

	if game.DeclaredResult != nil {
		return nil, domain.ErrResultAlreadyDeclared
	}

	if status := gamewindow.Status(game, s.now().In(s.loc)); status != domain.StatusClosed {
		return nil, fmt.Errorf("%w: can only declare result for closed games (current: %s)",
			domain.ErrInvalidGameState, status)
	}

	summary, err := s.executeSettlementTx(ctx, game, declared, adminID)
	if err != nil {
		return nil, err
	}

	metrics.SettlementsRun.WithLabelValues(string(game.Type)).Inc()
	metrics.WinningsPaid.Add(float64(summary.TotalWinningAmount))

	log.Info(LogMsgRoundSettled,
		"game_id", gameID,
		"total_bets", summary.TotalBets,
		"winners", summary.Winners,
		"total_staked", summary.TotalStaked,
		"total_winning", summary.TotalWinningAmount,
		"net_profit", summary.NetProfit)
	return summary, nil
}

func (s *service) executeSettlementTx(ctx context.Context, game *domain.Game, declared string, adminID uuid.UUID) (*domain.SettlementSummary, error) {
	log := logger.FromContext(ctx)
	declaredAt := s.now()

	tx, err := s.repo.BeginSettlementTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	rows, err := tx.MarkResultDeclared(ctx, game.ID, declared, adminID, declaredAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToMarkDeclared, err)
	}
	if rows == 0 {
		return nil, domain.ErrResultAlreadyDeclared
	}

	bets, err := tx.GetPendingBetsForUpdate(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetBets, err)
	}

	var (
		totalStaked  int64
		totalWinning int64
		winners      int
		breakdown    = make(map[domain.GameType]domain.TypeBreakdown)
	)

	for i := range bets {
		bet := &bets[i]
		totalStaked += bet.Amount

		bd := breakdown[bet.Type]
		bd.Bets++
		bd.Staked += bet.Amount

		if !domain.ValidGameType(bet.Type) {
			log.Warn(LogMsgUnknownBetType, "bet_id", bet.ID, "type", bet.Type)
		}

		if wager.IsWinner(bet.Selection(), declared) {
			// Winning amount is the potential winning frozen at placement.
			winning := bet.PotentialWinning
			settled, err := tx.SettleBet(ctx, bet.ID, domain.BetStatusWon, winning, declaredAt)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToSettleBet, bet.ID, err)
			}
			if settled == 0 {
				// Already transitioned by an earlier run; never credit twice.
				log.Warn(LogMsgBetAlreadySettled, "bet_id", bet.ID)
			} else {
				if err := tx.CreditWinnings(ctx, bet.UserID, winning); err != nil {
					return nil, fmt.Errorf("%s for bet %s: %w", ErrContextFailedToCredit, bet.ID, err)
				}

				txn := &domain.Transaction{
					ID:     uuid.New(),
					UserID: bet.UserID,
					Type:   domain.TransactionTypeWin,
					Amount: winning,
					Status: domain.TransactionStatusCompleted,
					Description: fmt.Sprintf(TxnDescriptionWinFormat,
						game.Name, bet.Type, bet.Number, declared),
					GameID:      &game.ID,
					ReferenceID: &bet.ID,
					CreatedAt:   declaredAt,
				}
				if err := tx.CreateTransaction(ctx, txn); err != nil {
					return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateTxn, err)
				}

				winners++
				totalWinning += winning
				bd.Winners++
				bd.WinningAmount += winning
			}
		} else {
			settled, err := tx.SettleBet(ctx, bet.ID, domain.BetStatusLost, 0, declaredAt)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToSettleBet, bet.ID, err)
			}
			if settled == 0 {
				log.Warn(LogMsgBetAlreadySettled, "bet_id", bet.ID)
			}
		}

		// The bet is counted in the breakdown even when it was already
		// settled by an earlier run, so staked totals and the per-type
		// view stay consistent.
		breakdown[bet.Type] = bd
	}

	commission := int64(float64(totalStaked) * game.CommissionPct / 100)
	netProfit := totalStaked - totalWinning - commission

	result := &domain.GameResult{
		ID:                 uuid.New(),
		GameID:             game.ID,
		RoundDate:          roundDate(declaredAt.In(s.loc)),
		DeclaredResult:     declared,
		TotalBets:          len(bets),
		TotalStaked:        totalStaked,
		TotalWinningAmount: totalWinning,
		PlatformCommission: commission,
		NetProfit:          netProfit,
		Breakdown:          breakdown,
		DeclaredBy:         adminID,
		DeclaredAt:         declaredAt,
		ProcessedAt:        s.now(),
		Status:             domain.ResultStatusDeclared,
	}
	if err := tx.UpsertGameResult(ctx, result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveResult, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	return &domain.SettlementSummary{
		GameID:             game.ID,
		DeclaredResult:     declared,
		TotalBets:          len(bets),
		Winners:            winners,
		TotalStaked:        totalStaked,
		TotalWinningAmount: totalWinning,
		PlatformCommission: commission,
		NetProfit:          netProfit,
	}, nil
}

// UserSummary re-runs the wager evaluation read-only against the stored
// declared result; nothing is mutated.
func (s *service) UserSummary(ctx context.Context, gameID, userID uuid.UUID) (*domain.UserGameSummary, error) {
	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGame, err)
	}
	if game == nil {
		return nil, domain.ErrGameNotFound
	}

	bets, err := s.repo.GetBetsByGameAndUser(ctx, gameID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUserBets, err)
	}

	summary := &domain.UserGameSummary{
		GameID:         gameID,
		UserID:         userID,
		ResultDeclared: game.DeclaredResult != nil,
		TotalBets:      len(bets),
	}
	if game.DeclaredResult != nil {
		summary.DeclaredResult = *game.DeclaredResult
	}

	for i := range bets {
		bet := &bets[i]
		summary.TotalStaked += bet.Amount

		outcome := domain.BetOutcome{
			BetID:  bet.ID,
			Number: bet.Number,
			Amount: bet.Amount,
		}
		if summary.ResultDeclared && wager.IsWinner(bet.Selection(), summary.DeclaredResult) {
			outcome.Won = true
			outcome.WinningAmount = bet.PotentialWinning
			summary.TotalWon += bet.PotentialWinning
		}
		summary.Outcomes = append(summary.Outcomes, outcome)
	}

	return summary, nil
}

// RoundResult returns the stored result record for the game's current round,
// or nil when none has been declared yet.
func (s *service) RoundResult(ctx context.Context, gameID uuid.UUID) (*domain.GameResult, error) {
	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGame, err)
	}
	if game == nil {
		return nil, domain.ErrGameNotFound
	}
	return s.repo.GetGameResult(ctx, gameID)
}

// roundDate truncates an instant to its local calendar date.
func roundDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
