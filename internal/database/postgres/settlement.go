package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/repository"
)

type settlementRepository struct {
	db *pgxpool.Pool
}

// NewSettlementRepository creates a PostgreSQL-backed settlement repository.
func NewSettlementRepository(db *pgxpool.Pool) repository.Settlement {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	return getGame(ctx, r.db, id)
}

func (r *settlementRepository) GetBetsByGameAndUser(ctx context.Context, gameID, userID uuid.UUID) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets
		WHERE game_id = $1 AND user_id = $2
		ORDER BY placed_at`
	rows, err := r.db.Query(ctx, query, gameID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBets, err)
	}
	return collectBets(rows)
}

func (r *settlementRepository) GetGameResult(ctx context.Context, gameID uuid.UUID) (*domain.GameResult, error) {
	query := `SELECT ` + gameResultColumns + ` FROM game_results
		WHERE game_id = $1
		ORDER BY round_date DESC
		LIMIT 1`
	result, err := scanGameResultRow(r.db.QueryRow(ctx, query, gameID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetResult, err)
	}
	return result, nil
}

func (r *settlementRepository) BeginSettlementTx(ctx context.Context) (repository.SettlementTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	return &settlementTx{tx: tx}, nil
}

// settlementTx runs one round settlement inside a database transaction.
type settlementTx struct {
	tx pgx.Tx
}

func (s *settlementTx) Commit(ctx context.Context) error   { return s.tx.Commit(ctx) }
func (s *settlementTx) Rollback(ctx context.Context) error { return s.tx.Rollback(ctx) }

// MarkResultDeclared is the compare-and-swap guard for the whole settlement:
// it only succeeds while the round carries no declared result. Zero rows
// means another declaration won the race and the caller must abort.
func (s *settlementTx) MarkResultDeclared(ctx context.Context, gameID uuid.UUID, declared string, adminID uuid.UUID, at time.Time) (int64, error) {
	query := `
		UPDATE games SET
			declared_result = $2, declared_by = $3, declared_at = $4, updated_at = NOW()
		WHERE id = $1 AND declared_result IS NULL`
	tag, err := s.tx.Exec(ctx, query, gameID, declared, adminID, at)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMarkDeclared, err)
	}
	return tag.RowsAffected(), nil
}

func (s *settlementTx) GetPendingBetsForUpdate(ctx context.Context, gameID uuid.UUID) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets
		WHERE game_id = $1 AND status = $2
		ORDER BY placed_at
		FOR UPDATE`
	rows, err := s.tx.Query(ctx, query, gameID, domain.BetStatusPending)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBets, err)
	}
	return collectBets(rows)
}

// SettleBet transitions a bet out of pending. The status guard in the WHERE
// clause makes the transition single-shot: zero rows affected means the bet
// was already settled and the caller must not credit it again.
func (s *settlementTx) SettleBet(ctx context.Context, betID uuid.UUID, status domain.BetStatus, winningAmount int64, at time.Time) (int64, error) {
	query := `
		UPDATE bets SET
			status = $2, winning_amount = $3, settled_at = $4
		WHERE id = $1 AND status = $5`
	tag, err := s.tx.Exec(ctx, query, betID, status, winningAmount, at, domain.BetStatusPending)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSettleBet, err)
	}
	return tag.RowsAffected(), nil
}

func (s *settlementTx) CreditWinnings(ctx context.Context, userID uuid.UUID, amount int64) error {
	query := `
		UPDATE wallets SET
			winning_balance = winning_balance + $2,
			total_winnings = total_winnings + $2,
			updated_at = NOW()
		WHERE user_id = $1`
	tag, err := s.tx.Exec(ctx, query, userID, amount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreditWallet, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWalletNotFound
	}
	return nil
}

func (s *settlementTx) CreateTransaction(ctx context.Context, txn *domain.Transaction) error {
	return insertTransaction(ctx, s.tx, txn)
}

func (s *settlementTx) UpsertGameResult(ctx context.Context, result *domain.GameResult) error {
	breakdown, err := json.Marshal(result.Breakdown)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalBreak, err)
	}

	query := `
		INSERT INTO game_results (
			id, game_id, round_date, declared_result,
			total_bets, total_staked, total_winning_amount, platform_commission, net_profit,
			breakdown, declared_by, declared_at, processed_at, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (game_id, round_date) DO UPDATE SET
			declared_result = EXCLUDED.declared_result,
			total_bets = EXCLUDED.total_bets,
			total_staked = EXCLUDED.total_staked,
			total_winning_amount = EXCLUDED.total_winning_amount,
			platform_commission = EXCLUDED.platform_commission,
			net_profit = EXCLUDED.net_profit,
			breakdown = EXCLUDED.breakdown,
			declared_by = EXCLUDED.declared_by,
			declared_at = EXCLUDED.declared_at,
			processed_at = EXCLUDED.processed_at,
			status = EXCLUDED.status
		WHERE game_results.status = $15`
	_, err = s.tx.Exec(ctx, query,
		result.ID, result.GameID, result.RoundDate, result.DeclaredResult,
		result.TotalBets, result.TotalStaked, result.TotalWinningAmount,
		result.PlatformCommission, result.NetProfit,
		breakdown, result.DeclaredBy, result.DeclaredAt, result.ProcessedAt, result.Status,
		domain.ResultStatusPending)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertResult, err)
	}
	return nil
}

const gameResultColumns = `id, game_id, round_date, declared_result,
	total_bets, total_staked, total_winning_amount, platform_commission, net_profit,
	breakdown, declared_by, declared_at, processed_at, status`

// scanGameResultRow maps one game_results row. Returns (nil, nil) when no
// row matched.
func scanGameResultRow(row pgx.Row) (*domain.GameResult, error) {
	var (
		r         domain.GameResult
		breakdown []byte
	)
	err := row.Scan(
		&r.ID, &r.GameID, &r.RoundDate, &r.DeclaredResult,
		&r.TotalBets, &r.TotalStaked, &r.TotalWinningAmount, &r.PlatformCommission, &r.NetProfit,
		&breakdown, &r.DeclaredBy, &r.DeclaredAt, &r.ProcessedAt, &r.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &r.Breakdown); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalBreak, err)
		}
	}
	return &r, nil
}
