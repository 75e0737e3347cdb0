package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/matkaworks/matka-backend/internal/domain"
)

// querier is the query surface shared by *pgxpool.Pool and pgx.Tx, so row
// mapping helpers work inside and outside transactions.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

const gameColumns = `id, name, type, start_time, end_time, result_time,
	min_bet, max_bet, jodi_payout, haruf_payout, crossing_payout, commission_pct,
	is_active, forced_status, declared_result, declared_by, declared_at,
	result_pending, created_at, updated_at`

// scanGameRow maps one games row. Returns (nil, nil) when no row matched.
func scanGameRow(row pgx.Row) (*domain.Game, error) {
	var (
		g      domain.Game
		forced *string
	)
	err := row.Scan(
		&g.ID, &g.Name, &g.Type, &g.StartTime, &g.EndTime, &g.ResultTime,
		&g.MinBet, &g.MaxBet, &g.JodiPayout, &g.HarufPayout, &g.CrossingPayout, &g.CommissionPct,
		&g.IsActive, &forced, &g.DeclaredResult, &g.DeclaredBy, &g.DeclaredAt,
		&g.ResultPending, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if forced != nil {
		status := domain.GameStatus(*forced)
		g.ForcedStatus = &status
	}
	return &g, nil
}

// getGame fetches one game by id via any querier.
func getGame(ctx context.Context, q querier, id any) (*domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	game, err := scanGameRow(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGame, err)
	}
	return game, nil
}

const betColumns = `id, user_id, game_id, type, number, position,
	amount, potential_winning, winning_amount, status, transaction_id,
	placed_at, settled_at`

func scanBet(row pgx.Rows) (domain.Bet, error) {
	var (
		b        domain.Bet
		position string
	)
	err := row.Scan(
		&b.ID, &b.UserID, &b.GameID, &b.Type, &b.Number, &position,
		&b.Amount, &b.PotentialWinning, &b.WinningAmount, &b.Status, &b.TransactionID,
		&b.PlacedAt, &b.SettledAt,
	)
	if err != nil {
		return domain.Bet{}, err
	}
	b.Position = domain.HarufPosition(position)
	return b, nil
}

func collectBets(rows pgx.Rows) ([]domain.Bet, error) {
	defer rows.Close()

	bets := []domain.Bet{}
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, err
		}
		bets = append(bets, bet)
	}
	return bets, rows.Err()
}

const walletColumns = `id, user_id,
	deposit_balance, winning_balance, bonus_balance, commission_balance,
	total_deposits, total_withdrawals, total_winnings, total_bets,
	created_at, updated_at`

// scanWalletRow maps one wallets row. Returns (nil, nil) when no row matched.
func scanWalletRow(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(
		&w.ID, &w.UserID,
		&w.DepositBalance, &w.WinningBalance, &w.BonusBalance, &w.CommissionBalance,
		&w.TotalDeposits, &w.TotalWithdrawals, &w.TotalWinnings, &w.TotalBets,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func insertTransaction(ctx context.Context, q querier, txn *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, type, amount, status, description, game_id, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := q.Exec(ctx, query,
		txn.ID, txn.UserID, txn.Type, txn.Amount, txn.Status,
		txn.Description, txn.GameID, txn.ReferenceID, txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateTxn, err)
	}
	return nil
}
