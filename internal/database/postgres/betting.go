package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/repository"
)

type bettingRepository struct {
	db *pgxpool.Pool
}

// NewBettingRepository creates a PostgreSQL-backed betting repository.
func NewBettingRepository(db *pgxpool.Pool) repository.Betting {
	return &bettingRepository{db: db}
}

func (r *bettingRepository) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	return getGame(ctx, r.db, id)
}

func (r *bettingRepository) BeginPlacementTx(ctx context.Context) (repository.PlacementTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	return &placementTx{tx: tx}, nil
}

// placementTx runs one bet placement inside a database transaction. The
// wallet row lock taken by GetWalletForUpdate serializes concurrent
// placements against the same wallet.
type placementTx struct {
	tx pgx.Tx
}

func (p *placementTx) Commit(ctx context.Context) error   { return p.tx.Commit(ctx) }
func (p *placementTx) Rollback(ctx context.Context) error { return p.tx.Rollback(ctx) }

func (p *placementTx) GetWalletForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE`
	wallet, err := scanWalletRow(p.tx.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWallet, err)
	}
	return wallet, nil
}

// DebitForBet moves the stake out of the deposit balance. The balance guard
// in the WHERE clause backs up the service-level check; the row lock makes
// the read-then-debit sequence safe regardless.
func (p *placementTx) DebitForBet(ctx context.Context, walletID uuid.UUID, amount int64) error {
	query := `
		UPDATE wallets SET
			deposit_balance = deposit_balance - $2,
			total_bets = total_bets + $2,
			updated_at = NOW()
		WHERE id = $1 AND deposit_balance >= $2`
	tag, err := p.tx.Exec(ctx, query, walletID, amount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDebitWallet, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientBalance
	}
	return nil
}

func (p *placementTx) CreateTransaction(ctx context.Context, txn *domain.Transaction) error {
	return insertTransaction(ctx, p.tx, txn)
}

func (p *placementTx) CreateBet(ctx context.Context, bet *domain.Bet) error {
	query := `
		INSERT INTO bets (
			id, user_id, game_id, type, number, position,
			amount, potential_winning, winning_amount, status, transaction_id, placed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := p.tx.Exec(ctx, query,
		bet.ID, bet.UserID, bet.GameID, bet.Type, bet.Number, string(bet.Position),
		bet.Amount, bet.PotentialWinning, bet.WinningAmount, bet.Status, bet.TransactionID, bet.PlacedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateBet, err)
	}
	return nil
}
