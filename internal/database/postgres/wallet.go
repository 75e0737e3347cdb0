package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/repository"
)

type walletRepository struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a PostgreSQL-backed wallet repository.
func NewWalletRepository(db *pgxpool.Pool) repository.Wallet {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetWalletByUser(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`
	wallet, err := scanWalletRow(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWallet, err)
	}
	return wallet, nil
}

// CreateWallet provisions an empty wallet for the user. Concurrent creation
// is safe: the unique constraint on user_id collapses racers onto the same
// row, which is then re-read.
func (r *walletRepository) CreateWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `
		INSERT INTO wallets (id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, uuid.New(), userID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateWallet, err)
	}
	return r.GetWalletByUser(ctx, userID)
}
