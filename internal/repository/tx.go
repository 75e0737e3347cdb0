package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matkaworks/matka-backend/internal/domain"
)

// Tx is the common commit/rollback surface of a scoped unit of work.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// PlacementTx spans one bet placement: wallet debit, ledger entry, and bet
// row are all-or-nothing. The wallet read takes a row lock so concurrent
// operations on the same wallet serialize.
type PlacementTx interface {
	Tx
	GetWalletForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	DebitForBet(ctx context.Context, walletID uuid.UUID, amount int64) error
	CreateTransaction(ctx context.Context, txn *domain.Transaction) error
	CreateBet(ctx context.Context, bet *domain.Bet) error
}

// SettlementTx spans one round settlement: round marking, bet mutation,
// wallet credits, ledger entries and the result record commit together or
// not at all.
type SettlementTx interface {
	Tx

	// MarkResultDeclared sets the round's declared result only when none is
	// present yet (compare-and-swap). Returns the number of rows updated:
	// zero means another declaration already won.
	MarkResultDeclared(ctx context.Context, gameID uuid.UUID, declared string, adminID uuid.UUID, at time.Time) (int64, error)

	// GetPendingBetsForUpdate fetches the round's unsettled bets with row
	// locks held for the duration of the transaction.
	GetPendingBetsForUpdate(ctx context.Context, gameID uuid.UUID) ([]domain.Bet, error)

	// SettleBet transitions a bet out of pending. The update is guarded on
	// the current status; zero rows affected means the bet was already
	// settled and must not be credited again.
	SettleBet(ctx context.Context, betID uuid.UUID, status domain.BetStatus, winningAmount int64, at time.Time) (int64, error)

	CreditWinnings(ctx context.Context, userID uuid.UUID, amount int64) error
	CreateTransaction(ctx context.Context, txn *domain.Transaction) error
	UpsertGameResult(ctx context.Context, result *domain.GameResult) error
}
